package tips

// Helpers keeping the rule table terse.

func always(*Context) bool { return true }

func sev(s Severity) func(*Context) Severity {
	return func(*Context) Severity { return s }
}

func why(s string) func(*Context) string {
	return func(*Context) string { return s }
}

// escalate returns high when cond holds, otherwise base.
func escalate(cond func(*Context) bool, base Severity) func(*Context) Severity {
	return func(c *Context) Severity {
		if cond(c) {
			return SeverityHigh
		}
		return base
	}
}

func hardLast(c *Context) bool  { return c.HardLastSession }
func heavyWeek(c *Context) bool { return c.HeavyWeek }

// DefaultRules is the built-in rule base, evaluated in order. Firing order
// matters only for rules sharing an ID: the first to fire wins, so rules
// covering the same topic under different conditions must reuse one ID while
// independent rules need distinct ones.
func DefaultRules() []Rule {
	return []Rule{
		// --- pre-session nutrition (load-driven) ---
		{
			ID: "pre-carb", Area: AreaPreNutrition, Bucket: BucketGeneral,
			When:     func(c *Context) bool { return c.HardLastSession || c.HeavyWeek },
			Severity: escalate(hardLast, SeverityMedium),
			Title:    "Carbohydrate load before training",
			Body:     "On demanding days eat 2-3 g/kg of carbs 3-4 h before the session. With only ~1 h left, a light snack (~1 g/kg) works.",
			Rationale: func(c *Context) string {
				if c.HardLastSession {
					return "last session was intense"
				}
				return "high training load this week"
			},
			Tags: []string{"carbs", "performance"},
		},
		{
			ID: "pre-light", Area: AreaPreNutrition, Bucket: BucketGeneral,
			When:      func(c *Context) bool { return !c.HardLastSession && !c.HeavyWeek },
			Severity:  sev(SeverityMedium),
			Title:     "Light pre-training meal",
			Body:      "For a moderate session: fruit with yogurt, or toast with jam, 60-90 min before.",
			Rationale: why("moderate or light session ahead"),
			Tags:      []string{"light", "quick energy"},
		},
		{
			ID: "caffeine", Area: AreaPreNutrition, Bucket: BucketGeneral,
			When:      func(c *Context) bool { return !c.CardiacRisk },
			Severity:  sev(SeverityMedium),
			Title:     "Optional caffeine",
			Body:      "If you tolerate it, ~3 mg/kg some 45-60 min before training. Skip it if it makes you jittery or you train late.",
			Rationale: why("can lower perceived exertion"),
			Tags:      []string{"caffeine", "focus"},
		},
		{
			ID: "pre-avoid-heavy", Area: AreaPreNutrition, Bucket: BucketGeneral,
			When:      always,
			Severity:  sev(SeverityLow),
			Title:     "Avoid high fiber and fat pre-swim",
			Body:      "Right before training, skip fried food, legumes, and high-fiber meals to prevent stomach upset in the water.",
			Rationale: why("better tolerance in the water"),
			Tags:      []string{"digestion"},
		},

		// --- post-session nutrition ---
		{
			ID: "post-window", Area: AreaPostNutrition, Bucket: BucketGeneral,
			When:      always,
			Severity:  escalate(hardLast, SeverityMedium),
			Title:     "Refuel within 1-3 h",
			Body:      "Aim for ~1.0-1.2 g/kg carbs plus 20-30 g protein: rice with chicken, or a sandwich with milk.",
			Rationale: why("glycogen reload and muscle repair"),
			Tags:      []string{"carbs", "protein"},
		},
		{
			ID: "post-protein-dose", Area: AreaPostNutrition, Bucket: BucketGeneral,
			When:      always,
			Severity:  sev(SeverityMedium),
			Title:     "Spread protein across the day",
			Body:      "Target ~0.3 g/kg per meal over 3-4 meals to keep muscle protein synthesis going.",
			Rationale: why("muscle recovery"),
			Tags:      []string{"protein", "timing"},
		},
		{
			ID: "post-rehydration", Area: AreaPostNutrition, Bucket: BucketGeneral,
			When:      always,
			Severity:  sev(SeverityMedium),
			Title:     "Rehydrate after the session",
			Body:      "Drink fluids with some sodium in the 2-4 h after training. Heavy sweaters should aim for ~150% of the weight lost.",
			Rationale: why("replace sweat losses"),
			Tags:      []string{"hydration"},
		},

		// --- diet adjustment (body composition) ---
		{
			ID: "calorie-surplus", Area: AreaDietAdjustment, Bucket: BucketPersonalized,
			When:      func(c *Context) bool { return c.BMIBetween(0, c.T.BMIUnderweight) },
			Severity:  sev(SeverityMedium),
			Title:     "Increase calorie density",
			Body:      "Add nuts, olive oil, whole dairy, and one extra snack per day.",
			Rationale: why("BMI below the healthy range"),
			Tags:      []string{"energy", "healthy weight"},
		},
		{
			ID: "calorie-control", Area: AreaDietAdjustment, Bucket: BucketPersonalized,
			When:     func(c *Context) bool { return c.BMIBetween(c.T.BMIOverweight, -1) },
			Severity: escalate(func(c *Context) bool { return c.BMIBetween(c.T.BMIObese, -1) }, SeverityMedium),
			Title:    "Portion control and fiber",
			Body:     "Build plates around vegetables, lean protein, and whole grains; plan snacks to avoid hunger spikes.",
			Rationale: func(c *Context) string {
				if c.BMIBetween(c.T.BMIObese, -1) {
					return "BMI well above the healthy range"
				}
				return "BMI above the healthy range"
			},
			Tags: []string{"satiety", "healthy weight"},
		},
		{
			ID: "weight-loss-plan", Area: AreaDietAdjustment, Bucket: BucketPersonalized,
			When:      func(c *Context) bool { return c.GoalMentions("lose weight", "weight loss", "peso") },
			Severity:  sev(SeverityMedium),
			Title:     "Moderate deficit, steady volume",
			Body:      "Keep a small calorie deficit (~300-500 kcal) and protect protein intake; avoid cutting on hard training days.",
			Rationale: why("weight-loss goal"),
			Tags:      []string{"goal", "healthy weight"},
		},
		{
			ID: "fiber-micros", Area: AreaDietAdjustment, Bucket: BucketGeneral,
			When:      always,
			Severity:  sev(SeverityLow),
			Title:     "Fiber and micronutrients",
			Body:      "Aim for 25-35 g of fiber per day and 5 servings of fruit and vegetables.",
			Rationale: why("digestive health and satiety"),
			Tags:      []string{"fiber", "micros"},
		},

		// --- hydration ---
		{
			ID: "hydration-plan", Area: AreaHydration, Bucket: BucketGeneral,
			When: always,
			Severity: func(c *Context) Severity {
				if c.HeavyWeek {
					return SeverityMedium
				}
				return SeverityLow
			},
			Title:     "Baseline fluid plan",
			Body:      "400-600 ml about 2 h before. During the session: 150-250 ml every 15-20 min.",
			Rationale: why("hydration underpins performance"),
			Tags:      []string{"water", "plan"},
		},
		{
			ID: "electrolytes", Area: AreaHydration, Bucket: BucketGeneral,
			When: func(c *Context) bool {
				last := c.Metrics.LatestSession
				return c.HardLastSession ||
					(last != nil && last.DurationMinutes >= c.T.LongSessionMinutes) ||
					c.Metrics.DistanceLast7Days >= c.T.HighVolumeMeters
			},
			Severity: sev(SeverityHigh),
			Title:    "Add electrolytes",
			Body:     "For sessions of 60 min or more, or high-volume weeks, use a drink with ~300-600 mg/L of sodium.",
			Rationale: func(c *Context) string {
				if c.HardLastSession {
					return "long or intense session"
				}
				return "high weekly volume"
			},
			Tags: []string{"electrolytes", "endurance"},
		},
		{
			ID: "sweat-test", Area: AreaHydration, Bucket: BucketGeneral,
			When:      always,
			Severity:  sev(SeverityMedium),
			Title:     "Run a sweat test",
			Body:      "Weigh yourself before and after (dry). 1 kg lost is roughly 1 L of sweat; use it to tune your fluid plan.",
			Rationale: why("personalize hydration"),
			Tags:      []string{"sweat", "personalized"},
		},

		// --- recovery ---
		{
			ID: "sleep", Area: AreaRecovery, Bucket: BucketGeneral,
			When:     always,
			Severity: escalate(func(c *Context) bool { return c.Metrics.AverageRPERecent >= c.T.HeavyWeekRPE }, SeverityMedium),
			Title:    "Sleep as the foundation",
			Body:     "7-9 h per night. When average RPE runs at 7 or above, add a 20-30 min nap.",
			Rationale: func(c *Context) string {
				if c.Metrics.AverageRPERecent >= c.T.HeavyWeekRPE {
					return "high perceived load"
				}
				return "sleep hygiene"
			},
			Tags: []string{"sleep"},
		},
		{
			ID: "active-recovery", Area: AreaRecovery, Bucket: BucketGeneral,
			When:      hardLast,
			Severity:  sev(SeverityHigh),
			Title:     "Active recovery plus mobility",
			Body:      "The day after: 15-30 min easy movement plus 10 min of shoulder, hip, and T-spine mobility.",
			Rationale: why("high fatigue or a demanding session"),
			Tags:      []string{"active recovery", "mobility"},
		},
		{
			ID: "post-stretching", Area: AreaRecovery, Bucket: BucketGeneral,
			When:      func(c *Context) bool { return !c.HardLastSession },
			Severity:  sev(SeverityLow),
			Title:     "Short post-session stretch",
			Body:      "3-5 stretches of 20-30 s each: pecs, lats, triceps, hip flexors, calves.",
			Rationale: why("maintain range of motion"),
			Tags:      []string{"flexibility"},
		},
		{
			ID: "foam-rolling", Area: AreaRecovery, Bucket: BucketGeneral,
			When:      always,
			Severity:  sev(SeverityLow),
			Title:     "Foam rolling",
			Body:      "8-10 min on lats, glutes, and calves after sessions or on easy days.",
			Rationale: why("myofascial relief"),
			Tags:      []string{"roller", "soft tissue"},
		},

		// --- health (profile-driven cautions) ---
		{
			ID: "heart-rate-monitor", Area: AreaHealth, Bucket: BucketPersonalized,
			When:     func(c *Context) bool { return c.CardiacRisk },
			Severity: sev(SeverityHigh),
			Title:    "Monitor heart rate and warning signs",
			Body:     "Take your resting heart rate on waking. If it rises 10% or more for several days, cut load and prioritize sleep and hydration.",
			Rationale: func(c *Context) string {
				if c.HasCondition("cardi", "hipertens", "hypertens") {
					return "cardiovascular history"
				}
				return "elevated resting heart rate"
			},
			Tags: []string{"vigilance", "autoregulation"},
		},
		{
			ID: "shoulder-caution", Area: AreaHealth, Bucket: BucketPersonalized,
			When:      func(c *Context) bool { return c.HasCondition("shoulder", "hombro") },
			Severity:  sev(SeverityHigh),
			Title:     "Protect the shoulder",
			Body:      "Limit paddles and hard sprint volume, warm up rotators before swimming, and stop on sharp pain.",
			Rationale: why("reported shoulder condition"),
			Tags:      []string{"caution", "shoulder"},
		},
		{
			ID: "back-caution", Area: AreaHealth, Bucket: BucketPersonalized,
			When:      func(c *Context) bool { return c.HasCondition("back", "espalda", "lumbar") },
			Severity:  sev(SeverityMedium),
			Title:     "Care for the back",
			Body:      "Favor freestyle and backstroke over butterfly on flare-up days and keep core work strict.",
			Rationale: why("reported back condition"),
			Tags:      []string{"caution", "back"},
		},
		{
			ID: "knee-caution", Area: AreaHealth, Bucket: BucketPersonalized,
			When:      func(c *Context) bool { return c.HasCondition("knee", "rodilla") },
			Severity:  sev(SeverityMedium),
			Title:     "Mind the knees",
			Body:      "Reduce breaststroke kick volume and build up whip kick gradually after any pain-free break.",
			Rationale: why("reported knee condition"),
			Tags:      []string{"caution", "knee"},
		},
		{
			ID: "joint-care", Area: AreaHealth, Bucket: BucketPersonalized,
			When:      func(c *Context) bool { return c.AgeAtLeast(c.T.SeniorAge) },
			Severity:  sev(SeverityMedium),
			Title:     "Joint care routine",
			Body:      "Add 10 min of joint mobility before swimming and keep one low-impact strength day per week.",
			Rationale: why("joint load management from age 40"),
			Tags:      []string{"joints", "prevention"},
		},
		{
			ID: "shoulder-prehab", Area: AreaHealth, Bucket: BucketGeneral,
			When:      always,
			Severity:  sev(SeverityLow),
			Title:     "Happy shoulders",
			Body:      "Twice a week: banded Y/T/W (2x10) plus external rotations (2x12).",
			Rationale: why("overuse prevention"),
			Tags:      []string{"prevention", "shoulder"},
		},
		{
			ID: "annual-checkup", Area: AreaHealth, Bucket: BucketGeneral,
			When:      always,
			Severity:  sev(SeverityMedium),
			Title:     "Annual medical check",
			Body:      "If you compete or have a relevant history, get a yearly medical review and an ECG when indicated.",
			Rationale: why("safety"),
			Tags:      []string{"checkup", "medical"},
		},

		// --- weekly plan ---
		{
			ID: "progression-caution", Area: AreaWeeklyPlan, Bucket: BucketPersonalized,
			When: func(c *Context) bool {
				return c.Metrics.HasPriorData && c.Metrics.DistanceTrendPct > c.T.TrendSpikePct
			},
			Severity:  sev(SeverityMedium),
			Title:     "Watch the progression",
			Body:      "Keep weekly volume increases at or below 10-20%, alternating hard and easy days.",
			Rationale: why("sharp 7-day load jump"),
			Tags:      []string{"progression", "prevention"},
		},
		{
			ID: "regression-caution", Area: AreaWeeklyPlan, Bucket: BucketPersonalized,
			When: func(c *Context) bool {
				return c.Metrics.HasPriorData && c.Metrics.DistanceTrendPct < c.T.TrendDropPct
			},
			Severity:  sev(SeverityMedium),
			Title:     "Volume is slipping",
			Body:      "Weekly distance dropped notably. If unplanned, schedule two anchor sessions you can always keep.",
			Rationale: why("7-day volume regression"),
			Tags:      []string{"consistency"},
		},
		{
			ID: "competition-taper", Area: AreaWeeklyPlan, Bucket: BucketPersonalized,
			When:      func(c *Context) bool { return c.GoalMentions("compet") || c.Profile.IsCompetitive() },
			Severity:  sev(SeverityMedium),
			Title:     "Sharpen for racing",
			Body:      "In race week cut volume 20-40%, keep some intensity, and guard carbs and sleep.",
			Rationale: why("competitive goal"),
			Tags:      []string{"taper", "performance"},
		},
		{
			ID: "endurance-base", Area: AreaWeeklyPlan, Bucket: BucketPersonalized,
			When:      func(c *Context) bool { return c.GoalMentions("endurance", "resistencia") },
			Severity:  sev(SeverityMedium),
			Title:     "Build the aerobic base",
			Body:      "Keep 70-80% of weekly volume easy and continuous; add one longer swim that grows a little each week.",
			Rationale: why("endurance goal"),
			Tags:      []string{"aerobic", "goal"},
		},
		{
			ID: "technique-over-load", Area: AreaWeeklyPlan, Bucket: BucketPersonalized,
			When:      func(c *Context) bool { return c.AgeAtMost(c.T.YouthAge) },
			Severity:  sev(SeverityMedium),
			Title:     "Technique before load",
			Body:      "At 18 and under, prioritize stroke mechanics and variety over big volume blocks.",
			Rationale: why("development-age training"),
			Tags:      []string{"technique", "youth"},
		},
		{
			ID: "technique-focus", Area: AreaWeeklyPlan, Bucket: BucketGeneral,
			When:      always,
			Severity:  sev(SeverityLow),
			Title:     "Recurring technique work",
			Body:      "Add 15 min of technique 2-3 times per week: kick, alignment, catch.",
			Rationale: why("efficiency in the water"),
			Tags:      []string{"technique"},
		},
		{
			ID: "dryland-strength", Area: AreaWeeklyPlan, Bucket: BucketGeneral,
			When:      always,
			Severity:  sev(SeverityMedium),
			Title:     "Strength out of the water",
			Body:      "20-30 min per week: hip hinge, pull, push, and anti-rotation core.",
			Rationale: why("carries over to the swim"),
			Tags:      []string{"strength", "core"},
		},
	}
}
