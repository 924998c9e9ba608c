package tips

// fallbackAreas fixes the order in which under-quota areas are topped up.
var fallbackAreas = []string{
	AreaPreNutrition,
	AreaPostNutrition,
	AreaDietAdjustment,
	AreaHydration,
	AreaRecovery,
	AreaHealth,
	AreaWeeklyPlan,
}

// fallbackLibrary holds generic, condition-free tips used to top up any area
// that ends an evaluation below the per-area minimum. Entries carry only low
// or medium severity. Their IDs are cloned with a bucket suffix on insertion
// so the same entry may legally serve both buckets.
var fallbackLibrary = map[string][]Tip{
	AreaPreNutrition: {
		{ID: "pre-hydrate", Area: AreaPreNutrition, Title: "Arrive hydrated", Body: "Water or a light drink about 2 h before the session.", Rationale: "supports plasma volume", Severity: SeverityLow, Tags: []string{"water"}},
		{ID: "pre-routine", Area: AreaPreNutrition, Title: "Repeat what works", Body: "Stick to pre-training foods you have already tested; race day is not the moment to experiment.", Rationale: "predictable digestion", Severity: SeverityLow, Tags: []string{"routine"}},
		{ID: "pre-timing", Area: AreaPreNutrition, Title: "Time the last meal", Body: "Finish the last full meal 2-3 h before jumping in; closer to the session, keep it small.", Rationale: "comfort in the water", Severity: SeverityMedium, Tags: []string{"timing"}},
	},
	AreaPostNutrition: {
		{ID: "post-snack-60", Area: AreaPostNutrition, Title: "Snack within 30-60 min", Body: "If a full meal is far off, a milk or soy shake with fruit bridges the gap.", Rationale: "keep the recovery window", Severity: SeverityMedium, Tags: []string{"snack"}},
		{ID: "post-real-food", Area: AreaPostNutrition, Title: "Prefer real food", Body: "Supplements are optional; a normal meal with carbs and protein covers recovery for most sessions.", Rationale: "simplicity first", Severity: SeverityLow, Tags: []string{"basics"}},
		{ID: "post-plan-ahead", Area: AreaPostNutrition, Title: "Pack recovery food", Body: "Leave a shelf-stable snack in your swim bag so late sessions never end on an empty stomach.", Rationale: "adherence", Severity: SeverityLow, Tags: []string{"plan"}},
	},
	AreaDietAdjustment: {
		{ID: "meal-prep", Area: AreaDietAdjustment, Title: "Simple meal prep", Body: "Plan 2-3 base combos: rice or quinoa, chicken or eggs, salad.", Rationale: "adherence", Severity: SeverityLow, Tags: []string{"plan"}},
		{ID: "plate-method", Area: AreaDietAdjustment, Title: "Use the plate method", Body: "Half vegetables, a quarter protein, a quarter carbs; scale the carb quarter with training volume.", Rationale: "portion control without counting", Severity: SeverityLow, Tags: []string{"portions"}},
		{ID: "regular-meals", Area: AreaDietAdjustment, Title: "Keep regular meal times", Body: "Consistent meal timing steadies energy across training days.", Rationale: "stable energy", Severity: SeverityLow, Tags: []string{"routine"}},
	},
	AreaHydration: {
		{ID: "urine-check", Area: AreaHydration, Title: "Urine color check", Body: "Pale (1-3) means hydration is fine; darker (4-6) means drink more.", Rationale: "self-monitoring", Severity: SeverityLow, Tags: []string{"check"}},
		{ID: "bottle-on-deck", Area: AreaHydration, Title: "Bottle on the pool deck", Body: "Keep a bottle at the end of the lane; you still sweat in the water.", Rationale: "habit building", Severity: SeverityLow, Tags: []string{"habit"}},
		{ID: "daily-baseline", Area: AreaHydration, Title: "Daily fluid baseline", Body: "Roughly 30 ml per kg of body weight per day, more in hot weather.", Rationale: "baseline intake", Severity: SeverityMedium, Tags: []string{"water"}},
	},
	AreaRecovery: {
		{ID: "breathing-downshift", Area: AreaRecovery, Title: "Long-exhale breathing", Body: "5 min of extended exhales after training to downshift the nervous system.", Rationale: "stress regulation", Severity: SeverityLow, Tags: []string{"stress"}},
		{ID: "easy-day-honest", Area: AreaRecovery, Title: "Keep easy days easy", Body: "Recovery swims should feel genuinely easy; pace discipline there protects the hard days.", Rationale: "load distribution", Severity: SeverityLow, Tags: []string{"pacing"}},
		{ID: "screen-curfew", Area: AreaRecovery, Title: "Screen curfew", Body: "Park screens 30-60 min before bed on training days to protect sleep quality.", Rationale: "sleep quality", Severity: SeverityLow, Tags: []string{"sleep"}},
	},
	AreaHealth: {
		{ID: "pain-scale", Area: AreaHealth, Title: "Use a pain scale", Body: "If pain reaches 5/10 while swimming, cut volume and get it checked.", Rationale: "stop problems early", Severity: SeverityMedium, Tags: []string{"pain"}},
		{ID: "sun-skin", Area: AreaHealth, Title: "Skin and sun care", Body: "Outdoor pools: waterproof sunscreen and rinse chlorine off after every session.", Rationale: "skin health", Severity: SeverityLow, Tags: []string{"skin"}},
		{ID: "ear-care", Area: AreaHealth, Title: "Ear care", Body: "Dry ears after swimming and consider drops if you are prone to swimmer's ear.", Rationale: "infection prevention", Severity: SeverityLow, Tags: []string{"ears"}},
	},
	AreaWeeklyPlan: {
		{ID: "rest-day", Area: AreaWeeklyPlan, Title: "A real day off", Body: "One day per week with no training load: sleep, an easy walk, leisure.", Rationale: "supercompensation", Severity: SeverityLow, Tags: []string{"rest"}},
		{ID: "log-sessions", Area: AreaWeeklyPlan, Title: "Log every session", Body: "Recording distance, duration, and RPE is what makes the rest of the plan steerable.", Rationale: "visibility of the load", Severity: SeverityLow, Tags: []string{"logging"}},
		{ID: "mix-strokes", Area: AreaWeeklyPlan, Title: "Mix strokes weekly", Body: "Rotate secondary strokes into easy sets to balance shoulder load.", Rationale: "balanced load", Severity: SeverityLow, Tags: []string{"variety"}},
	},
}
