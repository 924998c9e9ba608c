package tips

import (
	"reflect"
	"strings"
	"testing"

	"github.com/blackwell-systems/lanewatch/internal/metrics"
	"github.com/blackwell-systems/lanewatch/internal/model"
)

func allAreas() []string {
	return []string{
		AreaPreNutrition, AreaPostNutrition, AreaDietAdjustment,
		AreaHydration, AreaRecovery, AreaHealth, AreaWeeklyPlan,
	}
}

func countByArea(list []Tip) map[string]int {
	counts := make(map[string]int)
	for _, t := range list {
		counts[t.Area]++
	}
	return counts
}

func hasTip(list []Tip, id string) bool {
	for _, t := range list {
		if t.ID == id {
			return true
		}
	}
	return false
}

func findTip(t *testing.T, list []Tip, id string) Tip {
	t.Helper()
	for _, tip := range list {
		if tip.ID == id {
			return tip
		}
	}
	t.Fatalf("tip %q not found", id)
	return Tip{}
}

func TestEvaluate_QuotaMetOnEmptyInput(t *testing.T) {
	res := NewEngine().Evaluate(model.Profile{}, metrics.Metrics{})

	for _, bucket := range []struct {
		name string
		tips []Tip
	}{
		{"personalized", res.Personalized},
		{"general", res.General},
	} {
		counts := countByArea(bucket.tips)
		for _, area := range allAreas() {
			if counts[area] < DefaultThresholds().MinTipsPerArea {
				t.Errorf("%s bucket has %d tips for %q, want at least %d",
					bucket.name, counts[area], area, DefaultThresholds().MinTipsPerArea)
			}
		}
	}
}

func TestEvaluate_NoDuplicateIDsAcrossBuckets(t *testing.T) {
	h, w := 172.0, 90.0
	bmi := w / (1.72 * 1.72)
	profile := model.Profile{
		Name:              "Leo",
		HeightCm:          &h,
		WeightKg:          &w,
		MedicalConditions: "shoulder pain, hipertensión",
		GeneralGoal:       "lose weight and compete",
		Category:          model.CategoryElite,
	}
	m := metrics.Metrics{
		BMI:                &bmi,
		DistanceLast7Days:  12000,
		DistancePrior7Days: 9000,
		DistanceTrendPct:   33.3,
		HasPriorData:       true,
		SessionsLast7Days:  6,
		AverageRPERecent:   8.5,
		LatestSession: &model.Session{
			ID: "s1", Kind: model.KindWater, RPE: 9,
			DurationMinutes: 90, Distance: 3500,
		},
	}

	res := NewEngine().Evaluate(profile, m)

	seen := make(map[string]bool)
	for _, tip := range append(res.Personalized, res.General...) {
		if seen[tip.ID] {
			t.Errorf("duplicate tip ID %q", tip.ID)
		}
		seen[tip.ID] = true
	}
}

func TestEvaluate_FallbackIDsCarryBucketSuffix(t *testing.T) {
	res := NewEngine().Evaluate(model.Profile{}, metrics.Metrics{})

	// Nothing personalized fires on an empty profile, so that bucket is
	// fallback only.
	for _, tip := range res.Personalized {
		if !strings.HasSuffix(tip.ID, "-personalized") {
			t.Errorf("fallback tip %q missing bucket suffix", tip.ID)
		}
		if tip.Severity == SeverityHigh {
			t.Errorf("fallback tip %q has high severity", tip.ID)
		}
	}
}

func TestEvaluate_HeavyWeekScenario(t *testing.T) {
	m := metrics.Metrics{
		DistanceLast7Days: 9000,
		SessionsLast7Days: 5,
		AverageRPERecent:  8,
		LatestSession: &model.Session{
			ID: "s1", Kind: model.KindWater, RPE: 9,
			DurationMinutes: 90, Distance: 3000,
		},
	}
	res := NewEngine().Evaluate(model.Profile{}, m)

	carb := findTip(t, res.General, "pre-carb")
	if carb.Severity != SeverityHigh {
		t.Errorf("pre-carb severity = %q, want high", carb.Severity)
	}
	if !hasTip(res.General, "electrolytes") {
		t.Error("expected electrolytes tip for a long hard session")
	}
	if !hasTip(res.General, "active-recovery") {
		t.Error("expected active-recovery tip after a hard session")
	}
	if hasTip(res.General, "pre-light") {
		t.Error("pre-light should not fire in a heavy week")
	}
	if hasTip(res.General, "post-stretching") {
		t.Error("post-stretching should yield to active recovery after a hard session")
	}
	// No cardiac risk, so caffeine stays available.
	if !hasTip(res.General, "caffeine") {
		t.Error("expected caffeine tip without cardiac risk")
	}
}

func TestEvaluate_HypertensionSuppressesCaffeine(t *testing.T) {
	profile := model.Profile{MedicalConditions: "Hipertensión controlada"}
	res := NewEngine().Evaluate(profile, metrics.Metrics{})

	if hasTip(res.General, "caffeine") {
		t.Error("caffeine tip must not fire with a hypertension condition")
	}
	hr := findTip(t, res.Personalized, "heart-rate-monitor")
	if hr.Severity != SeverityHigh {
		t.Errorf("heart-rate-monitor severity = %q, want high", hr.Severity)
	}
	if hr.Rationale != "cardiovascular history" {
		t.Errorf("unexpected rationale %q", hr.Rationale)
	}
}

func TestEvaluate_ElevatedRestingHeartRate(t *testing.T) {
	hr := 85.0
	profile := model.Profile{RestingHeartRate: &hr}
	res := NewEngine().Evaluate(profile, metrics.Metrics{})

	if hasTip(res.General, "caffeine") {
		t.Error("caffeine tip must not fire with an elevated resting heart rate")
	}
	tip := findTip(t, res.Personalized, "heart-rate-monitor")
	if tip.Rationale != "elevated resting heart rate" {
		t.Errorf("unexpected rationale %q", tip.Rationale)
	}
}

func TestEvaluate_TrendRules(t *testing.T) {
	spike := metrics.Metrics{HasPriorData: true, DistanceTrendPct: 33.3}
	res := NewEngine().Evaluate(model.Profile{}, spike)
	if !hasTip(res.Personalized, "progression-caution") {
		t.Error("expected progression-caution on a volume spike")
	}

	drop := metrics.Metrics{HasPriorData: true, DistanceTrendPct: -20}
	res = NewEngine().Evaluate(model.Profile{}, drop)
	if !hasTip(res.Personalized, "regression-caution") {
		t.Error("expected regression-caution on a volume drop")
	}

	// A spike without a baseline week is not a spike.
	noBase := metrics.Metrics{HasPriorData: false, DistanceTrendPct: 0}
	res = NewEngine().Evaluate(model.Profile{}, noBase)
	if hasTip(res.Personalized, "progression-caution") {
		t.Error("progression-caution fired without prior data")
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	profile := model.Profile{GeneralGoal: "build endurance", Category: model.CategoryAdvanced}
	m := metrics.Metrics{DistanceLast7Days: 5000, SessionsLast7Days: 3}

	r1 := NewEngine().Evaluate(profile, m)
	r2 := NewEngine().Evaluate(profile, m)
	if !reflect.DeepEqual(r1, r2) {
		t.Error("identical inputs produced different results")
	}
}

func TestEvaluate_BucketsGroupedByArea(t *testing.T) {
	res := NewEngine().Evaluate(model.Profile{}, metrics.Metrics{})

	seenAreas := make(map[string]bool)
	last := ""
	for _, tip := range res.General {
		if tip.Area != last {
			if seenAreas[tip.Area] {
				t.Fatalf("area %q appears in two separate runs", tip.Area)
			}
			seenAreas[tip.Area] = true
			last = tip.Area
		}
	}
}

func TestGroupByArea(t *testing.T) {
	list := []Tip{
		{ID: "a", Area: AreaHydration},
		{ID: "b", Area: AreaRecovery},
		{ID: "c", Area: AreaHydration},
	}
	groups := GroupByArea(list)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Area != AreaHydration || len(groups[0].Tips) != 2 {
		t.Errorf("unexpected first group: %+v", groups[0])
	}
	if groups[1].Area != AreaRecovery || len(groups[1].Tips) != 1 {
		t.Errorf("unexpected second group: %+v", groups[1])
	}
}
