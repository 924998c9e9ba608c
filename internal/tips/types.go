// Package tips provides the recommendation engine and its rule types.
package tips

import (
	"strings"

	"github.com/blackwell-systems/lanewatch/internal/metrics"
	"github.com/blackwell-systems/lanewatch/internal/model"
)

// Severity is the qualitative urgency of a tip, used by the presentation
// layer for styling and ordering.
type Severity string

// Severity levels.
const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Bucket separates profile-driven tips from session-driven ones.
type Bucket string

// Buckets.
const (
	BucketPersonalized Bucket = "personalized"
	BucketGeneral      Bucket = "general"
)

// Topic areas. The fallback library guarantees a minimum per area, so every
// area listed here always appears in the output.
const (
	AreaPreNutrition   = "pre-session nutrition"
	AreaPostNutrition  = "post-session nutrition"
	AreaDietAdjustment = "diet adjustment"
	AreaHydration      = "hydration"
	AreaRecovery       = "recovery"
	AreaHealth         = "health"
	AreaWeeklyPlan     = "weekly plan"
)

// Tip is one actionable recommendation. Tips are immutable values; the ID is
// the deduplication key across both buckets of a single evaluation.
type Tip struct {
	ID        string   `json:"id"`
	Area      string   `json:"area"`
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	Rationale string   `json:"rationale"`
	Severity  Severity `json:"severity"`
	Tags      []string `json:"tags,omitempty"`
}

// Result groups the fired tips by bucket. Within each bucket tips are grouped
// by area in first-seen order.
type Result struct {
	Personalized []Tip `json:"personalized"`
	General      []Tip `json:"general"`
}

// Bucket returns the tips for the given bucket.
func (r Result) Bucket(b Bucket) []Tip {
	if b == BucketPersonalized {
		return r.Personalized
	}
	return r.General
}

// AreaGroup is a run of tips sharing an area, in bucket order.
type AreaGroup struct {
	Area string
	Tips []Tip
}

// GroupByArea splits a bucket's tips into per-area groups, preserving
// first-seen area order.
func GroupByArea(list []Tip) []AreaGroup {
	index := make(map[string]int)
	var groups []AreaGroup
	for _, t := range list {
		i, ok := index[t.Area]
		if !ok {
			i = len(groups)
			index[t.Area] = i
			groups = append(groups, AreaGroup{Area: t.Area})
		}
		groups[i].Tips = append(groups[i].Tips, t)
	}
	return groups
}

// Rule is one declarative row of the rule base: a predicate over the
// evaluation context plus a tip template. Adding a recommendation means
// adding a row, not a branch.
type Rule struct {
	ID        string
	Area      string
	Bucket    Bucket
	When      func(*Context) bool
	Severity  func(*Context) Severity
	Title     string
	Body      string
	Rationale func(*Context) string
	Tags      []string
}

// Context carries the profile, the metrics snapshot, the active thresholds,
// and a handful of composite flags precomputed once per evaluation so that
// individual predicates stay one-liners.
type Context struct {
	Profile model.Profile
	Metrics metrics.Metrics
	T       Thresholds

	// HeavyWeek is true when weekly distance, session count, or recent RPE
	// crosses the heavy-load thresholds.
	HeavyWeek bool

	// HardLastSession is true when the most recent session was long, far,
	// high-RPE, or high-fatigue.
	HardLastSession bool

	// CardiacRisk is true on a cardiac or hypertension keyword in the
	// medical conditions, or an elevated resting heart rate. It suppresses
	// stimulant tips regardless of load.
	CardiacRisk bool

	conditions string
	goal       string
}

func newContext(p model.Profile, m metrics.Metrics, t Thresholds) *Context {
	c := &Context{
		Profile:    p,
		Metrics:    m,
		T:          t,
		conditions: strings.ToLower(p.MedicalConditions),
		goal:       strings.ToLower(p.GeneralGoal),
	}

	c.HeavyWeek = m.DistanceLast7Days >= t.HeavyWeekMeters ||
		m.SessionsLast7Days >= t.HeavyWeekSessions ||
		m.AverageRPERecent >= t.HeavyWeekRPE

	if last := m.LatestSession; last != nil {
		c.HardLastSession = last.RPE >= t.HardSessionRPE ||
			last.Fatigue == model.FatigueHigh ||
			last.DurationMinutes >= t.HardSessionMinutes ||
			last.DistanceMeters() >= t.HardSessionMeters
	}

	c.CardiacRisk = HasCardiacRisk(p, t)

	return c
}

// HasCardiacRisk reports whether the profile carries a cardiac or
// hypertension keyword in its medical conditions, or an elevated resting
// heart rate. Stimulant tips are suppressed while this holds.
func HasCardiacRisk(p model.Profile, t Thresholds) bool {
	if containsAny(strings.ToLower(p.MedicalConditions), []string{"cardi", "hipertens", "hypertens"}) {
		return true
	}
	return p.RestingHeartRate != nil && *p.RestingHeartRate >= t.RestingHRHigh
}

// HasCondition reports whether the medical conditions text contains any of
// the given keywords, case-insensitively.
func (c *Context) HasCondition(keywords ...string) bool {
	return containsAny(c.conditions, keywords)
}

// GoalMentions reports whether the general goal text contains any of the
// given keywords, case-insensitively.
func (c *Context) GoalMentions(keywords ...string) bool {
	return containsAny(c.goal, keywords)
}

// BMIBetween reports whether BMI is known and in [lo, hi). A negative hi
// means no upper bound.
func (c *Context) BMIBetween(lo, hi float64) bool {
	if c.Metrics.BMI == nil {
		return false
	}
	v := *c.Metrics.BMI
	return v >= lo && (hi < 0 || v < hi)
}

// AgeAtLeast reports whether age is known and >= years.
func (c *Context) AgeAtLeast(years int) bool {
	return c.Metrics.AgeYears != nil && *c.Metrics.AgeYears >= years
}

// AgeAtMost reports whether age is known and <= years.
func (c *Context) AgeAtMost(years int) bool {
	return c.Metrics.AgeYears != nil && *c.Metrics.AgeYears <= years
}

func containsAny(s string, keywords []string) bool {
	if s == "" {
		return false
	}
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// Thresholds are the tunable limits the rule base reads. Zero values are not
// meaningful; use DefaultThresholds as the base and override from config.
type Thresholds struct {
	HeavyWeekMeters    float64
	HeavyWeekSessions  int
	HeavyWeekRPE       float64
	HardSessionRPE     int
	HardSessionMinutes float64
	HardSessionMeters  float64
	LongSessionMinutes float64
	HighVolumeMeters   float64
	BMIUnderweight     float64
	BMIOverweight      float64
	BMIObese           float64
	TrendSpikePct      float64
	TrendDropPct       float64
	RestingHRHigh      float64
	SeniorAge          int
	YouthAge           int
	MinTipsPerArea     int
}

// DefaultThresholds returns the stock rule thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		HeavyWeekMeters:    8000,
		HeavyWeekSessions:  4,
		HeavyWeekRPE:       7,
		HardSessionRPE:     8,
		HardSessionMinutes: 75,
		HardSessionMeters:  2500,
		LongSessionMinutes: 60,
		HighVolumeMeters:   10000,
		BMIUnderweight:     18.5,
		BMIOverweight:      25,
		BMIObese:           30,
		TrendSpikePct:      20,
		TrendDropPct:       -15,
		RestingHRHigh:      80,
		SeniorAge:          40,
		YouthAge:           18,
		MinTipsPerArea:     3,
	}
}
