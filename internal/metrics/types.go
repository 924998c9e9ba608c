// Package metrics derives windowed training metrics from a swimmer's profile
// and logged sessions. Computation is pure: identical inputs produce identical
// outputs, inputs are never mutated, and insufficient data degrades to zeroed
// or nil fields instead of errors.
package metrics

import "github.com/blackwell-systems/lanewatch/internal/model"

// Metrics is the derived snapshot for one swimmer. It is recomputed from
// scratch on every call and carries no incremental state.
type Metrics struct {
	// BMI is nil when height or weight is missing or non-positive.
	BMI *float64 `json:"bmi"`

	// AgeYears is nil when the birth date is missing or implausible.
	AgeYears *int `json:"age_years"`

	// DistanceLast7Days sums water distance over the trailing 7-day window.
	DistanceLast7Days float64 `json:"distance_last_7_days"`

	// DistancePrior7Days sums water distance over the window 14..7 days back.
	// It exists only as the trend baseline.
	DistancePrior7Days float64 `json:"distance_prior_7_days"`

	// DistanceTrendPct is the percentage change between the two windows,
	// 0 when the baseline is zero.
	DistanceTrendPct float64 `json:"distance_trend_pct"`

	// HasPriorData records whether the trend baseline was non-zero.
	HasPriorData bool `json:"has_prior_data"`

	// SessionsLast7Days counts sessions of any kind in the last 7 days.
	SessionsLast7Days int `json:"sessions_last_7_days"`

	// SessionsLast30Days counts sessions of any kind in the last 30 days.
	SessionsLast30Days int `json:"sessions_last_30_days"`

	// AverageRPERecent is the mean perceived exertion over the most recent
	// min(10, n) sessions, 0 when none carry an RPE.
	AverageRPERecent float64 `json:"average_rpe_recent"`

	// LatestSession is the session with the greatest start time, nil when
	// no sessions exist.
	LatestSession *model.Session `json:"latest_session"`

	// AveragePacePer100m is the m:ss pace over all water distance and all
	// session duration, empty when either total is zero.
	AveragePacePer100m string `json:"average_pace_per_100m"`

	// ActivityStreakDays counts consecutive calendar days ending today with
	// at least one session.
	ActivityStreakDays int `json:"activity_streak_days"`
}
