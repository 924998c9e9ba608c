package metrics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/blackwell-systems/lanewatch/internal/model"
)

const dayMs = int64(24 * time.Hour / time.Millisecond)

// Compute derives a Metrics snapshot using the current wall clock.
func Compute(profile model.Profile, sessions []model.Session) Metrics {
	return ComputeAt(profile, sessions, time.Now())
}

// ComputeAt derives a Metrics snapshot relative to the given instant. The
// session slice may arrive in any order and is not modified.
func ComputeAt(profile model.Profile, sessions []model.Session, now time.Time) Metrics {
	m := Metrics{
		BMI:      profile.BMI(),
		AgeYears: profile.AgeYears(now),
	}

	nowMs := now.UnixMilli()

	for _, s := range sessions {
		if s.Kind == model.KindWater {
			d := s.DistanceMeters()
			if inWindow(s.StartMs, nowMs, 7) {
				m.DistanceLast7Days += d
			} else if inWindow(s.StartMs, nowMs, 14) {
				m.DistancePrior7Days += d
			}
		}
		if inWindow(s.StartMs, nowMs, 7) {
			m.SessionsLast7Days++
		}
		if inWindow(s.StartMs, nowMs, 30) {
			m.SessionsLast30Days++
		}
	}

	if m.DistancePrior7Days > 0 {
		m.HasPriorData = true
		m.DistanceTrendPct = (m.DistanceLast7Days - m.DistancePrior7Days) / m.DistancePrior7Days * 100
	}

	recent := sortedByStartDesc(sessions)
	if len(recent) > 0 {
		latest := recent[0]
		m.LatestSession = &latest
	}
	m.AverageRPERecent = averageRPE(recent)
	m.AveragePacePer100m = averagePace(sessions)
	m.ActivityStreakDays = streakDays(sessions, now)

	return m
}

// inWindow reports whether ts falls in the trailing window (now-days, now].
// The left bound is open so that a session exactly N days old belongs to the
// adjacent older window rather than being counted twice.
func inWindow(ts, nowMs int64, days int) bool {
	return ts > nowMs-int64(days)*dayMs && ts <= nowMs
}

// sortedByStartDesc returns a copy of sessions ordered newest first. Ties on
// start time break by ID so the order is stable regardless of input order.
func sortedByStartDesc(sessions []model.Session) []model.Session {
	out := make([]model.Session, len(sessions))
	copy(out, sessions)
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartMs != out[j].StartMs {
			return out[i].StartMs > out[j].StartMs
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// averageRPE computes the mean perceived exertion over the most recent
// min(10, n) sessions. Sessions without a valid RPE contribute zero.
func averageRPE(recent []model.Session) float64 {
	if len(recent) == 0 {
		return 0
	}
	n := len(recent)
	if n > 10 {
		n = 10
	}
	var sum float64
	for _, s := range recent[:n] {
		if s.HasRPE() {
			sum += float64(s.RPE)
		}
	}
	avg := sum / float64(n)
	if math.IsNaN(avg) || math.IsInf(avg, 0) {
		return 0
	}
	return avg
}

// averagePace formats the m:ss pace per 100m over the total water distance
// and total duration of all sessions. Empty when either total is zero.
func averagePace(sessions []model.Session) string {
	var meters, minutes float64
	for _, s := range sessions {
		meters += s.DistanceMeters()
		if s.DurationMinutes > 0 {
			minutes += s.DurationMinutes
		}
	}
	return FormatPace(minutes, meters)
}

// FormatPace renders minutes-per-100m as "m:ss", e.g. 40 min over 2000 m is
// "2:00". Returns "" when either input is zero or negative.
func FormatPace(totalMinutes, totalMeters float64) string {
	if totalMinutes <= 0 || totalMeters <= 0 {
		return ""
	}
	per100 := totalMinutes / (totalMeters / 100)
	mm := int(per100)
	ss := int(math.Round((per100 - float64(mm)) * 60))
	if ss == 60 {
		mm++
		ss = 0
	}
	return fmt.Sprintf("%d:%02d", mm, ss)
}

// streakDays counts consecutive calendar days ending today with at least one
// session. A day without sessions breaks the streak; no session today means
// a streak of zero.
func streakDays(sessions []model.Session, now time.Time) int {
	if len(sessions) == 0 {
		return 0
	}

	days := make(map[string]bool, len(sessions))
	for _, s := range sessions {
		days[s.Start().In(now.Location()).Format("2006-01-02")] = true
	}

	streak := 0
	cursor := now
	for days[cursor.Format("2006-01-02")] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}
