package metrics

import (
	"math"
	"testing"
	"time"

	"github.com/blackwell-systems/lanewatch/internal/model"
)

var testNow = time.Date(2026, 8, 28, 18, 0, 0, 0, time.UTC)

func daysAgo(days int) int64 {
	return testNow.AddDate(0, 0, -days).UnixMilli()
}

func water(id string, startMs int64, meters, minutes float64, rpe int) model.Session {
	return model.Session{
		ID:              id,
		StartMs:         startMs,
		Kind:            model.KindWater,
		Distance:        meters,
		DurationMinutes: minutes,
		RPE:             rpe,
	}
}

// --- empty input ---

func TestComputeAt_EmptyInput(t *testing.T) {
	m := ComputeAt(model.Profile{}, nil, testNow)

	if m.BMI != nil {
		t.Errorf("expected nil BMI, got %v", *m.BMI)
	}
	if m.AgeYears != nil {
		t.Errorf("expected nil age, got %v", *m.AgeYears)
	}
	if m.DistanceLast7Days != 0 || m.DistancePrior7Days != 0 || m.DistanceTrendPct != 0 {
		t.Error("expected zero distances and trend")
	}
	if m.HasPriorData {
		t.Error("expected HasPriorData false")
	}
	if m.SessionsLast7Days != 0 || m.SessionsLast30Days != 0 {
		t.Error("expected zero session counts")
	}
	if m.AverageRPERecent != 0 {
		t.Errorf("expected zero RPE, got %f", m.AverageRPERecent)
	}
	if m.LatestSession != nil {
		t.Error("expected nil latest session")
	}
	if m.AveragePacePer100m != "" {
		t.Errorf("expected empty pace, got %q", m.AveragePacePer100m)
	}
	if m.ActivityStreakDays != 0 {
		t.Errorf("expected zero streak, got %d", m.ActivityStreakDays)
	}
}

// --- windowing ---

func TestComputeAt_WindowBoundaryExactlySevenDays(t *testing.T) {
	// A session at exactly now-7d belongs to the prior window only.
	sessions := []model.Session{
		water("a", daysAgo(7), 1000, 20, 5),
	}
	m := ComputeAt(model.Profile{}, sessions, testNow)

	if m.DistanceLast7Days != 0 {
		t.Errorf("boundary session leaked into last 7 days: %f", m.DistanceLast7Days)
	}
	if m.DistancePrior7Days != 1000 {
		t.Errorf("expected 1000 in prior window, got %f", m.DistancePrior7Days)
	}
}

func TestComputeAt_NoDoubleCounting(t *testing.T) {
	sessions := []model.Session{
		water("a", daysAgo(3), 2000, 30, 5),
		water("b", daysAgo(10), 1500, 30, 5),
		water("c", daysAgo(20), 3000, 30, 5), // outside both trend windows
	}
	m := ComputeAt(model.Profile{}, sessions, testNow)

	if m.DistanceLast7Days != 2000 {
		t.Errorf("expected 2000 last 7d, got %f", m.DistanceLast7Days)
	}
	if m.DistancePrior7Days != 1500 {
		t.Errorf("expected 1500 prior 7d, got %f", m.DistancePrior7Days)
	}
	if m.SessionsLast7Days != 1 {
		t.Errorf("expected 1 session last 7d, got %d", m.SessionsLast7Days)
	}
	if m.SessionsLast30Days != 3 {
		t.Errorf("expected 3 sessions last 30d, got %d", m.SessionsLast30Days)
	}
}

func TestComputeAt_FutureSessionExcluded(t *testing.T) {
	sessions := []model.Session{
		water("a", testNow.Add(time.Hour).UnixMilli(), 1000, 20, 5),
	}
	m := ComputeAt(model.Profile{}, sessions, testNow)
	if m.SessionsLast7Days != 0 {
		t.Errorf("future session counted: %d", m.SessionsLast7Days)
	}
}

func TestComputeAt_LandSessionContributesNoDistance(t *testing.T) {
	sessions := []model.Session{
		{ID: "a", StartMs: daysAgo(1), Kind: model.KindLand, DurationMinutes: 45},
	}
	m := ComputeAt(model.Profile{}, sessions, testNow)
	if m.DistanceLast7Days != 0 {
		t.Errorf("land session added distance: %f", m.DistanceLast7Days)
	}
	if m.SessionsLast7Days != 1 {
		t.Errorf("land session not counted: %d", m.SessionsLast7Days)
	}
}

// --- trend ---

func TestComputeAt_TrendZeroGuard(t *testing.T) {
	sessions := []model.Session{
		water("a", daysAgo(2), 5000, 60, 6),
	}
	m := ComputeAt(model.Profile{}, sessions, testNow)

	if m.DistanceTrendPct != 0 {
		t.Errorf("expected zero trend with empty baseline, got %f", m.DistanceTrendPct)
	}
	if m.HasPriorData {
		t.Error("expected HasPriorData false with empty baseline")
	}
}

func TestComputeAt_TrendSpike(t *testing.T) {
	sessions := []model.Session{
		water("a", daysAgo(2), 12000, 120, 6),
		water("b", daysAgo(9), 9000, 100, 6),
	}
	m := ComputeAt(model.Profile{}, sessions, testNow)

	if !m.HasPriorData {
		t.Fatal("expected HasPriorData true")
	}
	if math.Abs(m.DistanceTrendPct-33.333) > 0.01 {
		t.Errorf("expected trend ~33.3%%, got %f", m.DistanceTrendPct)
	}
}

// --- RPE ---

func TestComputeAt_AverageRPEOnlyTenMostRecent(t *testing.T) {
	var sessions []model.Session
	// Ten recent sessions with RPE 8, two older ones with RPE 1.
	for i := 0; i < 10; i++ {
		sessions = append(sessions, water("r"+string(rune('a'+i)), daysAgo(i+1), 1000, 20, 8))
	}
	sessions = append(sessions,
		water("old1", daysAgo(20), 1000, 20, 1),
		water("old2", daysAgo(21), 1000, 20, 1),
	)

	m := ComputeAt(model.Profile{}, sessions, testNow)
	if m.AverageRPERecent != 8 {
		t.Errorf("expected average RPE 8 over last ten, got %f", m.AverageRPERecent)
	}
}

func TestComputeAt_AverageRPEMissingCountsZero(t *testing.T) {
	sessions := []model.Session{
		water("a", daysAgo(1), 1000, 20, 8),
		water("b", daysAgo(2), 1000, 20, 0), // no RPE
	}
	m := ComputeAt(model.Profile{}, sessions, testNow)
	if m.AverageRPERecent != 4 {
		t.Errorf("expected average 4, got %f", m.AverageRPERecent)
	}
}

// --- latest session ---

func TestComputeAt_LatestSessionOrderIndependent(t *testing.T) {
	a := water("a", daysAgo(5), 1000, 20, 5)
	b := water("b", daysAgo(1), 2000, 30, 6)
	c := water("c", daysAgo(3), 1500, 25, 5)

	m1 := ComputeAt(model.Profile{}, []model.Session{a, b, c}, testNow)
	m2 := ComputeAt(model.Profile{}, []model.Session{c, a, b}, testNow)

	if m1.LatestSession == nil || m2.LatestSession == nil {
		t.Fatal("expected a latest session")
	}
	if m1.LatestSession.ID != "b" || m2.LatestSession.ID != "b" {
		t.Errorf("expected latest %q in both orders, got %q and %q",
			"b", m1.LatestSession.ID, m2.LatestSession.ID)
	}
}

func TestComputeAt_LatestSessionTieBreaksByID(t *testing.T) {
	ts := daysAgo(1)
	a := water("a", ts, 1000, 20, 5)
	b := water("b", ts, 2000, 30, 6)

	m1 := ComputeAt(model.Profile{}, []model.Session{a, b}, testNow)
	m2 := ComputeAt(model.Profile{}, []model.Session{b, a}, testNow)

	if m1.LatestSession.ID != m2.LatestSession.ID {
		t.Errorf("tie broke differently by input order: %q vs %q",
			m1.LatestSession.ID, m2.LatestSession.ID)
	}
}

func TestComputeAt_DoesNotMutateInput(t *testing.T) {
	sessions := []model.Session{
		water("b", daysAgo(1), 2000, 30, 6),
		water("a", daysAgo(5), 1000, 20, 5),
	}
	_ = ComputeAt(model.Profile{}, sessions, testNow)
	if sessions[0].ID != "b" || sessions[1].ID != "a" {
		t.Error("ComputeAt reordered the input slice")
	}
}

// --- pace ---

func TestFormatPace(t *testing.T) {
	tests := []struct {
		minutes float64
		meters  float64
		want    string
	}{
		{40, 2000, "2:00"},
		{30, 2000, "1:30"},
		{25, 1000, "2:30"},
		{0, 2000, ""},
		{40, 0, ""},
		{10.5, 500, "2:06"},
	}
	for _, tt := range tests {
		if got := FormatPace(tt.minutes, tt.meters); got != tt.want {
			t.Errorf("FormatPace(%v, %v) = %q, want %q", tt.minutes, tt.meters, got, tt.want)
		}
	}
}

func TestComputeAt_PaceOverAllSessions(t *testing.T) {
	sessions := []model.Session{
		water("a", daysAgo(1), 1000, 20, 5),
		water("b", daysAgo(2), 1000, 20, 5),
	}
	m := ComputeAt(model.Profile{}, sessions, testNow)
	if m.AveragePacePer100m != "2:00" {
		t.Errorf("expected pace 2:00, got %q", m.AveragePacePer100m)
	}
}

// --- streak ---

func TestComputeAt_Streak(t *testing.T) {
	sessions := []model.Session{
		water("today", testNow.Add(-2*time.Hour).UnixMilli(), 1000, 20, 5),
		water("yesterday", daysAgo(1), 1000, 20, 5),
		water("gap", daysAgo(3), 1000, 20, 5), // two days ago missing
	}
	m := ComputeAt(model.Profile{}, sessions, testNow)
	if m.ActivityStreakDays != 2 {
		t.Errorf("expected streak 2, got %d", m.ActivityStreakDays)
	}
}

func TestComputeAt_StreakZeroWithoutSessionToday(t *testing.T) {
	sessions := []model.Session{
		water("yesterday", daysAgo(1), 1000, 20, 5),
	}
	m := ComputeAt(model.Profile{}, sessions, testNow)
	if m.ActivityStreakDays != 0 {
		t.Errorf("expected streak 0, got %d", m.ActivityStreakDays)
	}
}

// --- determinism ---

func TestComputeAt_Deterministic(t *testing.T) {
	h, w := 172.0, 63.0
	birth := time.Date(2001, 4, 12, 0, 0, 0, 0, time.UTC)
	profile := model.Profile{Name: "Ana", HeightCm: &h, WeightKg: &w, BirthDate: &birth}
	sessions := []model.Session{
		water("a", daysAgo(1), 2000, 30, 7),
		water("b", daysAgo(9), 1500, 25, 6),
	}

	m1 := ComputeAt(profile, sessions, testNow)
	m2 := ComputeAt(profile, sessions, testNow)

	if *m1.BMI != *m2.BMI || m1.DistanceTrendPct != m2.DistanceTrendPct ||
		m1.AveragePacePer100m != m2.AveragePacePer100m {
		t.Error("identical inputs produced different outputs")
	}
}
