package model

import "time"

// Kind classifies a training session.
type Kind string

// Session kinds.
const (
	KindWater Kind = "water"
	KindLand  Kind = "land"
	KindOther Kind = "other"
)

// Fatigue is the swimmer's self-reported fatigue after a session.
type Fatigue string

// Fatigue levels.
const (
	FatigueLow    Fatigue = "low"
	FatigueMedium Fatigue = "medium"
	FatigueHigh   Fatigue = "high"
)

// Block is one set within a water session: a number of series swum at a
// fixed distance each, e.g. 8x100 freestyle.
type Block struct {
	Style          string  `json:"style,omitempty"`
	Series         int     `json:"series"`
	MetersPerSerie int     `json:"meters_per_serie"`
	Minutes        float64 `json:"minutes,omitempty"`
}

// Meters returns the total distance covered by the block. Negative inputs
// count as zero.
func (b Block) Meters() float64 {
	if b.Series <= 0 || b.MetersPerSerie <= 0 {
		return 0
	}
	return float64(b.Series * b.MetersPerSerie)
}

// Session is one logged training event. StartMs (Unix epoch milliseconds)
// is the ordering and windowing key. Numeric fields left at zero mean
// "unknown"; the aggregator treats them as neutral rather than rejecting
// the session.
type Session struct {
	ID              string  `json:"id"`
	StartMs         int64   `json:"start_ms"`
	Kind            Kind    `json:"kind"`
	DurationMinutes float64 `json:"duration_minutes,omitempty"`
	Distance        float64 `json:"distance_meters,omitempty"`
	RPE             int     `json:"rpe,omitempty"`
	Fatigue         Fatigue `json:"fatigue,omitempty"`
	HeartRate       float64 `json:"heart_rate,omitempty"`
	Notes           string  `json:"notes,omitempty"`
	Blocks          []Block `json:"blocks,omitempty"`
}

// DistanceMeters returns the session's swim distance. Water sessions use the
// stored distance when positive, otherwise the sum over blocks. Land and
// other sessions always count as zero meters.
func (s Session) DistanceMeters() float64 {
	if s.Kind != KindWater {
		return 0
	}
	if s.Distance > 0 {
		return s.Distance
	}
	var total float64
	for _, b := range s.Blocks {
		total += b.Meters()
	}
	return total
}

// Start returns the session start as a time.Time.
func (s Session) Start() time.Time {
	return time.UnixMilli(s.StartMs)
}

// HasRPE reports whether the session carries a valid perceived exertion
// rating (1..10).
func (s Session) HasRPE() bool {
	return s.RPE >= 1 && s.RPE <= 10
}
