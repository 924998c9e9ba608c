// Package model defines the swimmer profile and training session types shared
// by the metrics aggregator, the recommendation engine, and the storage layer.
package model

import "time"

// Category buckets swimmers by competitive level.
type Category string

// Known swimmer categories.
const (
	CategoryBeginner     Category = "beginner"
	CategoryIntermediate Category = "intermediate"
	CategoryAdvanced     Category = "advanced"
	CategoryElite        Category = "elite"
)

// Profile holds a swimmer's personal attributes. Every field except ID and
// Name is optional; absent values are nil pointers or empty strings so that
// downstream consumers can degrade gracefully instead of erroring.
type Profile struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	BirthDate         *time.Time `json:"birth_date,omitempty"`
	HeightCm          *float64   `json:"height_cm,omitempty"`
	WeightKg          *float64   `json:"weight_kg,omitempty"`
	RestingHeartRate  *float64   `json:"resting_heart_rate_bpm,omitempty"`
	Category          Category   `json:"category,omitempty"`
	GeneralGoal       string     `json:"general_goal,omitempty"`
	MedicalConditions string     `json:"medical_conditions,omitempty"`
}

// BMI returns the body mass index, or nil when height or weight is absent or
// non-positive. The result is always finite.
func (p Profile) BMI() *float64 {
	if p.HeightCm == nil || p.WeightKg == nil {
		return nil
	}
	h, w := *p.HeightCm, *p.WeightKg
	if h <= 0 || w <= 0 {
		return nil
	}
	m := h / 100
	bmi := w / (m * m)
	return &bmi
}

// AgeYears returns the swimmer's age in whole years at the given instant, or
// nil when the birth date is absent or implausible (outside 0..129).
func (p Profile) AgeYears(now time.Time) *int {
	if p.BirthDate == nil {
		return nil
	}
	b := *p.BirthDate
	age := now.Year() - b.Year()
	if now.Month() < b.Month() || (now.Month() == b.Month() && now.Day() < b.Day()) {
		age--
	}
	if age < 0 || age >= 130 {
		return nil
	}
	return &age
}

// IsCompetitive reports whether the swimmer trains at a competitive level.
func (p Profile) IsCompetitive() bool {
	return p.Category == CategoryAdvanced || p.Category == CategoryElite
}
