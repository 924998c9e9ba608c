package model

import (
	"math"
	"testing"
	"time"
)

func fptr(v float64) *float64 { return &v }

func TestProfileBMI(t *testing.T) {
	tests := []struct {
		name   string
		height *float64
		weight *float64
		want   float64 // 0 means nil expected
	}{
		{"both present", fptr(172), fptr(63), 21.30},
		{"missing height", nil, fptr(63), 0},
		{"missing weight", fptr(172), nil, 0},
		{"zero height", fptr(0), fptr(63), 0},
		{"negative weight", fptr(172), fptr(-5), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Profile{HeightCm: tt.height, WeightKg: tt.weight}
			got := p.BMI()
			if tt.want == 0 {
				if got != nil {
					t.Errorf("expected nil BMI, got %v", *got)
				}
				return
			}
			if got == nil {
				t.Fatal("expected a BMI, got nil")
			}
			if math.Abs(*got-tt.want) > 0.01 {
				t.Errorf("BMI = %v, want ~%v", *got, tt.want)
			}
		})
	}
}

func TestProfileAgeYears(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	birth := time.Date(2001, 8, 29, 0, 0, 0, 0, time.UTC)
	p := Profile{BirthDate: &birth}
	if got := p.AgeYears(now); got == nil || *got != 24 {
		t.Errorf("day before the birthday: got %v, want 24", got)
	}

	birth = time.Date(2001, 8, 28, 0, 0, 0, 0, time.UTC)
	if got := p.AgeYears(now); got == nil || *got != 25 {
		t.Errorf("on the birthday: got %v, want 25", got)
	}

	if got := (Profile{}).AgeYears(now); got != nil {
		t.Errorf("missing birth date: got %v, want nil", got)
	}

	future := now.AddDate(1, 0, 0)
	p = Profile{BirthDate: &future}
	if got := p.AgeYears(now); got != nil {
		t.Errorf("future birth date: got %v, want nil", got)
	}

	ancient := time.Date(1880, 1, 1, 0, 0, 0, 0, time.UTC)
	p = Profile{BirthDate: &ancient}
	if got := p.AgeYears(now); got != nil {
		t.Errorf("implausible age: got %v, want nil", got)
	}
}

func TestProfileIsCompetitive(t *testing.T) {
	tests := []struct {
		category Category
		want     bool
	}{
		{CategoryBeginner, false},
		{CategoryIntermediate, false},
		{CategoryAdvanced, true},
		{CategoryElite, true},
		{"", false},
	}
	for _, tt := range tests {
		p := Profile{Category: tt.category}
		if got := p.IsCompetitive(); got != tt.want {
			t.Errorf("IsCompetitive(%q) = %v, want %v", tt.category, got, tt.want)
		}
	}
}
