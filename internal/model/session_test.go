package model

import "testing"

func TestSessionDistanceMeters(t *testing.T) {
	tests := []struct {
		name string
		s    Session
		want float64
	}{
		{
			name: "stored distance wins",
			s: Session{Kind: KindWater, Distance: 2000, Blocks: []Block{
				{Series: 8, MetersPerSerie: 100},
			}},
			want: 2000,
		},
		{
			name: "blocks sum when distance absent",
			s: Session{Kind: KindWater, Blocks: []Block{
				{Style: "freestyle", Series: 8, MetersPerSerie: 100},
				{Style: "backstroke", Series: 4, MetersPerSerie: 50},
			}},
			want: 1000,
		},
		{
			name: "land session counts zero",
			s:    Session{Kind: KindLand, Distance: 5000},
			want: 0,
		},
		{
			name: "malformed block ignored",
			s: Session{Kind: KindWater, Blocks: []Block{
				{Series: -2, MetersPerSerie: 100},
				{Series: 4, MetersPerSerie: 100},
			}},
			want: 400,
		},
		{
			name: "empty water session",
			s:    Session{Kind: KindWater},
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.DistanceMeters(); got != tt.want {
				t.Errorf("DistanceMeters() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSessionHasRPE(t *testing.T) {
	tests := []struct {
		rpe  int
		want bool
	}{
		{0, false}, {1, true}, {10, true}, {11, false}, {-3, false},
	}
	for _, tt := range tests {
		s := Session{RPE: tt.rpe}
		if got := s.HasRPE(); got != tt.want {
			t.Errorf("HasRPE() with %d = %v, want %v", tt.rpe, got, tt.want)
		}
	}
}
