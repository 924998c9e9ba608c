// Package config provides configuration loading and defaults for lanewatch.
package config

// DefaultDataDir is the default location for the lanewatch database.
const DefaultDataDir = "~/.local/share/lanewatch"

// DefaultConfigDir is the default location for lanewatch configuration.
const DefaultConfigDir = "~/.config/lanewatch"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "lanewatch.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultRecentSessionLimit caps how many recent sessions feed the metrics
// aggregator. The engine tolerates any count; the cap just bounds reads.
const DefaultRecentSessionLimit = 30

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}

// DefaultThresholds holds the stock rule thresholds. The numbers mirror the
// built-in rule base: a heavy week is 8 km, 4 sessions, or average RPE 7; a
// hard session is RPE 8, 75 min, or 2.5 km.
var DefaultThresholds = Thresholds{
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
