package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level lanewatch configuration.
type Config struct {
	DataDir            string     `mapstructure:"data_dir"`
	RecentSessionLimit int        `mapstructure:"recent_session_limit"`
	Output             Output     `mapstructure:"output"`
	Thresholds         Thresholds `mapstructure:"thresholds"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// Thresholds holds the tunable limits read by the recommendation rules.
type Thresholds struct {
	HeavyWeekMeters    float64 `mapstructure:"heavy_week_meters"`
	HeavyWeekSessions  int     `mapstructure:"heavy_week_sessions"`
	HeavyWeekRPE       float64 `mapstructure:"heavy_week_rpe"`
	HardSessionRPE     int     `mapstructure:"hard_session_rpe"`
	HardSessionMinutes float64 `mapstructure:"hard_session_minutes"`
	HardSessionMeters  float64 `mapstructure:"hard_session_meters"`
	LongSessionMinutes float64 `mapstructure:"long_session_minutes"`
	HighVolumeMeters   float64 `mapstructure:"high_volume_meters"`
	BMIUnderweight     float64 `mapstructure:"bmi_underweight"`
	BMIOverweight      float64 `mapstructure:"bmi_overweight"`
	BMIObese           float64 `mapstructure:"bmi_obese"`
	TrendSpikePct      float64 `mapstructure:"trend_spike_pct"`
	TrendDropPct       float64 `mapstructure:"trend_drop_pct"`
	RestingHRHigh      float64 `mapstructure:"resting_hr_high"`
	SeniorAge          int     `mapstructure:"senior_age"`
	YouthAge           int     `mapstructure:"youth_age"`
	MinTipsPerArea     int     `mapstructure:"min_tips_per_area"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("data_dir", DefaultDataDir)
	v.SetDefault("recent_session_limit", DefaultRecentSessionLimit)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)
	v.SetDefault("thresholds.heavy_week_meters", DefaultThresholds.HeavyWeekMeters)
	v.SetDefault("thresholds.heavy_week_sessions", DefaultThresholds.HeavyWeekSessions)
	v.SetDefault("thresholds.heavy_week_rpe", DefaultThresholds.HeavyWeekRPE)
	v.SetDefault("thresholds.hard_session_rpe", DefaultThresholds.HardSessionRPE)
	v.SetDefault("thresholds.hard_session_minutes", DefaultThresholds.HardSessionMinutes)
	v.SetDefault("thresholds.hard_session_meters", DefaultThresholds.HardSessionMeters)
	v.SetDefault("thresholds.long_session_minutes", DefaultThresholds.LongSessionMinutes)
	v.SetDefault("thresholds.high_volume_meters", DefaultThresholds.HighVolumeMeters)
	v.SetDefault("thresholds.bmi_underweight", DefaultThresholds.BMIUnderweight)
	v.SetDefault("thresholds.bmi_overweight", DefaultThresholds.BMIOverweight)
	v.SetDefault("thresholds.bmi_obese", DefaultThresholds.BMIObese)
	v.SetDefault("thresholds.trend_spike_pct", DefaultThresholds.TrendSpikePct)
	v.SetDefault("thresholds.trend_drop_pct", DefaultThresholds.TrendDropPct)
	v.SetDefault("thresholds.resting_hr_high", DefaultThresholds.RestingHRHigh)
	v.SetDefault("thresholds.senior_age", DefaultThresholds.SeniorAge)
	v.SetDefault("thresholds.youth_age", DefaultThresholds.YouthAge)
	v.SetDefault("thresholds.min_tips_per_area", DefaultThresholds.MinTipsPerArea)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error for problems other than file not found.
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.DataDir = expandPath(cfg.DataDir)

	return &cfg, nil
}

// DBPath returns the full path to the SQLite database.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
