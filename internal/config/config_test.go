package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing config file should not error: %v", err)
	}
	if cfg.RecentSessionLimit != DefaultRecentSessionLimit {
		t.Errorf("RecentSessionLimit = %d, want %d", cfg.RecentSessionLimit, DefaultRecentSessionLimit)
	}
	if cfg.Thresholds.HeavyWeekMeters != DefaultThresholds.HeavyWeekMeters {
		t.Errorf("HeavyWeekMeters = %v, want %v", cfg.Thresholds.HeavyWeekMeters, DefaultThresholds.HeavyWeekMeters)
	}
	if cfg.Thresholds.MinTipsPerArea != DefaultThresholds.MinTipsPerArea {
		t.Errorf("MinTipsPerArea = %d, want %d", cfg.Thresholds.MinTipsPerArea, DefaultThresholds.MinTipsPerArea)
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
data_dir: ` + dir + `
recent_session_limit: 10
thresholds:
  heavy_week_meters: 6000
  trend_spike_pct: 15
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}
	if cfg.RecentSessionLimit != 10 {
		t.Errorf("RecentSessionLimit = %d, want 10", cfg.RecentSessionLimit)
	}
	if cfg.Thresholds.HeavyWeekMeters != 6000 {
		t.Errorf("HeavyWeekMeters = %v, want 6000", cfg.Thresholds.HeavyWeekMeters)
	}
	if cfg.Thresholds.TrendSpikePct != 15 {
		t.Errorf("TrendSpikePct = %v, want 15", cfg.Thresholds.TrendSpikePct)
	}
	// Untouched keys keep their defaults.
	if cfg.Thresholds.BMIObese != DefaultThresholds.BMIObese {
		t.Errorf("BMIObese = %v, want default %v", cfg.Thresholds.BMIObese, DefaultThresholds.BMIObese)
	}
	if cfg.DBPath() != filepath.Join(dir, DefaultDBName) {
		t.Errorf("DBPath = %q", cfg.DBPath())
	}
}
