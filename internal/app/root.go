// Package app contains the Cobra command tree for lanewatch.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/lanewatch/internal/config"
	"github.com/blackwell-systems/lanewatch/internal/store"
	"github.com/blackwell-systems/lanewatch/internal/tips"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagConfig  string
	flagSwimmer string
)

var rootCmd = &cobra.Command{
	Use:   "lanewatch",
	Short: "Training analytics and recommendations for swimmers",
	Long: `lanewatch tracks swim training sessions, derives windowed performance
metrics (volume, trend, pace, streaks, perceived exertion), and turns them
into personalized, severity-tagged recommendations.

Run 'lanewatch' with no arguments to see the available commands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("lanewatch", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  profile    Manage a swimmer's profile")
		fmt.Println("  log        Record a training session")
		fmt.Println("  sessions   List recent training sessions")
		fmt.Println("  dashboard  Show the derived metrics snapshot")
		fmt.Println("  recommend  Generate grouped training recommendations")
		fmt.Println("  team       Summarize every swimmer on file")
		fmt.Println("  export     Export sessions as CSV")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/lanewatch/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&flagSwimmer, "swimmer", "", "Swimmer name the command applies to")
}

// openStore loads config and opens the database. Callers must Close the DB.
func openStore() (*config.Config, *store.DB, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	db, err := store.Open(cfg.DBPath())
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return cfg, db, nil
}

// requireSwimmer returns the --swimmer flag value or an error.
func requireSwimmer() (string, error) {
	if flagSwimmer == "" {
		return "", fmt.Errorf("--swimmer is required")
	}
	return flagSwimmer, nil
}

// tipThresholds maps configured thresholds onto the engine's.
func tipThresholds(cfg *config.Config) tips.Thresholds {
	t := cfg.Thresholds
	return tips.Thresholds{
		HeavyWeekMeters:    t.HeavyWeekMeters,
		HeavyWeekSessions:  t.HeavyWeekSessions,
		HeavyWeekRPE:       t.HeavyWeekRPE,
		HardSessionRPE:     t.HardSessionRPE,
		HardSessionMinutes: t.HardSessionMinutes,
		HardSessionMeters:  t.HardSessionMeters,
		LongSessionMinutes: t.LongSessionMinutes,
		HighVolumeMeters:   t.HighVolumeMeters,
		BMIUnderweight:     t.BMIUnderweight,
		BMIOverweight:      t.BMIOverweight,
		BMIObese:           t.BMIObese,
		TrendSpikePct:      t.TrendSpikePct,
		TrendDropPct:       t.TrendDropPct,
		RestingHRHigh:      t.RestingHRHigh,
		SeniorAge:          t.SeniorAge,
		YouthAge:           t.YouthAge,
		MinTipsPerArea:     t.MinTipsPerArea,
	}
}
