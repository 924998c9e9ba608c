package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/lanewatch/internal/metrics"
	"github.com/blackwell-systems/lanewatch/internal/model"
	"github.com/blackwell-systems/lanewatch/internal/output"
	"github.com/blackwell-systems/lanewatch/internal/tips"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the derived metrics snapshot",
	Long: `Compute and display the swimmer's training metrics: 7-day volume and
trend, session counts, average perceived exertion, activity streak, pace,
and baseline nutrition numbers derived from body weight.`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	name, err := requireSwimmer()
	if err != nil {
		return err
	}

	cfg, db, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	profile, err := db.GetProfileByName(name)
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}
	sessions, err := db.ListRecentSessions(profile.ID, cfg.RecentSessionLimit)
	if err != nil {
		return fmt.Errorf("listing sessions: %w", err)
	}

	m := metrics.Compute(profile, sessions)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	}

	if flagNoColor {
		output.SetNoColor(true)
	}

	renderDashboard(name, profile, m, sessions, tipThresholds(cfg))
	return nil
}

func renderDashboard(name string, profile model.Profile, m metrics.Metrics, sessions []model.Session, t tips.Thresholds) {
	fmt.Println(output.Section("Dashboard: " + name))
	fmt.Println()

	trend := "—"
	if m.HasPriorData {
		trend = output.TrendArrowPercent(m.DistanceTrendPct, true)
	}
	printField("Volume 7d", fmt.Sprintf("%s  %s", output.FormatDistance(m.DistanceLast7Days), trend))
	printField("Sessions 7d / 30d", fmt.Sprintf("%d / %d", m.SessionsLast7Days, m.SessionsLast30Days))
	printField("Avg RPE (recent)", fmt.Sprintf("%.1f", m.AverageRPERecent))
	printField("Streak", fmt.Sprintf("%d days", m.ActivityStreakDays))
	if m.AveragePacePer100m != "" {
		printField("Avg pace", m.AveragePacePer100m+" /100m")
	}
	if m.BMI != nil {
		printField("BMI", fmt.Sprintf("%.1f", *m.BMI))
	}
	if m.AgeYears != nil {
		printField("Age", fmt.Sprintf("%d", *m.AgeYears))
	}

	if spark := waterDistanceSpark(sessions, 8); spark != "" {
		printField("Recent water dist.", spark)
	}

	if last := m.LatestSession; last != nil {
		fmt.Println(output.Section("Last session"))
		fmt.Println()
		printField("Date", last.Start().Format("2006-01-02 15:04"))
		printField("Kind", string(last.Kind))
		printField("Distance", output.FormatDistance(last.DistanceMeters()))
		printField("Duration", output.FormatDuration(last.DurationMinutes))
		if last.HasRPE() {
			printField("RPE", fmt.Sprintf("%d", last.RPE))
		}
		if last.Fatigue != "" {
			printField("Fatigue", string(last.Fatigue))
		}
	}

	renderBaseline(profile, t)
}

// renderBaseline prints daily intake anchors derived from body weight:
// ~30 ml/kg of fluids, 1.4-1.8 g/kg protein, 3-5 g/kg carbs, and an
// optional 3 mg/kg caffeine dose unless cardiac risk suppresses it.
func renderBaseline(profile model.Profile, t tips.Thresholds) {
	if profile.WeightKg == nil || *profile.WeightKg <= 0 {
		return
	}
	kg := *profile.WeightKg

	fmt.Println(output.Section("Daily baseline"))
	fmt.Println()
	printField("Fluids", fmt.Sprintf("%.0f ml", kg*30))
	printField("Protein", fmt.Sprintf("%.0f–%.0f g", kg*1.4, kg*1.8))
	printField("Carbs", fmt.Sprintf("%.0f–%.0f g", kg*3, kg*5))
	if !tips.HasCardiacRisk(profile, t) {
		printField("Caffeine (optional)", fmt.Sprintf("~%.0f mg", kg*3))
	}
}

// waterDistanceSpark renders the distances of the last n water sessions,
// oldest to newest.
func waterDistanceSpark(sessions []model.Session, n int) string {
	var dists []float64
	for _, s := range sessions {
		if s.Kind == model.KindWater {
			dists = append(dists, s.DistanceMeters())
		}
	}
	if len(dists) == 0 {
		return ""
	}
	if len(dists) > n {
		dists = dists[:n]
	}
	// Sessions arrive newest first; flip for a left-to-right timeline.
	for i, j := 0, len(dists)-1; i < j; i, j = i+1, j-1 {
		dists[i], dists[j] = dists[j], dists[i]
	}
	return output.Sparkline(dists)
}
