package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/lanewatch/internal/metrics"
	"github.com/blackwell-systems/lanewatch/internal/output"
	"github.com/blackwell-systems/lanewatch/internal/tips"
)

var recommendArea string

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Generate grouped training recommendations",
	Long: `Compute the swimmer's metrics and evaluate the recommendation rule
base against them. Tips come out in two groups: personalized (driven by the
profile — age, goals, medical conditions, body composition) and general
(driven by the training load itself). Every topic area is guaranteed a
minimum number of tips.`,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringVar(&recommendArea, "area", "", "Filter by topic area (e.g. hydration, recovery)")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
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
	engine := tips.NewEngineWithThresholds(tipThresholds(cfg))
	result := engine.Evaluate(profile, m)

	if recommendArea != "" {
		result.Personalized = filterTipsByArea(result.Personalized, recommendArea)
		result.General = filterTipsByArea(result.General, recommendArea)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if flagNoColor {
		output.SetNoColor(true)
	}

	renderBucket("Personalized", result.Personalized)
	renderBucket("General", result.General)
	return nil
}

func filterTipsByArea(list []tips.Tip, area string) []tips.Tip {
	var filtered []tips.Tip
	for _, t := range list {
		if strings.Contains(strings.ToLower(t.Area), strings.ToLower(area)) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

func renderBucket(title string, list []tips.Tip) {
	fmt.Println(output.Section(title + " recommendations"))

	if len(list) == 0 {
		fmt.Println()
		fmt.Println(" Nothing to show here.")
		return
	}

	for _, group := range tips.GroupByArea(list) {
		fmt.Println()
		fmt.Println(" " + output.StyleBold.Render(group.Area))
		for _, t := range group.Tips {
			label := output.SeverityStyle(string(t.Severity)).Render("[" + strings.ToUpper(string(t.Severity)) + "]")
			fmt.Printf("  %s %s\n", label, output.StyleBold.Render(t.Title))
			fmt.Printf("     %s\n", t.Body)
			fmt.Printf("     %s\n", output.StyleMuted.Render(t.Rationale))
		}
	}
}
