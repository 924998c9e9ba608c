package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/lanewatch/internal/metrics"
	"github.com/blackwell-systems/lanewatch/internal/model"
	"github.com/blackwell-systems/lanewatch/internal/output"
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Summarize every swimmer on file",
	Long: `Compute the metrics snapshot for every stored swimmer and show them
side by side: weekly volume, trend, session counts, average pace, streak.`,
	RunE: runTeam,
}

func init() {
	rootCmd.AddCommand(teamCmd)
}

// teamRow pairs a swimmer with their computed snapshot for rendering.
type teamRow struct {
	Name     string          `json:"name"`
	Category model.Category  `json:"category,omitempty"`
	Metrics  metrics.Metrics `json:"metrics"`
}

func runTeam(cmd *cobra.Command, args []string) error {
	cfg, db, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	profiles, err := db.ListProfiles()
	if err != nil {
		return fmt.Errorf("listing swimmers: %w", err)
	}

	// Each swimmer's snapshot is independent; compute them in parallel.
	rows := make([]teamRow, len(profiles))
	var g errgroup.Group
	for i, p := range profiles {
		g.Go(func() error {
			sessions, err := db.ListRecentSessions(p.ID, cfg.RecentSessionLimit)
			if err != nil {
				return fmt.Errorf("sessions for %s: %w", p.Name, err)
			}
			rows[i] = teamRow{
				Name:     p.Name,
				Category: p.Category,
				Metrics:  metrics.Compute(p, sessions),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	if flagNoColor {
		output.SetNoColor(true)
	}

	if len(rows) == 0 {
		fmt.Println("No swimmers on file. Add one with 'lanewatch profile set'.")
		return nil
	}

	fmt.Println(output.Section(fmt.Sprintf("Team (%d swimmers)", len(rows))))
	fmt.Println()

	table := output.NewTable("Swimmer", "Category", "Vol 7d", "Trend", "Sess 7/30", "Pace", "Streak")
	table.SetAlign(2, output.AlignRight).SetAlign(4, output.AlignRight).SetAlign(6, output.AlignRight)
	for _, r := range rows {
		m := r.Metrics
		trend := "—"
		if m.HasPriorData {
			trend = fmt.Sprintf("%+.0f%%", m.DistanceTrendPct)
		}
		pace := m.AveragePacePer100m
		if pace == "" {
			pace = "—"
		}
		table.AddRow(
			r.Name,
			stringOrDash(string(r.Category)),
			output.FormatDistance(m.DistanceLast7Days),
			trend,
			fmt.Sprintf("%d/%d", m.SessionsLast7Days, m.SessionsLast30Days),
			pace,
			fmt.Sprintf("%dd", m.ActivityStreakDays),
		)
	}
	table.Print()
	return nil
}
