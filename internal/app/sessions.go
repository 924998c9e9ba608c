package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/lanewatch/internal/model"
	"github.com/blackwell-systems/lanewatch/internal/output"
)

var (
	sessionsKind  string
	sessionsLimit int
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recent training sessions",
	RunE:  runSessions,
}

func init() {
	sessionsCmd.Flags().StringVar(&sessionsKind, "kind", "", "Filter by kind (water, land, other)")
	sessionsCmd.Flags().IntVar(&sessionsLimit, "limit", 20, "Maximum number of sessions to show")
	rootCmd.AddCommand(sessionsCmd)
}

func runSessions(cmd *cobra.Command, args []string) error {
	name, err := requireSwimmer()
	if err != nil {
		return err
	}

	_, db, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	p, err := db.GetProfileByName(name)
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	sessions, err := db.ListRecentSessions(p.ID, sessionsLimit)
	if err != nil {
		return fmt.Errorf("listing sessions: %w", err)
	}

	if sessionsKind != "" {
		sessions = filterByKind(sessions, model.Kind(sessionsKind))
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sessions)
	}

	if flagNoColor {
		output.SetNoColor(true)
	}

	if len(sessions) == 0 {
		fmt.Printf("No sessions for %s yet. Log one with 'lanewatch log'.\n", name)
		return nil
	}

	fmt.Println(output.Section(fmt.Sprintf("Sessions: %s (%d)", name, len(sessions))))
	fmt.Println()

	table := output.NewTable("Date", "Kind", "Distance", "Duration", "RPE", "Fatigue", "Notes")
	table.SetAlign(2, output.AlignRight).SetAlign(3, output.AlignRight).SetAlign(4, output.AlignRight)
	for _, s := range sessions {
		rpe := "—"
		if s.HasRPE() {
			rpe = fmt.Sprintf("%d", s.RPE)
		}
		table.AddRow(
			s.Start().Format("2006-01-02 15:04"),
			string(s.Kind),
			output.FormatDistance(s.DistanceMeters()),
			output.FormatDuration(s.DurationMinutes),
			rpe,
			stringOrDash(string(s.Fatigue)),
			truncate(s.Notes, 32),
		)
	}
	table.Print()
	return nil
}

func filterByKind(sessions []model.Session, kind model.Kind) []model.Session {
	var filtered []model.Session
	for _, s := range sessions {
		if s.Kind == kind {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
