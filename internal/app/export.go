package app

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export sessions as CSV",
	Long: `Write every stored session for the swimmer named by --swimmer as CSV,
to stdout or to the file given by --out. Block structure is flattened into a
compact SERIESxMETERS list.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (default: stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
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

	sessions, err := db.ListRecentSessions(p.ID, 0)
	if err != nil {
		return fmt.Errorf("listing sessions: %w", err)
	}

	var out io.Writer = os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", exportOut, err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	w := csv.NewWriter(out)
	if err := w.Write([]string{
		"start", "kind", "duration_minutes", "distance_meters",
		"rpe", "fatigue", "heart_rate", "notes", "blocks",
	}); err != nil {
		return err
	}

	for _, s := range sessions {
		var blocks []string
		for _, b := range s.Blocks {
			spec := fmt.Sprintf("%dx%d", b.Series, b.MetersPerSerie)
			if b.Style != "" {
				spec = b.Style + ":" + spec
			}
			blocks = append(blocks, spec)
		}

		rpe := ""
		if s.HasRPE() {
			rpe = strconv.Itoa(s.RPE)
		}

		record := []string{
			s.Start().Format("2006-01-02 15:04"),
			string(s.Kind),
			strconv.FormatFloat(s.DurationMinutes, 'f', -1, 64),
			strconv.FormatFloat(s.DistanceMeters(), 'f', -1, 64),
			rpe,
			string(s.Fatigue),
			strconv.FormatFloat(s.HeartRate, 'f', -1, 64),
			s.Notes,
			strings.Join(blocks, " "),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	if exportOut != "" {
		fmt.Printf("Wrote %d sessions to %s\n", len(sessions), exportOut)
	}
	return nil
}
