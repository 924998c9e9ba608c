package app

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/lanewatch/internal/model"
	"github.com/blackwell-systems/lanewatch/internal/output"
)

var (
	logKind     string
	logStart    string
	logDuration float64
	logDistance float64
	logRPE      int
	logFatigue  string
	logHR       float64
	logNotes    string
	logBlocks   []string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record a training session",
	Long: `Record one training session for the swimmer named by --swimmer.

Water sessions can carry structured blocks instead of a flat distance:

  lanewatch log --swimmer Ana --kind water --duration 60 --rpe 7 \
      --block free:8x100 --block kick:4x50

Each --block is STYLE:SERIESxMETERS; the session distance is derived as the
sum over blocks unless --distance is given explicitly.`,
	RunE: runLog,
}

func init() {
	logCmd.Flags().StringVar(&logKind, "kind", "water", "Session kind (water, land, other)")
	logCmd.Flags().StringVar(&logStart, "start", "", "Start time (RFC 3339 or 2006-01-02T15:04); default now")
	logCmd.Flags().Float64Var(&logDuration, "duration", 0, "Duration in minutes")
	logCmd.Flags().Float64Var(&logDistance, "distance", 0, "Distance in meters (water sessions)")
	logCmd.Flags().IntVar(&logRPE, "rpe", 0, "Perceived exertion, 1-10")
	logCmd.Flags().StringVar(&logFatigue, "fatigue", "", "Fatigue level (low, medium, high)")
	logCmd.Flags().Float64Var(&logHR, "heart-rate", 0, "Average heart rate in bpm")
	logCmd.Flags().StringVar(&logNotes, "notes", "", "Free-text notes")
	logCmd.Flags().StringArrayVar(&logBlocks, "block", nil, "Water block as STYLE:SERIESxMETERS (repeatable)")
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	name, err := requireSwimmer()
	if err != nil {
		return err
	}

	kind := model.Kind(logKind)
	switch kind {
	case model.KindWater, model.KindLand, model.KindOther:
	default:
		return fmt.Errorf("unknown session kind %q", logKind)
	}

	if logRPE != 0 && (logRPE < 1 || logRPE > 10) {
		return fmt.Errorf("--rpe must be between 1 and 10")
	}

	start := time.Now()
	if logStart != "" {
		start, err = parseStart(logStart)
		if err != nil {
			return fmt.Errorf("parsing --start: %w", err)
		}
	}

	blocks, err := parseBlocks(logBlocks)
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
	if p.ID == "" {
		p.Name = name
		if p, err = db.SaveProfile(p); err != nil {
			return fmt.Errorf("creating profile: %w", err)
		}
	}

	session := model.Session{
		StartMs:         start.UnixMilli(),
		Kind:            kind,
		DurationMinutes: logDuration,
		Distance:        logDistance,
		RPE:             logRPE,
		Fatigue:         model.Fatigue(logFatigue),
		HeartRate:       logHR,
		Notes:           logNotes,
		Blocks:          blocks,
	}

	saved, err := db.InsertSession(p.ID, session)
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	fmt.Printf("Logged %s session for %s: %s, %s\n",
		saved.Kind, name,
		output.FormatDistance(saved.DistanceMeters()),
		output.FormatDuration(saved.DurationMinutes))
	return nil
}

// parseStart accepts RFC 3339 or the shorter local 2006-01-02T15:04 form.
func parseStart(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04", s, time.Local)
}

// parseBlocks parses repeated --block specs of the form STYLE:SERIESxMETERS,
// e.g. "free:8x100". The style part is optional ("8x100" alone works).
func parseBlocks(specs []string) ([]model.Block, error) {
	var blocks []model.Block
	for _, spec := range specs {
		style := ""
		rest := spec
		if i := strings.LastIndex(spec, ":"); i >= 0 {
			style = spec[:i]
			rest = spec[i+1:]
		}

		parts := strings.SplitN(rest, "x", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid --block %q: want STYLE:SERIESxMETERS", spec)
		}
		series, err := strconv.Atoi(parts[0])
		if err != nil || series <= 0 {
			return nil, fmt.Errorf("invalid series count in --block %q", spec)
		}
		meters, err := strconv.Atoi(parts[1])
		if err != nil || meters <= 0 {
			return nil, fmt.Errorf("invalid meters in --block %q", spec)
		}

		blocks = append(blocks, model.Block{
			Style:          style,
			Series:         series,
			MetersPerSerie: meters,
		})
	}
	return blocks, nil
}
