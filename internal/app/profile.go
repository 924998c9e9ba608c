package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/lanewatch/internal/model"
	"github.com/blackwell-systems/lanewatch/internal/output"
)

var (
	profileBirthDate  string
	profileHeight     float64
	profileWeight     float64
	profileRestingHR  float64
	profileCategory   string
	profileGoal       string
	profileConditions string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage a swimmer's profile",
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update a swimmer's profile",
	Long: `Create or update the profile for the swimmer named by --swimmer.
Only the flags you pass are changed; everything else keeps its stored value.
All attributes besides the name are optional.`,
	RunE: runProfileSet,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display a swimmer's profile",
	RunE:  runProfileShow,
}

func init() {
	profileSetCmd.Flags().StringVar(&profileBirthDate, "birth-date", "", "Birth date (YYYY-MM-DD)")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in centimeters")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Weight in kilograms")
	profileSetCmd.Flags().Float64Var(&profileRestingHR, "resting-hr", 0, "Resting heart rate in bpm")
	profileSetCmd.Flags().StringVar(&profileCategory, "category", "", "Category (beginner, intermediate, advanced, elite)")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "", "General training goal (free text)")
	profileSetCmd.Flags().StringVar(&profileConditions, "conditions", "", "Medical conditions (free text)")
	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileSet(cmd *cobra.Command, args []string) error {
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
	p.Name = name

	if cmd.Flags().Changed("birth-date") {
		t, err := time.Parse("2006-01-02", profileBirthDate)
		if err != nil {
			return fmt.Errorf("parsing --birth-date: %w", err)
		}
		p.BirthDate = &t
	}
	if cmd.Flags().Changed("height") {
		p.HeightCm = &profileHeight
	}
	if cmd.Flags().Changed("weight") {
		p.WeightKg = &profileWeight
	}
	if cmd.Flags().Changed("resting-hr") {
		p.RestingHeartRate = &profileRestingHR
	}
	if cmd.Flags().Changed("category") {
		p.Category = model.Category(profileCategory)
	}
	if cmd.Flags().Changed("goal") {
		p.GeneralGoal = profileGoal
	}
	if cmd.Flags().Changed("conditions") {
		p.MedicalConditions = profileConditions
	}

	saved, err := db.SaveProfile(p)
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}

	fmt.Printf("Saved profile for %s (%s)\n", saved.Name, saved.ID)
	return nil
}

func runProfileShow(cmd *cobra.Command, args []string) error {
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
	if p.ID == "" {
		return fmt.Errorf("no profile for %q; create one with 'lanewatch profile set'", name)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	}

	if flagNoColor {
		output.SetNoColor(true)
	}

	fmt.Println(output.Section("Profile: " + p.Name))
	fmt.Println()
	printField("Birth date", formatDate(p.BirthDate))
	printField("Height", formatOptionalUnit(p.HeightCm, "cm"))
	printField("Weight", formatOptionalUnit(p.WeightKg, "kg"))
	printField("Resting HR", formatOptionalUnit(p.RestingHeartRate, "bpm"))
	printField("Category", stringOrDash(string(p.Category)))
	printField("Goal", stringOrDash(p.GeneralGoal))
	printField("Conditions", stringOrDash(p.MedicalConditions))
	if bmi := p.BMI(); bmi != nil {
		printField("BMI", fmt.Sprintf("%.1f", *bmi))
	}
	if age := p.AgeYears(time.Now()); age != nil {
		printField("Age", fmt.Sprintf("%d", *age))
	}
	return nil
}

func printField(label, value string) {
	fmt.Printf(" %s %s\n", output.StyleLabel.Render(label), output.StyleBold.Render(value))
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "—"
	}
	return t.Format("2006-01-02")
}

func formatOptionalUnit(v *float64, unit string) string {
	if v == nil {
		return "—"
	}
	return fmt.Sprintf("%.0f %s", *v, unit)
}

func stringOrDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
