package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pitchside/drillkit/internal/models"
)

var (
	prefTime       string
	prefEquipment  []string
	prefStyle      string
	prefLocation   string
	prefDifficulty string
	prefSkills     []string
	prefOnboarding bool
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or update training preferences",
	Long: `Show or update training preferences.

Subcommands:
  show    Show the current preference snapshot
  set     Update one or more facets (synced to the backend)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current preference snapshot",
	Args:  cobra.NoArgs,
	RunE:  runPrefsShow,
}

var prefsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update preference facets",
	Long: `Update one or more preference facets.

Edits are debounced: rapid successive changes result in a single backend
sync carrying the final state. With --onboarding each edit syncs
immediately instead.`,
	Args: cobra.NoArgs,
	RunE: runPrefsSet,
}

func init() {
	prefsSetCmd.Flags().StringVar(&prefTime, "time", "", "time bucket (15min, 30min, 45min, 60min, 90min)")
	prefsSetCmd.Flags().StringSliceVar(&prefEquipment, "equipment", nil, "available equipment")
	prefsSetCmd.Flags().StringVar(&prefStyle, "style", "", "training style")
	prefsSetCmd.Flags().StringVar(&prefLocation, "location", "", "training location")
	prefsSetCmd.Flags().StringVar(&prefDifficulty, "difficulty", "", "difficulty level")
	prefsSetCmd.Flags().StringSliceVar(&prefSkills, "skills", nil, "skill focus")
	prefsSetCmd.Flags().BoolVar(&prefOnboarding, "onboarding", false, "sync each edit immediately")

	prefsCmd.AddCommand(prefsShowCmd)
	prefsCmd.AddCommand(prefsSetCmd)
}

func runPrefsShow(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	a.service.Load()
	p := a.service.Preferences()

	fmt.Printf("%s\n", headerStyle.Render("PREFERENCES"))
	fmt.Printf("  Time:       %s\n", orUnset(string(p.Time)))
	fmt.Printf("  Equipment:  %s\n", orUnset(strings.Join(p.Equipment, ", ")))
	fmt.Printf("  Style:      %s\n", orUnset(p.TrainingStyle))
	fmt.Printf("  Location:   %s\n", orUnset(p.Location))
	fmt.Printf("  Difficulty: %s\n", orUnset(p.Difficulty))
	fmt.Printf("  Skills:     %s\n", orUnset(strings.Join(p.SelectedSkills, ", ")))
	return nil
}

func runPrefsSet(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	a.service.Load()
	a.service.SetOnboarding(prefOnboarding)

	if cmd.Flags().Changed("time") {
		bucket := models.TimeBucket(prefTime)
		if prefTime != "" && bucket.Minutes() == 0 {
			return fmt.Errorf("invalid time bucket: %s", prefTime)
		}
		a.service.SetTimeBucket(bucket)
	}
	if cmd.Flags().Changed("equipment") {
		a.service.SetEquipment(prefEquipment)
	}
	if cmd.Flags().Changed("style") {
		a.service.SetTrainingStyle(prefStyle)
	}
	if cmd.Flags().Changed("location") {
		a.service.SetLocation(prefLocation)
	}
	if cmd.Flags().Changed("difficulty") {
		a.service.SetDifficulty(prefDifficulty)
	}
	if cmd.Flags().Changed("skills") {
		a.service.SetSelectedSkills(prefSkills)
	}

	a.service.FlushPreferenceSync()
	fmt.Println("Preferences updated.")
	return nil
}

func orUnset(s string) string {
	if s == "" {
		return dimStyle.Render("(unset)")
	}
	return s
}
