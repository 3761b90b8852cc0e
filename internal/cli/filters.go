package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pitchside/drillkit/internal/models"
)

var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "Manage saved filter sets",
	Long: `Manage saved filter sets.

Subcommands:
  list           List saved filter sets
  save <name>    Snapshot the current facets under a name
  apply <id>     Apply a saved filter set
  delete <id>    Delete a saved filter set`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var filtersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved filter sets",
	Args:  cobra.NoArgs,
	RunE:  runFiltersList,
}

var filtersSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Snapshot the current facets under a name",
	Args:  cobra.ExactArgs(1),
	RunE:  runFiltersSave,
}

var filtersApplyCmd = &cobra.Command{
	Use:   "apply <id>",
	Short: "Apply a saved filter set",
	Args:  cobra.ExactArgs(1),
	RunE:  runFiltersApply,
}

var filtersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved filter set",
	Args:  cobra.ExactArgs(1),
	RunE:  runFiltersDelete,
}

func init() {
	filtersCmd.AddCommand(filtersListCmd)
	filtersCmd.AddCommand(filtersSaveCmd)
	filtersCmd.AddCommand(filtersApplyCmd)
	filtersCmd.AddCommand(filtersDeleteCmd)
}

func runFiltersList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	a.service.Load()
	sets := a.service.SavedFilterSets()
	if len(sets) == 0 {
		fmt.Println("No saved filter sets.")
		return nil
	}
	fmt.Printf("%s\n", headerStyle.Render("SAVED FILTERS"))
	for _, set := range sets {
		fmt.Printf("  %-20s %s\n", set.Name, dimStyle.Render(set.ID))
		fmt.Printf("    %s\n", dimStyle.Render(describeCriteria(set.Criteria)))
	}
	return nil
}

func runFiltersSave(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	a.service.Load()
	set := a.service.SaveFilterSet(args[0])
	fmt.Printf("Saved filter set %s (%s)\n", set.Name, set.ID)
	return nil
}

func runFiltersApply(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	a.service.Load()
	if !a.service.LoadFilterSet(args[0]) {
		return fmt.Errorf("filter set not found: %s", args[0])
	}
	a.service.FlushPreferenceSync()
	fmt.Println("Filters applied.")
	return nil
}

func runFiltersDelete(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	a.service.Load()
	a.service.DeleteFilterSet(args[0])
	fmt.Printf("Deleted filter set %s\n", args[0])
	return nil
}

func describeCriteria(c models.FilterCriteria) string {
	if c.IsEmpty() {
		return "no facets"
	}
	out := ""
	if c.Time != models.TimeBucketNone {
		out += fmt.Sprintf("time=%s ", c.Time)
	}
	if len(c.Equipment) > 0 {
		out += fmt.Sprintf("equipment=%v ", c.Equipment)
	}
	if c.TrainingStyle != "" {
		out += fmt.Sprintf("style=%s ", c.TrainingStyle)
	}
	if c.Location != "" {
		out += fmt.Sprintf("location=%s ", c.Location)
	}
	if c.Difficulty != "" {
		out += fmt.Sprintf("difficulty=%s ", c.Difficulty)
	}
	return out
}
