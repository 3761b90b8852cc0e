package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pitchside/drillkit/internal/models"
	"github.com/pitchside/drillkit/internal/selection"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Build and manage the active training session",
	Long: `Build and manage the active training session.

Subcommands:
  build          Assemble a session from the current filters
  show           Show the active session
  done <title>   Record a completed set on a drill
  clear          Clear the active session`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var sessionBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Assemble a session from the current filters",
	Long: `Assemble a session from the current filters.

The catalog is narrowed by the active facets; when a time bucket is set, the
selection heuristic packs drills into the time budget.`,
	Args: cobra.NoArgs,
	RunE: runSessionBuild,
}

var sessionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active session",
	Args:  cobra.NoArgs,
	RunE:  runSessionShow,
}

var sessionDoneCmd = &cobra.Command{
	Use:   "done <title>",
	Short: "Record a completed set on a session drill",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionDone,
}

var sessionClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the active session",
	Args:  cobra.NoArgs,
	RunE:  runSessionClear,
}

func init() {
	sessionCmd.AddCommand(sessionBuildCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionDoneCmd)
	sessionCmd.AddCommand(sessionClearCmd)
}

func runSessionBuild(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	a.service.Load()
	instances := a.service.UpdateSessionByFilters()

	criteria := a.service.Criteria()
	target := criteria.Time.Minutes()

	fmt.Printf("%s\n", headerStyle.Render("SESSION"))
	if target > 0 {
		drills := make([]models.Drill, 0, len(instances))
		for _, inst := range instances {
			drills = append(drills, inst.Drill)
		}
		fmt.Printf("%s\n", dimStyle.Render(
			fmt.Sprintf("%d of %d minutes filled", selection.Total(drills), target)))
	}
	fmt.Println(strings.Repeat("─", 50))
	printSession(instances)
	return nil
}

func runSessionShow(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	a.service.Load()
	fmt.Printf("%s\n", headerStyle.Render("SESSION"))
	printSession(a.service.SessionDrills())
	return nil
}

func runSessionDone(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	a.service.Load()
	for _, inst := range a.service.SessionDrills() {
		if inst.Drill.Title == args[0] {
			a.service.CompleteSet(inst.Drill.ID)
			fmt.Printf("Set recorded on %s\n", args[0])
			return nil
		}
	}
	return fmt.Errorf("drill not in session: %s", args[0])
}

func runSessionClear(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	a.service.Load()
	a.service.ClearSession()
	fmt.Println("Session cleared.")
	return nil
}

func printSession(instances []*models.EditableDrillInstance) {
	if len(instances) == 0 {
		fmt.Println("No drills in the session. Run `drillkit session build`.")
		return
	}
	for i, inst := range instances {
		status := fmt.Sprintf("%d/%d sets", inst.SetsDone, inst.TotalSets)
		if inst.Completed {
			status = "done"
		}
		fmt.Printf("  %d. %-28s %3d min  %s\n", i+1, inst.Drill.Title, inst.TotalDuration, dimStyle.Render(status))
	}
}
