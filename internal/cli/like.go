package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var likeCmd = &cobra.Command{
	Use:   "like <title>",
	Short: "Toggle a drill in your liked group",
	Long: `Toggle a catalog drill in your liked-drills group.

The liked group's identity is derived from your account, so it survives
logging out and back in.`,
	Args: cobra.ExactArgs(1),
	RunE: runLike,
}

func runLike(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	a.service.Load()
	drill, ok := findDrillByTitle(a.service.Catalog(), args[0])
	if !ok {
		return fmt.Errorf("drill not found in catalog: %s", args[0])
	}

	if a.service.ToggleDrillLike(drill) {
		fmt.Printf("♥ Liked %s\n", drill.Title)
	} else {
		fmt.Printf("Unliked %s\n", drill.Title)
	}
	return nil
}
