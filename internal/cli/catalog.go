package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the drill catalog",
	Long: `List every drill in the local catalog.

The catalog is loaded from the cached snapshot (falling back to the built-in
dataset) and refreshed from the backend in the background.`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	a.service.Load()

	drills := a.service.Catalog()
	fmt.Printf("%s (%d drills)\n\n", headerStyle.Render("DRILL CATALOG"), len(drills))
	for _, d := range drills {
		liked := " "
		if a.service.IsLiked(d) {
			liked = "♥"
		}
		fmt.Printf("  %s %-28s %-14s %3d min  %s\n",
			liked, d.Title, d.Skill, d.Duration, dimStyle.Render(d.Difficulty))
	}
	return nil
}
