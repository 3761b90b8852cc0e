package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var groupDescription string

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Manage saved drill groups",
	Long: `Manage saved drill groups.

Subcommands:
  list                       List saved groups and the liked group
  create <name>              Create a saved group
  delete <group-id>          Delete a saved group
  add <group-id> <title>     Add a catalog drill to a group
  remove <group-id> <title>  Remove a drill from a group`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var groupsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved groups",
	Args:  cobra.NoArgs,
	RunE:  runGroupsList,
}

var groupsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a saved group",
	Args:  cobra.ExactArgs(1),
	RunE:  runGroupsCreate,
}

var groupsDeleteCmd = &cobra.Command{
	Use:   "delete <group-id>",
	Short: "Delete a saved group",
	Args:  cobra.ExactArgs(1),
	RunE:  runGroupsDelete,
}

var groupsAddCmd = &cobra.Command{
	Use:   "add <group-id> <title>",
	Short: "Add a catalog drill to a group",
	Args:  cobra.ExactArgs(2),
	RunE:  runGroupsAdd,
}

var groupsRemoveCmd = &cobra.Command{
	Use:   "remove <group-id> <title>",
	Short: "Remove a drill from a group",
	Args:  cobra.ExactArgs(2),
	RunE:  runGroupsRemove,
}

func init() {
	groupsCreateCmd.Flags().StringVar(&groupDescription, "description", "", "group description")
	groupsCmd.AddCommand(groupsListCmd)
	groupsCmd.AddCommand(groupsCreateCmd)
	groupsCmd.AddCommand(groupsDeleteCmd)
	groupsCmd.AddCommand(groupsAddCmd)
	groupsCmd.AddCommand(groupsRemoveCmd)
}

func runGroupsList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	a.service.Load()

	liked := a.service.LikedGroup()
	fmt.Printf("%s (%d drills)\n", headerStyle.Render(liked.Name), len(liked.Drills))
	for _, d := range liked.Drills {
		fmt.Printf("  ♥ %s\n", d.Title)
	}

	for _, g := range a.service.SavedGroups() {
		fmt.Printf("\n%s (%d drills)  %s\n", headerStyle.Render(g.Name), len(g.Drills), dimStyle.Render(g.ID))
		if g.Description != "" {
			fmt.Printf("  %s\n", dimStyle.Render(g.Description))
		}
		for _, d := range g.Drills {
			fmt.Printf("  - %s\n", d.Title)
		}
	}
	return nil
}

func runGroupsCreate(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	a.service.Load()
	group := a.service.CreateGroup(args[0], groupDescription, nil)
	fmt.Printf("Created group %s (%s)\n", group.Name, group.ID)
	return nil
}

func runGroupsDelete(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	a.service.Load()
	a.service.DeleteGroup(args[0])
	fmt.Printf("Deleted group %s\n", args[0])
	return nil
}

func runGroupsAdd(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	a.service.Load()
	drill, ok := findDrillByTitle(a.service.Catalog(), args[1])
	if !ok {
		return fmt.Errorf("drill not found in catalog: %s", args[1])
	}
	a.service.AddDrillToGroup(args[0], drill)
	fmt.Printf("Added %s to group %s\n", drill.Title, args[0])
	return nil
}

func runGroupsRemove(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	a.service.Load()
	for _, g := range a.service.SavedGroups() {
		if g.ID != args[0] {
			continue
		}
		for _, d := range g.Drills {
			if d.Title == args[1] {
				a.service.RemoveDrillFromGroup(g.ID, d.ID)
				fmt.Printf("Removed %s from group %s\n", d.Title, g.ID)
				return nil
			}
		}
		return fmt.Errorf("drill not in group: %s", args[1])
	}
	return fmt.Errorf("group not found: %s", args[0])
}
