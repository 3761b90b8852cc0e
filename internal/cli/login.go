package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pitchside/drillkit/internal/config"
	"github.com/pitchside/drillkit/internal/credentials"
)

var loginToken string

var loginCmd = &cobra.Command{
	Use:   "login <user-id>",
	Short: "Set the active account",
	Long: `Set the active account identity used for cache namespacing and
backend authentication. The identity is stored in ~/.drillkit/credentials.json.`,
	Args: cobra.ExactArgs(1),
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVar(&loginToken, "token", "", "API token for the backend")
}

func runLogin(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	paths := config.GetPaths(cfg)

	creds := credentials.NewFileStore(paths.Credentials)
	if err := creds.SetActive(credentials.Credentials{UserID: args[0], Token: loginToken}); err != nil {
		return fmt.Errorf("store credentials: %w", err)
	}

	fmt.Printf("Logged in as %s\n", args[0])
	return nil
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and wipe the active user's local state",
	Long: `Log out the active account.

Cancels any pending preference sync, wipes every cached collection for the
user (session drills, saved groups, liked drills, filters), and forgets the
stored credentials. Cached state for other accounts on this device is left
untouched.`,
	Args: cobra.NoArgs,
	RunE: runLogout,
}

func runLogout(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	userID := a.service.UserID()

	// Forget credentials first so the liked group resets for "no user".
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	paths := config.GetPaths(cfg)
	if err := credentials.NewFileStore(paths.Credentials).Clear(); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}

	if err := a.service.ClearUserData(); err != nil {
		return fmt.Errorf("clear user data: %w", err)
	}

	fmt.Printf("Logged out %s\n", userID)
	return nil
}
