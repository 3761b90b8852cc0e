// Package cli provides the command-line interface for drillkit.
package cli

import (
	"context"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/pitchside/drillkit/internal/telemetry"
	"github.com/pitchside/drillkit/pkg/version"
)

var telemetryClient telemetry.Client

var rootCmd = &cobra.Command{
	Use:   "drillkit",
	Short: "Personalized soccer training sessions",
	Long: `Build personalized soccer training sessions from a drill catalog.

Filter drills by time, equipment, training style, location, and difficulty;
curate saved groups and liked drills; and keep everything reconciled with
your account on the backend. All state is cached locally per user, so the
tool stays responsive when the network is not.

Telemetry:
  Telemetry is enabled by default, always anonymous, and never tracks
  drill names, filter values, or personal information.

  Opt-out with:
  	DRILLKIT_TELEMETRY_TRACKING_ENABLED=false`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(likeCmd)
	rootCmd.AddCommand(filtersCmd)
	rootCmd.AddCommand(prefsCmd)
}

// Execute runs the CLI with fang enhancements.
func Execute(ctx context.Context, tc telemetry.Client) error {
	if tc == nil {
		tc = telemetry.New(nil)
	}
	telemetryClient = tc

	return fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(version.Short()),
		fang.WithCommit(version.Commit),
	)
}
