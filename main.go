// drillkit builds personalized soccer training sessions from a drill
// catalog, reconciling local state with the remote training service.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pitchside/drillkit/internal/cli"
	"github.com/pitchside/drillkit/internal/config"
	"github.com/pitchside/drillkit/internal/log"
	"github.com/pitchside/drillkit/internal/telemetry"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if cfg, err := config.Load(); err == nil {
		paths := config.GetPaths(cfg)
		_ = log.Init(paths.Logs)
		defer func() { _ = log.Close() }()
	}

	tc := telemetry.New(nil)
	defer tc.Close()
	tc.TrackAppStarted("cli")

	if err := cli.Execute(ctx, tc); err != nil {
		os.Exit(1)
	}
}
