package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/pitchside/drillkit/internal/backend"
	"github.com/pitchside/drillkit/internal/cache"
	"github.com/pitchside/drillkit/internal/config"
	"github.com/pitchside/drillkit/internal/credentials"
	"github.com/pitchside/drillkit/internal/events"
	"github.com/pitchside/drillkit/internal/models"
	"github.com/pitchside/drillkit/internal/session"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// app bundles the constructed engine for one CLI invocation.
type app struct {
	cfg     *config.Config
	store   *cache.Store
	service *session.Service
	bus     *events.Bus
}

// newApp wires config, credentials, cache, backend, and the orchestrator.
// Returns a friendly error when nobody is logged in.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	paths := config.GetPaths(cfg)

	creds := credentials.NewFileStore(paths.Credentials)
	active, err := creds.Active()
	if err != nil {
		if errors.Is(err, credentials.ErrNoUser) {
			return nil, errors.New("not logged in (run `drillkit login <user-id>`)")
		}
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	store, err := cache.New(cache.Config{Path: paths.Cache, Debug: cfg.Debug}, active.UserID)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}

	token := cfg.Backend.Token
	if token == "" {
		token = active.Token
	}
	client := backend.New(backend.Config{
		BaseURL:   cfg.Backend.BaseURL,
		Token:     token,
		RateLimit: cfg.Backend.RateLimit,
	})

	bus := events.NewBus()
	svc, err := session.New(store, client, creds, bus, telemetryClient)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("initialize session: %w", err)
	}

	return &app{cfg: cfg, store: store, service: svc, bus: bus}, nil
}

// close flushes background work and releases the cache.
func (a *app) close() {
	a.service.Close()
	a.bus.Close()
	_ = a.store.Close()
}

// findDrillByTitle resolves a catalog drill by exact (case-sensitive) title.
func findDrillByTitle(drills []models.Drill, title string) (models.Drill, bool) {
	for _, d := range drills {
		if d.Title == title {
			return d, true
		}
	}
	return models.Drill{}, false
}
