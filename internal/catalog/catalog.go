// Package catalog loads the drill catalog: cached snapshot first, built-in
// dataset as fallback, backend refresh on top.
package catalog

import (
	"context"

	"github.com/pitchside/drillkit/internal/backend"
	"github.com/pitchside/drillkit/internal/cache"
	"github.com/pitchside/drillkit/internal/dedupe"
	"github.com/pitchside/drillkit/internal/models"
)

// Load returns the drill catalog from the cached snapshot, falling back to
// the built-in dataset on any cache miss. It never fails.
func Load(store *cache.Store) []models.Drill {
	drills, err := cache.Get[[]models.Drill](store, cache.KeyCatalogSnapshot)
	if err != nil || len(drills) == 0 {
		return DefaultDrills()
	}
	return drills
}

// Refresh fetches the catalog from the backend, dedupes it, and persists the
// snapshot. The previous catalog stays in use when the fetch fails.
func Refresh(ctx context.Context, client *backend.Client, store *cache.Store) ([]models.Drill, error) {
	payloads, err := client.GetAllDrills(ctx)
	if err != nil {
		return nil, err
	}

	drills := make([]models.Drill, 0, len(payloads))
	for _, p := range payloads {
		drills = append(drills, p.Model())
	}
	drills = dedupe.Drills(drills)

	if err := cache.Put(store, cache.KeyCatalogSnapshot, drills); err != nil {
		return nil, err
	}
	return drills, nil
}
