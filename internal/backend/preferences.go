package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pitchside/drillkit/internal/models"
)

// FetchPreferences retrieves the user's preference snapshot from the backend.
func (c *Client) FetchPreferences(ctx context.Context) (models.Preferences, error) {
	var prefs models.Preferences
	if _, err := c.do(ctx, http.MethodGet, "/preferences", nil, &prefs); err != nil {
		return models.Preferences{}, fmt.Errorf("fetch preferences: %w", err)
	}
	return prefs, nil
}

// SyncPreferences pushes the full preference snapshot to the backend. The
// backend is last-writer-wins, so the snapshot always describes the complete
// current state rather than a delta.
func (c *Client) SyncPreferences(ctx context.Context, prefs models.Preferences) error {
	if _, err := c.do(ctx, http.MethodPut, "/preferences", prefs, nil); err != nil {
		return fmt.Errorf("sync preferences: %w", err)
	}
	return nil
}
