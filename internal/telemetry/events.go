package telemetry

import (
	"runtime"

	"github.com/pitchside/drillkit/pkg/version"
)

// Event names.
const (
	EventAppStarted        = "app_started"
	EventSessionBuilt      = "session_built"
	EventGroupCreated      = "group_created"
	EventGroupDeleted      = "group_deleted"
	EventDrillLiked        = "drill_liked"
	EventFilterApplied     = "filter_applied"
	EventPreferencesSynced = "preferences_synced"
	EventSyncFailed        = "sync_failed"
)

// baseProperties returns common properties for all events.
func baseProperties() map[string]interface{} {
	return map[string]interface{}{
		"os":      runtime.GOOS,
		"arch":    runtime.GOARCH,
		"version": version.Version,
	}
}

// TrackAppStarted tracks application startup.
func (c *posthogClient) TrackAppStarted(mode string) {
	props := baseProperties()
	props["mode"] = mode
	c.Track(EventAppStarted, props)
}

// TrackSessionBuilt tracks a session assembled from filters.
func (c *posthogClient) TrackSessionBuilt(drillCount, totalMinutes, targetMinutes int) {
	props := baseProperties()
	props["drill_count"] = drillCount
	props["total_minutes"] = totalMinutes
	props["target_minutes"] = targetMinutes
	c.Track(EventSessionBuilt, props)
}

// TrackGroupCreated tracks a saved group creation.
func (c *posthogClient) TrackGroupCreated(drillCount int) {
	props := baseProperties()
	props["drill_count"] = drillCount
	c.Track(EventGroupCreated, props)
}

// TrackGroupDeleted tracks a saved group deletion.
func (c *posthogClient) TrackGroupDeleted() {
	c.Track(EventGroupDeleted, baseProperties())
}

// TrackDrillLiked tracks a like toggle.
func (c *posthogClient) TrackDrillLiked(liked bool) {
	props := baseProperties()
	props["liked"] = liked
	c.Track(EventDrillLiked, props)
}

// TrackFilterApplied tracks filter usage by facet count, never facet values.
func (c *posthogClient) TrackFilterApplied(facetCount int) {
	props := baseProperties()
	props["facet_count"] = facetCount
	c.Track(EventFilterApplied, props)
}

// TrackPreferencesSynced tracks a successful preference sync.
func (c *posthogClient) TrackPreferencesSynced(onboarding bool) {
	props := baseProperties()
	props["onboarding"] = onboarding
	c.Track(EventPreferencesSynced, props)
}

// TrackSyncFailed tracks a failed backend call by operation name.
func (c *posthogClient) TrackSyncFailed(operation string) {
	props := baseProperties()
	props["operation"] = operation
	c.Track(EventSyncFailed, props)
}
