package cache

// Key names one cached facet. All keys are implicitly namespaced by the
// active user identity.
type Key string

// Cached facets.
const (
	KeySessionDrills   Key = "ordered-session-drills"
	KeySavedGroups     Key = "saved-drill-groups"
	KeyGroupBackendIDs Key = "group-backend-id-map"
	KeyLikedGroup      Key = "liked-drills-group"
	KeyLikedBackendID  Key = "liked-group-backend-id"
	KeySavedFilters    Key = "saved-filter-sets"
	KeyPreferences     Key = "preferences-snapshot"
	KeyCatalogSnapshot Key = "database-drill-catalog-snapshot"
	KeyTrackingID      Key = "telemetry-tracking-id"
)
