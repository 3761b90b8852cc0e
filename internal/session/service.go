// Package session holds the stateful hub of the engine: the authoritative
// in-memory view of selected filters, skills, session drills, saved groups,
// and the liked-drills group.
//
// Every external mutation follows the same shape: mutate in memory, run
// deduplication, persist to the cache store, then fire a tracked asynchronous
// backend call. Backend failures surface on the event bus; the optimistic
// local mutation always stands.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/pitchside/drillkit/internal/backend"
	"github.com/pitchside/drillkit/internal/cache"
	"github.com/pitchside/drillkit/internal/catalog"
	"github.com/pitchside/drillkit/internal/credentials"
	"github.com/pitchside/drillkit/internal/dedupe"
	"github.com/pitchside/drillkit/internal/events"
	"github.com/pitchside/drillkit/internal/log"
	"github.com/pitchside/drillkit/internal/models"
	"github.com/pitchside/drillkit/internal/prefsync"
	"github.com/pitchside/drillkit/internal/telemetry"
)

// Service is the session/group orchestrator. All state fields are guarded by
// mu: the single logical owner context. Backend calls run as tracked tasks
// that re-acquire mu to apply their results.
type Service struct {
	cacheStore *cache.Store
	client     *backend.Client
	creds      credentials.Store
	bus        *events.Bus
	tel        telemetry.Client
	prefs      *prefsync.Controller

	mu     sync.Mutex
	userID string

	timeBucket     models.TimeBucket
	equipment      []string
	trainingStyle  string
	location       string
	difficulty     string
	selectedSkills []string

	catalogDrills   []models.Drill
	sessionDrills   []*models.EditableDrillInstance
	savedGroups     []models.Group
	likedGroup      models.Group
	savedFilters    []models.SavedFilterSet
	groupBackendIDs map[string]string
	likedBackendID  string

	// prefsDirty marks a user facet edit made since the last hydration.
	// The backend refresh never applies a fetched snapshot over a dirty
	// state: the edit is newer and will itself sync.
	prefsDirty bool
	loggingOut bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New constructs the orchestrator for the currently active user. All
// collaborators are injected; there is no ambient global state.
func New(store *cache.Store, client *backend.Client, creds credentials.Store, bus *events.Bus, tel telemetry.Client, prefOpts ...prefsync.Option) (*Service, error) {
	active, err := creds.Active()
	if err != nil {
		return nil, fmt.Errorf("resolve active user: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Service{
		cacheStore:      store,
		client:          client,
		creds:           creds,
		bus:             bus,
		tel:             tel,
		userID:          active.UserID,
		likedGroup:      models.NewLikedGroup(active.UserID),
		groupBackendIDs: make(map[string]string),
		ctx:             ctx,
		cancel:          cancel,
	}

	opts := append([]prefsync.Option{
		prefsync.WithErrorHandler(func(err error) {
			s.reportSyncError("preferences", err)
		}),
	}, prefOpts...)
	s.prefs = prefsync.New(client, s.preferencesSnapshot, opts...)

	return s, nil
}

// UserID returns the identity the service is scoped to.
func (s *Service) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// LikedGroupID returns the deterministic liked-group identity for this user.
func (s *Service) LikedGroupID() string {
	return models.LikedGroupID(s.UserID())
}

// Load hydrates state cache-first, then refreshes from the backend in a
// tracked background task. Hydration writes facets directly and never
// reaches the sync controller, so user edits made while the refresh is in
// flight still schedule their sync and win over the fetched snapshot.
func (s *Service) Load() {
	s.loadFromCache()

	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.refreshFromBackend(ctx)
	}()
}

// loadFromCache populates every collection from the cache store. A miss on
// any key falls back to an empty default; the catalog falls back to the
// built-in dataset.
func (s *Service) loadFromCache() {
	drills := catalog.Load(s.cacheStore)

	sessionDrills, err := cache.Get[[]*models.EditableDrillInstance](s.cacheStore, cache.KeySessionDrills)
	if err != nil {
		sessionDrills = []*models.EditableDrillInstance{}
	}
	savedGroups, err := cache.Get[[]models.Group](s.cacheStore, cache.KeySavedGroups)
	if err != nil {
		savedGroups = []models.Group{}
	}
	backendIDs, err := cache.Get[map[string]string](s.cacheStore, cache.KeyGroupBackendIDs)
	if err != nil {
		backendIDs = map[string]string{}
	}
	liked, err := cache.Get[models.Group](s.cacheStore, cache.KeyLikedGroup)
	if err != nil || liked.ID == "" {
		liked = models.NewLikedGroup(s.userID)
	}
	likedBackendID, err := cache.Get[string](s.cacheStore, cache.KeyLikedBackendID)
	if err != nil {
		likedBackendID = ""
	}
	savedFilters, err := cache.Get[[]models.SavedFilterSet](s.cacheStore, cache.KeySavedFilters)
	if err != nil {
		savedFilters = []models.SavedFilterSet{}
	}
	prefs, prefsErr := cache.Get[models.Preferences](s.cacheStore, cache.KeyPreferences)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalogDrills = drills
	s.sessionDrills = sessionDrills
	s.savedGroups = dedupe.Groups(savedGroups)
	s.groupBackendIDs = backendIDs
	s.likedGroup = dedupe.Group(liked)
	s.likedBackendID = likedBackendID
	s.savedFilters = savedFilters
	if prefsErr == nil {
		s.applyPreferencesLocked(prefs)
	}
}

// refreshFromBackend merges the server's view on top of the cache-hydrated
// state. Any failure leaves local state untouched and surfaces a sync error.
func (s *Service) refreshFromBackend(ctx context.Context) {
	if drills, err := catalog.Refresh(ctx, s.client, s.cacheStore); err != nil {
		s.reportSyncError("catalog_refresh", err)
	} else {
		s.mu.Lock()
		if !s.loggingOut {
			s.catalogDrills = drills
		}
		s.mu.Unlock()
	}

	if prefs, err := s.client.FetchPreferences(ctx); err != nil {
		s.reportSyncError("fetch_preferences", err)
	} else {
		s.mu.Lock()
		apply := !s.loggingOut && !s.prefsDirty
		if apply {
			s.applyPreferencesLocked(prefs)
		}
		s.mu.Unlock()
		if apply {
			s.persistPreferences()
		}
	}

	groups, err := s.client.GetAllDrillGroups(ctx)
	if err != nil {
		s.reportSyncError("fetch_groups", err)
		return
	}
	s.mergeRemoteGroups(groups)
}

// mergeRemoteGroups reconciles the backend's groups with local state. Remote
// contents replace local group contents; deduplication then removes any
// duplicates a concurrent local/remote merge introduced.
func (s *Service) mergeRemoteGroups(remote []backend.GroupPayload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loggingOut {
		return
	}

	byBackendID := make(map[string]string, len(s.groupBackendIDs))
	for localID, backendID := range s.groupBackendIDs {
		byBackendID[backendID] = localID
	}

	for _, rg := range remote {
		drills := make([]models.Drill, 0, len(rg.Drills))
		for _, p := range rg.Drills {
			drills = append(drills, p.Model())
		}

		if rg.IsLiked {
			s.likedBackendID = rg.ID
			s.likedGroup.Drills = dedupe.Drills(append(s.likedGroup.Drills, drills...))
			continue
		}

		if localID, ok := byBackendID[rg.ID]; ok {
			for i := range s.savedGroups {
				if s.savedGroups[i].ID == localID {
					s.savedGroups[i].Name = rg.Name
					s.savedGroups[i].Description = rg.Description
					s.savedGroups[i].Drills = dedupe.Drills(drills)
					break
				}
			}
			continue
		}

		g := models.NewGroup(rg.Name, rg.Description)
		g.Drills = dedupe.Drills(drills)
		s.savedGroups = append(s.savedGroups, g)
		s.groupBackendIDs[g.ID] = rg.ID
	}

	s.savedGroups = dedupe.Groups(s.savedGroups)
	s.likedGroup = dedupe.Group(s.likedGroup)

	s.persistGroupsLocked()
	s.persistLikedLocked()
	s.publish(events.GroupUpdated, nil)
	s.publish(events.LikedDrillsUpdated, nil)
}

// ClearUserData is the single destructor event: it cancels pending timers
// and in-flight tasks, wipes every collection, and clears the user's cache
// namespace. When a next user is already active the service re-arms itself
// for that identity: fresh task context, re-scoped cache namespace, sync
// controller unsuppressed, liked group re-keyed. With no next user the
// service stays inert until the caller constructs a fresh one at login.
func (s *Service) ClearUserData() error {
	s.mu.Lock()
	s.loggingOut = true
	cancel := s.cancel
	s.mu.Unlock()

	s.prefs.SetSuppressed(true)
	s.prefs.Cancel()
	cancel()
	s.wg.Wait()

	if err := s.cacheStore.ClearUser(); err != nil {
		return fmt.Errorf("clear user cache: %w", err)
	}

	nextUser := ""
	if active, err := s.creds.Active(); err == nil {
		nextUser = active.UserID
	}

	s.mu.Lock()
	s.timeBucket = models.TimeBucketNone
	s.equipment = nil
	s.trainingStyle = ""
	s.location = ""
	s.difficulty = ""
	s.selectedSkills = nil
	s.prefsDirty = false
	s.sessionDrills = []*models.EditableDrillInstance{}
	s.savedGroups = []models.Group{}
	s.savedFilters = []models.SavedFilterSet{}
	s.groupBackendIDs = make(map[string]string)
	s.likedBackendID = ""
	s.userID = nextUser
	rearm := nextUser != ""
	if rearm {
		s.likedGroup = models.NewLikedGroup(nextUser)
		s.loggingOut = false
		ctx, cancelNext := context.WithCancel(context.Background())
		s.ctx = ctx
		s.cancel = cancelNext
	} else {
		s.likedGroup = models.Group{Name: models.LikedGroupName, Drills: []models.Drill{}}
	}
	s.mu.Unlock()

	if rearm {
		s.cacheStore.SetUser(nextUser)
		s.prefs.SetSuppressed(false)
	}
	return nil
}

// Close releases background resources without wiping user data.
func (s *Service) Close() {
	s.prefs.Close()
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	cancel()
	s.wg.Wait()
}

// FlushPreferenceSync sends a pending debounced preference sync now.
func (s *Service) FlushPreferenceSync() {
	s.prefs.Flush()
}

// PendingSync reports whether a preference debounce timer is scheduled.
func (s *Service) PendingSync() bool {
	return s.prefs.Pending()
}

// SetOnboarding switches the preference controller between immediate and
// debounced sync modes.
func (s *Service) SetOnboarding(onboarding bool) {
	s.prefs.SetOnboarding(onboarding)
}

// --- facet mutation API ---

// SetTimeBucket updates the time facet.
func (s *Service) SetTimeBucket(t models.TimeBucket) {
	s.mu.Lock()
	s.timeBucket = t
	s.mu.Unlock()
	s.afterFacetMutation()
}

// SetEquipment updates the equipment facet.
func (s *Service) SetEquipment(equipment []string) {
	s.mu.Lock()
	s.equipment = append([]string(nil), equipment...)
	s.mu.Unlock()
	s.afterFacetMutation()
}

// SetTrainingStyle updates the training-style facet.
func (s *Service) SetTrainingStyle(style string) {
	s.mu.Lock()
	s.trainingStyle = style
	s.mu.Unlock()
	s.afterFacetMutation()
}

// SetLocation updates the location facet.
func (s *Service) SetLocation(location string) {
	s.mu.Lock()
	s.location = location
	s.mu.Unlock()
	s.afterFacetMutation()
}

// SetDifficulty updates the difficulty facet.
func (s *Service) SetDifficulty(difficulty string) {
	s.mu.Lock()
	s.difficulty = difficulty
	s.mu.Unlock()
	s.afterFacetMutation()
}

// SetSelectedSkills updates the user's skill focus.
func (s *Service) SetSelectedSkills(skills []string) {
	s.mu.Lock()
	s.selectedSkills = append([]string(nil), skills...)
	s.mu.Unlock()
	s.afterFacetMutation()
}

// afterFacetMutation persists the preference snapshot and notifies the sync
// controller. The controller decides whether a sync is scheduled at all.
func (s *Service) afterFacetMutation() {
	s.mu.Lock()
	s.prefsDirty = true
	s.mu.Unlock()
	s.persistPreferences()
	s.prefs.NotifyChange()
}

// Preferences returns the current preference snapshot.
func (s *Service) Preferences() models.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preferencesLocked()
}

func (s *Service) preferencesLocked() models.Preferences {
	return models.Preferences{
		Time:           s.timeBucket,
		Equipment:      append([]string(nil), s.equipment...),
		TrainingStyle:  s.trainingStyle,
		Location:       s.location,
		Difficulty:     s.difficulty,
		SelectedSkills: append([]string(nil), s.selectedSkills...),
	}
}

// preferencesSnapshot is handed to the sync controller; it is invoked at
// send time so the freshest state wins.
func (s *Service) preferencesSnapshot() models.Preferences {
	return s.Preferences()
}

// Criteria returns the filter criteria described by the current facets.
func (s *Service) Criteria() models.FilterCriteria {
	return s.Preferences().Criteria()
}

// applyPreferencesLocked writes facet fields directly, bypassing the
// mutation observers. Used only by hydration paths.
func (s *Service) applyPreferencesLocked(p models.Preferences) {
	s.timeBucket = p.Time
	s.equipment = append([]string(nil), p.Equipment...)
	s.trainingStyle = p.TrainingStyle
	s.location = p.Location
	s.difficulty = p.Difficulty
	s.selectedSkills = append([]string(nil), p.SelectedSkills...)
}

// Catalog returns the current drill catalog.
func (s *Service) Catalog() []models.Drill {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Drill(nil), s.catalogDrills...)
}

// --- internals ---

// spawn runs a backend call as a tracked task so logout can cancel it.
// Debounced and cancelled requests are silent no-ops.
func (s *Service) spawn(operation string, fn func(ctx context.Context) error) {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		err := fn(ctx)
		switch {
		case err == nil:
		case errors.Is(err, backend.ErrDebounced), errors.Is(err, context.Canceled):
		case errors.Is(err, backend.ErrNoBackendID):
			log.Warnf("%s skipped: %v", operation, err)
		default:
			s.reportSyncError(operation, err)
		}
	}()
}

func (s *Service) reportSyncError(operation string, err error) {
	log.Warnf("%s failed: %v", operation, err)
	s.publish(events.SyncError, map[string]interface{}{
		"operation":     operation,
		events.KeyError: err.Error(),
	})
	if s.tel != nil {
		s.tel.TrackSyncFailed(operation)
	}
}

func (s *Service) publish(name events.Name, payload map[string]interface{}) {
	if s.bus != nil {
		s.bus.Publish(name, payload)
	}
}

func (s *Service) persistPreferences() {
	s.mu.Lock()
	prefs := s.preferencesLocked()
	s.mu.Unlock()
	if err := cache.Put(s.cacheStore, cache.KeyPreferences, prefs); err != nil {
		log.Warnf("persist preferences: %v", err)
	}
}

// persistGroupsLocked writes saved groups and the backend-ID map. Caller
// holds mu.
func (s *Service) persistGroupsLocked() {
	if err := cache.Put(s.cacheStore, cache.KeySavedGroups, s.savedGroups); err != nil {
		log.Warnf("persist saved groups: %v", err)
	}
	if err := cache.Put(s.cacheStore, cache.KeyGroupBackendIDs, s.groupBackendIDs); err != nil {
		log.Warnf("persist group id map: %v", err)
	}
}

// persistLikedLocked writes the liked group and its backend ID. Caller
// holds mu.
func (s *Service) persistLikedLocked() {
	if err := cache.Put(s.cacheStore, cache.KeyLikedGroup, s.likedGroup); err != nil {
		log.Warnf("persist liked group: %v", err)
	}
	if err := cache.Put(s.cacheStore, cache.KeyLikedBackendID, s.likedBackendID); err != nil {
		log.Warnf("persist liked group id: %v", err)
	}
}

func (s *Service) persistSessionLocked() {
	if err := cache.Put(s.cacheStore, cache.KeySessionDrills, s.sessionDrills); err != nil {
		log.Warnf("persist session drills: %v", err)
	}
}

func (s *Service) persistFiltersLocked() {
	if err := cache.Put(s.cacheStore, cache.KeySavedFilters, s.savedFilters); err != nil {
		log.Warnf("persist filter sets: %v", err)
	}
}
