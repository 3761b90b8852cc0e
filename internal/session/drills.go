package session

import (
	"github.com/pitchside/drillkit/internal/dedupe"
	"github.com/pitchside/drillkit/internal/events"
	"github.com/pitchside/drillkit/internal/filter"
	"github.com/pitchside/drillkit/internal/log"
	"github.com/pitchside/drillkit/internal/models"
	"github.com/pitchside/drillkit/internal/selection"
)

// SessionDrills returns the ordered drills of the active session.
func (s *Service) SessionDrills() []*models.EditableDrillInstance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*models.EditableDrillInstance(nil), s.sessionDrills...)
}

// UpdateSessionByFilters rebuilds the active session: the catalog is
// narrowed by the current filter facets, then (when a time bucket is set)
// the time-budget heuristic picks the drills that fit. The previous session
// is replaced.
func (s *Service) UpdateSessionByFilters() []*models.EditableDrillInstance {
	s.mu.Lock()
	criteria := s.preferencesLocked().Criteria()
	drills := append([]models.Drill(nil), s.catalogDrills...)
	s.mu.Unlock()

	matched := filter.Apply(drills, criteria)
	if target := criteria.Time.Minutes(); target > 0 {
		matched = selection.ForBudget(matched, target)
	}
	matched = dedupe.Drills(matched)

	instances := make([]*models.EditableDrillInstance, 0, len(matched))
	for _, d := range matched {
		instances = append(instances, models.NewEditableDrill(d))
	}

	s.mu.Lock()
	s.sessionDrills = instances
	s.persistSessionLocked()
	s.mu.Unlock()

	s.publish(events.SessionUpdated, map[string]interface{}{
		"drill_count": len(instances),
	})
	if s.tel != nil {
		s.tel.TrackSessionBuilt(len(instances), selection.Total(matched), criteria.Time.Minutes())
	}

	return append([]*models.EditableDrillInstance(nil), instances...)
}

// AddDrillToSession appends a drill to the active session. Drills already in
// the session (by dual-key equality) are skipped.
func (s *Service) AddDrillToSession(drill models.Drill) {
	s.mu.Lock()
	for _, inst := range s.sessionDrills {
		if inst.Drill.Same(drill) {
			s.mu.Unlock()
			return
		}
	}
	s.sessionDrills = append(s.sessionDrills, models.NewEditableDrill(drill))
	s.persistSessionLocked()
	s.mu.Unlock()

	s.publish(events.SessionUpdated, map[string]interface{}{events.KeyDrillID: drill.ID})
}

// RemoveDrillFromSession removes a drill instance by its drill's local
// identity. Removing an unknown drill is a warned no-op.
func (s *Service) RemoveDrillFromSession(drillID string) {
	s.mu.Lock()
	idx := -1
	for i, inst := range s.sessionDrills {
		if inst.Drill.ID == drillID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		log.Warnf("remove from session: unknown drill %s", drillID)
		return
	}
	s.sessionDrills = append(s.sessionDrills[:idx], s.sessionDrills[idx+1:]...)
	s.persistSessionLocked()
	s.mu.Unlock()

	s.publish(events.SessionUpdated, map[string]interface{}{events.KeyDrillID: drillID})
}

// ClearSession destroys every session drill instance.
func (s *Service) ClearSession() {
	s.mu.Lock()
	s.sessionDrills = []*models.EditableDrillInstance{}
	s.persistSessionLocked()
	s.mu.Unlock()

	s.publish(events.SessionUpdated, nil)
}

// CompleteSet records a finished set on a session drill.
func (s *Service) CompleteSet(drillID string) {
	s.mu.Lock()
	for _, inst := range s.sessionDrills {
		if inst.Drill.ID == drillID {
			inst.CompleteSet()
			s.persistSessionLocked()
			s.mu.Unlock()
			s.publish(events.SessionUpdated, map[string]interface{}{events.KeyDrillID: drillID})
			return
		}
	}
	s.mu.Unlock()
	log.Warnf("complete set: unknown drill %s", drillID)
}

// OverrideDrillTotals lets the user edit a session drill's planned totals.
func (s *Service) OverrideDrillTotals(drillID string, sets, reps, duration int) {
	s.mu.Lock()
	for _, inst := range s.sessionDrills {
		if inst.Drill.ID == drillID {
			inst.SetTotals(sets, reps, duration)
			s.persistSessionLocked()
			s.mu.Unlock()
			s.publish(events.SessionUpdated, map[string]interface{}{events.KeyDrillID: drillID})
			return
		}
	}
	s.mu.Unlock()
	log.Warnf("override totals: unknown drill %s", drillID)
}
