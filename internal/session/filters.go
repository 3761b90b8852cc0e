package session

import (
	"github.com/pitchside/drillkit/internal/events"
	"github.com/pitchside/drillkit/internal/log"
	"github.com/pitchside/drillkit/internal/models"
)

// SavedFilterSets returns a copy of the user's saved filter snapshots.
func (s *Service) SavedFilterSets() []models.SavedFilterSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.SavedFilterSet(nil), s.savedFilters...)
}

// SaveFilterSet snapshots the current facets under a name.
func (s *Service) SaveFilterSet(name string) models.SavedFilterSet {
	s.mu.Lock()
	set := models.NewSavedFilterSet(name, s.preferencesLocked().Criteria())
	s.savedFilters = append(s.savedFilters, set)
	s.persistFiltersLocked()
	s.mu.Unlock()

	s.publish(events.FiltersUpdated, map[string]interface{}{"filter_id": set.ID})
	return set
}

// LoadFilterSet applies a saved snapshot to the current facets. The applied
// facets count as one preference mutation for the sync controller. Loading
// an unknown snapshot is a warned no-op.
func (s *Service) LoadFilterSet(id string) bool {
	s.mu.Lock()
	var found *models.SavedFilterSet
	for i := range s.savedFilters {
		if s.savedFilters[i].ID == id {
			found = &s.savedFilters[i]
			break
		}
	}
	if found == nil {
		s.mu.Unlock()
		log.Warnf("load filter set: unknown id %s", id)
		return false
	}
	c := found.Criteria
	s.timeBucket = c.Time
	s.equipment = append([]string(nil), c.Equipment...)
	s.trainingStyle = c.TrainingStyle
	s.location = c.Location
	s.difficulty = c.Difficulty
	s.mu.Unlock()

	s.afterFacetMutation()
	s.publish(events.FiltersUpdated, map[string]interface{}{"filter_id": id})
	if s.tel != nil {
		s.tel.TrackFilterApplied(countFacets(c))
	}
	return true
}

// DeleteFilterSet removes a saved snapshot. Unknown ids are warned no-ops.
func (s *Service) DeleteFilterSet(id string) {
	s.mu.Lock()
	idx := -1
	for i := range s.savedFilters {
		if s.savedFilters[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		log.Warnf("delete filter set: unknown id %s", id)
		return
	}
	s.savedFilters = append(s.savedFilters[:idx], s.savedFilters[idx+1:]...)
	s.persistFiltersLocked()
	s.mu.Unlock()

	s.publish(events.FiltersUpdated, map[string]interface{}{"filter_id": id})
}

func countFacets(c models.FilterCriteria) int {
	n := 0
	if c.Time != models.TimeBucketNone {
		n++
	}
	if len(c.Equipment) > 0 {
		n++
	}
	if c.TrainingStyle != "" {
		n++
	}
	if c.Location != "" {
		n++
	}
	if c.Difficulty != "" {
		n++
	}
	return n
}
