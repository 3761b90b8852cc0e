package session

import (
	"context"

	"github.com/pitchside/drillkit/internal/backend"
	"github.com/pitchside/drillkit/internal/dedupe"
	"github.com/pitchside/drillkit/internal/events"
	"github.com/pitchside/drillkit/internal/log"
	"github.com/pitchside/drillkit/internal/models"
)

// SavedGroups returns a copy of the user's saved groups.
func (s *Service) SavedGroups() []models.Group {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Group(nil), s.savedGroups...)
}

// LikedGroup returns a copy of the liked-drills group.
func (s *Service) LikedGroup() models.Group {
	s.mu.Lock()
	defer s.mu.Unlock()
	liked := s.likedGroup
	liked.Drills = append([]models.Drill(nil), s.likedGroup.Drills...)
	return liked
}

// GroupBackendID resolves a local group identity to its backend identity,
// if the group has been persisted server-side.
func (s *Service) GroupBackendID(localID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.groupBackendIDs[localID]
	return id, ok
}

// CreateGroup creates a saved group locally and persists it server-side in
// the background. The backend identity is reconciled on success.
func (s *Service) CreateGroup(name, description string, drills []models.Drill) models.Group {
	group := models.NewGroup(name, description)
	group.Drills = dedupe.Drills(drills)

	s.mu.Lock()
	s.savedGroups = append(s.savedGroups, group)
	s.persistGroupsLocked()
	s.mu.Unlock()

	s.publish(events.GroupUpdated, map[string]interface{}{events.KeyGroupID: group.ID})
	if s.tel != nil {
		s.tel.TrackGroupCreated(len(group.Drills))
	}

	localID := group.ID
	backendDrillIDs := group.BackendDrillIDs()
	s.spawn("create_group", func(ctx context.Context) error {
		backendID, err := s.client.CreateGroup(ctx, name, description, backendDrillIDs, false)
		if err != nil {
			return err
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.loggingOut {
			return nil
		}
		s.groupBackendIDs[localID] = backendID
		s.persistGroupsLocked()
		return nil
	})

	return group
}

// DeleteGroup removes a saved group. Deleting an unknown group identity is a
// warned no-op.
func (s *Service) DeleteGroup(groupID string) {
	s.mu.Lock()
	idx := -1
	for i := range s.savedGroups {
		if s.savedGroups[i].ID == groupID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		log.Warnf("delete group: unknown group %s", groupID)
		return
	}
	s.savedGroups = append(s.savedGroups[:idx], s.savedGroups[idx+1:]...)
	backendID := s.groupBackendIDs[groupID]
	delete(s.groupBackendIDs, groupID)
	s.persistGroupsLocked()
	s.mu.Unlock()

	s.publish(events.GroupDeleted, map[string]interface{}{events.KeyGroupID: groupID})
	if s.tel != nil {
		s.tel.TrackGroupDeleted()
	}

	s.spawn("delete_group", func(ctx context.Context) error {
		if backendID == "" {
			return backend.ErrNoBackendID
		}
		return s.client.DeleteGroup(ctx, backendID)
	})
}

// AddDrillToGroup appends a drill to a saved group, dedupes, persists, and
// syncs in the background. An unknown group identity is a warned no-op.
func (s *Service) AddDrillToGroup(groupID string, drill models.Drill) {
	s.mu.Lock()
	idx := -1
	for i := range s.savedGroups {
		if s.savedGroups[i].ID == groupID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		log.Warnf("add drill: unknown group %s", groupID)
		return
	}
	s.savedGroups[idx].Drills = dedupe.Drills(append(s.savedGroups[idx].Drills, drill))
	backendGroupID := s.groupBackendIDs[groupID]
	s.persistGroupsLocked()
	s.mu.Unlock()

	s.publish(events.GroupUpdated, map[string]interface{}{
		events.KeyGroupID: groupID,
		events.KeyDrillID: drill.ID,
	})

	s.spawn("add_drill_to_group", func(ctx context.Context) error {
		if backendGroupID == "" || !drill.HasBackendID() {
			return backend.ErrNoBackendID
		}
		return s.client.AddDrillToGroup(ctx, backendGroupID, drill.BackendID)
	})
}

// RemoveDrillFromGroup removes a drill (by local identity) from a saved
// group. Unknown group or drill identities are warned no-ops.
func (s *Service) RemoveDrillFromGroup(groupID, drillID string) {
	s.mu.Lock()
	idx := -1
	for i := range s.savedGroups {
		if s.savedGroups[i].ID == groupID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		log.Warnf("remove drill: unknown group %s", groupID)
		return
	}

	var removed *models.Drill
	drills := s.savedGroups[idx].Drills
	for i := range drills {
		if drills[i].ID == drillID {
			d := drills[i]
			removed = &d
			s.savedGroups[idx].Drills = append(drills[:i], drills[i+1:]...)
			break
		}
	}
	if removed == nil {
		s.mu.Unlock()
		log.Warnf("remove drill: drill %s not in group %s", drillID, groupID)
		return
	}
	backendGroupID := s.groupBackendIDs[groupID]
	s.persistGroupsLocked()
	s.mu.Unlock()

	s.publish(events.GroupUpdated, map[string]interface{}{
		events.KeyGroupID: groupID,
		events.KeyDrillID: drillID,
	})

	backendDrillID := removed.BackendID
	s.spawn("remove_drill_from_group", func(ctx context.Context) error {
		if backendGroupID == "" || backendDrillID == "" {
			return backend.ErrNoBackendID
		}
		return s.client.RemoveDrillFromGroup(ctx, backendGroupID, backendDrillID)
	})
}

// AddDrillsToGroup bulk-adds drills to a saved group, or to the liked group
// when liked is true. The backend may create the target group server-side;
// its identity is reconciled on success.
func (s *Service) AddDrillsToGroup(groupID string, drills []models.Drill, liked bool) {
	s.mu.Lock()
	var backendGroupID string
	if liked {
		s.likedGroup.Drills = dedupe.Drills(append(s.likedGroup.Drills, drills...))
		backendGroupID = s.likedBackendID
		s.persistLikedLocked()
	} else {
		idx := -1
		for i := range s.savedGroups {
			if s.savedGroups[i].ID == groupID {
				idx = i
				break
			}
		}
		if idx < 0 {
			s.mu.Unlock()
			log.Warnf("add drills: unknown group %s", groupID)
			return
		}
		s.savedGroups[idx].Drills = dedupe.Drills(append(s.savedGroups[idx].Drills, drills...))
		backendGroupID = s.groupBackendIDs[groupID]
		s.persistGroupsLocked()
	}
	s.mu.Unlock()

	if liked {
		s.publish(events.LikedDrillsUpdated, nil)
	} else {
		s.publish(events.GroupUpdated, map[string]interface{}{events.KeyGroupID: groupID})
	}

	backendDrillIDs := make([]string, 0, len(drills))
	for _, d := range drills {
		if d.HasBackendID() {
			backendDrillIDs = append(backendDrillIDs, d.BackendID)
		}
	}

	s.spawn("add_drills_to_group", func(ctx context.Context) error {
		if len(backendDrillIDs) == 0 {
			return backend.ErrNoBackendID
		}
		returnedID, err := s.client.AddMultipleDrillsToAnyGroup(ctx, backendGroupID, backendDrillIDs, liked)
		if err != nil {
			return err
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.loggingOut {
			return nil
		}
		if liked {
			s.likedBackendID = returnedID
			s.persistLikedLocked()
		} else if returnedID != "" {
			s.groupBackendIDs[groupID] = returnedID
			s.persistGroupsLocked()
		}
		return nil
	})
}

// ToggleDrillLike flips a drill's membership in the liked group and reports
// the new state. The optimistic local flip stands even if the backend call
// fails.
func (s *Service) ToggleDrillLike(drill models.Drill) bool {
	s.mu.Lock()
	liked := false
	if s.likedGroup.Contains(drill) {
		kept := make([]models.Drill, 0, len(s.likedGroup.Drills))
		for _, d := range s.likedGroup.Drills {
			if !d.Same(drill) {
				kept = append(kept, d)
			}
		}
		s.likedGroup.Drills = kept
	} else {
		s.likedGroup.Drills = dedupe.Drills(append(s.likedGroup.Drills, drill))
		liked = true
	}
	s.persistLikedLocked()
	s.mu.Unlock()

	s.publish(events.LikedDrillsUpdated, map[string]interface{}{events.KeyDrillID: drill.ID})
	if s.tel != nil {
		s.tel.TrackDrillLiked(liked)
	}

	s.spawn("toggle_drill_like", func(ctx context.Context) error {
		if !drill.HasBackendID() {
			return backend.ErrNoBackendID
		}
		return s.client.ToggleDrillLike(ctx, drill.BackendID)
	})

	return liked
}

// IsLiked reports whether the drill is in the liked group.
func (s *Service) IsLiked(drill models.Drill) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.likedGroup.Contains(drill)
}
