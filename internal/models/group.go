package models

import "github.com/google/uuid"

// LikedGroupName is the display name of the implicit liked-drills group.
const LikedGroupName = "Liked Drills"

// likedGroupNamespace is the UUIDv5 namespace for deriving liked-group
// identities from user identities.
var likedGroupNamespace = uuid.MustParse("9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d")

// Group is a named collection of drills. The liked-drills group uses the same
// shape with a deterministic identity.
type Group struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Drills      []Drill `json:"drills"`
}

// NewGroup creates an empty saved group with a fresh identity.
func NewGroup(name, description string) Group {
	return Group{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Drills:      []Drill{},
	}
}

// LikedGroupID derives the liked group's identity from the user's identity.
// The same user always gets the same identity, across devices and reinstalls.
func LikedGroupID(userID string) string {
	return uuid.NewSHA1(likedGroupNamespace, []byte(userID)).String()
}

// NewLikedGroup creates the empty liked-drills group for a user.
func NewLikedGroup(userID string) Group {
	return Group{
		ID:     LikedGroupID(userID),
		Name:   LikedGroupName,
		Drills: []Drill{},
	}
}

// Contains reports whether the group holds the drill, by dual-key equality.
func (g Group) Contains(drill Drill) bool {
	for _, d := range g.Drills {
		if d.Same(drill) {
			return true
		}
	}
	return false
}

// DrillIDs returns the local identities of the group's drills.
func (g Group) DrillIDs() []string {
	ids := make([]string, 0, len(g.Drills))
	for _, d := range g.Drills {
		ids = append(ids, d.ID)
	}
	return ids
}

// BackendDrillIDs returns the backend identities of the group's drills,
// skipping drills the backend has never seen.
func (g Group) BackendDrillIDs() []string {
	ids := make([]string, 0, len(g.Drills))
	for _, d := range g.Drills {
		if d.HasBackendID() {
			ids = append(ids, d.BackendID)
		}
	}
	return ids
}
