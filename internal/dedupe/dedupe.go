// Package dedupe removes repeated logical drills from groups.
//
// A drill is a duplicate if its identity OR its title has already been seen
// in the group. The dual key is intentional: locally created and
// backend-hydrated copies of the same logical drill can carry different
// identities but share a title.
package dedupe

import (
	"github.com/pitchside/drillkit/internal/models"
)

// Group returns a copy of g with duplicate drills removed. The pass is
// left-to-right, so the first occurrence wins and relative order is
// preserved. The operation is idempotent.
func Group(g models.Group) models.Group {
	g.Drills = Drills(g.Drills)
	return g
}

// Groups deduplicates every group in the slice.
func Groups(groups []models.Group) []models.Group {
	out := make([]models.Group, 0, len(groups))
	for _, g := range groups {
		out = append(out, Group(g))
	}
	return out
}

// Drills removes duplicates from a drill slice, first occurrence wins.
func Drills(drills []models.Drill) []models.Drill {
	seenIDs := make(map[string]struct{}, len(drills))
	seenTitles := make(map[string]struct{}, len(drills))

	out := make([]models.Drill, 0, len(drills))
	for _, d := range drills {
		if _, ok := seenIDs[d.ID]; ok {
			continue
		}
		if _, ok := seenTitles[d.Title]; ok {
			continue
		}
		seenIDs[d.ID] = struct{}{}
		seenTitles[d.Title] = struct{}{}
		out = append(out, d)
	}
	return out
}
