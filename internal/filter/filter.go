// Package filter narrows drill collections by the user's filter criteria.
//
// Each facet is an independent narrowing pass over the input; facets commute,
// so evaluation order does not matter. The filter is pure and preserves the
// relative order of surviving drills.
package filter

import (
	"strings"

	"github.com/pitchside/drillkit/internal/models"
)

// Apply returns the drills that satisfy every set facet of the criteria.
// Criteria with all facets empty return the input unchanged.
func Apply(drills []models.Drill, criteria models.FilterCriteria) []models.Drill {
	if criteria.IsEmpty() {
		return drills
	}

	out := make([]models.Drill, 0, len(drills))
	for _, d := range drills {
		if !matchesEquipment(d, criteria.Equipment) {
			continue
		}
		if !matchesStyle(d, criteria.TrainingStyle) {
			continue
		}
		if !matchesLocation(d, criteria.Location) {
			continue
		}
		if !matchesDifficulty(d, criteria.Difficulty) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// matchesEquipment passes when the normalized intersection of the drill's
// equipment tags with the criteria set is non-empty. An empty criteria set
// does not filter.
func matchesEquipment(d models.Drill, equipment []string) bool {
	if len(equipment) == 0 {
		return true
	}
	want := make(map[string]struct{}, len(equipment))
	for _, e := range equipment {
		want[normalize(e)] = struct{}{}
	}
	for _, tag := range d.Equipment {
		if _, ok := want[normalize(tag)]; ok {
			return true
		}
	}
	return false
}

func matchesStyle(d models.Drill, style string) bool {
	if style == "" {
		return true
	}
	return strings.EqualFold(d.TrainingStyle, style)
}

func matchesDifficulty(d models.Drill, difficulty string) bool {
	if difficulty == "" {
		return true
	}
	return strings.EqualFold(d.Difficulty, difficulty)
}

// matchesLocation classifies drills by what the training location offers.
// Unrecognized location labels pass every drill (fail open).
func matchesLocation(d models.Drill, location string) bool {
	switch normalize(location) {
	case "":
		return true
	case models.LocationFieldWithGoals:
		return hasEquipmentTag(d, "goal")
	case models.LocationSmallField:
		return !hasEquipmentTag(d, "goal")
	case models.LocationIndoorCourt:
		return hasEquipmentTag(d, "indoor") || !hasEquipmentTag(d, "field")
	default:
		return true
	}
}

// hasEquipmentTag reports whether any equipment tag contains the substring.
func hasEquipmentTag(d models.Drill, substr string) bool {
	for _, tag := range d.Equipment {
		if strings.Contains(normalize(tag), substr) {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
