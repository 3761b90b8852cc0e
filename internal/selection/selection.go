// Package selection chooses which drills fit inside a session's time budget.
//
// The problem is a bounded-capacity subset sum; an optimal solver is not
// required, so a deterministic two-pass greedy heuristic is used instead.
package selection

import (
	"sort"

	"github.com/pitchside/drillkit/internal/models"
)

// slackThreshold is the leftover budget (minutes) above which the fill pass
// tries to place additional drills.
const slackThreshold = 5

// ForBudget selects a subset of drills whose total duration fits within
// targetMinutes, minimizing leftover budget. Output order is selection order.
// The returned total never exceeds the target.
func ForBudget(drills []models.Drill, targetMinutes int) []models.Drill {
	if len(drills) == 0 || targetMinutes <= 0 {
		return []models.Drill{}
	}

	ascending := make([]models.Drill, len(drills))
	copy(ascending, drills)
	sort.SliceStable(ascending, func(i, j int) bool {
		return ascending[i].Duration < ascending[j].Duration
	})

	// Pass 1: accumulate shortest-first, skipping drills that would
	// overflow. Phrased as filter-accumulate so a pre-selected partial
	// result could be tolerated later.
	selected := make([]models.Drill, 0, len(ascending))
	picked := make(map[string]struct{}, len(ascending))
	total := 0
	for _, d := range ascending {
		if total+d.Duration > targetMinutes {
			continue
		}
		selected = append(selected, d)
		picked[d.ID] = struct{}{}
		total += d.Duration
	}

	// Pass 2: fill the gap with the longest remaining drills that still fit.
	if targetMinutes-total > slackThreshold {
		for i := len(ascending) - 1; i >= 0; i-- {
			d := ascending[i]
			if _, ok := picked[d.ID]; ok {
				continue
			}
			if total+d.Duration > targetMinutes {
				continue
			}
			selected = append(selected, d)
			picked[d.ID] = struct{}{}
			total += d.Duration
		}
	}

	return selected
}

// Total returns the summed duration of the drills in minutes.
func Total(drills []models.Drill) int {
	total := 0
	for _, d := range drills {
		total += d.Duration
	}
	return total
}
