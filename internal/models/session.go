package models

// EditableDrillInstance is one drill placed in the active session, carrying
// editable planned totals and set-by-set progress. The embedded drill is the
// catalog snapshot at placement time.
type EditableDrillInstance struct {
	Drill         Drill `json:"drill"`
	SetsDone      int   `json:"sets_done"`
	TotalSets     int   `json:"total_sets"`
	TotalReps     int   `json:"total_reps"`
	TotalDuration int   `json:"total_duration"` // minutes
	Completed     bool  `json:"completed"`
}

// NewEditableDrill seeds an instance from a catalog drill's planned totals.
func NewEditableDrill(d Drill) *EditableDrillInstance {
	return &EditableDrillInstance{
		Drill:         d,
		TotalSets:     d.Sets,
		TotalReps:     d.Reps,
		TotalDuration: d.Duration,
	}
}

// CompleteSet records one finished set. Finishing the final set marks the
// instance completed; further calls are no-ops.
func (e *EditableDrillInstance) CompleteSet() {
	if e.Completed {
		return
	}
	e.SetsDone++
	if e.SetsDone >= e.TotalSets {
		e.SetsDone = e.TotalSets
		e.Completed = true
	}
}

// SetTotals overrides the planned totals. Zero values leave the current
// total untouched. Progress is clamped into the new range.
func (e *EditableDrillInstance) SetTotals(sets, reps, duration int) {
	if sets > 0 {
		e.TotalSets = sets
	}
	if reps > 0 {
		e.TotalReps = reps
	}
	if duration > 0 {
		e.TotalDuration = duration
	}
	if e.SetsDone > e.TotalSets {
		e.SetsDone = e.TotalSets
	}
	e.Completed = e.TotalSets > 0 && e.SetsDone >= e.TotalSets
}

// Reset clears all progress.
func (e *EditableDrillInstance) Reset() {
	e.SetsDone = 0
	e.Completed = false
}
