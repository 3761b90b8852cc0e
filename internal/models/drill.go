// Package models defines the core data types of the training engine.
package models

// Difficulty levels used by the catalog and the filter facets.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Drill is one catalog exercise. ID is the local identity, generated on this
// device; BackendID is the server's identity and is empty for drills that
// have never been seen by the backend (seeds, offline creations).
type Drill struct {
	ID            string   `json:"id"`
	BackendID     string   `json:"backend_id,omitempty"`
	Title         string   `json:"title"`
	Skill         string   `json:"skill,omitempty"`
	SubSkills     []string `json:"sub_skills,omitempty"`
	Sets          int      `json:"sets,omitempty"`
	Reps          int      `json:"reps,omitempty"`
	Duration      int      `json:"duration,omitempty"` // minutes
	Description   string   `json:"description,omitempty"`
	Instructions  []string `json:"instructions,omitempty"`
	Tips          []string `json:"tips,omitempty"`
	Equipment     []string `json:"equipment,omitempty"`
	TrainingStyle string   `json:"training_style,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty"`
	VideoURL      string   `json:"video_url,omitempty"`
}

// Same reports whether two drills are the same logical drill: identical
// identity or identical title. Locally created and backend-hydrated copies of
// one drill can differ in identity but share a title.
func (d Drill) Same(other Drill) bool {
	return d.ID == other.ID || d.Title == other.Title
}

// HasBackendID reports whether the drill is known to the backend.
func (d Drill) HasBackendID() bool {
	return d.BackendID != ""
}
