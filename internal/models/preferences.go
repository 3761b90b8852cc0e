package models

// Preferences is the full preference snapshot synced to the backend: the
// five filter facets plus the user's skill focus. Syncs always carry the
// whole snapshot; the backend applies last-writer-wins.
type Preferences struct {
	Time           TimeBucket `json:"time,omitempty"`
	Equipment      []string   `json:"equipment,omitempty"`
	TrainingStyle  string     `json:"training_style,omitempty"`
	Location       string     `json:"location,omitempty"`
	Difficulty     string     `json:"difficulty,omitempty"`
	SelectedSkills []string   `json:"selected_skills,omitempty"`
}

// Criteria returns the filter criteria described by the facet fields.
func (p Preferences) Criteria() FilterCriteria {
	return FilterCriteria{
		Time:          p.Time,
		Equipment:     p.Equipment,
		TrainingStyle: p.TrainingStyle,
		Location:      p.Location,
		Difficulty:    p.Difficulty,
	}
}
