package models

import "github.com/google/uuid"

// TimeBucket is a discrete session-length choice.
type TimeBucket string

// Available session-length buckets. The zero value means no time facet.
const (
	TimeBucketNone TimeBucket = ""
	TimeBucket15   TimeBucket = "15min"
	TimeBucket30   TimeBucket = "30min"
	TimeBucket45   TimeBucket = "45min"
	TimeBucket60   TimeBucket = "60min"
	TimeBucket90   TimeBucket = "90min"
)

// Minutes returns the bucket's budget in minutes, 0 for none or unknown.
func (t TimeBucket) Minutes() int {
	switch t {
	case TimeBucket15:
		return 15
	case TimeBucket30:
		return 30
	case TimeBucket45:
		return 45
	case TimeBucket60:
		return 60
	case TimeBucket90:
		return 90
	default:
		return 0
	}
}

// Recognized training locations. The filter classifies drills by what each
// location offers; unrecognized labels pass everything.
const (
	LocationFieldWithGoals = "field with goals"
	LocationSmallField     = "small field"
	LocationIndoorCourt    = "indoor court"
)

// FilterCriteria is the five-facet filter applied to the drill catalog.
// Empty facets do not filter.
type FilterCriteria struct {
	Time          TimeBucket `json:"time,omitempty"`
	Equipment     []string   `json:"equipment,omitempty"`
	TrainingStyle string     `json:"training_style,omitempty"`
	Location      string     `json:"location,omitempty"`
	Difficulty    string     `json:"difficulty,omitempty"`
}

// IsEmpty reports whether no facet is set.
func (c FilterCriteria) IsEmpty() bool {
	return c.Time == TimeBucketNone &&
		len(c.Equipment) == 0 &&
		c.TrainingStyle == "" &&
		c.Location == "" &&
		c.Difficulty == ""
}

// SavedFilterSet is a named snapshot of filter criteria.
type SavedFilterSet struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Criteria FilterCriteria `json:"criteria"`
}

// NewSavedFilterSet snapshots criteria under a name with a fresh identity.
func NewSavedFilterSet(name string, criteria FilterCriteria) SavedFilterSet {
	return SavedFilterSet{
		ID:       uuid.New().String(),
		Name:     name,
		Criteria: criteria,
	}
}
