package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pitchside/drillkit/internal/models"
)

func testCatalog() []models.Drill {
	return []models.Drill{
		{ID: "1", Title: "Toe Taps", Equipment: []string{"ball"}, TrainingStyle: "individual", Difficulty: models.DifficultyBeginner},
		{ID: "2", Title: "Cone Weave", Equipment: []string{"ball", "cones"}, TrainingStyle: "individual", Difficulty: models.DifficultyBeginner},
		{ID: "3", Title: "Near-Post Finishing", Equipment: []string{"ball", "goal"}, TrainingStyle: "individual", Difficulty: models.DifficultyIntermediate},
		{ID: "4", Title: "Rondo Keep-Away", Equipment: []string{"ball", "cones"}, TrainingStyle: "group", Difficulty: models.DifficultyIntermediate},
		{ID: "5", Title: "Ladder Footwork", Equipment: []string{"ladder", "indoor"}, TrainingStyle: "individual", Difficulty: models.DifficultyBeginner},
		{ID: "6", Title: "1v1 Gate Battles", Equipment: []string{"ball", "cones", "field"}, TrainingStyle: "group", Difficulty: models.DifficultyAdvanced},
	}
}

func ids(drills []models.Drill) []string {
	out := make([]string, 0, len(drills))
	for _, d := range drills {
		out = append(out, d.ID)
	}
	return out
}

func TestApplyEmptyCriteriaReturnsAll(t *testing.T) {
	catalog := testCatalog()
	out := Apply(catalog, models.FilterCriteria{})
	assert.Len(t, out, len(catalog))
}

func TestApplyEquipmentIntersection(t *testing.T) {
	out := Apply(testCatalog(), models.FilterCriteria{Equipment: []string{"cones"}})
	assert.Equal(t, []string{"2", "4", "6"}, ids(out))
}

func TestApplyEquipmentCaseAndWhitespaceInsensitive(t *testing.T) {
	out := Apply(testCatalog(), models.FilterCriteria{Equipment: []string{" Cones "}})
	assert.Equal(t, []string{"2", "4", "6"}, ids(out))
}

func TestApplyStyleCaseInsensitive(t *testing.T) {
	out := Apply(testCatalog(), models.FilterCriteria{TrainingStyle: "Group"})
	assert.Equal(t, []string{"4", "6"}, ids(out))
}

func TestApplyDifficulty(t *testing.T) {
	out := Apply(testCatalog(), models.FilterCriteria{Difficulty: models.DifficultyAdvanced})
	assert.Equal(t, []string{"6"}, ids(out))
}

func TestApplyLocationClassifier(t *testing.T) {
	tests := []struct {
		name     string
		location string
		want     []string
	}{
		{"field with goals needs a goal", models.LocationFieldWithGoals, []string{"3"}},
		{"small field excludes goal drills", models.LocationSmallField, []string{"1", "2", "4", "5", "6"}},
		{"indoor court drops open-field drills", models.LocationIndoorCourt, []string{"1", "2", "3", "4", "5"}},
		{"unknown location passes everything", "parking lot", []string{"1", "2", "3", "4", "5", "6"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Apply(testCatalog(), models.FilterCriteria{Location: tt.location})
			assert.Equal(t, tt.want, ids(out))
		})
	}
}

func TestApplyFacetsCompose(t *testing.T) {
	criteria := models.FilterCriteria{
		Equipment:     []string{"cones"},
		TrainingStyle: "group",
		Difficulty:    models.DifficultyIntermediate,
	}
	out := Apply(testCatalog(), criteria)
	assert.Equal(t, []string{"4"}, ids(out))
}

func TestApplyOrderIndependent(t *testing.T) {
	// Facets commute: applying them one at a time in any order matches a
	// single combined pass.
	combined := Apply(testCatalog(), models.FilterCriteria{
		Equipment:     []string{"ball"},
		TrainingStyle: "group",
	})

	step1 := Apply(testCatalog(), models.FilterCriteria{TrainingStyle: "group"})
	step2 := Apply(step1, models.FilterCriteria{Equipment: []string{"ball"}})

	assert.Equal(t, ids(combined), ids(step2))
}

func TestApplyPreservesOrder(t *testing.T) {
	out := Apply(testCatalog(), models.FilterCriteria{TrainingStyle: "individual"})
	assert.Equal(t, []string{"1", "2", "3", "5"}, ids(out))
}

func TestApplyTimeFacetDoesNotFilter(t *testing.T) {
	// The time facet feeds the budget selection, not the matcher.
	out := Apply(testCatalog(), models.FilterCriteria{Time: models.TimeBucket30})
	assert.Len(t, out, len(testCatalog()))
}
