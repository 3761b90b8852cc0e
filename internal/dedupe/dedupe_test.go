package dedupe

import (
	"testing"

	"github.com/pitchside/drillkit/internal/models"
)

func drill(id, title string) models.Drill {
	return models.Drill{ID: id, Title: title}
}

func TestDrillsRemovesDuplicateIDs(t *testing.T) {
	in := []models.Drill{
		drill("1", "Toe Taps"),
		drill("1", "Toe Taps Copy"),
		drill("2", "Cone Weave"),
	}
	out := Drills(in)

	if len(out) != 2 {
		t.Fatalf("expected 2 drills, got %d", len(out))
	}
	if out[0].Title != "Toe Taps" || out[1].Title != "Cone Weave" {
		t.Errorf("unexpected survivors: %v", out)
	}
}

func TestDrillsRemovesDuplicateTitles(t *testing.T) {
	// Different identities, same title: the first occurrence wins.
	in := []models.Drill{
		drill("1", "Wall Passes"),
		drill("2", "Wall Passes"),
	}
	out := Drills(in)

	if len(out) != 1 {
		t.Fatalf("expected 1 drill, got %d", len(out))
	}
	if out[0].ID != "1" {
		t.Errorf("expected first occurrence to win, got id %s", out[0].ID)
	}
}

func TestDrillsPreservesOrder(t *testing.T) {
	in := []models.Drill{
		drill("3", "C"),
		drill("1", "A"),
		drill("2", "B"),
		drill("1", "A again"),
	}
	out := Drills(in)

	want := []string{"3", "1", "2"}
	if len(out) != len(want) {
		t.Fatalf("expected %d drills, got %d", len(want), len(out))
	}
	for i, id := range want {
		if out[i].ID != id {
			t.Errorf("position %d: expected id %s, got %s", i, id, out[i].ID)
		}
	}
}

func TestDrillsIdempotent(t *testing.T) {
	in := []models.Drill{
		drill("1", "A"),
		drill("2", "A"),
		drill("1", "B"),
		drill("3", "C"),
	}
	once := Drills(in)
	twice := Drills(once)

	if len(once) != len(twice) {
		t.Fatalf("second pass changed length: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Errorf("second pass changed position %d", i)
		}
	}
}

func TestDrillsEmpty(t *testing.T) {
	out := Drills(nil)
	if out == nil || len(out) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", out)
	}
}

func TestGroupDoesNotMutateInput(t *testing.T) {
	g := models.Group{
		ID:   "g1",
		Name: "Warmups",
		Drills: []models.Drill{
			drill("1", "A"),
			drill("1", "A"),
		},
	}
	out := Group(g)

	if len(out.Drills) != 1 {
		t.Fatalf("expected 1 drill after dedupe, got %d", len(out.Drills))
	}
	if len(g.Drills) != 2 {
		t.Errorf("input group was mutated")
	}
	if out.ID != g.ID || out.Name != g.Name {
		t.Errorf("group metadata changed: %+v", out)
	}
}

func TestGroupsDedupesEveryGroup(t *testing.T) {
	in := []models.Group{
		{ID: "g1", Drills: []models.Drill{drill("1", "A"), drill("2", "A")}},
		{ID: "g2", Drills: []models.Drill{drill("3", "B"), drill("3", "B")}},
	}
	out := Groups(in)

	if len(out) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(out))
	}
	if len(out[0].Drills) != 1 || len(out[1].Drills) != 1 {
		t.Errorf("expected each group deduped to 1 drill, got %d and %d",
			len(out[0].Drills), len(out[1].Drills))
	}
}
