package catalog

import "github.com/pitchside/drillkit/internal/models"

// seedDrill builds a catalog drill with a stable local identity. Seed
// identities are fixed strings so repeated loads of the built-in dataset
// dedupe cleanly against each other.
func seedDrill(id string, d models.Drill) models.Drill {
	d.ID = "seed-" + id
	return d
}

// DefaultDrills is the built-in dataset used when neither a cached snapshot
// nor the backend catalog is available.
func DefaultDrills() []models.Drill {
	return []models.Drill{
		seedDrill("toe-taps", models.Drill{
			Title: "Toe Taps", Skill: "ball mastery",
			SubSkills: []string{"touch", "rhythm"},
			Sets:      3, Reps: 30, Duration: 5,
			Description:   "Alternate feet tapping the top of a stationary ball.",
			Instructions:  []string{"Stand over the ball", "Tap the top with alternating soles", "Keep a steady rhythm"},
			Tips:          []string{"Stay on your toes", "Look up every few taps"},
			Equipment:     []string{"ball"},
			TrainingStyle: "individual", Difficulty: models.DifficultyBeginner,
		}),
		seedDrill("cone-weave", models.Drill{
			Title: "Cone Weave", Skill: "dribbling",
			SubSkills: []string{"close control", "change of direction"},
			Sets:      4, Reps: 6, Duration: 10,
			Description:   "Dribble through a line of cones using both feet.",
			Instructions:  []string{"Set six cones a yard apart", "Weave through using inside and outside touches", "Jog back and repeat"},
			Tips:          []string{"Small touches between cones"},
			Equipment:     []string{"ball", "cones"},
			TrainingStyle: "individual", Difficulty: models.DifficultyBeginner,
		}),
		seedDrill("wall-passes", models.Drill{
			Title: "Wall Passes", Skill: "passing",
			SubSkills: []string{"first touch", "weight of pass"},
			Sets:      3, Reps: 20, Duration: 10,
			Description:   "One- and two-touch passing against a rebound wall.",
			Instructions:  []string{"Stand five yards from the wall", "Pass and control the rebound", "Alternate feet"},
			Equipment:     []string{"ball", "wall"},
			TrainingStyle: "individual", Difficulty: models.DifficultyBeginner,
		}),
		seedDrill("finishing-near-post", models.Drill{
			Title: "Near-Post Finishing", Skill: "shooting",
			SubSkills: []string{"placement", "composure"},
			Sets:      4, Reps: 8, Duration: 15,
			Description:   "Receive on the edge of the box and finish low to the near post.",
			Instructions:  []string{"Lay the ball out of your feet", "Strike low across the keeper's near side", "Collect and reset"},
			Tips:          []string{"Head down through contact"},
			Equipment:     []string{"ball", "goal"},
			TrainingStyle: "individual", Difficulty: models.DifficultyIntermediate,
		}),
		seedDrill("crossbar-volleys", models.Drill{
			Title: "Volley Finishing", Skill: "shooting",
			SubSkills: []string{"technique", "timing"},
			Sets:      3, Reps: 10, Duration: 20,
			Description:   "Toss, let bounce, and volley on target from the penalty spot.",
			Equipment:     []string{"ball", "goal"},
			TrainingStyle: "individual", Difficulty: models.DifficultyAdvanced,
		}),
		seedDrill("rondo-keepaway", models.Drill{
			Title: "Rondo Keep-Away", Skill: "passing",
			SubSkills: []string{"movement", "scanning"},
			Sets:      2, Reps: 1, Duration: 15,
			Description:   "Four-versus-one possession circle in a tight grid.",
			Equipment:     []string{"ball", "cones"},
			TrainingStyle: "group", Difficulty: models.DifficultyIntermediate,
		}),
		seedDrill("ladder-footwork", models.Drill{
			Title: "Ladder Footwork", Skill: "agility",
			SubSkills: []string{"foot speed", "coordination"},
			Sets:      5, Reps: 4, Duration: 10,
			Description:   "Quick-feet patterns through an agility ladder.",
			Equipment:     []string{"ladder", "indoor"},
			TrainingStyle: "individual", Difficulty: models.DifficultyBeginner,
		}),
		seedDrill("juggling-circuit", models.Drill{
			Title: "Juggling Circuit", Skill: "ball mastery",
			SubSkills: []string{"touch", "control"},
			Sets:      3, Reps: 50, Duration: 10,
			Description:   "Juggle in sequence: feet only, thigh-foot, then free surface.",
			Equipment:     []string{"ball"},
			TrainingStyle: "individual", Difficulty: models.DifficultyIntermediate,
		}),
		seedDrill("one-v-one-gates", models.Drill{
			Title: "1v1 Gate Battles", Skill: "dribbling",
			SubSkills: []string{"feints", "acceleration"},
			Sets:      4, Reps: 5, Duration: 15,
			Description:   "Beat a defender through one of two cone gates.",
			Equipment:     []string{"ball", "cones", "field"},
			TrainingStyle: "group", Difficulty: models.DifficultyAdvanced,
		}),
		seedDrill("long-range-switches", models.Drill{
			Title: "Long-Range Switches", Skill: "passing",
			SubSkills: []string{"driven pass", "lofted pass"},
			Sets:      3, Reps: 12, Duration: 20,
			Description:   "Switch play between two grids with driven and lofted balls.",
			Equipment:     []string{"ball", "cones", "field"},
			TrainingStyle: "group", Difficulty: models.DifficultyAdvanced,
		}),
	}
}
