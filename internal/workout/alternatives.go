package workout

import (
	"sort"

	"github.com/ompo-dev/gymrats/internal/catalog"
)

const maxAlternatives = 2

// Fixed reasons attached to alternative suggestions. These strings travel to
// the client as-is.
const (
	reasonNoEquipment    = "no equipment available"
	reasonBasicEquipment = "basic equipment available"
	reasonLowJointImpact = "lower joint impact"
	reasonReducedBack    = "reduced back load"
	reasonSameMuscle     = "alternative for same muscle group"
)

// rowPulldownFamily are name fragments pruned under back sensitivity.
var rowPulldownFamily = []string{"remada", "puxada", "row", "pulldown"}

// simpleEquipment is what a sparsely equipped gym is assumed to have.
var simpleEquipment = map[string]bool{
	"dumbbell":    true,
	"barbell":     true,
	"plates":      true,
	"bench":       true,
	"cable":       true,
	"pull-up-bar": true,
}

// generateAlternatives picks up to two substitutes for the chosen exercise
// from the same primary muscle groups. Deterministic given catalog order;
// ties keep catalog order.
func generateAlternatives(
	exercises []catalog.ExerciseInfo,
	chosen catalog.ExerciseInfo,
	gymType GymType,
	limitationTags []string,
	usedNames map[string]bool,
) []Alternative {
	pool := make([]catalog.ExerciseInfo, 0, len(exercises))
	for _, e := range exercises {
		if e.ID == chosen.ID || usedNames[e.Name] {
			continue
		}
		if sharedPrimaryCount(e, chosen) == 0 {
			continue
		}
		pool = append(pool, e)
	}

	backSensitive := hasBackSensitivity(limitationTags)
	if backSensitive {
		pruned := pool[:0]
		for _, e := range pool {
			if !nameContainsAny(e, rowPulldownFamily) {
				pruned = append(pruned, e)
			}
		}
		pool = pruned
	}

	var picks []Alternative
	picked := make(map[string]bool, maxAlternatives)
	addPick := func(e catalog.ExerciseInfo, reason string) {
		if len(picks) >= maxAlternatives || picked[e.Name] {
			return
		}
		picked[e.Name] = true
		picks = append(picks, Alternative{Name: e.Name, Reason: reason, ExerciseID: e.ID})
	}

	for _, e := range pool {
		if len(picks) >= maxAlternatives {
			break
		}
		switch {
		case gymType == GymBodyweightOnly && bodyweightOnly(e):
			addPick(e, reasonNoEquipment)
		case gymType == GymBasic && equipmentSubset(e, simpleEquipment):
			addPick(e, reasonBasicEquipment)
		}
	}

	if hasJointSensitivity(limitationTags) {
		for _, e := range pool {
			if len(picks) >= maxAlternatives {
				break
			}
			if hasAnyEquipment(e, "machine", "cable") {
				addPick(e, reasonLowJointImpact)
			}
		}
	}

	if len(picks) < maxAlternatives {
		remaining := make([]catalog.ExerciseInfo, 0, len(pool))
		for _, e := range pool {
			if !picked[e.Name] {
				remaining = append(remaining, e)
			}
		}
		sort.SliceStable(remaining, func(i, j int) bool {
			return sharedPrimaryCount(remaining[i], chosen) > sharedPrimaryCount(remaining[j], chosen)
		})
		reason := reasonSameMuscle
		if backSensitive {
			reason = reasonReducedBack
		}
		for _, e := range remaining {
			if len(picks) >= maxAlternatives {
				break
			}
			addPick(e, reason)
		}
	}

	return picks
}

func sharedPrimaryCount(e, chosen catalog.ExerciseInfo) int {
	count := 0
	for _, m := range e.PrimaryMuscles {
		for _, cm := range chosen.PrimaryMuscles {
			if m == cm {
				count++
			}
		}
	}
	return count
}

func bodyweightOnly(e catalog.ExerciseInfo) bool {
	for _, tag := range e.Equipment {
		if tag != "bodyweight" {
			return false
		}
	}
	return true
}

func equipmentSubset(e catalog.ExerciseInfo, allowed map[string]bool) bool {
	for _, tag := range e.Equipment {
		if !allowed[tag] {
			return false
		}
	}
	return true
}

func hasAnyEquipment(e catalog.ExerciseInfo, tags ...string) bool {
	for _, tag := range e.Equipment {
		for _, want := range tags {
			if tag == want {
				return true
			}
		}
	}
	return false
}
