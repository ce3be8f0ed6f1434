package workout

import "github.com/ompo-dev/gymrats/internal/catalog"

// filterCriteria narrows the catalog down to candidates for one muscle group
// on one training day.
type filterCriteria struct {
	targetMuscle    string
	excludedMuscles []string
	gymType         GymType
	limitationTags  []string
	fitnessLevel    catalog.Difficulty
	activityLevel   int
}

// homeGymEquipment is the full set of equipment assumed at a home gym.
var homeGymEquipment = map[string]bool{
	"dumbbell": true,
	"barbell":  true,
	"plates":   true,
	"bench":    true,
}

// basicGymDenylist names the advanced machines a basic gym does not have.
var basicGymDenylist = map[string]bool{
	"leg-press-machine":  true,
	"hack-squat-machine": true,
	"smith-machine":      true,
}

// filterCandidates returns the catalog entries eligible for the criteria, in
// catalog order. An empty result is valid; callers select fewer exercises.
func filterCandidates(exercises []catalog.ExerciseInfo, c filterCriteria) []catalog.ExerciseInfo {
	// Entries targeting the muscle as primary are preferred. Only when no
	// entry does is the secondary-muscle pool considered.
	pool := make([]catalog.ExerciseInfo, 0, len(exercises))
	for _, e := range exercises {
		if e.TargetsPrimary(c.targetMuscle) {
			pool = append(pool, e)
		}
	}
	if len(pool) == 0 {
		for _, e := range exercises {
			if e.TargetsSecondary(c.targetMuscle) {
				pool = append(pool, e)
			}
		}
	}

	filtered := make([]catalog.ExerciseInfo, 0, len(pool))
	for _, e := range pool {
		if intersectsExcluded(e, c) {
			continue
		}
		if !equipmentAllowed(e, c.gymType) {
			continue
		}
		if excludedByLimitations(e, c.limitationTags) {
			continue
		}
		if !difficultyPermitted(e.Difficulty, c.fitnessLevel, c.activityLevel) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

// intersectsExcluded drops entries touching an excluded muscle group. A
// secondary muscle equal to the target itself does not count against the
// entry.
func intersectsExcluded(e catalog.ExerciseInfo, c filterCriteria) bool {
	for _, excluded := range c.excludedMuscles {
		for _, m := range e.PrimaryMuscles {
			if m == excluded {
				return true
			}
		}
		for _, m := range e.SecondaryMuscles {
			if m == excluded && m != c.targetMuscle {
				return true
			}
		}
	}
	return false
}

func equipmentAllowed(e catalog.ExerciseInfo, gymType GymType) bool {
	switch gymType {
	case GymFull:
		return true
	case GymBasic:
		for _, tag := range e.Equipment {
			if basicGymDenylist[tag] {
				return false
			}
		}
		return true
	case GymHome:
		for _, tag := range e.Equipment {
			if !homeGymEquipment[tag] {
				return false
			}
		}
		return true
	case GymBodyweightOnly:
		for _, tag := range e.Equipment {
			if tag != "bodyweight" {
				return false
			}
		}
		return true
	}
	return true
}

// difficultyPermitted applies the fitness band: beginners never see advanced
// work, intermediates only at activity level 7 or above.
func difficultyPermitted(d catalog.Difficulty, level catalog.Difficulty, activityLevel int) bool {
	if d != catalog.DifficultyAvancado {
		return true
	}
	switch level {
	case catalog.DifficultyIniciante:
		return false
	case catalog.DifficultyIntermediario:
		return activityLevel >= 7
	default:
		return true
	}
}
