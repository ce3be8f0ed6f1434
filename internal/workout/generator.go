package workout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ompo-dev/gymrats/internal/catalog"
)

const weeksPerProgram = 4

// dayKind is one slot of a weekly split.
type dayKind string

const (
	dayFullBody dayKind = "full-body"
	dayUpper    dayKind = "upper"
	dayLower    dayKind = "lower"
	dayPush     dayKind = "push"
	dayPull     dayKind = "pull"
	dayLegs     dayKind = "legs"
	dayCardio   dayKind = "cardio"
	dayRest     dayKind = "rest"
)

// weeklySplits maps training frequency to the split pattern. Frequencies
// above seven clamp to the seven-day pattern.
var weeklySplits = map[int][]dayKind{
	1: {dayFullBody},
	2: {dayFullBody, dayFullBody},
	3: {dayUpper, dayLower, dayFullBody},
	4: {dayUpper, dayLower, dayUpper, dayLower},
	5: {dayPush, dayPull, dayLegs, dayUpper, dayLower},
	6: {dayPush, dayPull, dayLegs, dayPush, dayPull, dayLegs},
	7: {dayPush, dayPull, dayLegs, dayUpper, dayLower, dayFullBody, dayRest},
}

var lowerBodyGroups = []string{"pernas", "gluteos", "panturrilhas"}
var upperBodyGroups = []string{"peito", "costas", "ombros", "biceps", "triceps"}

// dayTemplate carries the muscle targets and naming for one day kind.
type dayTemplate struct {
	title        string
	description  string
	workoutType  WorkoutType
	primaryGroup string
	targets      []string
	forbidden    []string
}

var dayTemplates = map[dayKind]dayTemplate{
	dayFullBody: {
		title:        "Treino Full Body",
		description:  "Corpo inteiro em uma sessão",
		workoutType:  TypeStrength,
		primaryGroup: "full-body",
		targets:      []string{"peito", "costas", "pernas", "ombros", "abdomen"},
		forbidden:    nil,
	},
	dayUpper: {
		title:        "Treino de Superiores",
		description:  "Peito, costas, ombros e braços",
		workoutType:  TypeStrength,
		primaryGroup: "peito",
		targets:      []string{"peito", "costas", "ombros", "biceps", "triceps"},
		forbidden:    lowerBodyGroups,
	},
	dayLower: {
		title:        "Treino de Inferiores",
		description:  "Pernas, glúteos e panturrilhas",
		workoutType:  TypeStrength,
		primaryGroup: "pernas",
		targets:      []string{"pernas", "gluteos", "panturrilhas"},
		forbidden:    upperBodyGroups,
	},
	dayPush: {
		title:        "Treino Push",
		description:  "Empurrar: peito, ombros e tríceps",
		workoutType:  TypeStrength,
		primaryGroup: "peito",
		targets:      []string{"peito", "ombros", "triceps"},
		forbidden:    lowerBodyGroups,
	},
	dayPull: {
		title:        "Treino Pull",
		description:  "Puxar: costas e bíceps",
		workoutType:  TypeStrength,
		primaryGroup: "costas",
		targets:      []string{"costas", "biceps"},
		forbidden:    lowerBodyGroups,
	},
	dayLegs: {
		title:        "Treino de Pernas",
		description:  "Pernas, glúteos e panturrilhas",
		workoutType:  TypeStrength,
		primaryGroup: "pernas",
		targets:      []string{"pernas", "gluteos", "panturrilhas"},
		forbidden:    upperBodyGroups,
	},
	dayCardio: {
		title:        "Treino de Cardio",
		description:  "Condicionamento cardiovascular",
		workoutType:  TypeCardio,
		primaryGroup: "cardio",
		targets:      []string{"cardio"},
		forbidden:    nil,
	},
}

// cardioGoals are the goal tags that trade odd strength days for cardio.
var cardioGoals = []string{"perda de peso", "emagrecimento", "weight-loss", "resistencia", "endurance"}

// generator builds programs from the shared read-only catalog.
type generator struct {
	catalog *catalog.Catalog
}

func newGenerator(c *catalog.Catalog) *generator {
	return &generator{catalog: c}
}

// GenerateProgram synthesizes a four-week program for the profile. It is a
// pure function of its inputs; persistence belongs to the caller. Days that
// end up with zero eligible exercises are still emitted as empty plans.
func (g *generator) GenerateProgram(profile Profile) []Plan {
	split := splitForFrequency(profile.WeeklyFrequency)
	wantsCardio := hasCardioGoal(profile.Goals)

	var plans []Plan
	for week := 1; week <= weeksPerProgram; week++ {
		for dayIndex, kind := range split {
			if kind == dayRest {
				continue
			}
			if wantsCardio && dayIndex%2 == 1 {
				kind = dayCardio
			}
			plans = append(plans, g.buildDay(profile, kind, week, dayIndex+1))
		}
	}
	return plans
}

func splitForFrequency(frequency int) []dayKind {
	if frequency < 1 {
		frequency = 1
	}
	if frequency > 7 {
		frequency = 7
	}
	return weeklySplits[frequency]
}

func hasCardioGoal(goals []string) bool {
	for _, goal := range goals {
		lower := strings.ToLower(goal)
		for _, cardioGoal := range cardioGoals {
			if lower == cardioGoal {
				return true
			}
		}
	}
	return false
}

func (g *generator) buildDay(profile Profile, kind dayKind, week, day int) Plan {
	template := dayTemplates[kind]

	duration := profile.WorkoutDurationMinutes
	if duration <= 0 {
		duration = 60
	}
	maxExercises := duration / 10
	perGroup := 2
	if len(template.targets) > 3 {
		perGroup = 1
	}

	limitationTags := profile.limitationTags()
	usedIDs := make(map[string]bool)
	usedNames := make(map[string]bool)

	var selections []ExerciseSelection
	for _, target := range template.targets {
		if len(selections) >= maxExercises {
			break
		}
		candidates := filterCandidates(g.catalog.Exercises(), filterCriteria{
			targetMuscle:    target,
			excludedMuscles: template.forbidden,
			gymType:         profile.GymType,
			limitationTags:  limitationTags,
			fitnessLevel:    profile.FitnessLevel,
			activityLevel:   profile.ActivityLevel,
		})
		picked := pickExercises(candidates, perGroup, usedIDs, usedNames)
		for _, e := range picked {
			if len(selections) >= maxExercises {
				break
			}
			usedIDs[e.ID] = true
			usedNames[e.Name] = true
			selections = append(selections, g.buildSelection(profile, e, usedNames))
		}
	}

	return Plan{
		Title:              fmt.Sprintf("%s - Semana %d", template.title, week),
		Description:        template.description,
		Type:               template.workoutType,
		PrimaryMuscleGroup: template.primaryGroup,
		Difficulty:         profile.FitnessLevel,
		Exercises:          selections,
		EstimatedMinutes:   estimateMinutes(selections),
		XPReward:           xpReward(profile.FitnessLevel, len(selections)),
		Week:               week,
		Day:                day,
	}
}

// pickExercises takes up to count candidates, compound movements before
// isolation ones, skipping anything already placed in the same day.
func pickExercises(candidates []catalog.ExerciseInfo, count int, usedIDs, usedNames map[string]bool) []catalog.ExerciseInfo {
	var picked []catalog.ExerciseInfo
	for _, compound := range []bool{true, false} {
		for _, e := range candidates {
			if len(picked) >= count {
				return picked
			}
			if e.IsCompound() != compound {
				continue
			}
			if usedIDs[e.ID] || usedNames[e.Name] {
				continue
			}
			alreadyPicked := false
			for _, p := range picked {
				if p.ID == e.ID {
					alreadyPicked = true
					break
				}
			}
			if alreadyPicked {
				continue
			}
			picked = append(picked, e)
		}
	}
	return picked
}

func (g *generator) buildSelection(profile Profile, e catalog.ExerciseInfo, usedNames map[string]bool) ExerciseSelection {
	sets := calculateSets(profile.PreferredSets, profile.ActivityLevel, profile.FitnessLevel)
	reps := calculateReps(profile.RepRangeStyle, profile.Goals)
	rest := calculateRest(profile.RestStyle, profile.RepRangeStyle)

	return ExerciseSelection{
		ExerciseID:  e.ID,
		Name:        e.Name,
		Sets:        sets,
		Reps:        reps,
		RestSeconds: rest,
		Alternatives: generateAlternatives(
			g.catalog.Exercises(), e, profile.GymType, profile.limitationTags(), usedNames),
	}
}

// estimateMinutes approximates day length: two seconds per rep at the lower
// bound of the range, plus the rest after every set.
func estimateMinutes(selections []ExerciseSelection) int {
	totalSeconds := 0
	for _, s := range selections {
		totalSeconds += s.Sets*repsLowerBound(s.Reps)*2 + s.Sets*s.RestSeconds
	}
	return totalSeconds / 60
}

func repsLowerBound(reps string) int {
	bound, _, _ := strings.Cut(reps, "-")
	n, err := strconv.Atoi(strings.TrimSpace(bound))
	if err != nil || n <= 0 {
		return 8
	}
	return n
}

func xpReward(level catalog.Difficulty, exerciseCount int) int {
	base := 50
	switch level {
	case catalog.DifficultyIntermediario:
		base = 75
	case catalog.DifficultyAvancado:
		base = 100
	}
	return base + 5*exerciseCount
}
