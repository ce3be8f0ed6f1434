// Package workout generates personalized multi-week training programs from a
// user profile and the exercise catalog, and persists them.
package workout

import "github.com/ompo-dev/gymrats/internal/catalog"

// GymType describes what equipment the user has access to.
type GymType string

const (
	GymFull           GymType = "full-gym"
	GymBasic          GymType = "basic-gym"
	GymHome           GymType = "home-gym"
	GymBodyweightOnly GymType = "bodyweight-only"
)

// RepRangeStyle selects the target rep range for every exercise.
type RepRangeStyle string

const (
	RepStyleForca       RepRangeStyle = "forca"
	RepStyleHipertrofia RepRangeStyle = "hipertrofia"
	RepStyleResistencia RepRangeStyle = "resistencia"
	RepStyleUnspecified RepRangeStyle = ""
)

// RestStyle selects how long the user rests between sets.
type RestStyle string

const (
	RestCurto       RestStyle = "curto"
	RestMedio       RestStyle = "medio"
	RestLongo       RestStyle = "longo"
	RestUnspecified RestStyle = ""
)

// WorkoutType classifies a training day.
type WorkoutType string

const (
	TypeStrength    WorkoutType = "strength"
	TypeCardio      WorkoutType = "cardio"
	TypeFlexibility WorkoutType = "flexibility"
)

// Profile carries everything the generator needs to know about the user.
// It is supplied per generation call and never stored by the generator.
type Profile struct {
	PreferredSets          *int               `json:"preferredSets,omitempty"`
	RepRangeStyle          RepRangeStyle      `json:"repRangeStyle,omitempty"`
	RestStyle              RestStyle          `json:"restStyle,omitempty"`
	GymType                GymType            `json:"gymType"`
	FitnessLevel           catalog.Difficulty `json:"fitnessLevel"`
	ActivityLevel          int                `json:"activityLevel"`
	WeeklyFrequency        int                `json:"weeklyFrequency"`
	WorkoutDurationMinutes int                `json:"workoutDurationMinutes"`
	Goals                  []string           `json:"goals,omitempty"`
	PhysicalLimitations    []string           `json:"physicalLimitations,omitempty"`
	MotorLimitations       []string           `json:"motorLimitations,omitempty"`
	MedicalConditions      []string           `json:"medicalConditions,omitempty"`
}

// limitationTags flattens the three limitation sets into one list for rule
// matching.
func (p Profile) limitationTags() []string {
	tags := make([]string, 0, len(p.PhysicalLimitations)+len(p.MotorLimitations)+len(p.MedicalConditions))
	tags = append(tags, p.PhysicalLimitations...)
	tags = append(tags, p.MotorLimitations...)
	tags = append(tags, p.MedicalConditions...)
	return tags
}

// Alternative is a substitute suggestion attached to a selected exercise.
type Alternative struct {
	Name       string `json:"name"`
	Reason     string `json:"reason"`
	ExerciseID string `json:"exerciseId,omitempty"`
}

// ExerciseSelection is one exercise slot inside a plan. It is created whole
// by the generator and never mutated afterwards.
type ExerciseSelection struct {
	ExerciseID   string        `json:"exerciseId"`
	Name         string        `json:"name"`
	Sets         int           `json:"sets"`
	Reps         string        `json:"reps"`
	RestSeconds  int           `json:"restSeconds"`
	Notes        string        `json:"notes,omitempty"`
	Alternatives []Alternative `json:"alternatives,omitempty"`
}

// Plan is one training day. Week and Day index it inside the program.
type Plan struct {
	Title              string              `json:"title"`
	Description        string              `json:"description"`
	Type               WorkoutType         `json:"type"`
	PrimaryMuscleGroup string              `json:"primaryMuscleGroup"`
	Difficulty         catalog.Difficulty  `json:"difficulty"`
	Exercises          []ExerciseSelection `json:"exercises"`
	EstimatedMinutes   int                 `json:"estimatedMinutes"`
	XPReward           int                 `json:"xpReward"`
	Week               int                 `json:"week"`
	Day                int                 `json:"day"`
}

// Program is the full multi-week output of one generation run.
type Program struct {
	ID    string `json:"id"`
	Plans []Plan `json:"plans"`
}
