// Package coach turns streamed language-model output into validated workout
// commands: it extracts workouts while text is still arriving, validates and
// normalizes the completed response, and reconciles it against an unsaved
// preview the user may be editing.
package coach

import (
	"github.com/ompo-dev/gymrats/internal/catalog"
	"github.com/ompo-dev/gymrats/internal/workout"
)

// Intent is what the user wants done with their workouts.
type Intent string

const (
	IntentCreate Intent = "create"
	IntentEdit   Intent = "edit"
	IntentDelete Intent = "delete"
)

func (i Intent) valid() bool {
	switch i {
	case IntentCreate, IntentEdit, IntentDelete:
		return true
	}
	return false
}

// Action is the concrete persistence operation the model selected.
type Action string

const (
	ActionCreateWorkouts  Action = "create_workouts"
	ActionDeleteWorkout   Action = "delete_workout"
	ActionAddExercise     Action = "add_exercise"
	ActionRemoveExercise  Action = "remove_exercise"
	ActionReplaceExercise Action = "replace_exercise"
	ActionUpdateWorkout   Action = "update_workout"
)

func (a Action) valid() bool {
	switch a {
	case ActionCreateWorkouts, ActionDeleteWorkout, ActionAddExercise,
		ActionRemoveExercise, ActionReplaceExercise, ActionUpdateWorkout:
		return true
	}
	return false
}

// ParsedExercise is one exercise inside a model-proposed workout. Rest
// seconds travel under the wire key "rest"; "restSeconds" is accepted on
// input for compatibility.
type ParsedExercise struct {
	Name         string   `json:"name"`
	Sets         int      `json:"sets"`
	Reps         string   `json:"reps"`
	RestSeconds  int      `json:"rest"`
	Notes        string   `json:"notes,omitempty"`
	Focus        string   `json:"focus,omitempty"`
	Alternatives []string `json:"alternatives,omitempty"`
}

// ParsedWorkout is one model-proposed training day.
type ParsedWorkout struct {
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Type        workout.WorkoutType `json:"type"`
	MuscleGroup string              `json:"muscleGroup"`
	Difficulty  catalog.Difficulty  `json:"difficulty"`
	Exercises   []ParsedExercise    `json:"exercises"`
}

// ExerciseReplacement identifies an exercise swap by name.
type ExerciseReplacement struct {
	Old string `json:"old"`
	New string `json:"new"`
}

// ParsedCommand is the validated result of one model turn. It is built once
// and never mutated; the reconciler returns a fresh command.
type ParsedCommand struct {
	Intent            Intent               `json:"intent"`
	Action            Action               `json:"action"`
	Workouts          []ParsedWorkout      `json:"workouts"`
	TargetWorkoutID   string               `json:"targetWorkoutId,omitempty"`
	ExerciseToRemove  string               `json:"exerciseToRemove,omitempty"`
	ExerciseToReplace *ExerciseReplacement `json:"exerciseToReplace,omitempty"`
	Message           string               `json:"message,omitempty"`
}

// PreviewReference points at the previewed workout a follow-up instruction
// targets: a 0-based index plus the title shown to the user.
type PreviewReference struct {
	WorkoutIndex int    `json:"workoutIndex"`
	WorkoutTitle string `json:"workoutTitle"`
}

// ChatMessage is one prior turn of the conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
