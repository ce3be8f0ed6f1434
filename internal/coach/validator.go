package coach

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ompo-dev/gymrats/internal/catalog"
	"github.com/ompo-dev/gymrats/internal/errors"
	"github.com/ompo-dev/gymrats/internal/workout"
)

// Validation failures are terminal for the whole command: no partially valid
// command is ever returned, since a half-valid command could trigger a wrong
// persistence side effect downstream.
var (
	ErrJSONNotFound        = errors.NewSentinel("JSON not found")
	ErrMalformedResponse   = errors.NewSentinel("malformed or truncated response")
	ErrInvalidIntent       = errors.NewSentinel("invalid intent")
	ErrInvalidAction       = errors.NewSentinel("invalid action")
	ErrWorkoutsNotArray    = errors.NewSentinel("workouts not an array")
	ErrMissingTitle        = errors.NewSentinel("missing title")
	ErrMissingExerciseName = errors.NewSentinel("missing name")
)

const (
	defaultSets           = 3
	defaultReps           = "8-12"
	defaultRestSeconds    = 60
	maxParsedAlternatives = 3
)

// ParseCommand parses the full text of one model turn into a ParsedCommand.
// The candidate JSON is the greedy first-brace-to-last-brace slice of the
// text. A strict parse is attempted first; on failure a single truncation
// repair pass closes an unterminated string and any open brackets before
// retrying once.
func ParseCommand(text string) (ParsedCommand, error) {
	start := strings.Index(text, "{")
	if start < 0 {
		return ParsedCommand{}, ErrJSONNotFound
	}
	tail := text[start:]

	var candidate string
	if end := strings.LastIndex(text, "}"); end > start {
		candidate = text[start : end+1]
	} else {
		candidate = tail
	}

	var tree map[string]any
	if err := json.Unmarshal([]byte(candidate), &tree); err != nil {
		repaired := repairTruncated(tail)
		if repairErr := json.Unmarshal([]byte(repaired), &tree); repairErr != nil {
			return ParsedCommand{}, errors.Wrap(ErrMalformedResponse, err.Error())
		}
	}

	return projectCommand(tree)
}

// repairTruncated heuristically completes JSON cut short by an output-length
// limit: it closes an unterminated string literal, then closes every still
// open brace and bracket in reverse order of opening. Escaped characters
// inside strings are skipped so they cannot perturb the bracket stack.
func repairTruncated(s string) string {
	var stack []byte
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			stack = append(stack, c)
		case '}':
			if len(stack) > 0 && stack[len(stack)-1] == '{' {
				stack = stack[:len(stack)-1]
			}
		case ']':
			if len(stack) > 0 && stack[len(stack)-1] == '[' {
				stack = stack[:len(stack)-1]
			}
		}
	}

	var b strings.Builder
	b.WriteString(s)
	if inString {
		b.WriteByte('"')
	}
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == '{' {
			b.WriteByte('}')
		} else {
			b.WriteByte(']')
		}
	}
	return b.String()
}

// projectCommand is the second, validating phase: the untyped tree is
// projected into the typed command with every defaulting rule applied in one
// place.
func projectCommand(tree map[string]any) (ParsedCommand, error) {
	var cmd ParsedCommand

	rawWorkouts, workoutsPresent := tree["workouts"]
	var workoutList []any
	if workoutsPresent && rawWorkouts != nil {
		list, ok := rawWorkouts.([]any)
		if !ok {
			return ParsedCommand{}, ErrWorkoutsNotArray
		}
		workoutList = list
	}
	hasWorkouts := len(workoutList) > 0

	intent := Intent(stringField(tree, "intent"))
	if !intent.valid() {
		if !hasWorkouts {
			return ParsedCommand{}, errors.Wrap(ErrInvalidIntent, fmt.Sprintf("intent %q", stringField(tree, "intent")))
		}
		intent = IntentCreate
	}
	cmd.Intent = intent

	action := Action(stringField(tree, "action"))
	if !action.valid() {
		if !hasWorkouts {
			return ParsedCommand{}, errors.Wrap(ErrInvalidAction, fmt.Sprintf("action %q", stringField(tree, "action")))
		}
		action = ActionCreateWorkouts
	}
	cmd.Action = action

	cmd.Workouts = make([]ParsedWorkout, 0, len(workoutList))
	for i, raw := range workoutList {
		w, err := projectWorkout(raw)
		if err != nil {
			return ParsedCommand{}, fmt.Errorf("workout %d: %w", i+1, err)
		}
		cmd.Workouts = append(cmd.Workouts, w)
	}

	cmd.TargetWorkoutID = stringField(tree, "targetWorkoutId")
	cmd.ExerciseToRemove = stringField(tree, "exerciseToRemove")
	cmd.Message = stringField(tree, "message")

	if raw, ok := tree["exerciseToReplace"].(map[string]any); ok {
		replacement := ExerciseReplacement{
			Old: stringField(raw, "old"),
			New: stringField(raw, "new"),
		}
		if replacement.Old != "" || replacement.New != "" {
			cmd.ExerciseToReplace = &replacement
		}
	}

	return cmd, nil
}

// projectWorkout validates and normalizes one workout node.
func projectWorkout(raw any) (ParsedWorkout, error) {
	node, ok := raw.(map[string]any)
	if !ok {
		return ParsedWorkout{}, ErrMissingTitle
	}

	var w ParsedWorkout
	w.Title = strings.TrimSpace(stringField(node, "title"))
	if w.Title == "" {
		return ParsedWorkout{}, ErrMissingTitle
	}
	w.Description = stringField(node, "description")
	w.Type = normalizeWorkoutType(stringField(node, "type"))
	w.Difficulty = normalizeDifficulty(stringField(node, "difficulty"))
	w.MuscleGroup = normalizeMuscleGroup(node["muscleGroup"], w.Type)

	rawExercises, _ := node["exercises"].([]any)
	w.Exercises = make([]ParsedExercise, 0, len(rawExercises))
	for i, rawExercise := range rawExercises {
		e, err := projectExercise(rawExercise)
		if err != nil {
			return ParsedWorkout{}, fmt.Errorf("exercise %d: %w", i+1, err)
		}
		w.Exercises = append(w.Exercises, e)
	}

	return w, nil
}

// projectExercise validates one exercise node. The name is the only required
// field; everything else defaults.
func projectExercise(raw any) (ParsedExercise, error) {
	node, ok := raw.(map[string]any)
	if !ok {
		return ParsedExercise{}, ErrMissingExerciseName
	}

	var e ParsedExercise
	e.Name = strings.TrimSpace(stringField(node, "name"))
	if e.Name == "" {
		return ParsedExercise{}, ErrMissingExerciseName
	}

	e.Sets = defaultSets
	if sets, ok := numberField(node, "sets"); ok && sets > 0 {
		e.Sets = int(sets)
	}

	e.Reps = defaultReps
	if reps := stringField(node, "reps"); reps != "" {
		e.Reps = reps
	}

	e.RestSeconds = defaultRestSeconds
	if rest, ok := numberField(node, "rest"); ok && rest >= 0 {
		e.RestSeconds = int(rest)
	} else if rest, ok := numberField(node, "restSeconds"); ok && rest >= 0 {
		e.RestSeconds = int(rest)
	}

	e.Notes = stringField(node, "notes")
	e.Focus = stringField(node, "focus")

	if rawAlternatives, ok := node["alternatives"].([]any); ok {
		for _, rawAlt := range rawAlternatives {
			if len(e.Alternatives) >= maxParsedAlternatives {
				break
			}
			alt, ok := rawAlt.(string)
			if !ok {
				continue
			}
			if alt = strings.TrimSpace(alt); alt != "" {
				e.Alternatives = append(e.Alternatives, alt)
			}
		}
	}

	return e, nil
}

func normalizeWorkoutType(raw string) workout.WorkoutType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "cardio", "aerobico", "aeróbico", "hiit", "conditioning":
		return workout.TypeCardio
	case "flexibility", "flexibilidade", "mobilidade", "alongamento", "yoga":
		return workout.TypeFlexibility
	default:
		return workout.TypeStrength
	}
}

func normalizeDifficulty(raw string) catalog.Difficulty {
	if d, ok := catalog.ParseDifficulty(raw); ok {
		return d
	}
	return catalog.DifficultyIntermediario
}

// normalizeMuscleGroup accepts a string or a list (first element wins) and
// defaults by workout type when empty.
func normalizeMuscleGroup(raw any, workoutType workout.WorkoutType) string {
	group := ""
	switch v := raw.(type) {
	case string:
		group = strings.TrimSpace(v)
	case []any:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				group = strings.TrimSpace(s)
			}
		}
	}
	if group != "" {
		return group
	}
	if workoutType == workout.TypeCardio {
		return "cardio"
	}
	return "full-body"
}

func stringField(node map[string]any, key string) string {
	s, _ := node[key].(string)
	return s
}

func numberField(node map[string]any, key string) (float64, bool) {
	n, ok := node[key].(float64)
	return n, ok
}
