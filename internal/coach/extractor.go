package coach

import (
	"encoding/json"
	"strings"
)

// The extractor lets callers show progress while the model is still
// streaming: each call re-scans the buffer received so far and returns every
// workout that is already complete. It holds no state between calls; the
// caller owns the growing buffer. Parse failures at a bracket boundary are
// expected while text is arriving and are silently discarded.

// ExtractWorkouts scans the buffer for the "workouts" array and returns the
// direct array elements that parse and validate as complete workouts.
func ExtractWorkouts(buf string) []ParsedWorkout {
	completed, _ := scanWorkouts(buf, false)
	return completed
}

// ExtractProgress additionally returns a snapshot of the workout currently
// being streamed: its header fields plus the exercises completed so far.
// The partial is nil until the open workout has at least one fully streamed
// exercise.
func ExtractProgress(buf string) ([]ParsedWorkout, *ParsedWorkout) {
	return scanWorkouts(buf, true)
}

// scanWorkouts is a character-level state machine with three states (normal,
// in-string, escaped) and a bracket-depth counter anchored at the opening of
// the "workouts" array.
func scanWorkouts(buf string, trackPartial bool) ([]ParsedWorkout, *ParsedWorkout) {
	arrayStart := findWorkoutsArray(buf)
	if arrayStart < 0 {
		return nil, nil
	}

	var completed []ParsedWorkout
	depth := 1
	inString := false
	escaped := false
	elementStart := -1
	inExercises := false
	lastExerciseEnd := -1

	for i := arrayStart + 1; i < len(buf); i++ {
		c := buf[i]
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
		case '{':
			depth++
			if depth == 2 {
				elementStart = i
			}
		case '[':
			depth++
			if depth == 3 && elementStart >= 0 && precededByKey(buf, i, "exercises") {
				inExercises = true
			}
		case '}':
			depth--
			if depth == 1 && elementStart >= 0 {
				// A direct array element just closed. Parse exactly its span;
				// a failure means this was a false boundary.
				if w, ok := parseWorkout(buf[elementStart : i+1]); ok {
					completed = append(completed, w)
				}
				elementStart = -1
				inExercises = false
				lastExerciseEnd = -1
			}
			if depth == 3 && inExercises {
				lastExerciseEnd = i
			}
		case ']':
			depth--
			if depth == 2 {
				inExercises = false
			}
			if depth == 0 {
				// The workouts array closed; nothing after it matters.
				return completed, nil
			}
		}
	}

	var partial *ParsedWorkout
	if trackPartial && elementStart >= 0 && lastExerciseEnd > elementStart {
		repaired := repairTruncated(buf[elementStart : lastExerciseEnd+1])
		if w, ok := parseWorkout(repaired); ok {
			partial = &w
		}
	}
	return completed, partial
}

// findWorkoutsArray locates the opening bracket of the "workouts" array, or
// -1 when the buffer does not reach it yet.
func findWorkoutsArray(buf string) int {
	key := strings.Index(buf, `"workouts"`)
	if key < 0 {
		return -1
	}
	rest := buf[key+len(`"workouts"`):]
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case ' ', '\t', '\n', '\r', ':':
			continue
		case '[':
			return key + len(`"workouts"`) + i
		default:
			return -1
		}
	}
	return -1
}

// precededByKey reports whether the bracket at pos directly follows the
// given object key, ignoring whitespace.
func precededByKey(buf string, pos int, key string) bool {
	i := pos - 1
	for i >= 0 && (buf[i] == ' ' || buf[i] == '\t' || buf[i] == '\n' || buf[i] == '\r') {
		i--
	}
	if i < 0 || buf[i] != ':' {
		return false
	}
	i--
	for i >= 0 && (buf[i] == ' ' || buf[i] == '\t' || buf[i] == '\n' || buf[i] == '\r') {
		i--
	}
	quoted := `"` + key + `"`
	start := i - len(quoted) + 1
	return start >= 0 && buf[start:i+1] == quoted
}

func parseWorkout(text string) (ParsedWorkout, bool) {
	var node any
	if err := json.Unmarshal([]byte(text), &node); err != nil {
		return ParsedWorkout{}, false
	}
	w, err := projectWorkout(node)
	if err != nil {
		return ParsedWorkout{}, false
	}
	return w, true
}
