package coach

import "strings"

// ReconcilePreview merges a freshly parsed command into the workout list the
// user is previewing. Whatever cardinality the model returned, the previewed
// list keeps its length and order: only the referenced element is replaced,
// and every untouched element is taken verbatim from the preview, never from
// the new command. Pure merge, no I/O; it never fails.
func ReconcilePreview(previous []ParsedWorkout, cmd ParsedCommand, ref PreviewReference) ParsedCommand {
	if ref.WorkoutIndex < 0 || ref.WorkoutIndex >= len(previous) {
		// Nothing to anchor the merge on; hand the command back untouched.
		return cmd
	}

	replacement := previous[ref.WorkoutIndex]
	switch {
	case len(cmd.Workouts) == len(previous):
		// The model returned the full set; trust only the referenced slot.
		replacement = cmd.Workouts[ref.WorkoutIndex]
	case len(cmd.Workouts) == 1:
		replacement = cmd.Workouts[0]
	case len(cmd.Workouts) > 0:
		// Unexpected cardinality. Find the referenced workout by title, or
		// fall back to the first returned element.
		replacement = cmd.Workouts[0]
		want := strings.ToLower(strings.TrimSpace(ref.WorkoutTitle))
		for _, w := range cmd.Workouts {
			if strings.ToLower(strings.TrimSpace(w.Title)) == want {
				replacement = w
				break
			}
		}
	}

	merged := make([]ParsedWorkout, len(previous))
	copy(merged, previous)
	merged[ref.WorkoutIndex] = replacement

	out := cmd
	out.Workouts = merged
	// Downstream persistence must treat this as a single-target update, never
	// a bulk replace.
	out.Action = ActionUpdateWorkout
	out.TargetWorkoutID = ref.WorkoutTitle
	return out
}
