package workout

import "github.com/ompo-dev/gymrats/internal/catalog"

// The parameter calculators are total functions: every input maps to a
// concrete value, falling through explicit priority tiers to a default.

// calculateSets picks the number of sets per exercise. An explicit preference
// wins; otherwise activity level decides; otherwise fitness level.
func calculateSets(preferred *int, activityLevel int, level catalog.Difficulty) int {
	if preferred != nil && *preferred > 0 {
		return *preferred
	}
	if activityLevel > 0 {
		switch {
		case activityLevel >= 8:
			return 5
		case activityLevel >= 6:
			return 4
		case activityLevel >= 4:
			return 3
		default:
			return 3
		}
	}
	if level == catalog.DifficultyAvancado {
		return 4
	}
	return 3
}

// calculateReps maps the rep-range style, or failing that the user's goals,
// to a rep range string.
func calculateReps(style RepRangeStyle, goals []string) string {
	switch style {
	case RepStyleForca:
		return "4-6"
	case RepStyleHipertrofia:
		return "8-12"
	case RepStyleResistencia:
		return "15-20"
	}
	for _, goal := range goals {
		switch goal {
		case "forca", "strength":
			return "4-6"
		case "resistencia", "endurance":
			return "15-20"
		case "massa", "definicao", "mass", "definition":
			return "8-12"
		}
	}
	return "8-12"
}

// calculateRest maps the rest style, or failing that the rep-range style, to
// seconds of rest between sets.
func calculateRest(style RestStyle, repStyle RepRangeStyle) int {
	switch style {
	case RestCurto:
		return 30
	case RestMedio:
		return 60
	case RestLongo:
		return 90
	}
	switch repStyle {
	case RepStyleForca:
		return 120
	case RepStyleResistencia:
		return 30
	default:
		return 60
	}
}
