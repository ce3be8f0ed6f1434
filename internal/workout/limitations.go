package workout

import (
	"strings"

	"github.com/ompo-dev/gymrats/internal/catalog"
)

// limitationRule excludes catalog entries for one limitation tag. Matching is
// lowercase substring containment on the user-supplied tag, so free-form
// limitation descriptions still trigger the rule.
type limitationRule struct {
	// tagKeywords: the rule fires when any keyword occurs in a limitation tag.
	tagKeywords []string
	// excludes reports whether the exercise must be dropped.
	excludes func(e catalog.ExerciseInfo) bool
}

// deadliftFamily are name fragments of hip-hinge barbell pulls.
var deadliftFamily = []string{"terra", "stiff", "bom dia"}

// unilateralFamily are name fragments of single-leg and single-arm work.
var unilateralFamily = []string{"unilateral", "afundo", "single"}

// spineLoadFamily are name fragments of axially loaded movements.
var spineLoadFamily = []string{"agachamento livre", "terra", "remada curvada", "bom dia", "militar"}

// highImpactFamily are name fragments of jumping movements.
var highImpactFamily = []string{"salto", "burpee", "polichinelo", "corda", "corrida"}

// limitationRules is the exhaustive, auditable rule table. Every rule is a
// total predicate; unknown limitation tags simply match no rule.
var limitationRules = []limitationRule{
	{
		// Joint issues exclude advanced hinge pulls and prefer low-impact work.
		tagKeywords: []string{"joelho", "articula", "joint"},
		excludes: func(e catalog.ExerciseInfo) bool {
			return e.Difficulty == catalog.DifficultyAvancado && nameContainsAny(e, deadliftFamily)
		},
	},
	{
		tagKeywords: []string{"equilibrio", "equilíbrio", "balance", "labirintite"},
		excludes: func(e catalog.ExerciseInfo) bool {
			return nameContainsAny(e, unilateralFamily)
		},
	},
	{
		tagKeywords: []string{"coluna", "lombar", "hernia", "hérnia", "back"},
		excludes: func(e catalog.ExerciseInfo) bool {
			return nameContainsAny(e, spineLoadFamily)
		},
	},
	{
		tagKeywords: []string{"cardiaco", "cardíaco", "pressao", "pressão", "heart"},
		excludes: func(e catalog.ExerciseInfo) bool {
			return e.Difficulty == catalog.DifficultyAvancado && e.TargetsPrimary("cardio")
		},
	},
	{
		tagKeywords: []string{"tornozelo", "impacto", "impact"},
		excludes: func(e catalog.ExerciseInfo) bool {
			return nameContainsAny(e, highImpactFamily)
		},
	},
}

func nameContainsAny(e catalog.ExerciseInfo, fragments []string) bool {
	name := strings.ToLower(e.Name)
	for _, f := range fragments {
		if strings.Contains(name, f) {
			return true
		}
	}
	return false
}

// excludedByLimitations reports whether any active limitation rule drops the
// exercise. Pure and deterministic over its inputs.
func excludedByLimitations(e catalog.ExerciseInfo, limitationTags []string) bool {
	for _, rule := range limitationRules {
		if !ruleActive(rule, limitationTags) {
			continue
		}
		if rule.excludes(e) {
			return true
		}
	}
	return false
}

func ruleActive(rule limitationRule, limitationTags []string) bool {
	for _, tag := range limitationTags {
		lower := strings.ToLower(tag)
		for _, keyword := range rule.tagKeywords {
			if strings.Contains(lower, keyword) {
				return true
			}
		}
	}
	return false
}

// hasJointSensitivity reports whether any limitation tag indicates joint
// problems. The alternative generator prefers machine work in that case.
func hasJointSensitivity(limitationTags []string) bool {
	return tagsContainAny(limitationTags, []string{"joelho", "articula", "joint"})
}

// hasBackSensitivity reports whether any limitation tag indicates spine
// problems. The alternative generator prunes rowing and pulldown work then.
func hasBackSensitivity(limitationTags []string) bool {
	return tagsContainAny(limitationTags, []string{"coluna", "lombar", "hernia", "hérnia", "back"})
}

func tagsContainAny(tags []string, keywords []string) bool {
	for _, tag := range tags {
		lower := strings.ToLower(tag)
		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				return true
			}
		}
	}
	return false
}
