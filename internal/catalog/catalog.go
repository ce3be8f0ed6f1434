// Package catalog holds the static exercise lookup table. The catalog is
// parsed once from an embedded JSON document and never mutated afterwards,
// so a single instance can be shared by every component that needs it.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed catalog.json
var catalogJSON []byte

// Difficulty is the three-tier exercise difficulty scale.
type Difficulty string

const (
	DifficultyIniciante     Difficulty = "iniciante"
	DifficultyIntermediario Difficulty = "intermediario"
	DifficultyAvancado      Difficulty = "avancado"
)

// ParseDifficulty maps a free-form difficulty token to the canonical scale.
// English synonyms and accented spellings are accepted. The second return
// value reports whether the token was recognized.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "iniciante", "beginner", "basico", "básico", "easy":
		return DifficultyIniciante, true
	case "intermediario", "intermediário", "intermediate", "medium":
		return DifficultyIntermediario, true
	case "avancado", "avançado", "advanced", "hard":
		return DifficultyAvancado, true
	}
	return "", false
}

// MuscleGroups lists the canonical muscle-group tags in catalog order,
// followed by the cardio and full-body pseudo-groups used by workout plans.
var MuscleGroups = []string{
	"peito", "costas", "ombros", "biceps", "triceps",
	"pernas", "gluteos", "panturrilhas", "abdomen", "lombar",
	"cardio", "full-body",
}

// ExerciseInfo is one catalog entry. Equipment is empty for bodyweight
// exercises. The guide fields (instructions, tips, common mistakes,
// benefits, scientific evidence) feed the exercise-info endpoint.
type ExerciseInfo struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	PrimaryMuscles     []string   `json:"primaryMuscles"`
	SecondaryMuscles   []string   `json:"secondaryMuscles"`
	Difficulty         Difficulty `json:"difficulty"`
	Equipment          []string   `json:"equipment"`
	Instructions       []string   `json:"instructions"`
	Tips               []string   `json:"tips"`
	CommonMistakes     []string   `json:"commonMistakes"`
	Benefits           []string   `json:"benefits"`
	ScientificEvidence string     `json:"scientificEvidence,omitempty"`
}

// IsCompound reports whether the exercise engages more than one muscle group.
func (e ExerciseInfo) IsCompound() bool {
	return len(e.PrimaryMuscles)+len(e.SecondaryMuscles) > 1
}

// TargetsPrimary reports whether muscleGroup is one of the primary muscles.
func (e ExerciseInfo) TargetsPrimary(muscleGroup string) bool {
	for _, m := range e.PrimaryMuscles {
		if m == muscleGroup {
			return true
		}
	}
	return false
}

// TargetsSecondary reports whether muscleGroup is one of the secondary muscles.
func (e ExerciseInfo) TargetsSecondary(muscleGroup string) bool {
	for _, m := range e.SecondaryMuscles {
		if m == muscleGroup {
			return true
		}
	}
	return false
}

// Catalog is the loaded, immutable exercise table.
type Catalog struct {
	exercises []ExerciseInfo
	byID      map[string]int
	byName    map[string]int
}

// Load parses the embedded catalog. It is called once at process start.
func Load() (*Catalog, error) {
	var exercises []ExerciseInfo
	if err := json.Unmarshal(catalogJSON, &exercises); err != nil {
		return nil, fmt.Errorf("parse embedded catalog: %w", err)
	}

	c := &Catalog{
		exercises: exercises,
		byID:      make(map[string]int, len(exercises)),
		byName:    make(map[string]int, len(exercises)),
	}
	for i, e := range exercises {
		if e.ID == "" || e.Name == "" {
			return nil, fmt.Errorf("catalog entry %d: missing id or name", i)
		}
		if len(e.PrimaryMuscles) == 0 {
			return nil, fmt.Errorf("catalog entry %s: no primary muscles", e.ID)
		}
		if _, ok := ParseDifficulty(string(e.Difficulty)); !ok {
			return nil, fmt.Errorf("catalog entry %s: unknown difficulty %q", e.ID, e.Difficulty)
		}
		if _, ok := c.byID[e.ID]; ok {
			return nil, fmt.Errorf("catalog entry %s: duplicate id", e.ID)
		}
		c.byID[e.ID] = i
		c.byName[strings.ToLower(e.Name)] = i
	}
	return c, nil
}

// Exercises returns the full ordered list. Callers must not mutate it.
func (c *Catalog) Exercises() []ExerciseInfo {
	return c.exercises
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.exercises)
}

// ByID looks up an exercise by its slug.
func (c *Catalog) ByID(id string) (ExerciseInfo, bool) {
	i, ok := c.byID[id]
	if !ok {
		return ExerciseInfo{}, false
	}
	return c.exercises[i], true
}

// ByName looks up an exercise by name, case-insensitively.
func (c *Catalog) ByName(name string) (ExerciseInfo, bool) {
	i, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ExerciseInfo{}, false
	}
	return c.exercises[i], true
}
