package workout

import (
	"testing"

	"github.com/ompo-dev/gymrats/internal/catalog"
)

func mustLoadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return c
}

func TestFilterCandidates(t *testing.T) {
	c := mustLoadCatalog(t)

	t.Run("prefers primary muscle matches", func(t *testing.T) {
		got := filterCandidates(c.Exercises(), filterCriteria{
			targetMuscle:  "peito",
			gymType:       GymFull,
			fitnessLevel:  catalog.DifficultyAvancado,
			activityLevel: 5,
		})
		if len(got) == 0 {
			t.Fatal("expected candidates for peito")
		}
		for _, e := range got {
			if !e.TargetsPrimary("peito") {
				t.Errorf("exercise %q does not target peito as primary", e.ID)
			}
		}
	})

	t.Run("bodyweight gym drops equipment exercises", func(t *testing.T) {
		got := filterCandidates(c.Exercises(), filterCriteria{
			targetMuscle:  "peito",
			gymType:       GymBodyweightOnly,
			fitnessLevel:  catalog.DifficultyAvancado,
			activityLevel: 5,
		})
		for _, e := range got {
			if len(e.Equipment) > 0 {
				t.Errorf("exercise %q requires equipment %v", e.ID, e.Equipment)
			}
		}
	})

	t.Run("home gym allows free weights only", func(t *testing.T) {
		got := filterCandidates(c.Exercises(), filterCriteria{
			targetMuscle:  "pernas",
			gymType:       GymHome,
			fitnessLevel:  catalog.DifficultyAvancado,
			activityLevel: 5,
		})
		for _, e := range got {
			for _, tag := range e.Equipment {
				if !homeGymEquipment[tag] {
					t.Errorf("exercise %q uses %q, not home gym equipment", e.ID, tag)
				}
			}
		}
	})

	t.Run("basic gym drops advanced machines", func(t *testing.T) {
		got := filterCandidates(c.Exercises(), filterCriteria{
			targetMuscle:  "pernas",
			gymType:       GymBasic,
			fitnessLevel:  catalog.DifficultyAvancado,
			activityLevel: 5,
		})
		for _, e := range got {
			for _, tag := range e.Equipment {
				if basicGymDenylist[tag] {
					t.Errorf("exercise %q uses denied machine %q", e.ID, tag)
				}
			}
		}
	})

	t.Run("every denied machine exists in the catalog", func(t *testing.T) {
		tags := map[string]bool{}
		for _, e := range c.Exercises() {
			for _, tag := range e.Equipment {
				tags[tag] = true
			}
		}
		for tag := range basicGymDenylist {
			if !tags[tag] {
				t.Errorf("denylist tag %q matches no catalog entry", tag)
			}
		}
	})

	t.Run("excluded muscle groups are dropped", func(t *testing.T) {
		got := filterCandidates(c.Exercises(), filterCriteria{
			targetMuscle:    "costas",
			excludedMuscles: lowerBodyGroups,
			gymType:         GymFull,
			fitnessLevel:    catalog.DifficultyAvancado,
			activityLevel:   5,
		})
		for _, e := range got {
			for _, m := range e.PrimaryMuscles {
				for _, excluded := range lowerBodyGroups {
					if m == excluded {
						t.Errorf("exercise %q has excluded primary muscle %q", e.ID, m)
					}
				}
			}
		}
	})

	t.Run("beginners never see advanced exercises", func(t *testing.T) {
		got := filterCandidates(c.Exercises(), filterCriteria{
			targetMuscle:  "costas",
			gymType:       GymFull,
			fitnessLevel:  catalog.DifficultyIniciante,
			activityLevel: 10,
		})
		for _, e := range got {
			if e.Difficulty == catalog.DifficultyAvancado {
				t.Errorf("exercise %q is advanced", e.ID)
			}
		}
	})

	t.Run("active intermediates unlock advanced exercises", func(t *testing.T) {
		low := filterCandidates(c.Exercises(), filterCriteria{
			targetMuscle:  "costas",
			gymType:       GymFull,
			fitnessLevel:  catalog.DifficultyIntermediario,
			activityLevel: 6,
		})
		for _, e := range low {
			if e.Difficulty == catalog.DifficultyAvancado {
				t.Errorf("exercise %q is advanced at activity level 6", e.ID)
			}
		}

		high := filterCandidates(c.Exercises(), filterCriteria{
			targetMuscle:  "costas",
			gymType:       GymFull,
			fitnessLevel:  catalog.DifficultyIntermediario,
			activityLevel: 7,
		})
		found := false
		for _, e := range high {
			if e.Difficulty == catalog.DifficultyAvancado {
				found = true
			}
		}
		if !found {
			t.Error("expected an advanced exercise at activity level 7")
		}
	})

	t.Run("empty result is valid", func(t *testing.T) {
		got := filterCandidates(c.Exercises(), filterCriteria{
			targetMuscle:  "unknown-group",
			gymType:       GymFull,
			fitnessLevel:  catalog.DifficultyAvancado,
			activityLevel: 5,
		})
		if len(got) != 0 {
			t.Errorf("expected no candidates, got %d", len(got))
		}
	})
}

func TestLimitationRules(t *testing.T) {
	c := mustLoadCatalog(t)

	t.Run("balance issues drop unilateral work", func(t *testing.T) {
		got := filterCandidates(c.Exercises(), filterCriteria{
			targetMuscle:   "pernas",
			gymType:        GymFull,
			limitationTags: []string{"problemas de equilibrio"},
			fitnessLevel:   catalog.DifficultyAvancado,
			activityLevel:  5,
		})
		for _, e := range got {
			if nameContainsAny(e, unilateralFamily) {
				t.Errorf("exercise %q is unilateral", e.ID)
			}
		}
	})

	t.Run("back issues drop spine loading", func(t *testing.T) {
		got := filterCandidates(c.Exercises(), filterCriteria{
			targetMuscle:   "pernas",
			gymType:        GymFull,
			limitationTags: []string{"hernia de disco na lombar"},
			fitnessLevel:   catalog.DifficultyAvancado,
			activityLevel:  5,
		})
		for _, e := range got {
			if nameContainsAny(e, spineLoadFamily) {
				t.Errorf("exercise %q loads the spine", e.ID)
			}
		}
	})

	t.Run("unknown tags match no rule", func(t *testing.T) {
		all := filterCandidates(c.Exercises(), filterCriteria{
			targetMuscle:  "pernas",
			gymType:       GymFull,
			fitnessLevel:  catalog.DifficultyAvancado,
			activityLevel: 5,
		})
		tagged := filterCandidates(c.Exercises(), filterCriteria{
			targetMuscle:   "pernas",
			gymType:        GymFull,
			limitationTags: []string{"sem limitacoes"},
			fitnessLevel:   catalog.DifficultyAvancado,
			activityLevel:  5,
		})
		if len(all) != len(tagged) {
			t.Errorf("unknown tag changed candidate count: %d != %d", len(all), len(tagged))
		}
	})
}
