package catalog_test

import (
	"testing"

	"github.com/ompo-dev/gymrats/internal/catalog"
)

func TestLoad(t *testing.T) {
	c, err := catalog.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if c.Len() == 0 {
		t.Fatal("expected catalog to contain exercises")
	}

	seen := make(map[string]bool, c.Len())
	for _, e := range c.Exercises() {
		if seen[e.ID] {
			t.Errorf("duplicate exercise id %q", e.ID)
		}
		seen[e.ID] = true

		if len(e.PrimaryMuscles) == 0 {
			t.Errorf("exercise %q has no primary muscles", e.ID)
		}
		if _, ok := catalog.ParseDifficulty(string(e.Difficulty)); !ok {
			t.Errorf("exercise %q has unknown difficulty %q", e.ID, e.Difficulty)
		}
	}
}

func TestLookups(t *testing.T) {
	c, err := catalog.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	e, ok := c.ByID("supino-reto")
	if !ok {
		t.Fatal(`expected ByID("supino-reto") to find an exercise`)
	}
	if e.Name != "Supino Reto" {
		t.Errorf("ByID name = %q, want %q", e.Name, "Supino Reto")
	}

	e, ok = c.ByName("  supino reto ")
	if !ok {
		t.Fatal("expected ByName to trim and match case-insensitively")
	}
	if e.ID != "supino-reto" {
		t.Errorf("ByName id = %q, want %q", e.ID, "supino-reto")
	}

	if _, ok = c.ByID("does-not-exist"); ok {
		t.Error("expected lookup miss for unknown id")
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in     string
		want   catalog.Difficulty
		wantOK bool
	}{
		{in: "iniciante", want: catalog.DifficultyIniciante, wantOK: true},
		{in: "Beginner", want: catalog.DifficultyIniciante, wantOK: true},
		{in: "intermediário", want: catalog.DifficultyIntermediario, wantOK: true},
		{in: "intermediate", want: catalog.DifficultyIntermediario, wantOK: true},
		{in: " avançado ", want: catalog.DifficultyAvancado, wantOK: true},
		{in: "advanced", want: catalog.DifficultyAvancado, wantOK: true},
		{in: "expert", want: "", wantOK: false},
		{in: "", want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := catalog.ParseDifficulty(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseDifficulty(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestIsCompound(t *testing.T) {
	compound := catalog.ExerciseInfo{
		ID:             "x",
		Name:           "X",
		PrimaryMuscles: []string{"peito"},
		SecondaryMuscles: []string{
			"triceps",
		},
	}
	isolation := catalog.ExerciseInfo{
		ID:             "y",
		Name:           "Y",
		PrimaryMuscles: []string{"biceps"},
	}

	if !compound.IsCompound() {
		t.Error("expected multi-muscle exercise to be compound")
	}
	if isolation.IsCompound() {
		t.Error("expected single-muscle exercise not to be compound")
	}
}
