package workout

import (
	"testing"

	"github.com/ompo-dev/gymrats/internal/catalog"
	"github.com/ompo-dev/gymrats/internal/ptr"
)

func TestCalculateSets(t *testing.T) {
	tests := []struct {
		name          string
		preferred     *int
		activityLevel int
		level         catalog.Difficulty
		want          int
	}{
		{name: "preference wins", preferred: ptr.Ref(6), activityLevel: 9, level: catalog.DifficultyIniciante, want: 6},
		{name: "high activity", preferred: nil, activityLevel: 9, level: catalog.DifficultyAvancado, want: 5},
		{name: "activity eight", preferred: nil, activityLevel: 8, level: catalog.DifficultyIniciante, want: 5},
		{name: "activity six", preferred: nil, activityLevel: 6, level: catalog.DifficultyIniciante, want: 4},
		{name: "activity four", preferred: nil, activityLevel: 4, level: catalog.DifficultyAvancado, want: 3},
		{name: "activity low", preferred: nil, activityLevel: 1, level: catalog.DifficultyAvancado, want: 3},
		{name: "no activity beginner", preferred: nil, activityLevel: 0, level: catalog.DifficultyIniciante, want: 3},
		{name: "no activity intermediate", preferred: nil, activityLevel: 0, level: catalog.DifficultyIntermediario, want: 3},
		{name: "no activity advanced", preferred: nil, activityLevel: 0, level: catalog.DifficultyAvancado, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calculateSets(tt.preferred, tt.activityLevel, tt.level); got != tt.want {
				t.Errorf("calculateSets() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCalculateReps(t *testing.T) {
	tests := []struct {
		name  string
		style RepRangeStyle
		goals []string
		want  string
	}{
		{name: "strength style", style: RepStyleForca, goals: nil, want: "4-6"},
		{name: "hypertrophy style", style: RepStyleHipertrofia, goals: []string{"resistencia"}, want: "8-12"},
		{name: "endurance style", style: RepStyleResistencia, goals: nil, want: "15-20"},
		{name: "strength goal", style: RepStyleUnspecified, goals: []string{"forca"}, want: "4-6"},
		{name: "endurance goal", style: RepStyleUnspecified, goals: []string{"resistencia"}, want: "15-20"},
		{name: "mass goal", style: RepStyleUnspecified, goals: []string{"massa"}, want: "8-12"},
		{name: "no style no goals", style: RepStyleUnspecified, goals: nil, want: "8-12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calculateReps(tt.style, tt.goals); got != tt.want {
				t.Errorf("calculateReps() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCalculateRest(t *testing.T) {
	tests := []struct {
		name     string
		style    RestStyle
		repStyle RepRangeStyle
		want     int
	}{
		{name: "short", style: RestCurto, repStyle: RepStyleForca, want: 30},
		{name: "medium", style: RestMedio, repStyle: RepStyleForca, want: 60},
		{name: "long", style: RestLongo, repStyle: RepStyleResistencia, want: 90},
		{name: "strength fallback", style: RestUnspecified, repStyle: RepStyleForca, want: 120},
		{name: "endurance fallback", style: RestUnspecified, repStyle: RepStyleResistencia, want: 30},
		{name: "default fallback", style: RestUnspecified, repStyle: RepStyleUnspecified, want: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calculateRest(tt.style, tt.repStyle); got != tt.want {
				t.Errorf("calculateRest() = %d, want %d", got, tt.want)
			}
		})
	}
}
