package main

import (
	"net/http"
	"strings"
	"testing"

	"github.com/ompo-dev/gymrats/internal/catalog"
	"github.com/ompo-dev/gymrats/internal/e2etest"
	"github.com/ompo-dev/gymrats/internal/testhelpers"
)

func Test_application_exercises(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv(t), run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()

	t.Run("lists the whole catalog", func(t *testing.T) {
		var response struct {
			Exercises []catalog.ExerciseInfo `json:"exercises"`
		}
		if err := client.GetJSON(ctx, "/api/exercises", &response); err != nil {
			t.Fatalf("Failed to list exercises: %v", err)
		}
		if len(response.Exercises) == 0 {
			t.Fatal("want a non-empty catalog")
		}
	})

	t.Run("filters by muscle group", func(t *testing.T) {
		var response struct {
			Exercises []catalog.ExerciseInfo `json:"exercises"`
		}
		if err := client.GetJSON(ctx, "/api/exercises?muscle=peito", &response); err != nil {
			t.Fatalf("Failed to list exercises: %v", err)
		}
		if len(response.Exercises) == 0 {
			t.Fatal("want chest exercises")
		}
		for _, exercise := range response.Exercises {
			if !exercise.TargetsPrimary("peito") && !exercise.TargetsSecondary("peito") {
				t.Errorf("exercise %s does not target peito", exercise.ID)
			}
		}
	})

	t.Run("renders the guide as HTML", func(t *testing.T) {
		var response exerciseInfoResponse
		if err := client.GetJSON(ctx, "/api/exercises/supino-reto", &response); err != nil {
			t.Fatalf("Failed to get exercise info: %v", err)
		}
		if response.Exercise.ID != "supino-reto" {
			t.Errorf("want supino-reto, got %q", response.Exercise.ID)
		}
		if !strings.Contains(response.GuideHTML, "<h2>") {
			t.Errorf("want rendered section headings, got %q", response.GuideHTML)
		}
	})

	t.Run("unknown exercise is 404", func(t *testing.T) {
		resp, err := client.Get(ctx, "/api/exercises/does-not-exist")
		if err != nil {
			t.Fatalf("Failed to get exercise info: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("want 404, got %d", resp.StatusCode)
		}
	})
}
