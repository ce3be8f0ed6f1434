package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ompo-dev/gymrats/internal/coach"
	"github.com/ompo-dev/gymrats/internal/testhelpers"
)

// stubCoach emits one progress snapshot and returns a fixed command.
type stubCoach struct {
	cmd coach.ParsedCommand
	err error
}

func (s stubCoach) StreamChat(_ context.Context, _ coach.ChatRequest, onProgress coach.ProgressFunc) (coach.ParsedCommand, error) {
	if s.err != nil {
		return coach.ParsedCommand{}, s.err
	}
	if onProgress != nil {
		onProgress(s.cmd.Workouts, nil)
	}
	return s.cmd, nil
}

func newCoachTestApp(t *testing.T, coachService chatStreamer) *application {
	t.Helper()
	return &application{
		logger:       testhelpers.NewLogger(testhelpers.NewWriter(t)),
		coachService: coachService,
		chatTimeout:  10 * time.Second,
	}
}

func postChat(t *testing.T, app *application, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/coach/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	app.coachChatPOST(recorder, req)
	return recorder
}

func Test_application_coachChat(t *testing.T) {
	t.Parallel()

	cmd := coach.ParsedCommand{
		Intent: coach.IntentCreate,
		Action: coach.ActionCreateWorkouts,
		Workouts: []coach.ParsedWorkout{{
			Title:       "Treino A",
			Type:        "strength",
			MuscleGroup: "peito",
			Difficulty:  "intermediario",
			Exercises: []coach.ParsedExercise{{
				Name: "Supino Reto", Sets: 4, Reps: "8-12", RestSeconds: 90,
			}},
		}},
		Message: "Treino criado",
	}

	app := newCoachTestApp(t, stubCoach{cmd: cmd})
	recorder := postChat(t, app, `{"message":"monte um treino de peito"}`)

	if recorder.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", recorder.Code)
	}
	if contentType := recorder.Header().Get("Content-Type"); contentType != "text/event-stream" {
		t.Errorf("want event stream content type, got %q", contentType)
	}

	body := recorder.Body.String()
	if !strings.Contains(body, "event: progress") {
		t.Errorf("want a progress event in %q", body)
	}
	commandIndex := strings.Index(body, "event: command\ndata: ")
	if commandIndex < 0 {
		t.Fatalf("want a command event in %q", body)
	}
	commandData, _, _ := strings.Cut(body[commandIndex+len("event: command\ndata: "):], "\n")
	var got coach.ParsedCommand
	if err := json.Unmarshal([]byte(commandData), &got); err != nil {
		t.Fatalf("Failed to decode command event: %v", err)
	}
	if got.Message != "Treino criado" || len(got.Workouts) != 1 {
		t.Errorf("unexpected command %+v", got)
	}
}

func Test_application_coachChatErrors(t *testing.T) {
	t.Parallel()

	t.Run("streamer failure becomes an error event", func(t *testing.T) {
		t.Parallel()
		app := newCoachTestApp(t, stubCoach{err: errors.New("model unavailable")})
		recorder := postChat(t, app, `{"message":"oi"}`)
		if !strings.Contains(recorder.Body.String(), "event: error") {
			t.Errorf("want an error event, got %q", recorder.Body.String())
		}
	})

	t.Run("empty message is rejected", func(t *testing.T) {
		t.Parallel()
		app := newCoachTestApp(t, stubCoach{})
		recorder := postChat(t, app, `{"message":""}`)
		if recorder.Code != http.StatusBadRequest {
			t.Errorf("want 400, got %d", recorder.Code)
		}
	})

	t.Run("coach disabled without API key", func(t *testing.T) {
		t.Parallel()
		app := newCoachTestApp(t, nil)
		recorder := postChat(t, app, `{"message":"oi"}`)
		if recorder.Code != http.StatusServiceUnavailable {
			t.Errorf("want 503, got %d", recorder.Code)
		}
	})
}
