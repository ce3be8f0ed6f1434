package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ompo-dev/gymrats/internal/coach"
)

// coachProgressEvent is the payload of each progress event in the chat
// stream: the workouts completed so far plus the one still streaming.
type coachProgressEvent struct {
	Completed []coach.ParsedWorkout `json:"completed"`
	Partial   *coach.ParsedWorkout  `json:"partial,omitempty"`
}

// coachChatPOST streams one coach turn as server-sent events. The client
// gets progress events while the model talks and a final command event with
// the validated result.
func (app *application) coachChatPOST(w http.ResponseWriter, r *http.Request) {
	if app.coachService == nil {
		app.clientError(w, r, http.StatusServiceUnavailable, "coach is not configured")
		return
	}

	var req coach.ChatRequest
	if err := readJSON(r, &req); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "invalid chat payload")
		return
	}
	if req.Message == "" {
		app.clientError(w, r, http.StatusBadRequest, "message is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), app.chatTimeout)
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	// ResponseController reaches through wrapping middleware writers.
	rc := http.NewResponseController(w)
	if err := rc.Flush(); err != nil {
		app.logger.LogAttrs(ctx, slog.LevelError, "response writer does not support flushing", slog.Any("error", err))
		return
	}

	cmd, err := app.coachService.StreamChat(ctx, req, func(completed []coach.ParsedWorkout, partial *coach.ParsedWorkout) {
		app.writeEvent(ctx, w, rc, "progress", coachProgressEvent{
			Completed: completed,
			Partial:   partial,
		})
	})
	if err != nil {
		app.logger.LogAttrs(ctx, slog.LevelError, "coach chat failed", slog.Any("error", err))
		app.writeEvent(ctx, w, rc, "error", map[string]string{"error": "coach could not answer"})
		return
	}

	app.writeEvent(ctx, w, rc, "command", cmd)
}

// writeEvent writes one server-sent event and flushes it to the client.
func (app *application) writeEvent(ctx context.Context, w http.ResponseWriter, rc *http.ResponseController, event string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		app.logger.LogAttrs(ctx, slog.LevelError, "marshal event", slog.Any("error", err))
		return
	}
	if _, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		app.logger.LogAttrs(ctx, slog.LevelWarn, "write event", slog.Any("error", err))
		return
	}
	if err = rc.Flush(); err != nil {
		app.logger.LogAttrs(ctx, slog.LevelWarn, "flush event", slog.Any("error", err))
	}
}
