package coach

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ompo-dev/gymrats/internal/catalog"
)

// streamer abstracts the streaming completion call so tests can script the
// model's output.
type streamer interface {
	Stream(ctx context.Context, systemPrompt string, history []ChatMessage, userMessage string, onDelta func(string)) (string, error)
}

// ChatRequest is one user turn. Preview and Reference are present when the
// user is editing an unsaved workout preview.
type ChatRequest struct {
	Message   string            `json:"message"`
	History   []ChatMessage     `json:"history,omitempty"`
	Preview   []ParsedWorkout   `json:"preview,omitempty"`
	Reference *PreviewReference `json:"reference,omitempty"`
}

// ProgressFunc receives extraction snapshots while the model is streaming:
// the workouts completed so far and, when available, the one in flight.
type ProgressFunc func(completed []ParsedWorkout, partial *ParsedWorkout)

// Service drives one chat turn end to end: prompt building, streaming,
// extraction-based progress, validation, and preview reconciliation.
type Service struct {
	catalog *catalog.Catalog
	llm     streamer
	logger  *slog.Logger
}

// NewService creates a coach service talking to the OpenAI API.
func NewService(c *catalog.Catalog, apiKey, model string, logger *slog.Logger) *Service {
	return &Service{
		catalog: c,
		llm:     newLLMClient(apiKey, model, logger),
		logger:  logger,
	}
}

// StreamChat sends the user's message to the model, fires onProgress as
// workouts complete in the stream, and returns the validated command.
// Cancellation is the context's: stopping consumption discards the buffer.
func (s *Service) StreamChat(ctx context.Context, req ChatRequest, onProgress ProgressFunc) (ParsedCommand, error) {
	var buf strings.Builder
	lastCompleted := 0
	lastPartialExercises := -1

	full, err := s.llm.Stream(ctx, s.systemPrompt(), req.History, req.Message, func(delta string) {
		buf.WriteString(delta)
		if onProgress == nil {
			return
		}
		completed, partial := ExtractProgress(buf.String())
		partialExercises := -1
		if partial != nil {
			partialExercises = len(partial.Exercises)
		}
		if len(completed) != lastCompleted || partialExercises != lastPartialExercises {
			lastCompleted = len(completed)
			lastPartialExercises = partialExercises
			onProgress(completed, partial)
		}
	})
	if err != nil {
		return ParsedCommand{}, fmt.Errorf("stream completion: %w", err)
	}

	cmd, err := ParseCommand(full)
	if err != nil {
		return ParsedCommand{}, fmt.Errorf("parse command: %w", err)
	}

	if req.Reference != nil && len(req.Preview) > 0 {
		cmd = ReconcilePreview(req.Preview, cmd, *req.Reference)
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "chat command parsed",
		slog.String("intent", string(cmd.Intent)),
		slog.String("action", string(cmd.Action)),
		slog.Int("workouts", len(cmd.Workouts)))

	return cmd, nil
}

// systemPrompt describes the coaching persona, the available exercises, and
// the exact JSON wire shape the model must reply with.
func (s *Service) systemPrompt() string {
	var b strings.Builder
	b.WriteString("Você é um personal trainer virtual. Monte e edite treinos usando apenas os exercícios do catálogo abaixo.\n\n")

	b.WriteString("Catálogo por grupo muscular:\n")
	for _, group := range catalog.MuscleGroups {
		var names []string
		for _, e := range s.catalog.Exercises() {
			if e.TargetsPrimary(group) {
				names = append(names, e.Name)
			}
		}
		if len(names) > 0 {
			b.WriteString(fmt.Sprintf("- %s: %s\n", group, strings.Join(names, ", ")))
		}
	}

	b.WriteString(`
Responda sempre com um único objeto JSON, sem texto fora dele:
{
  "intent": "create" | "edit" | "delete",
  "action": "create_workouts" | "delete_workout" | "add_exercise" | "remove_exercise" | "replace_exercise" | "update_workout",
  "workouts": [
    {
      "title": "...",
      "description": "...",
      "type": "strength" | "cardio" | "flexibility",
      "muscleGroup": "peito" | "costas" | "ombros" | "biceps" | "triceps" | "pernas" | "gluteos" | "panturrilhas" | "abdomen" | "lombar" | "cardio" | "full-body",
      "difficulty": "iniciante" | "intermediario" | "avancado",
      "exercises": [
        {"name": "...", "sets": 3, "reps": "8-12", "rest": 60, "notes": "...", "alternatives": ["...", "..."]}
      ]
    }
  ],
  "targetWorkoutId": "...",
  "exerciseToRemove": "...",
  "exerciseToReplace": {"old": "...", "new": "..."},
  "message": "resumo curto para o usuário"
}
Inclua no máximo 3 alternativas por exercício.`)

	return b.String()
}
