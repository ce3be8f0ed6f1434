package workout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ompo-dev/gymrats/internal/catalog"
	"github.com/ompo-dev/gymrats/internal/sqlite"
)

// Service generates and stores workout programs.
type Service struct {
	generator *generator
	repo      *sqliteRepository
	logger    *slog.Logger
}

// NewService creates a workout service backed by the given catalog and database.
func NewService(c *catalog.Catalog, db *sqlite.Database, logger *slog.Logger) *Service {
	return &Service{
		generator: newGenerator(c),
		repo:      newSQLiteRepository(db),
		logger:    logger,
	}
}

// RegeneratePlan builds a fresh four-week program for the profile and stores
// it, replacing whatever program the user had before.
func (s *Service) RegeneratePlan(ctx context.Context, userID string, profile Profile) (Program, error) {
	plans := s.generator.GenerateProgram(profile)

	program, err := s.repo.replaceProgram(ctx, userID, plans)
	if err != nil {
		return Program{}, fmt.Errorf("replace program: %w", err)
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "generated program",
		slog.String("programID", program.ID),
		slog.Int("plans", len(program.Plans)),
		slog.Int("weeklyFrequency", profile.WeeklyFrequency))

	return program, nil
}

// GetProgram returns the user's stored program. ErrNoProgram when none exists.
func (s *Service) GetProgram(ctx context.Context, userID string) (Program, error) {
	program, err := s.repo.getProgram(ctx, userID)
	if err != nil {
		return Program{}, fmt.Errorf("get program: %w", err)
	}
	return program, nil
}
