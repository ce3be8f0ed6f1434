package workout

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/ompo-dev/gymrats/internal/sqlite"
)

// ErrNoProgram is returned when the user has no stored program.
var ErrNoProgram = errors.New("no program found")

// sqliteRepository stores generated programs.
type sqliteRepository struct {
	db *sqlite.Database
}

func newSQLiteRepository(db *sqlite.Database) *sqliteRepository {
	return &sqliteRepository{db: db}
}

// replaceProgram removes the user's prior program and writes the new one in
// a single transaction. Replacement is destructive and total: there is no
// incremental update of an existing program.
func (r *sqliteRepository) replaceProgram(ctx context.Context, userID string, plans []Plan) (Program, error) {
	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return Program{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO users (id) VALUES (?)
		ON CONFLICT (id) DO NOTHING`, userID); err != nil {
		return Program{}, fmt.Errorf("ensure user: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `
		DELETE FROM programs WHERE user_id = ?`, userID); err != nil {
		return Program{}, fmt.Errorf("delete prior program: %w", err)
	}

	programID := uuid.NewString()
	if _, err = tx.ExecContext(ctx, `
		INSERT INTO programs (id, user_id) VALUES (?, ?)`, programID, userID); err != nil {
		return Program{}, fmt.Errorf("insert program: %w", err)
	}

	for position, plan := range plans {
		if err = insertPlan(ctx, tx, programID, position, plan); err != nil {
			return Program{}, fmt.Errorf("insert plan %d: %w", position, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return Program{}, fmt.Errorf("commit transaction: %w", err)
	}

	return Program{ID: programID, Plans: plans}, nil
}

func insertPlan(ctx context.Context, tx *sql.Tx, programID string, position int, plan Plan) error {
	result, err := tx.ExecContext(ctx, `
		INSERT INTO plans (
			program_id, position, week, day, title, description, type,
			primary_muscle_group, difficulty, estimated_minutes, xp_reward
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		programID, position, plan.Week, plan.Day, plan.Title, plan.Description,
		plan.Type, plan.PrimaryMuscleGroup, plan.Difficulty,
		plan.EstimatedMinutes, plan.XPReward)
	if err != nil {
		return fmt.Errorf("insert plan row: %w", err)
	}
	planID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("plan id: %w", err)
	}

	for i, exercise := range plan.Exercises {
		result, err = tx.ExecContext(ctx, `
			INSERT INTO plan_exercises (
				plan_id, position, exercise_id, name, sets, reps, rest_seconds, notes
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			planID, i, exercise.ExerciseID, exercise.Name,
			exercise.Sets, exercise.Reps, exercise.RestSeconds, exercise.Notes)
		if err != nil {
			return fmt.Errorf("insert exercise %d: %w", i, err)
		}
		exerciseRowID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("exercise id: %w", err)
		}
		for j, alt := range exercise.Alternatives {
			if _, err = tx.ExecContext(ctx, `
				INSERT INTO exercise_alternatives (
					plan_exercise_id, position, name, reason, exercise_id
				) VALUES (?, ?, ?, ?, ?)`,
				exerciseRowID, j, alt.Name, alt.Reason, alt.ExerciseID); err != nil {
				return fmt.Errorf("insert alternative %d: %w", j, err)
			}
		}
	}
	return nil
}

// getProgram loads the user's stored program with plans in insertion order.
func (r *sqliteRepository) getProgram(ctx context.Context, userID string) (Program, error) {
	var programID string
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT id FROM programs WHERE user_id = ?`, userID).Scan(&programID)
	if errors.Is(err, sql.ErrNoRows) {
		return Program{}, ErrNoProgram
	}
	if err != nil {
		return Program{}, fmt.Errorf("query program: %w", err)
	}

	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, week, day, title, description, type,
		       primary_muscle_group, difficulty, estimated_minutes, xp_reward
		FROM plans
		WHERE program_id = ?
		ORDER BY position`, programID)
	if err != nil {
		return Program{}, fmt.Errorf("query plans: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only rows

	var plans []Plan
	var planIDs []int64
	for rows.Next() {
		var plan Plan
		var planID int64
		if err = rows.Scan(&planID, &plan.Week, &plan.Day, &plan.Title,
			&plan.Description, &plan.Type, &plan.PrimaryMuscleGroup,
			&plan.Difficulty, &plan.EstimatedMinutes, &plan.XPReward); err != nil {
			return Program{}, fmt.Errorf("scan plan: %w", err)
		}
		plans = append(plans, plan)
		planIDs = append(planIDs, planID)
	}
	if err = rows.Err(); err != nil {
		return Program{}, fmt.Errorf("iterate plans: %w", err)
	}

	for i, planID := range planIDs {
		if plans[i].Exercises, err = r.fetchExercises(ctx, planID); err != nil {
			return Program{}, fmt.Errorf("fetch exercises for plan %d: %w", planID, err)
		}
	}

	return Program{ID: programID, Plans: plans}, nil
}

func (r *sqliteRepository) fetchExercises(ctx context.Context, planID int64) ([]ExerciseSelection, error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, exercise_id, name, sets, reps, rest_seconds, notes
		FROM plan_exercises
		WHERE plan_id = ?
		ORDER BY position`, planID)
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only rows

	var exercises []ExerciseSelection
	var exerciseRowIDs []int64
	for rows.Next() {
		var e ExerciseSelection
		var rowID int64
		if err = rows.Scan(&rowID, &e.ExerciseID, &e.Name, &e.Sets, &e.Reps,
			&e.RestSeconds, &e.Notes); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, e)
		exerciseRowIDs = append(exerciseRowIDs, rowID)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exercises: %w", err)
	}

	for i, rowID := range exerciseRowIDs {
		if exercises[i].Alternatives, err = r.fetchAlternatives(ctx, rowID); err != nil {
			return nil, err
		}
	}
	return exercises, nil
}

func (r *sqliteRepository) fetchAlternatives(ctx context.Context, exerciseRowID int64) ([]Alternative, error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT name, reason, exercise_id
		FROM exercise_alternatives
		WHERE plan_exercise_id = ?
		ORDER BY position`, exerciseRowID)
	if err != nil {
		return nil, fmt.Errorf("query alternatives: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only rows

	var alternatives []Alternative
	for rows.Next() {
		var a Alternative
		if err = rows.Scan(&a.Name, &a.Reason, &a.ExerciseID); err != nil {
			return nil, fmt.Errorf("scan alternative: %w", err)
		}
		alternatives = append(alternatives, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate alternatives: %w", err)
	}
	return alternatives, nil
}
