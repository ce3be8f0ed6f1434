// Command smoketest exercises a running server end to end. It is meant to
// run against a fresh deployment before routing traffic to it.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ompo-dev/gymrats/internal/e2etest"
	"github.com/ompo-dev/gymrats/internal/logging"
	"github.com/ompo-dev/gymrats/internal/testhelpers"
	"github.com/ompo-dev/gymrats/internal/workout"
	"golang.org/x/sync/errgroup"
)

func testHealthy(ctx context.Context, client *e2etest.Client) error {
	var status struct {
		Status string `json:"status"`
	}
	if err := client.GetJSON(ctx, "/api/healthy", &status); err != nil {
		return fmt.Errorf("get healthy: %w", err)
	}
	if status.Status != "ok" {
		return fmt.Errorf("unexpected health status: %s", status.Status)
	}
	return nil
}

func testExerciseCatalog(ctx context.Context, client *e2etest.Client) error {
	var response struct {
		Exercises []struct {
			ID string `json:"id"`
		} `json:"exercises"`
	}
	if err := client.GetJSON(ctx, "/api/exercises", &response); err != nil {
		return fmt.Errorf("list exercises: %w", err)
	}
	if len(response.Exercises) == 0 {
		return errors.New("empty exercise catalog")
	}
	return nil
}

func testProgramGeneration(ctx context.Context, client *e2etest.Client) error {
	profile := workout.Profile{
		GymType:                workout.GymBodyweightOnly,
		FitnessLevel:           "iniciante",
		ActivityLevel:          4,
		WeeklyFrequency:        3,
		WorkoutDurationMinutes: 40,
		Goals:                  []string{"resistencia"},
	}
	var generated workout.Program
	if err := client.PostJSON(ctx, "/api/program/generate", profile, &generated); err != nil {
		return fmt.Errorf("generate program: %w", err)
	}
	if len(generated.Plans) == 0 {
		return errors.New("generated program has no plans")
	}
	var fetched workout.Program
	if err := client.GetJSON(ctx, "/api/program", &fetched); err != nil {
		return fmt.Errorf("fetch program: %w", err)
	}
	if fetched.ID != generated.ID {
		return fmt.Errorf("program ID mismatch: generated %s, fetched %s", generated.ID, fetched.ID)
	}
	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		err      error
		start    = time.Now()
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))
	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second) //nolint:mnd // 30 seconds
	defer cancel()

	// The read-only checks share one client. Program generation gets its own
	// session so that it does not clobber another check's state.
	var readOnlyClient, programClient *e2etest.Client
	if readOnlyClient, err = e2etest.NewClient(url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", slog.Any("error", err))
		os.Exit(1)
	}
	if programClient, err = e2etest.NewClient(url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", slog.Any("error", err))
		os.Exit(1)
	}
	if err = readOnlyClient.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error { return testHealthy(groupCtx, readOnlyClient) })
	group.Go(func() error { return testExerciseCatalog(groupCtx, readOnlyClient) })
	group.Go(func() error { return testProgramGeneration(groupCtx, programClient) })
	if err = group.Wait(); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "smoke test failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌", slog.Duration("duration", time.Since(start)))
	os.Exit(0)
}
