package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/ompo-dev/gymrats/internal/catalog"
	"github.com/ompo-dev/gymrats/internal/coach"
	"github.com/ompo-dev/gymrats/internal/e2etest"
	"github.com/ompo-dev/gymrats/internal/envstruct"
	"github.com/ompo-dev/gymrats/internal/errors"
	"github.com/ompo-dev/gymrats/internal/flightrecorder"
	"github.com/ompo-dev/gymrats/internal/logging"
	"github.com/ompo-dev/gymrats/internal/sqlite"
	"github.com/ompo-dev/gymrats/internal/workout"
)

// chatStreamer lets handler tests script the coach without an API key.
type chatStreamer interface {
	StreamChat(ctx context.Context, req coach.ChatRequest, onProgress coach.ProgressFunc) (coach.ParsedCommand, error)
}

type application struct {
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	catalog        *catalog.Catalog
	workoutService *workout.Service
	coachService   chatStreamer
	flightRecorder *flightrecorder.Service
	chatTimeout    time.Duration
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"GYMRATS_ADDR" envDefault:"localhost:8080"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"GYMRATS_SQLITE_URL" envDefault:"./gymrats.sqlite3"`
	// OpenAIAPIKey authenticates the coach against the OpenAI API. Empty disables the chat endpoint.
	OpenAIAPIKey string `env:"OPENAI_API_KEY" envDefault:""`
	// OpenAIModel is the chat model the coach talks to.
	OpenAIModel string `env:"GYMRATS_OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	// ChatTimeoutSeconds bounds one coach chat turn including streaming.
	ChatTimeoutSeconds int `env:"GYMRATS_CHAT_TIMEOUT_SECONDS" envDefault:"120"`
	// TracesDir is the optional directory for slow request traces. Empty disables the flight recorder.
	TracesDir string `env:"GYMRATS_TRACES_DIR" envDefault:""`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db", slog.String(e2etest.LogDsnKey, cfg.SqliteURL))

	exerciseCatalog, err := catalog.Load()
	if err != nil {
		return errors.Wrap(err, "load exercise catalog")
	}

	var flightRecorder *flightrecorder.Service
	if cfg.TracesDir != "" {
		if flightRecorder, err = flightrecorder.New(flightrecorder.Config{
			Logger:          logger,
			TracesDirectory: cfg.TracesDir,
		}); err != nil {
			return errors.Wrap(err, "new flight recorder")
		}
		if err = flightRecorder.Start(ctx); err != nil {
			return errors.Wrap(err, "start flight recorder")
		}
		defer flightRecorder.Stop(ctx)
	}

	var coachService chatStreamer
	if cfg.OpenAIAPIKey != "" {
		coachService = coach.NewService(exerciseCatalog, cfg.OpenAIAPIKey, cfg.OpenAIModel, logger)
	}

	app := application{
		logger:         logger,
		sessionManager: initializeSessionManager(db),
		catalog:        exerciseCatalog,
		workoutService: workout.NewService(exerciseCatalog, db, logger),
		coachService:   coachService,
		flightRecorder: flightRecorder,
		chatTimeout:    time.Duration(cfg.ChatTimeoutSeconds) * time.Second,
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr, app.routes()); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func initializeSessionManager(dbs *sqlite.Database) *scs.SessionManager {
	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(dbs.ReadWrite, 24*time.Hour) //nolint:mnd // day
	sessionManager.Lifetime = 30 * 24 * time.Hour                                           //nolint:mnd // month
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.Secure = true
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteStrictMode
	return sessionManager
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
