package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/wodmeet/wodmeet/internal/api"
	"github.com/wodmeet/wodmeet/internal/config"
	"github.com/wodmeet/wodmeet/internal/platform/postgres"
	"github.com/wodmeet/wodmeet/internal/service"
	"github.com/wodmeet/wodmeet/internal/store"
)

// application holds the shared dependencies of the server and owns their
// cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore       store.UserStore
	eventStore      store.EventStore
	workoutStore    store.WorkoutStore
	competitorStore store.CompetitorStore
	exerciseStore   store.ExerciseStore

	hashGate          *service.HashGate
	userService       service.UserService
	eventService      service.EventService
	workoutService    service.WorkoutService
	competitorService service.CompetitorService
}

// newApplication wires stores and services around an open database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.eventStore = postgres.NewPostgresEventStore(db, logger)
	app.workoutStore = postgres.NewPostgresWorkoutStore(db, logger)
	app.competitorStore = postgres.NewPostgresCompetitorStore(db, logger)
	app.exerciseStore = postgres.NewPostgresExerciseStore(db, logger)

	app.hashGate = service.NewHashGate(cfg.Auth.HashConcurrency)

	var err error
	app.userService, err = service.NewUserService(app.userStore, db, app.hashGate, cfg.Auth.BcryptCost, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	app.eventService, err = service.NewEventService(app.eventStore, app.workoutStore, db, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create event service: %w", err)
	}

	app.workoutService, err = service.NewWorkoutService(app.workoutStore, app.exerciseStore, db, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create workout service: %w", err)
	}

	app.competitorService, err = service.NewCompetitorService(app.competitorStore, app.eventStore, db, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create competitor service: %w", err)
	}

	logger.Info("application initialized")
	return app, nil
}

// setupRouter builds the HTTP handler tree from the application's services.
func (app *application) setupRouter() http.Handler {
	return api.NewRouter(api.Handlers{
		Users:       api.NewUserHandler(app.userService, app.logger),
		Events:      api.NewEventHandler(app.eventService, app.logger),
		Workouts:    api.NewWorkoutHandler(app.workoutService, app.logger),
		Competitors: api.NewCompetitorHandler(app.competitorService, app.logger),
	}, app.logger)
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases the application's resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}
	app.logger.Info("application shutdown completed")
}
