package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/wodmeet/wodmeet/internal/domain"
	"github.com/wodmeet/wodmeet/internal/platform/logger"
	"github.com/wodmeet/wodmeet/internal/store"
)

const workoutColumns = `id, short_name, description, exercises, created_at, user_id`

// PostgresWorkoutStore implements the store.WorkoutStore interface.
type PostgresWorkoutStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresWorkoutStore creates a new PostgreSQL implementation of the WorkoutStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresWorkoutStore(db store.DBTX, logger *slog.Logger) *PostgresWorkoutStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresWorkoutStore{
		db:     db,
		logger: logger.With(slog.String("component", "workout_store")),
	}
}

// Ensure PostgresWorkoutStore implements store.WorkoutStore interface
var _ store.WorkoutStore = (*PostgresWorkoutStore)(nil)

// WithTx implements store.WorkoutStore.WithTx
func (s *PostgresWorkoutStore) WithTx(tx *sql.Tx) store.WorkoutStore {
	return &PostgresWorkoutStore{db: tx, logger: s.logger}
}

// Create implements store.WorkoutStore.Create
func (s *PostgresWorkoutStore) Create(ctx context.Context, workout *domain.Workout) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := workout.Validate(); err != nil {
		log.Warn("workout validation failed during create",
			slog.String("error", err.Error()),
			slog.String("workout_id", workout.ID.String()))
		return err
	}

	plan, err := domain.EncodePlan(workout.Exercises)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO workouts (` + workoutColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = s.db.ExecContext(ctx, query,
		workout.ID,
		workout.ShortName,
		workout.Description,
		plan,
		workout.CreatedAt,
		nullableID(workout.UserID),
	)
	if err != nil {
		err = MapError(err)
		log.Error("failed to create workout",
			slog.String("error", err.Error()),
			slog.String("workout_id", workout.ID.String()))
		return err
	}

	log.Info("workout created",
		slog.String("workout_id", workout.ID.String()),
		slog.String("short_name", workout.ShortName))
	return nil
}

// GetByID implements store.WorkoutStore.GetByID
func (s *PostgresWorkoutStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Workout, error) {
	return s.getOne(ctx, `SELECT `+workoutColumns+` FROM workouts WHERE id = $1`, id)
}

// GetByIDForUpdate implements store.WorkoutStore.GetByIDForUpdate
func (s *PostgresWorkoutStore) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Workout, error) {
	return s.getOne(ctx, `SELECT `+workoutColumns+` FROM workouts WHERE id = $1 FOR UPDATE`, id)
}

// GetByShortName implements store.WorkoutStore.GetByShortName
func (s *PostgresWorkoutStore) GetByShortName(ctx context.Context, shortName string) (*domain.Workout, error) {
	return s.getOne(ctx, `SELECT `+workoutColumns+` FROM workouts WHERE short_name = $1`, shortName)
}

func (s *PostgresWorkoutStore) getOne(ctx context.Context, query string, arg any) (*domain.Workout, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	workout, err := scanWorkout(s.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		err = mapNotFound(err, store.ErrWorkoutNotFound)
		if !store.IsNotFoundError(err) {
			log.Error("failed to get workout", slog.String("error", err.Error()))
		}
		return nil, err
	}
	return workout, nil
}

func scanWorkout(row rowScanner) (*domain.Workout, error) {
	var (
		workout domain.Workout
		plan    string
		userID  uuid.NullUUID
	)
	if err := row.Scan(
		&workout.ID,
		&workout.ShortName,
		&workout.Description,
		&plan,
		&workout.CreatedAt,
		&userID,
	); err != nil {
		return nil, err
	}

	exercises, err := domain.DecodePlan(plan)
	if err != nil {
		return nil, fmt.Errorf("workout %s: %w", workout.ID, err)
	}
	workout.Exercises = exercises
	workout.UserID = userID.UUID
	workout.CreatedAt = workout.CreatedAt.UTC()
	return &workout, nil
}

// Update implements store.WorkoutStore.Update
func (s *PostgresWorkoutStore) Update(ctx context.Context, workout *domain.Workout) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := workout.Validate(); err != nil {
		log.Warn("workout validation failed during update",
			slog.String("error", err.Error()),
			slog.String("workout_id", workout.ID.String()))
		return err
	}

	plan, err := domain.EncodePlan(workout.Exercises)
	if err != nil {
		return err
	}

	query := `
		UPDATE workouts
		SET short_name = $1, description = $2, exercises = $3, user_id = $4
		WHERE id = $5
	`
	result, err := s.db.ExecContext(ctx, query,
		workout.ShortName,
		workout.Description,
		plan,
		nullableID(workout.UserID),
		workout.ID,
	)
	if err != nil {
		err = MapError(err)
		log.Error("failed to update workout",
			slog.String("error", err.Error()),
			slog.String("workout_id", workout.ID.String()))
		return err
	}

	return CheckRowsAffected(result, store.ErrWorkoutNotFound)
}

// Delete implements store.WorkoutStore.Delete
func (s *PostgresWorkoutStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM workouts WHERE id = $1`, id)
	if err != nil {
		err = MapError(err)
		log.Error("failed to delete workout",
			slog.String("error", err.Error()),
			slog.String("workout_id", id.String()))
		return err
	}

	return CheckRowsAffected(result, store.ErrWorkoutNotFound)
}
