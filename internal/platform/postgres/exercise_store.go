package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/wodmeet/wodmeet/internal/domain"
	"github.com/wodmeet/wodmeet/internal/platform/logger"
	"github.com/wodmeet/wodmeet/internal/store"
)

const exerciseColumns = `id, name, short_name, link, type, max_rep, duration, user_id`

// PostgresExerciseStore implements the store.ExerciseStore interface.
type PostgresExerciseStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresExerciseStore creates a new PostgreSQL implementation of the ExerciseStore interface.
func NewPostgresExerciseStore(db store.DBTX, logger *slog.Logger) *PostgresExerciseStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresExerciseStore{
		db:     db,
		logger: logger.With(slog.String("component", "exercise_store")),
	}
}

var _ store.ExerciseStore = (*PostgresExerciseStore)(nil)

// WithTx implements store.ExerciseStore.WithTx
func (s *PostgresExerciseStore) WithTx(tx *sql.Tx) store.ExerciseStore {
	return &PostgresExerciseStore{db: tx, logger: s.logger}
}

// Create implements store.ExerciseStore.Create
func (s *PostgresExerciseStore) Create(ctx context.Context, exercise *domain.Exercise) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := exercise.Validate(); err != nil {
		log.Warn("exercise validation failed during create",
			slog.String("error", err.Error()),
			slog.String("exercise_id", exercise.ID.String()))
		return err
	}

	query := `
		INSERT INTO exercises (` + exerciseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(ctx, query,
		exercise.ID,
		exercise.Name,
		exercise.ShortName,
		exercise.Link,
		string(exercise.Type),
		exercise.MaxRep,
		exercise.Duration,
		nullableID(exercise.UserID),
	)
	if err != nil {
		err = MapError(err)
		log.Error("failed to create exercise",
			slog.String("error", err.Error()),
			slog.String("exercise_id", exercise.ID.String()))
		return err
	}

	log.Info("exercise created", slog.String("exercise_id", exercise.ID.String()))
	return nil
}

// GetByID implements store.ExerciseStore.GetByID
func (s *PostgresExerciseStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Exercise, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	exercise, err := scanExercise(s.db.QueryRowContext(ctx,
		`SELECT `+exerciseColumns+` FROM exercises WHERE id = $1`, id))
	if err != nil {
		err = mapNotFound(err, store.ErrExerciseNotFound)
		if !store.IsNotFoundError(err) {
			log.Error("failed to get exercise",
				slog.String("error", err.Error()),
				slog.String("exercise_id", id.String()))
		}
		return nil, err
	}
	return exercise, nil
}

// ListByUser implements store.ExerciseStore.ListByUser
func (s *PostgresExerciseStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Exercise, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+exerciseColumns+` FROM exercises WHERE user_id = $1 ORDER BY name ASC`, userID)
	if err != nil {
		log.Error("failed to list exercises",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	exercises := []*domain.Exercise{}
	for rows.Next() {
		exercise, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, exercise)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return exercises, nil
}

func scanExercise(row rowScanner) (*domain.Exercise, error) {
	var (
		e      domain.Exercise
		exType string
		userID uuid.NullUUID
	)
	if err := row.Scan(
		&e.ID,
		&e.Name,
		&e.ShortName,
		&e.Link,
		&exType,
		&e.MaxRep,
		&e.Duration,
		&userID,
	); err != nil {
		return nil, err
	}
	e.Type = domain.ExerciseType(exType)
	e.UserID = userID.UUID
	return &e, nil
}

// Update implements store.ExerciseStore.Update
func (s *PostgresExerciseStore) Update(ctx context.Context, exercise *domain.Exercise) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := exercise.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE exercises
		SET name = $1, short_name = $2, link = $3, type = $4, max_rep = $5, duration = $6, user_id = $7
		WHERE id = $8
	`
	result, err := s.db.ExecContext(ctx, query,
		exercise.Name,
		exercise.ShortName,
		exercise.Link,
		string(exercise.Type),
		exercise.MaxRep,
		exercise.Duration,
		nullableID(exercise.UserID),
		exercise.ID,
	)
	if err != nil {
		err = MapError(err)
		log.Error("failed to update exercise",
			slog.String("error", err.Error()),
			slog.String("exercise_id", exercise.ID.String()))
		return err
	}

	return CheckRowsAffected(result, store.ErrExerciseNotFound)
}

// Delete implements store.ExerciseStore.Delete
func (s *PostgresExerciseStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM exercises WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrExerciseNotFound)
}
