package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/wodmeet/wodmeet/internal/domain"
)

// WorkoutStore defines the interface for workout persistence.
type WorkoutStore interface {
	// Create saves a new workout. Returns ErrWorkoutNameExists if the short
	// name is taken.
	Create(ctx context.Context, workout *domain.Workout) error

	// GetByID retrieves a workout by ID. Returns ErrWorkoutNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Workout, error)

	// GetByIDForUpdate is GetByID with the row locked for the rest of the
	// transaction.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Workout, error)

	// GetByShortName retrieves a workout by its unique short name.
	// Returns ErrWorkoutNotFound.
	GetByShortName(ctx context.Context, shortName string) (*domain.Workout, error)

	// Update saves all fields of an existing workout.
	// Returns ErrWorkoutNotFound or ErrWorkoutNameExists.
	Update(ctx context.Context, workout *domain.Workout) error

	// Delete removes a workout. Returns ErrWorkoutNotFound.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a WorkoutStore bound to tx.
	WithTx(tx *sql.Tx) WorkoutStore
}
