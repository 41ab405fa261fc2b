package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/wodmeet/wodmeet/internal/domain"
)

// ExerciseStore defines the interface for exercise persistence.
type ExerciseStore interface {
	Create(ctx context.Context, exercise *domain.Exercise) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Exercise, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Exercise, error)
	Update(ctx context.Context, exercise *domain.Exercise) error
	Delete(ctx context.Context, id uuid.UUID) error
	WithTx(tx *sql.Tx) ExerciseStore
}
