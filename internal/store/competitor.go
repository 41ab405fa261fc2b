package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/wodmeet/wodmeet/internal/domain"
)

// CompetitorStore defines the interface for competitor persistence.
type CompetitorStore interface {
	// Create saves a new competitor.
	Create(ctx context.Context, competitor *domain.Competitor) error

	// GetByID retrieves a competitor by ID. Returns ErrCompetitorNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Competitor, error)

	// GetByIDForUpdate is GetByID with the row locked for the rest of the
	// transaction. Result increments must go through it.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Competitor, error)

	// ListByEvent returns an event's competitors ordered by category, then
	// result descending.
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*domain.Competitor, error)

	// Update saves all fields of an existing competitor.
	// Returns ErrCompetitorNotFound.
	Update(ctx context.Context, competitor *domain.Competitor) error

	// Delete removes a competitor. Returns ErrCompetitorNotFound.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a CompetitorStore bound to tx.
	WithTx(tx *sql.Tx) CompetitorStore
}
