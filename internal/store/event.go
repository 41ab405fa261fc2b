package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/wodmeet/wodmeet/internal/domain"
)

// EventStore defines the interface for event persistence.
type EventStore interface {
	// Create saves a new event.
	Create(ctx context.Context, event *domain.Event) error

	// GetByID retrieves an event by ID. Returns ErrEventNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)

	// GetByIDForShare is GetByID with the row share-locked for the rest of
	// the transaction. It blocks concurrent updates of the event but not
	// other share locks.
	GetByIDForShare(ctx context.Context, id uuid.UUID) (*domain.Event, error)

	// GetByIdent retrieves an event by its ident. Idents are not guaranteed
	// unique; the most recently created match wins. Returns ErrEventNotFound.
	GetByIdent(ctx context.Context, ident string) (*domain.Event, error)

	// GetByIdentForUpdate is GetByIdent with the row locked for the rest of
	// the transaction.
	GetByIdentForUpdate(ctx context.Context, ident string) (*domain.Event, error)

	// ListByUser returns the events owned by userID, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Event, error)

	// Update saves all fields of an existing event. Returns ErrEventNotFound.
	Update(ctx context.Context, event *domain.Event) error

	// Delete removes an event. Returns ErrEventNotFound.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns an EventStore bound to tx.
	WithTx(tx *sql.Tx) EventStore
}
