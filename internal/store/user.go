package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/wodmeet/wodmeet/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user. The user must already carry credentials.
	// Returns ErrUsernameExists if the username is taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByIDForUpdate is GetByID with the row locked until the surrounding
	// transaction ends. Only meaningful on a store returned by WithTx.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByUsername retrieves a user by username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// Update saves all fields of an existing user, credentials included.
	// Returns ErrUserNotFound or ErrUsernameExists.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user. Events, workouts and exercises that reference
	// the user are kept with their owner cleared.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a UserStore bound to tx.
	WithTx(tx *sql.Tx) UserStore
}
