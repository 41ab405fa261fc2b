package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/wodmeet/wodmeet/internal/domain"
	"github.com/wodmeet/wodmeet/internal/store"
)

// UserService provides account operations. It checks credentials but keeps
// no sessions.
type UserService interface {
	// CreateUser creates a user with the given username and password.
	// Returns a *domain.PasswordPolicyError for a weak password and
	// store.ErrUsernameExists when the username is taken.
	CreateUser(ctx context.Context, username, password string, superuser bool) (*domain.User, error)

	// Authenticate returns the user when password matches.
	// Returns ErrInvalidCredentials otherwise.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)

	// ChangePassword replaces the password after verifying the current one.
	// On any failure the stored credentials are unchanged.
	ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error

	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// DeleteUser deletes a user. Owned events, workouts and exercises are kept.
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore store.UserStore
	db        *sql.DB
	gate      *HashGate
	cost      int
	logger    *slog.Logger
}

// NewUserService creates a new UserService. Passwords are hashed at cost
// through gate; a nil gate admits DefaultHashConcurrency hashes at once.
func NewUserService(
	userStore store.UserStore,
	db *sql.DB,
	gate *HashGate,
	cost int,
	logger *slog.Logger,
) (UserService, error) {
	if userStore == nil {
		return nil, errors.New("userStore cannot be nil")
	}
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}
	if gate == nil {
		gate = NewHashGate(DefaultHashConcurrency)
	}
	if cost == 0 {
		cost = domain.PasswordCost
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UserServiceImpl{
		userStore: userStore,
		db:        db,
		gate:      gate,
		cost:      cost,
		logger:    logger.With("component", "user_service"),
	}, nil
}

// CreateUser creates a new user inside a transaction.
func (s *UserServiceImpl) CreateUser(
	ctx context.Context,
	username, password string,
	superuser bool,
) (*domain.User, error) {
	user, err := domain.NewUser(username, superuser)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// reject weak passwords before waiting for a hashing slot
	if err := domain.CheckPasswordPolicy(password); err != nil {
		s.logger.Debug("password rejected by policy", "username", username)
		return nil, err
	}

	if err := s.gate.Do(ctx, func() error {
		return user.SetPasswordWithCost(password, s.cost)
	}); err != nil {
		return nil, fmt.Errorf("failed to set password: %w", err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			s.logger.Debug("attempted to create user with existing username",
				"username", username)
		} else {
			s.logger.Error("failed to save user to database",
				"error", err,
				"username", username)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user created",
		"user_id", user.ID,
		"superuser", superuser)
	return user, nil
}

// Authenticate checks a username/password pair.
func (s *UserServiceImpl) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if store.IsNotFoundError(err) {
			s.logger.Debug("authentication for unknown username", "username", username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to load user for authentication",
			"error", err,
			"username", username)
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	var ok bool
	if err := s.gate.Do(ctx, func() error {
		ok = user.CheckPassword(password)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}
	if !ok {
		s.logger.Debug("password mismatch", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// ChangePassword verifies current and stores next. Both bcrypt steps run
// before the transaction; the row is then locked and the new hash is saved
// only if the stored hash is still the one that was verified.
func (s *UserServiceImpl) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	if err := domain.CheckPasswordPolicy(next); err != nil {
		return err
	}

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to retrieve user for password change",
				"error", err,
				"user_id", userID)
		}
		return fmt.Errorf("failed to retrieve user: %w", err)
	}
	verified := user.PasswordHash

	err = s.gate.Do(ctx, func() error {
		if !user.CheckPassword(current) {
			return ErrInvalidCredentials
		}
		return user.SetPasswordWithCost(next, s.cost)
	})
	if err != nil {
		return err
	}

	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		locked, err := txStore.GetByIDForUpdate(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to retrieve user: %w", err)
		}
		if locked.PasswordHash != verified {
			s.logger.Debug("password changed concurrently", "user_id", userID)
			return ErrInvalidCredentials
		}
		user.Username = locked.Username
		user.IsSuperuser = locked.IsSuperuser

		if err := txStore.Update(ctx, user); err != nil {
			s.logger.Error("failed to save new password",
				"error", err,
				"user_id", userID)
			return fmt.Errorf("failed to update user: %w", err)
		}

		s.logger.Info("password changed", "user_id", userID)
		return nil
	})
}

// GetUser retrieves a user by their ID
func (s *UserServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to retrieve user",
				"error", err,
				"user_id", userID)
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return user, nil
}

// DeleteUser deletes a user by their ID
func (s *UserServiceImpl) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Delete(ctx, userID)
	})
	if err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to delete user",
				"error", err,
				"user_id", userID)
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("user deleted", "user_id", userID)
	return nil
}
