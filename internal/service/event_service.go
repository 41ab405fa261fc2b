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

// EventService provides event operations. Events are addressed by ident.
// Mutations take the acting user's ID and return ErrNotOwned when the event
// belongs to someone else.
type EventService interface {
	// CreateEvent creates an event owned by userID. Empty names fall back to
	// the domain defaults.
	CreateEvent(ctx context.Context, userID uuid.UUID, shortName, description string) (*domain.Event, error)

	// GetEvent returns the newest event with the given ident.
	GetEvent(ctx context.Context, ident string) (*domain.Event, error)

	// ListEvents returns the events owned by userID, newest first.
	ListEvents(ctx context.Context, userID uuid.UUID) ([]*domain.Event, error)

	// AssignWorkouts replaces the event's ordered workout list. Every ID must
	// name an existing workout.
	AssignWorkouts(ctx context.Context, actorID uuid.UUID, ident string, workoutIDs []uuid.UUID) (*domain.Event, error)

	// SetSequence stores the event's free-form schedule string.
	SetSequence(ctx context.Context, actorID uuid.UUID, ident, sequence string) (*domain.Event, error)

	// CloseEvent marks the event closed. Closing twice is not an error.
	CloseEvent(ctx context.Context, actorID uuid.UUID, ident string) (*domain.Event, error)

	// IncrementNamed adds one to the event's named counter.
	IncrementNamed(ctx context.Context, ident string) (*domain.Event, error)

	// RegenerateIdent assigns a fresh ident. The old ident stops resolving.
	RegenerateIdent(ctx context.Context, actorID uuid.UUID, ident string) (*domain.Event, error)
}

// EventServiceImpl implements the EventService interface
type EventServiceImpl struct {
	eventStore   store.EventStore
	workoutStore store.WorkoutStore
	db           *sql.DB
	logger       *slog.Logger
}

// NewEventService creates a new EventService.
func NewEventService(
	eventStore store.EventStore,
	workoutStore store.WorkoutStore,
	db *sql.DB,
	logger *slog.Logger,
) (EventService, error) {
	if eventStore == nil {
		return nil, errors.New("eventStore cannot be nil")
	}
	if workoutStore == nil {
		return nil, errors.New("workoutStore cannot be nil")
	}
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &EventServiceImpl{
		eventStore:   eventStore,
		workoutStore: workoutStore,
		db:           db,
		logger:       logger.With("component", "event_service"),
	}, nil
}

// CreateEvent creates and persists a new event.
func (s *EventServiceImpl) CreateEvent(
	ctx context.Context,
	userID uuid.UUID,
	shortName, description string,
) (*domain.Event, error) {
	event, err := domain.NewEvent(userID, shortName, description)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.eventStore.WithTx(tx).Create(ctx, event)
	})
	if err != nil {
		s.logger.Error("failed to save event",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.logger.Info("event created",
		"event_id", event.ID,
		"ident", event.Ident,
		"user_id", userID)
	return event, nil
}

// GetEvent retrieves an event by ident.
func (s *EventServiceImpl) GetEvent(ctx context.Context, ident string) (*domain.Event, error) {
	event, err := s.eventStore.GetByIdent(ctx, ident)
	if err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to retrieve event",
				"error", err,
				"ident", ident)
		}
		return nil, fmt.Errorf("failed to retrieve event: %w", err)
	}
	return event, nil
}

// ListEvents lists the events owned by userID.
func (s *EventServiceImpl) ListEvents(ctx context.Context, userID uuid.UUID) ([]*domain.Event, error) {
	events, err := s.eventStore.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list events",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// AssignWorkouts replaces the event's workout list.
func (s *EventServiceImpl) AssignWorkouts(
	ctx context.Context,
	actorID uuid.UUID,
	ident string,
	workoutIDs []uuid.UUID,
) (*domain.Event, error) {
	return s.mutate(ctx, "assign_workouts", ident, func(ctx context.Context, tx *sql.Tx, event *domain.Event) error {
		if err := checkOwner(event.UserID, actorID); err != nil {
			return err
		}

		txWorkouts := s.workoutStore.WithTx(tx)
		list := make(domain.WorkoutList, 0, len(workoutIDs))
		for _, id := range workoutIDs {
			if _, err := txWorkouts.GetByID(ctx, id); err != nil {
				return fmt.Errorf("workout %s: %w", id, err)
			}
			list = append(list, id)
		}
		event.Workouts = list
		return nil
	})
}

// SetSequence stores the event's schedule string.
func (s *EventServiceImpl) SetSequence(
	ctx context.Context,
	actorID uuid.UUID,
	ident, sequence string,
) (*domain.Event, error) {
	return s.mutate(ctx, "set_sequence", ident, func(ctx context.Context, tx *sql.Tx, event *domain.Event) error {
		if err := checkOwner(event.UserID, actorID); err != nil {
			return err
		}
		event.Sequence = sequence
		return nil
	})
}

// CloseEvent marks the event closed.
func (s *EventServiceImpl) CloseEvent(ctx context.Context, actorID uuid.UUID, ident string) (*domain.Event, error) {
	return s.mutate(ctx, "close_event", ident, func(ctx context.Context, tx *sql.Tx, event *domain.Event) error {
		if err := checkOwner(event.UserID, actorID); err != nil {
			return err
		}
		event.Closed = true
		return nil
	})
}

// IncrementNamed bumps the event's named counter.
func (s *EventServiceImpl) IncrementNamed(ctx context.Context, ident string) (*domain.Event, error) {
	return s.mutate(ctx, "increment_named", ident, func(ctx context.Context, tx *sql.Tx, event *domain.Event) error {
		event.Named++
		return nil
	})
}

// RegenerateIdent gives the event a new ident.
func (s *EventServiceImpl) RegenerateIdent(
	ctx context.Context,
	actorID uuid.UUID,
	ident string,
) (*domain.Event, error) {
	return s.mutate(ctx, "regenerate_ident", ident, func(ctx context.Context, tx *sql.Tx, event *domain.Event) error {
		if err := checkOwner(event.UserID, actorID); err != nil {
			return err
		}
		previous := event.Ident
		event.RegenerateIdent()
		s.logger.Info("event ident regenerated",
			"event_id", event.ID,
			"previous_ident", previous,
			"ident", event.Ident)
		return nil
	})
}

// mutate locks the event, applies fn and saves the result in one transaction.
func (s *EventServiceImpl) mutate(
	ctx context.Context,
	operation string,
	ident string,
	fn func(ctx context.Context, tx *sql.Tx, event *domain.Event) error,
) (*domain.Event, error) {
	var updated *domain.Event

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txEvents := s.eventStore.WithTx(tx)

		event, err := txEvents.GetByIdentForUpdate(ctx, ident)
		if err != nil {
			return fmt.Errorf("failed to retrieve event: %w", err)
		}

		if err := fn(ctx, tx, event); err != nil {
			return err
		}

		if err := txEvents.Update(ctx, event); err != nil {
			return fmt.Errorf("failed to update event: %w", err)
		}
		updated = event
		return nil
	})
	if err != nil {
		if !store.IsNotFoundError(err) && !errors.Is(err, ErrNotOwned) {
			s.logger.Error("event operation failed",
				"operation", operation,
				"error", err,
				"ident", ident)
		}
		return nil, err
	}

	s.logger.Debug("event updated",
		"operation", operation,
		"event_id", updated.ID)
	return updated, nil
}
