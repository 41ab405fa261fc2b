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

const eventColumns = `id, description, short_name, created_at, workouts, sequence, ident, closed, named, user_id`

// PostgresEventStore implements the store.EventStore interface.
type PostgresEventStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresEventStore creates a new PostgreSQL implementation of the EventStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresEventStore(db store.DBTX, logger *slog.Logger) *PostgresEventStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresEventStore{
		db:     db,
		logger: logger.With(slog.String("component", "event_store")),
	}
}

// Ensure PostgresEventStore implements store.EventStore interface
var _ store.EventStore = (*PostgresEventStore)(nil)

// WithTx implements store.EventStore.WithTx
func (s *PostgresEventStore) WithTx(tx *sql.Tx) store.EventStore {
	return &PostgresEventStore{db: tx, logger: s.logger}
}

// Create implements store.EventStore.Create
func (s *PostgresEventStore) Create(ctx context.Context, event *domain.Event) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := event.Validate(); err != nil {
		log.Warn("event validation failed during create",
			slog.String("error", err.Error()),
			slog.String("event_id", event.ID.String()))
		return err
	}

	workouts, err := domain.EncodeWorkoutList(event.Workouts)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = s.db.ExecContext(ctx, query,
		event.ID,
		event.Description,
		event.ShortName,
		event.CreatedAt,
		workouts,
		event.Sequence,
		event.Ident,
		event.Closed,
		event.Named,
		nullableID(event.UserID),
	)
	if err != nil {
		err = MapError(err)
		log.Error("failed to create event",
			slog.String("error", err.Error()),
			slog.String("event_id", event.ID.String()))
		return err
	}

	log.Info("event created",
		slog.String("event_id", event.ID.String()),
		slog.String("ident", event.Ident))
	return nil
}

// GetByID implements store.EventStore.GetByID
func (s *PostgresEventStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	return s.getOne(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
}

// GetByIDForShare implements store.EventStore.GetByIDForShare
func (s *PostgresEventStore) GetByIDForShare(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	return s.getOne(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1 FOR SHARE`, id)
}

// GetByIdent implements store.EventStore.GetByIdent
func (s *PostgresEventStore) GetByIdent(ctx context.Context, ident string) (*domain.Event, error) {
	return s.getOne(ctx, `SELECT `+eventColumns+` FROM events WHERE ident = $1
		ORDER BY created_at DESC LIMIT 1`, ident)
}

// GetByIdentForUpdate implements store.EventStore.GetByIdentForUpdate
func (s *PostgresEventStore) GetByIdentForUpdate(ctx context.Context, ident string) (*domain.Event, error) {
	return s.getOne(ctx, `SELECT `+eventColumns+` FROM events WHERE ident = $1
		ORDER BY created_at DESC LIMIT 1 FOR UPDATE`, ident)
}

func (s *PostgresEventStore) getOne(ctx context.Context, query string, arg any) (*domain.Event, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	event, err := scanEvent(s.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		err = mapNotFound(err, store.ErrEventNotFound)
		if !store.IsNotFoundError(err) {
			log.Error("failed to get event", slog.String("error", err.Error()))
		}
		return nil, err
	}
	return event, nil
}

// ListByUser implements store.EventStore.ListByUser
func (s *PostgresEventStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Event, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+eventColumns+` FROM events WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		log.Error("failed to list events",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	events := []*domain.Event{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return events, nil
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var (
		event    domain.Event
		workouts string
		userID   uuid.NullUUID
	)
	if err := row.Scan(
		&event.ID,
		&event.Description,
		&event.ShortName,
		&event.CreatedAt,
		&workouts,
		&event.Sequence,
		&event.Ident,
		&event.Closed,
		&event.Named,
		&userID,
	); err != nil {
		return nil, err
	}

	list, err := domain.DecodeWorkoutList(workouts)
	if err != nil {
		return nil, fmt.Errorf("event %s: %w", event.ID, err)
	}
	event.Workouts = list
	event.UserID = userID.UUID
	event.CreatedAt = event.CreatedAt.UTC()
	return &event, nil
}

// Update implements store.EventStore.Update
func (s *PostgresEventStore) Update(ctx context.Context, event *domain.Event) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := event.Validate(); err != nil {
		log.Warn("event validation failed during update",
			slog.String("error", err.Error()),
			slog.String("event_id", event.ID.String()))
		return err
	}

	workouts, err := domain.EncodeWorkoutList(event.Workouts)
	if err != nil {
		return err
	}

	query := `
		UPDATE events
		SET description = $1, short_name = $2, workouts = $3, sequence = $4,
			ident = $5, closed = $6, named = $7, user_id = $8
		WHERE id = $9
	`
	result, err := s.db.ExecContext(ctx, query,
		event.Description,
		event.ShortName,
		workouts,
		event.Sequence,
		event.Ident,
		event.Closed,
		event.Named,
		nullableID(event.UserID),
		event.ID,
	)
	if err != nil {
		err = MapError(err)
		log.Error("failed to update event",
			slog.String("error", err.Error()),
			slog.String("event_id", event.ID.String()))
		return err
	}

	return CheckRowsAffected(result, store.ErrEventNotFound)
}

// Delete implements store.EventStore.Delete
func (s *PostgresEventStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		err = MapError(err)
		log.Error("failed to delete event",
			slog.String("error", err.Error()),
			slog.String("event_id", id.String()))
		return err
	}

	return CheckRowsAffected(result, store.ErrEventNotFound)
}
