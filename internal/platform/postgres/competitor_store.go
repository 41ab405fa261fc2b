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

const competitorColumns = `id, cname, association, weight, y_o_b, gender, result, category, finished, event_id, workout_id`

// PostgresCompetitorStore implements the store.CompetitorStore interface.
type PostgresCompetitorStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCompetitorStore creates a new PostgreSQL implementation of the CompetitorStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresCompetitorStore(db store.DBTX, logger *slog.Logger) *PostgresCompetitorStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCompetitorStore{
		db:     db,
		logger: logger.With(slog.String("component", "competitor_store")),
	}
}

// Ensure PostgresCompetitorStore implements store.CompetitorStore interface
var _ store.CompetitorStore = (*PostgresCompetitorStore)(nil)

// WithTx implements store.CompetitorStore.WithTx
func (s *PostgresCompetitorStore) WithTx(tx *sql.Tx) store.CompetitorStore {
	return &PostgresCompetitorStore{db: tx, logger: s.logger}
}

// Create implements store.CompetitorStore.Create
func (s *PostgresCompetitorStore) Create(ctx context.Context, competitor *domain.Competitor) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := competitor.Validate(); err != nil {
		log.Warn("competitor validation failed during create",
			slog.String("error", err.Error()),
			slog.String("competitor_id", competitor.ID.String()))
		return err
	}

	query := `
		INSERT INTO competitors (` + competitorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := s.db.ExecContext(ctx, query,
		competitor.ID,
		competitor.Name,
		competitor.Association,
		competitor.Weight,
		competitor.YearOfBirth,
		int(competitor.Gender),
		competitor.Result,
		competitor.Category,
		competitor.Finished,
		nullableID(competitor.EventID),
		nullableID(competitor.WorkoutID),
	)
	if err != nil {
		err = MapError(err)
		log.Error("failed to create competitor",
			slog.String("error", err.Error()),
			slog.String("competitor_id", competitor.ID.String()))
		return err
	}

	log.Info("competitor created",
		slog.String("competitor_id", competitor.ID.String()),
		slog.String("event_id", competitor.EventID.String()),
		slog.String("category", competitor.Category))
	return nil
}

// GetByID implements store.CompetitorStore.GetByID
func (s *PostgresCompetitorStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Competitor, error) {
	return s.getOne(ctx, `SELECT `+competitorColumns+` FROM competitors WHERE id = $1`, id)
}

// GetByIDForUpdate implements store.CompetitorStore.GetByIDForUpdate
func (s *PostgresCompetitorStore) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Competitor, error) {
	return s.getOne(ctx, `SELECT `+competitorColumns+` FROM competitors WHERE id = $1 FOR UPDATE`, id)
}

func (s *PostgresCompetitorStore) getOne(ctx context.Context, query string, id uuid.UUID) (*domain.Competitor, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	competitor, err := scanCompetitor(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		err = mapNotFound(err, store.ErrCompetitorNotFound)
		if !store.IsNotFoundError(err) {
			log.Error("failed to get competitor",
				slog.String("error", err.Error()),
				slog.String("competitor_id", id.String()))
		}
		return nil, err
	}
	return competitor, nil
}

// ListByEvent implements store.CompetitorStore.ListByEvent
func (s *PostgresCompetitorStore) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*domain.Competitor, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + competitorColumns + `
		FROM competitors
		WHERE event_id = $1
		ORDER BY category ASC, result DESC, cname ASC
	`
	rows, err := s.db.QueryContext(ctx, query, eventID)
	if err != nil {
		log.Error("failed to list competitors",
			slog.String("error", err.Error()),
			slog.String("event_id", eventID.String()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	competitors := []*domain.Competitor{}
	for rows.Next() {
		competitor, err := scanCompetitor(rows)
		if err != nil {
			return nil, err
		}
		competitors = append(competitors, competitor)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return competitors, nil
}

func scanCompetitor(row rowScanner) (*domain.Competitor, error) {
	var (
		c         domain.Competitor
		gender    int
		eventID   uuid.NullUUID
		workoutID uuid.NullUUID
	)
	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Association,
		&c.Weight,
		&c.YearOfBirth,
		&gender,
		&c.Result,
		&c.Category,
		&c.Finished,
		&eventID,
		&workoutID,
	); err != nil {
		return nil, err
	}
	c.Gender = domain.Gender(gender)
	c.EventID = eventID.UUID
	c.WorkoutID = workoutID.UUID
	return &c, nil
}

// Update implements store.CompetitorStore.Update
func (s *PostgresCompetitorStore) Update(ctx context.Context, competitor *domain.Competitor) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := competitor.Validate(); err != nil {
		log.Warn("competitor validation failed during update",
			slog.String("error", err.Error()),
			slog.String("competitor_id", competitor.ID.String()))
		return err
	}

	query := `
		UPDATE competitors
		SET cname = $1, association = $2, weight = $3, y_o_b = $4, gender = $5,
			result = $6, category = $7, finished = $8, event_id = $9, workout_id = $10
		WHERE id = $11
	`
	result, err := s.db.ExecContext(ctx, query,
		competitor.Name,
		competitor.Association,
		competitor.Weight,
		competitor.YearOfBirth,
		int(competitor.Gender),
		competitor.Result,
		competitor.Category,
		competitor.Finished,
		nullableID(competitor.EventID),
		nullableID(competitor.WorkoutID),
		competitor.ID,
	)
	if err != nil {
		err = MapError(err)
		log.Error("failed to update competitor",
			slog.String("error", err.Error()),
			slog.String("competitor_id", competitor.ID.String()))
		return err
	}

	return CheckRowsAffected(result, store.ErrCompetitorNotFound)
}

// Delete implements store.CompetitorStore.Delete
func (s *PostgresCompetitorStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM competitors WHERE id = $1`, id)
	if err != nil {
		err = MapError(err)
		log.Error("failed to delete competitor",
			slog.String("error", err.Error()),
			slog.String("competitor_id", id.String()))
		return err
	}

	return CheckRowsAffected(result, store.ErrCompetitorNotFound)
}
