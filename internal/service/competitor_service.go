package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/wodmeet/wodmeet/internal/domain"
	"github.com/wodmeet/wodmeet/internal/store"
)

// CompetitorInput carries the fields of a new competitor.
type CompetitorInput struct {
	Name        string
	Association string
	Weight      int
	YearOfBirth int
	Gender      domain.Gender
	WorkoutID   uuid.UUID
}

// CategoryStanding lists one category's competitors, best result first.
type CategoryStanding struct {
	Category    string                      `json:"category"`
	Competitors []domain.CompetitorSnapshot `json:"competitors"`
}

// Standings is an event's results grouped by category.
type Standings struct {
	Event      domain.EventSnapshot `json:"event"`
	Categories []CategoryStanding   `json:"categories"`
}

// CompetitorService registers competitors and tracks their results.
type CompetitorService interface {
	// RegisterCompetitor adds a competitor to the event and derives their
	// category. Closed events return ErrEventClosed; a workout the event does
	// not list returns ErrWorkoutNotAssigned.
	RegisterCompetitor(ctx context.Context, ident string, input CompetitorInput) (*domain.Competitor, error)

	// ListCompetitors returns the event's competitors.
	ListCompetitors(ctx context.Context, ident string) ([]*domain.Competitor, error)

	// RecalculateCategory derives the category again from the stored
	// attributes. On failure the stored category is unchanged.
	RecalculateCategory(ctx context.Context, competitorID uuid.UUID) (*domain.Competitor, error)

	// IncrementResult adds points to the competitor's result. Points are
	// coerced to an integer; non-integers return domain.ErrNotAnInteger and
	// closed events return ErrEventClosed, both leaving the result unchanged.
	IncrementResult(ctx context.Context, competitorID uuid.UUID, points any) (*domain.Competitor, error)

	// MarkFinished increments the competitor's finished counter.
	MarkFinished(ctx context.Context, competitorID uuid.UUID) (*domain.Competitor, error)

	// Standings groups the event's competitors by category, each ordered by
	// result descending.
	Standings(ctx context.Context, ident string) (*Standings, error)
}

// CompetitorServiceImpl implements the CompetitorService interface
type CompetitorServiceImpl struct {
	competitorStore store.CompetitorStore
	eventStore      store.EventStore
	db              *sql.DB
	logger          *slog.Logger
	now             func() time.Time
}

// NewCompetitorService creates a new CompetitorService.
func NewCompetitorService(
	competitorStore store.CompetitorStore,
	eventStore store.EventStore,
	db *sql.DB,
	logger *slog.Logger,
) (CompetitorService, error) {
	if competitorStore == nil {
		return nil, errors.New("competitorStore cannot be nil")
	}
	if eventStore == nil {
		return nil, errors.New("eventStore cannot be nil")
	}
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CompetitorServiceImpl{
		competitorStore: competitorStore,
		eventStore:      eventStore,
		db:              db,
		logger:          logger.With("component", "competitor_service"),
		now:             time.Now,
	}, nil
}

// RegisterCompetitor creates a competitor for the event with the given ident.
func (s *CompetitorServiceImpl) RegisterCompetitor(
	ctx context.Context,
	ident string,
	input CompetitorInput,
) (*domain.Competitor, error) {
	var competitor *domain.Competitor

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		event, err := s.eventStore.WithTx(tx).GetByIdent(ctx, ident)
		if err != nil {
			return fmt.Errorf("failed to retrieve event: %w", err)
		}
		if event.Closed {
			return ErrEventClosed
		}
		if input.WorkoutID != uuid.Nil && !containsID(event.Workouts, input.WorkoutID) {
			return ErrWorkoutNotAssigned
		}

		c, err := domain.NewCompetitor(
			event.ID,
			input.WorkoutID,
			input.Name,
			input.Association,
			input.Weight,
			input.YearOfBirth,
			input.Gender,
		)
		if err != nil {
			return err
		}
		if err := c.GenerateCategoryFor(s.now().Year()); err != nil {
			return err
		}

		if err := s.competitorStore.WithTx(tx).Create(ctx, c); err != nil {
			return fmt.Errorf("failed to save competitor: %w", err)
		}
		competitor = c
		return nil
	})
	if err != nil {
		s.logger.Debug("competitor registration failed",
			"error", err,
			"ident", ident)
		return nil, err
	}

	s.logger.Info("competitor registered",
		"competitor_id", competitor.ID,
		"event_id", competitor.EventID,
		"category", competitor.Category)
	return competitor, nil
}

// ListCompetitors lists the event's competitors.
func (s *CompetitorServiceImpl) ListCompetitors(ctx context.Context, ident string) ([]*domain.Competitor, error) {
	event, err := s.eventStore.GetByIdent(ctx, ident)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve event: %w", err)
	}
	competitors, err := s.competitorStore.ListByEvent(ctx, event.ID)
	if err != nil {
		s.logger.Error("failed to list competitors",
			"error", err,
			"event_id", event.ID)
		return nil, fmt.Errorf("failed to list competitors: %w", err)
	}
	return competitors, nil
}

// RecalculateCategory re-derives the competitor's category.
func (s *CompetitorServiceImpl) RecalculateCategory(
	ctx context.Context,
	competitorID uuid.UUID,
) (*domain.Competitor, error) {
	return s.mutate(ctx, "recalculate_category", competitorID, false,
		func(c *domain.Competitor) error {
			return c.GenerateCategoryFor(s.now().Year())
		})
}

// IncrementResult adds points to the competitor's result.
func (s *CompetitorServiceImpl) IncrementResult(
	ctx context.Context,
	competitorID uuid.UUID,
	points any,
) (*domain.Competitor, error) {
	return s.mutate(ctx, "increment_result", competitorID, true,
		func(c *domain.Competitor) error {
			return c.IncrementResult(points)
		})
}

// MarkFinished increments the competitor's finished counter.
func (s *CompetitorServiceImpl) MarkFinished(
	ctx context.Context,
	competitorID uuid.UUID,
) (*domain.Competitor, error) {
	return s.mutate(ctx, "mark_finished", competitorID, true,
		func(c *domain.Competitor) error {
			c.MarkFinished()
			return nil
		})
}

// mutate locks the competitor, applies fn and saves it in one transaction.
// When requireOpen is set, a competitor of a closed event is rejected with
// ErrEventClosed before fn runs, and the event stays share-locked until
// commit so it cannot be closed in between.
func (s *CompetitorServiceImpl) mutate(
	ctx context.Context,
	operation string,
	competitorID uuid.UUID,
	requireOpen bool,
	fn func(c *domain.Competitor) error,
) (*domain.Competitor, error) {
	var updated *domain.Competitor

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txCompetitors := s.competitorStore.WithTx(tx)

		c, err := txCompetitors.GetByIDForUpdate(ctx, competitorID)
		if err != nil {
			return fmt.Errorf("failed to retrieve competitor: %w", err)
		}

		if requireOpen && c.EventID != uuid.Nil {
			event, err := s.eventStore.WithTx(tx).GetByIDForShare(ctx, c.EventID)
			switch {
			case err == nil:
				if event.Closed {
					return ErrEventClosed
				}
			case store.IsNotFoundError(err):
				// dangling weak reference, nothing to enforce
			default:
				return fmt.Errorf("failed to retrieve event: %w", err)
			}
		}

		if err := fn(c); err != nil {
			return err
		}

		if err := txCompetitors.Update(ctx, c); err != nil {
			return fmt.Errorf("failed to update competitor: %w", err)
		}
		updated = c
		return nil
	})
	if err != nil {
		s.logger.Debug("competitor operation failed",
			"operation", operation,
			"error", err,
			"competitor_id", competitorID)
		return nil, err
	}

	s.logger.Info("competitor updated",
		"operation", operation,
		"competitor_id", competitorID,
		"result", updated.Result)
	return updated, nil
}

// Standings builds the event's category standings.
func (s *CompetitorServiceImpl) Standings(ctx context.Context, ident string) (*Standings, error) {
	event, err := s.eventStore.GetByIdent(ctx, ident)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve event: %w", err)
	}

	competitors, err := s.competitorStore.ListByEvent(ctx, event.ID)
	if err != nil {
		s.logger.Error("failed to list competitors for standings",
			"error", err,
			"event_id", event.ID)
		return nil, fmt.Errorf("failed to list competitors: %w", err)
	}

	return &Standings{
		Event:      event.Snapshot(),
		Categories: GroupByCategory(competitors),
	}, nil
}

// GroupByCategory groups competitors by category in category order, each
// group sorted by result descending. Ties keep name order.
func GroupByCategory(competitors []*domain.Competitor) []CategoryStanding {
	sorted := make([]*domain.Competitor, len(competitors))
	copy(sorted, competitors)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.Result != b.Result {
			return a.Result > b.Result
		}
		return a.Name < b.Name
	})

	groups := []CategoryStanding{}
	for _, c := range sorted {
		if len(groups) == 0 || groups[len(groups)-1].Category != c.Category {
			groups = append(groups, CategoryStanding{Category: c.Category})
		}
		last := &groups[len(groups)-1]
		last.Competitors = append(last.Competitors, c.Snapshot())
	}
	return groups
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
