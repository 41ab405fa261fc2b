package service_test

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/wodmeet/wodmeet/internal/domain"
	"github.com/wodmeet/wodmeet/internal/store"
)

// MockUserStore mocks store.UserStore. WithTx returns the same mock.
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}

// MockEventStore mocks store.EventStore.
type MockEventStore struct {
	mock.Mock
}

func (m *MockEventStore) Create(ctx context.Context, event *domain.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventStore) GetByIDForShare(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventStore) GetByIdent(ctx context.Context, ident string) (*domain.Event, error) {
	args := m.Called(ctx, ident)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventStore) GetByIdentForUpdate(ctx context.Context, ident string) (*domain.Event, error) {
	args := m.Called(ctx, ident)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Event, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Event), args.Error(1)
}

func (m *MockEventStore) Update(ctx context.Context, event *domain.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockEventStore) WithTx(tx *sql.Tx) store.EventStore {
	return m
}

// MockWorkoutStore mocks store.WorkoutStore.
type MockWorkoutStore struct {
	mock.Mock
}

func (m *MockWorkoutStore) Create(ctx context.Context, workout *domain.Workout) error {
	return m.Called(ctx, workout).Error(0)
}

func (m *MockWorkoutStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Workout, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workout), args.Error(1)
}

func (m *MockWorkoutStore) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Workout, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workout), args.Error(1)
}

func (m *MockWorkoutStore) GetByShortName(ctx context.Context, shortName string) (*domain.Workout, error) {
	args := m.Called(ctx, shortName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workout), args.Error(1)
}

func (m *MockWorkoutStore) Update(ctx context.Context, workout *domain.Workout) error {
	return m.Called(ctx, workout).Error(0)
}

func (m *MockWorkoutStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockWorkoutStore) WithTx(tx *sql.Tx) store.WorkoutStore {
	return m
}

// MockCompetitorStore mocks store.CompetitorStore.
type MockCompetitorStore struct {
	mock.Mock
}

func (m *MockCompetitorStore) Create(ctx context.Context, competitor *domain.Competitor) error {
	return m.Called(ctx, competitor).Error(0)
}

func (m *MockCompetitorStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Competitor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Competitor), args.Error(1)
}

func (m *MockCompetitorStore) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Competitor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Competitor), args.Error(1)
}

func (m *MockCompetitorStore) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*domain.Competitor, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Competitor), args.Error(1)
}

func (m *MockCompetitorStore) Update(ctx context.Context, competitor *domain.Competitor) error {
	return m.Called(ctx, competitor).Error(0)
}

func (m *MockCompetitorStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCompetitorStore) WithTx(tx *sql.Tx) store.CompetitorStore {
	return m
}

// MockExerciseStore mocks store.ExerciseStore.
type MockExerciseStore struct {
	mock.Mock
}

func (m *MockExerciseStore) Create(ctx context.Context, exercise *domain.Exercise) error {
	return m.Called(ctx, exercise).Error(0)
}

func (m *MockExerciseStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Exercise, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Exercise), args.Error(1)
}

func (m *MockExerciseStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Exercise, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Exercise), args.Error(1)
}

func (m *MockExerciseStore) Update(ctx context.Context, exercise *domain.Exercise) error {
	return m.Called(ctx, exercise).Error(0)
}

func (m *MockExerciseStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockExerciseStore) WithTx(tx *sql.Tx) store.ExerciseStore {
	return m
}
