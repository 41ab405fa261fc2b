package api_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/wodmeet/wodmeet/internal/domain"
	"github.com/wodmeet/wodmeet/internal/service"
)

// MockUserService mocks service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, username, password string, superuser bool) (*domain.User, error) {
	args := m.Called(ctx, username, password, superuser)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	return m.Called(ctx, userID, current, next).Error(0)
}

func (m *MockUserService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

// MockEventService mocks service.EventService.
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) event(args mock.Arguments) (*domain.Event, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventService) CreateEvent(ctx context.Context, userID uuid.UUID, shortName, description string) (*domain.Event, error) {
	return m.event(m.Called(ctx, userID, shortName, description))
}

func (m *MockEventService) GetEvent(ctx context.Context, ident string) (*domain.Event, error) {
	return m.event(m.Called(ctx, ident))
}

func (m *MockEventService) ListEvents(ctx context.Context, userID uuid.UUID) ([]*domain.Event, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Event), args.Error(1)
}

func (m *MockEventService) AssignWorkouts(ctx context.Context, actorID uuid.UUID, ident string, workoutIDs []uuid.UUID) (*domain.Event, error) {
	return m.event(m.Called(ctx, actorID, ident, workoutIDs))
}

func (m *MockEventService) SetSequence(ctx context.Context, actorID uuid.UUID, ident, sequence string) (*domain.Event, error) {
	return m.event(m.Called(ctx, actorID, ident, sequence))
}

func (m *MockEventService) CloseEvent(ctx context.Context, actorID uuid.UUID, ident string) (*domain.Event, error) {
	return m.event(m.Called(ctx, actorID, ident))
}

func (m *MockEventService) IncrementNamed(ctx context.Context, ident string) (*domain.Event, error) {
	return m.event(m.Called(ctx, ident))
}

func (m *MockEventService) RegenerateIdent(ctx context.Context, actorID uuid.UUID, ident string) (*domain.Event, error) {
	return m.event(m.Called(ctx, actorID, ident))
}

// MockWorkoutService mocks service.WorkoutService.
type MockWorkoutService struct {
	mock.Mock
}

func (m *MockWorkoutService) workout(args mock.Arguments) (*domain.Workout, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workout), args.Error(1)
}

func (m *MockWorkoutService) exercise(args mock.Arguments) (*domain.Exercise, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Exercise), args.Error(1)
}

func (m *MockWorkoutService) CreateWorkout(ctx context.Context, userID uuid.UUID, shortName, description string, plan domain.ExercisePlan) (*domain.Workout, error) {
	return m.workout(m.Called(ctx, userID, shortName, description, plan))
}

func (m *MockWorkoutService) GetWorkout(ctx context.Context, id uuid.UUID) (*domain.Workout, error) {
	return m.workout(m.Called(ctx, id))
}

func (m *MockWorkoutService) UpdatePlan(ctx context.Context, actorID, id uuid.UUID, plan domain.ExercisePlan) (*domain.Workout, error) {
	return m.workout(m.Called(ctx, actorID, id, plan))
}

func (m *MockWorkoutService) CreateExercise(ctx context.Context, userID uuid.UUID, input service.ExerciseInput) (*domain.Exercise, error) {
	return m.exercise(m.Called(ctx, userID, input))
}

func (m *MockWorkoutService) GetExercise(ctx context.Context, id uuid.UUID) (*domain.Exercise, error) {
	return m.exercise(m.Called(ctx, id))
}

func (m *MockWorkoutService) ListExercises(ctx context.Context, userID uuid.UUID) ([]*domain.Exercise, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Exercise), args.Error(1)
}

// MockCompetitorService mocks service.CompetitorService.
type MockCompetitorService struct {
	mock.Mock
}

func (m *MockCompetitorService) competitor(args mock.Arguments) (*domain.Competitor, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Competitor), args.Error(1)
}

func (m *MockCompetitorService) RegisterCompetitor(ctx context.Context, ident string, input service.CompetitorInput) (*domain.Competitor, error) {
	return m.competitor(m.Called(ctx, ident, input))
}

func (m *MockCompetitorService) ListCompetitors(ctx context.Context, ident string) ([]*domain.Competitor, error) {
	args := m.Called(ctx, ident)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Competitor), args.Error(1)
}

func (m *MockCompetitorService) RecalculateCategory(ctx context.Context, competitorID uuid.UUID) (*domain.Competitor, error) {
	return m.competitor(m.Called(ctx, competitorID))
}

func (m *MockCompetitorService) IncrementResult(ctx context.Context, competitorID uuid.UUID, points any) (*domain.Competitor, error) {
	return m.competitor(m.Called(ctx, competitorID, points))
}

func (m *MockCompetitorService) MarkFinished(ctx context.Context, competitorID uuid.UUID) (*domain.Competitor, error) {
	return m.competitor(m.Called(ctx, competitorID))
}

func (m *MockCompetitorService) Standings(ctx context.Context, ident string) (*service.Standings, error) {
	args := m.Called(ctx, ident)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Standings), args.Error(1)
}
