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

// ExerciseInput carries the fields of a new exercise.
type ExerciseInput struct {
	Name      string
	ShortName string
	Link      string
	Type      domain.ExerciseType
	MaxRep    int
	Duration  int
}

// WorkoutService manages workouts and the exercises they are built from.
type WorkoutService interface {
	// CreateWorkout creates a workout. Exercise IDs in plan must exist.
	// Returns store.ErrWorkoutNameExists when the short name is taken.
	CreateWorkout(
		ctx context.Context,
		userID uuid.UUID,
		shortName, description string,
		plan domain.ExercisePlan,
	) (*domain.Workout, error)

	// GetWorkout retrieves a workout by ID.
	GetWorkout(ctx context.Context, id uuid.UUID) (*domain.Workout, error)

	// UpdatePlan replaces a workout's plan. Exercise IDs in plan must exist.
	UpdatePlan(ctx context.Context, actorID, id uuid.UUID, plan domain.ExercisePlan) (*domain.Workout, error)

	// CreateExercise creates an exercise owned by userID.
	CreateExercise(ctx context.Context, userID uuid.UUID, input ExerciseInput) (*domain.Exercise, error)

	// GetExercise retrieves an exercise by ID.
	GetExercise(ctx context.Context, id uuid.UUID) (*domain.Exercise, error)

	// ListExercises returns the exercises owned by userID ordered by name.
	ListExercises(ctx context.Context, userID uuid.UUID) ([]*domain.Exercise, error)
}

// WorkoutServiceImpl implements the WorkoutService interface
type WorkoutServiceImpl struct {
	workoutStore  store.WorkoutStore
	exerciseStore store.ExerciseStore
	db            *sql.DB
	logger        *slog.Logger
}

// NewWorkoutService creates a new WorkoutService.
func NewWorkoutService(
	workoutStore store.WorkoutStore,
	exerciseStore store.ExerciseStore,
	db *sql.DB,
	logger *slog.Logger,
) (WorkoutService, error) {
	if workoutStore == nil {
		return nil, errors.New("workoutStore cannot be nil")
	}
	if exerciseStore == nil {
		return nil, errors.New("exerciseStore cannot be nil")
	}
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &WorkoutServiceImpl{
		workoutStore:  workoutStore,
		exerciseStore: exerciseStore,
		db:            db,
		logger:        logger.With("component", "workout_service"),
	}, nil
}

// CreateWorkout creates and persists a workout.
func (s *WorkoutServiceImpl) CreateWorkout(
	ctx context.Context,
	userID uuid.UUID,
	shortName, description string,
	plan domain.ExercisePlan,
) (*domain.Workout, error) {
	workout, err := domain.NewWorkout(userID, shortName, description, plan)
	if err != nil {
		return nil, fmt.Errorf("failed to create workout: %w", err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.checkExercises(ctx, s.exerciseStore.WithTx(tx), plan); err != nil {
			return err
		}
		return s.workoutStore.WithTx(tx).Create(ctx, workout)
	})
	if err != nil {
		if !store.IsDuplicateError(err) && !store.IsNotFoundError(err) {
			s.logger.Error("failed to save workout",
				"error", err,
				"short_name", shortName)
		}
		return nil, fmt.Errorf("failed to create workout: %w", err)
	}

	s.logger.Info("workout created",
		"workout_id", workout.ID,
		"short_name", workout.ShortName)
	return workout, nil
}

// GetWorkout retrieves a workout by ID.
func (s *WorkoutServiceImpl) GetWorkout(ctx context.Context, id uuid.UUID) (*domain.Workout, error) {
	workout, err := s.workoutStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve workout: %w", err)
	}
	return workout, nil
}

// UpdatePlan replaces the plan with the workout row locked.
func (s *WorkoutServiceImpl) UpdatePlan(
	ctx context.Context,
	actorID, id uuid.UUID,
	plan domain.ExercisePlan,
) (*domain.Workout, error) {
	var updated *domain.Workout

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txWorkouts := s.workoutStore.WithTx(tx)

		workout, err := txWorkouts.GetByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to retrieve workout: %w", err)
		}
		if err := checkOwner(workout.UserID, actorID); err != nil {
			return err
		}
		if err := s.checkExercises(ctx, s.exerciseStore.WithTx(tx), plan); err != nil {
			return err
		}
		if err := workout.UpdatePlan(plan); err != nil {
			return err
		}
		if err := txWorkouts.Update(ctx, workout); err != nil {
			return fmt.Errorf("failed to update workout: %w", err)
		}
		updated = workout
		return nil
	})
	if err != nil {
		s.logger.Debug("workout plan update failed",
			"error", err,
			"workout_id", id)
		return nil, err
	}

	s.logger.Info("workout plan updated", "workout_id", id)
	return updated, nil
}

// checkExercises verifies every exercise ID in plan names an existing exercise.
func (s *WorkoutServiceImpl) checkExercises(
	ctx context.Context,
	exercises store.ExerciseStore,
	plan domain.ExercisePlan,
) error {
	for _, id := range plan.ExerciseIDs {
		if _, err := exercises.GetByID(ctx, id); err != nil {
			return fmt.Errorf("exercise %s: %w", id, err)
		}
	}
	return nil
}

// CreateExercise creates and persists an exercise.
func (s *WorkoutServiceImpl) CreateExercise(
	ctx context.Context,
	userID uuid.UUID,
	input ExerciseInput,
) (*domain.Exercise, error) {
	exercise, err := domain.NewExercise(userID, input.Name, input.ShortName, input.Type, input.MaxRep, input.Duration)
	if err != nil {
		return nil, fmt.Errorf("failed to create exercise: %w", err)
	}
	exercise.Link = input.Link
	if err := exercise.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create exercise: %w", err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.exerciseStore.WithTx(tx).Create(ctx, exercise)
	})
	if err != nil {
		s.logger.Error("failed to save exercise",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to create exercise: %w", err)
	}

	s.logger.Info("exercise created",
		"exercise_id", exercise.ID,
		"type", exercise.Type)
	return exercise, nil
}

// GetExercise retrieves an exercise by ID.
func (s *WorkoutServiceImpl) GetExercise(ctx context.Context, id uuid.UUID) (*domain.Exercise, error) {
	exercise, err := s.exerciseStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve exercise: %w", err)
	}
	return exercise, nil
}

// ListExercises lists the exercises owned by userID.
func (s *WorkoutServiceImpl) ListExercises(ctx context.Context, userID uuid.UUID) ([]*domain.Exercise, error) {
	exercises, err := s.exerciseStore.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list exercises",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	return exercises, nil
}
