package domain

import (
	"time"

	"github.com/google/uuid"
)

// Workout is a named, ordered plan of exercises or intervals that can be
// assigned to events. ShortName is unique across all workouts.
type Workout struct {
	ID          uuid.UUID `validate:"required"`
	ShortName   string    `validate:"min=1,max=32"`
	Description string    `validate:"max=256"`
	Exercises   ExercisePlan
	CreatedAt   time.Time
	UserID      uuid.UUID // weak reference, uuid.Nil when unowned
}

// WorkoutSnapshot is the externalizable form of a Workout.
type WorkoutSnapshot struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Exercises   ExercisePlan `json:"exercises"`
	CreatedAt   string       `json:"created_at"`
	UserID      *uuid.UUID   `json:"user,omitempty"`
}

// NewWorkout creates a workout owned by userID.
func NewWorkout(userID uuid.UUID, shortName, description string, plan ExercisePlan) (*Workout, error) {
	workout := &Workout{
		ID:          uuid.New(),
		ShortName:   shortName,
		Description: description,
		Exercises:   plan,
		CreatedAt:   time.Now().UTC(),
		UserID:      userID,
	}

	if err := workout.Validate(); err != nil {
		return nil, err
	}

	return workout, nil
}

// Validate checks the workout's fields and plan.
func (w *Workout) Validate() error {
	if err := validateStruct(w); err != nil {
		return err
	}
	return w.Exercises.Validate()
}

// UpdatePlan replaces the workout's plan if it is valid.
func (w *Workout) UpdatePlan(plan ExercisePlan) error {
	if err := plan.Validate(); err != nil {
		return err
	}
	w.Exercises = plan
	return nil
}

// Snapshot returns the workout's externalizable form.
func (w *Workout) Snapshot() WorkoutSnapshot {
	return WorkoutSnapshot{
		ID:          w.ID,
		Name:        w.ShortName,
		Description: w.Description,
		Exercises:   w.Exercises,
		CreatedAt:   FormatTimestamp(w.CreatedAt),
		UserID:      optionalID(w.UserID),
	}
}
