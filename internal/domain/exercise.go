package domain

import (
	"github.com/google/uuid"
)

// ExerciseType classifies an exercise.
type ExerciseType string

// Exercise types.
const (
	ExerciseRest    ExerciseType = "rest"
	ExerciseWarmup  ExerciseType = "warmup"
	ExerciseWorkout ExerciseType = "workout"
)

// UnlimitedReps is the MaxRep value for an exercise without a rep cap.
const UnlimitedReps = -1

// Default values for a new exercise.
const (
	DefaultExerciseName      = "Noname exercise"
	DefaultExerciseShortName = "Noname_short"
)

// Exercise is a reusable building block of a workout.
type Exercise struct {
	ID        uuid.UUID    `validate:"required"`
	Name      string       `validate:"min=1,max=64"`
	ShortName string       `validate:"max=32"`
	Link      string       `validate:"max=2048"`
	Type      ExerciseType `validate:"oneof=rest warmup workout"`
	MaxRep    int          `validate:"gte=-1"`
	Duration  int          `validate:"gte=0"` // seconds
	UserID    uuid.UUID    // weak reference, uuid.Nil when unowned
}

// ExerciseSnapshot is the externalizable form of an Exercise.
type ExerciseSnapshot struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	ShortName string       `json:"short_name"`
	Link      string       `json:"link"`
	Type      ExerciseType `json:"type"`
	MaxRep    int          `json:"max_rep"`
	Duration  int          `json:"duration"`
	UserID    *uuid.UUID   `json:"user,omitempty"`
}

// NewExercise creates an exercise owned by userID. Empty names fall back to
// the defaults and an empty type means rest.
func NewExercise(userID uuid.UUID, name, shortName string, exType ExerciseType, maxRep, duration int) (*Exercise, error) {
	if name == "" {
		name = DefaultExerciseName
	}
	if shortName == "" {
		shortName = DefaultExerciseShortName
	}
	if exType == "" {
		exType = ExerciseRest
	}

	exercise := &Exercise{
		ID:        uuid.New(),
		Name:      name,
		ShortName: shortName,
		Type:      exType,
		MaxRep:    maxRep,
		Duration:  duration,
		UserID:    userID,
	}

	if err := exercise.Validate(); err != nil {
		return nil, err
	}

	return exercise, nil
}

// Validate checks the exercise's fields.
func (e *Exercise) Validate() error {
	return validateStruct(e)
}

// Unlimited reports whether the exercise has no rep cap.
func (e *Exercise) Unlimited() bool {
	return e.MaxRep == UnlimitedReps
}

// Snapshot returns the exercise's externalizable form.
func (e *Exercise) Snapshot() ExerciseSnapshot {
	return ExerciseSnapshot{
		ID:        e.ID,
		Name:      e.Name,
		ShortName: e.ShortName,
		Link:      e.Link,
		Type:      e.Type,
		MaxRep:    e.MaxRep,
		Duration:  e.Duration,
		UserID:    optionalID(e.UserID),
	}
}
