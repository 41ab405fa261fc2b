package api

import (
	"github.com/google/uuid"
	"github.com/wodmeet/wodmeet/internal/domain"
)

// CreateUserRequest is the payload of POST /api/users.
type CreateUserRequest struct {
	Username  string `json:"username"  validate:"required,max=32"`
	Password  string `json:"password"  validate:"required"`
	Superuser bool   `json:"superuser"`
}

// AuthenticateRequest is the payload of POST /api/users/authenticate.
type AuthenticateRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest is the payload of PUT /api/users/{id}/password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required"`
}

// CreateEventRequest is the payload of POST /api/events.
type CreateEventRequest struct {
	Name        string `json:"name"        validate:"max=32"`
	Description string `json:"description" validate:"max=256"`
}

// AssignWorkoutsRequest is the payload of PUT /api/events/{ident}/workouts.
type AssignWorkoutsRequest struct {
	Workouts []uuid.UUID `json:"workouts" validate:"dive,required"`
}

// SetSequenceRequest is the payload of PUT /api/events/{ident}/sequence.
type SetSequenceRequest struct {
	Sequence string `json:"sequence"`
}

// RegisterCompetitorRequest is the payload of POST /api/events/{ident}/competitors.
type RegisterCompetitorRequest struct {
	Name        string    `json:"name"        validate:"required,max=64"`
	Association string    `json:"association" validate:"max=128"`
	Weight      int       `json:"weight"      validate:"gte=0"`
	YearOfBirth int       `json:"y_o_b"       validate:"gte=0"`
	Gender      int       `json:"gender"      validate:"oneof=1 2"`
	WorkoutID   uuid.UUID `json:"workout"`
}

// IncrementResultRequest is the payload of POST /api/competitors/{id}/result.
// Points accepts any JSON value; non-integers are rejected by the service.
type IncrementResultRequest struct {
	Points any `json:"points"`
}

// CreateWorkoutRequest is the payload of POST /api/workouts.
type CreateWorkoutRequest struct {
	Name        string              `json:"name"        validate:"required,max=32"`
	Description string              `json:"description" validate:"max=256"`
	Exercises   domain.ExercisePlan `json:"exercises"`
}

// UpdatePlanRequest is the payload of PUT /api/workouts/{id}/plan.
type UpdatePlanRequest struct {
	Exercises domain.ExercisePlan `json:"exercises"`
}

// CreateExerciseRequest is the payload of POST /api/exercises.
type CreateExerciseRequest struct {
	Name      string              `json:"name"       validate:"max=64"`
	ShortName string              `json:"short_name" validate:"max=32"`
	Link      string              `json:"link"       validate:"omitempty,url,max=2048"`
	Type      domain.ExerciseType `json:"type"       validate:"omitempty,oneof=rest warmup workout"`
	MaxRep    int                 `json:"max_rep"    validate:"gte=-1"`
	Duration  int                 `json:"duration"   validate:"gte=0"`
}
