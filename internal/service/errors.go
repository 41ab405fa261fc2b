package service

import (
	"errors"

	"github.com/google/uuid"
)

// Service-level sentinel errors. The API layer maps them to status codes.
var (
	// ErrNotOwned indicates a resource is owned by a different user than the one making the request.
	// API layer should map this to HTTP 403 Forbidden.
	ErrNotOwned = errors.New("resource is owned by another user")

	// ErrEventClosed is returned when a result change is attempted on a closed event.
	// API layer should map this to HTTP 409 Conflict.
	ErrEventClosed = errors.New("event is closed")

	// ErrInvalidCredentials is returned when a username/password pair does not match.
	// It does not reveal which of the two was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrWorkoutNotAssigned is returned when a competitor is registered for a
	// workout the event does not list.
	ErrWorkoutNotAssigned = errors.New("workout is not assigned to the event")
)

// checkOwner allows unowned resources and resources owned by actorID.
func checkOwner(ownerID, actorID uuid.UUID) error {
	if ownerID != uuid.Nil && ownerID != actorID {
		return ErrNotOwned
	}
	return nil
}
