package domain

import (
	"time"

	"github.com/google/uuid"
)

// Default values for a new event.
const (
	DefaultEventDescription = "No description"
	DefaultEventShortName   = "No name"
)

// Event is a competition that competitors register for. Its ident is
// assigned once by NewEvent; once Closed is set no further results are
// accepted.
type Event struct {
	ID          uuid.UUID `validate:"required"`
	Description string    `validate:"max=256"`
	ShortName   string    `validate:"max=32"`
	CreatedAt   time.Time
	Workouts    WorkoutList
	Sequence    string
	Ident       string `validate:"len=6,hexadecimal"`
	Closed      bool
	Named       int
	UserID      uuid.UUID // weak reference, uuid.Nil when unowned
}

// EventSnapshot is the externalizable form of an Event.
type EventSnapshot struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Workouts    []uuid.UUID `json:"workouts"`
	Sequence    string      `json:"sequence"`
	CreatedAt   string      `json:"created_at"`
	Closed      bool        `json:"closed"`
	Ident       string      `json:"ident"`
	Named       int         `json:"named"`
	UserID      *uuid.UUID  `json:"user,omitempty"`
}

// NewEvent creates an event owned by userID with a freshly generated ident.
// Empty names and descriptions fall back to the defaults.
func NewEvent(userID uuid.UUID, shortName, description string) (*Event, error) {
	if shortName == "" {
		shortName = DefaultEventShortName
	}
	if description == "" {
		description = DefaultEventDescription
	}

	now := time.Now().UTC()
	event := &Event{
		ID:          uuid.New(),
		Description: description,
		ShortName:   shortName,
		CreatedAt:   now,
		Workouts:    WorkoutList{},
		Ident:       GenerateIdent(now),
		UserID:      userID,
	}

	if err := event.Validate(); err != nil {
		return nil, err
	}

	return event, nil
}

// Validate checks the event's fields.
func (e *Event) Validate() error {
	return validateStruct(e)
}

// RegenerateIdent replaces the event's ident with a new one and returns it.
// Nothing prevents calling it on a published event; callers decide when
// that is acceptable.
func (e *Event) RegenerateIdent() string {
	e.Ident = GenerateIdent(time.Now())
	return e.Ident
}

// Snapshot returns the event's externalizable form.
func (e *Event) Snapshot() EventSnapshot {
	workouts := []uuid.UUID(e.Workouts)
	if workouts == nil {
		workouts = []uuid.UUID{}
	}
	return EventSnapshot{
		ID:          e.ID,
		Name:        e.ShortName,
		Description: e.Description,
		Workouts:    workouts,
		Sequence:    e.Sequence,
		CreatedAt:   FormatTimestamp(e.CreatedAt),
		Closed:      e.Closed,
		Ident:       e.Ident,
		Named:       e.Named,
		UserID:      optionalID(e.UserID),
	}
}

func optionalID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}
