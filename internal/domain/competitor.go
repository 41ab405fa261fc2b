package domain

import (
	"github.com/google/uuid"
)

// Gender of a competitor as stored.
type Gender int

// Genders used by the category table.
const (
	GenderMale   Gender = 1
	GenderFemale Gender = 2
)

// Valid reports whether g is male or female.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// DefaultYearOfBirth is used when a competitor is registered without one.
const DefaultYearOfBirth = 1950

// Competitor is a person registered for an event. Category is derived from
// gender, year of birth and weight but only when GenerateCategory is called;
// it is not kept in sync with later edits.
type Competitor struct {
	ID          uuid.UUID `validate:"required"`
	Name        string    `validate:"max=64"`
	Association string    `validate:"max=128"`
	Weight      int       `validate:"gte=0"`
	YearOfBirth int
	Gender      Gender
	Result      int
	Category    string `validate:"max=32"`
	Finished    int
	EventID     uuid.UUID // weak reference
	WorkoutID   uuid.UUID // weak reference
}

// CompetitorSnapshot is the externalizable form of a Competitor.
type CompetitorSnapshot struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Association string     `json:"association"`
	Weight      int        `json:"weight"`
	YearOfBirth int        `json:"y_o_b"`
	Gender      Gender     `json:"gender"`
	Result      int        `json:"result"`
	Category    string     `json:"category"`
	Finished    int        `json:"finished"`
	EventID     *uuid.UUID `json:"event,omitempty"`
	WorkoutID   *uuid.UUID `json:"workout,omitempty"`
}

// NewCompetitor creates a competitor for the given event and workout. A zero
// year of birth falls back to DefaultYearOfBirth. The category is left empty
// until GenerateCategory is called.
func NewCompetitor(eventID, workoutID uuid.UUID, name, association string, weight, yearOfBirth int, gender Gender) (*Competitor, error) {
	if yearOfBirth == 0 {
		yearOfBirth = DefaultYearOfBirth
	}

	competitor := &Competitor{
		ID:          uuid.New(),
		Name:        name,
		Association: association,
		Weight:      weight,
		YearOfBirth: yearOfBirth,
		Gender:      gender,
		EventID:     eventID,
		WorkoutID:   workoutID,
	}

	if err := competitor.Validate(); err != nil {
		return nil, err
	}

	return competitor, nil
}

// Validate checks the competitor's fields. Gender is not checked here; an
// invalid gender only prevents category derivation.
func (c *Competitor) Validate() error {
	return validateStruct(c)
}

// MarkFinished increments the competitor's finished counter.
func (c *Competitor) MarkFinished() {
	c.Finished++
}

// Snapshot returns the competitor's externalizable form.
func (c *Competitor) Snapshot() CompetitorSnapshot {
	return CompetitorSnapshot{
		ID:          c.ID,
		Name:        c.Name,
		Association: c.Association,
		Weight:      c.Weight,
		YearOfBirth: c.YearOfBirth,
		Gender:      c.Gender,
		Result:      c.Result,
		Category:    c.Category,
		Finished:    c.Finished,
		EventID:     optionalID(c.EventID),
		WorkoutID:   optionalID(c.WorkoutID),
	}
}
