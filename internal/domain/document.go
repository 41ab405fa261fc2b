package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// DocumentVersion is the version written into every encoded plan and
// workout list. Decoding rejects any other version.
const DocumentVersion = 1

// IntervalType is the kind of a timed step in an exercise plan.
type IntervalType string

// Interval types.
const (
	IntervalWarmup IntervalType = "warmup"
	IntervalTime   IntervalType = "time"
	IntervalRest   IntervalType = "rest"
)

// Valid reports whether t is a known interval type.
func (t IntervalType) Valid() bool {
	switch t {
	case IntervalWarmup, IntervalTime, IntervalRest:
		return true
	}
	return false
}

// Interval is one step of a workout's timeline.
type Interval struct {
	Time int          `json:"time"` // seconds
	Type IntervalType `json:"type"`
	Max  int          `json:"max"` // countable rep cap, -1 for unlimited
	Add  string       `json:"add"` // label shown to competitors
}

// ExercisePlan is the ordered content of a workout: either a list of
// exercise IDs or a list of timed intervals, never both.
type ExercisePlan struct {
	ExerciseIDs []uuid.UUID `json:"exercise_ids,omitempty"`
	Intervals   []Interval  `json:"intervals,omitempty"`
}

// IsEmpty reports whether the plan has no steps.
func (p ExercisePlan) IsEmpty() bool {
	return len(p.ExerciseIDs) == 0 && len(p.Intervals) == 0
}

// Validate checks the plan's structure.
func (p ExercisePlan) Validate() error {
	if len(p.ExerciseIDs) > 0 && len(p.Intervals) > 0 {
		return fmt.Errorf("%w: plan has both exercise ids and intervals", ErrValidation)
	}
	for i, iv := range p.Intervals {
		if !iv.Type.Valid() {
			return fmt.Errorf("%w: interval %d has unknown type %q", ErrValidation, i, iv.Type)
		}
		if iv.Time < 0 {
			return fmt.Errorf("%w: interval %d has negative time", ErrValidation, i)
		}
		if iv.Max < -1 {
			return fmt.Errorf("%w: interval %d has invalid max %d", ErrValidation, i, iv.Max)
		}
	}
	for i, id := range p.ExerciseIDs {
		if id == uuid.Nil {
			return fmt.Errorf("%w: exercise id %d is empty", ErrValidation, i)
		}
	}
	return nil
}

type planDocument struct {
	Version int `json:"version"`
	ExercisePlan
}

// EncodePlan renders p as a versioned JSON document.
func EncodePlan(p ExercisePlan) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	b, err := json.Marshal(planDocument{Version: DocumentVersion, ExercisePlan: p})
	if err != nil {
		return "", fmt.Errorf("failed to encode exercise plan: %w", err)
	}
	return string(b), nil
}

// DecodePlan parses a document produced by EncodePlan. It also accepts the
// legacy bare array form, either of exercise IDs or of interval objects, and
// the empty string as an empty plan.
func DecodePlan(s string) (ExercisePlan, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ExercisePlan{}, nil
	}

	var plan ExercisePlan
	if s[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal([]byte(s), &items); err != nil {
			return ExercisePlan{}, fmt.Errorf("%w: exercise plan: %v", ErrInvalidFormat, err)
		}
		if len(items) > 0 && bytes.HasPrefix(bytes.TrimSpace(items[0]), []byte("{")) {
			err := strictUnmarshal([]byte(s), &plan.Intervals)
			if err != nil {
				return ExercisePlan{}, fmt.Errorf("%w: exercise plan: %v", ErrInvalidFormat, err)
			}
		} else if len(items) > 0 {
			if err := json.Unmarshal([]byte(s), &plan.ExerciseIDs); err != nil {
				return ExercisePlan{}, fmt.Errorf("%w: exercise plan: %v", ErrInvalidFormat, err)
			}
		}
	} else {
		var doc planDocument
		if err := strictUnmarshal([]byte(s), &doc); err != nil {
			return ExercisePlan{}, fmt.Errorf("%w: exercise plan: %v", ErrInvalidFormat, err)
		}
		if doc.Version != DocumentVersion {
			return ExercisePlan{}, fmt.Errorf("%w: unsupported exercise plan version %d",
				ErrInvalidFormat, doc.Version)
		}
		plan = doc.ExercisePlan
	}

	if err := plan.Validate(); err != nil {
		return ExercisePlan{}, err
	}
	return plan, nil
}

// WorkoutList is the ordered list of workouts assigned to an event.
type WorkoutList []uuid.UUID

type workoutListDocument struct {
	Version    int         `json:"version"`
	WorkoutIDs []uuid.UUID `json:"workout_ids"`
}

// EncodeWorkoutList renders l as a versioned JSON document.
func EncodeWorkoutList(l WorkoutList) (string, error) {
	ids := []uuid.UUID(l)
	if ids == nil {
		ids = []uuid.UUID{}
	}
	for i, id := range ids {
		if id == uuid.Nil {
			return "", fmt.Errorf("%w: workout id %d is empty", ErrValidation, i)
		}
	}
	b, err := json.Marshal(workoutListDocument{Version: DocumentVersion, WorkoutIDs: ids})
	if err != nil {
		return "", fmt.Errorf("failed to encode workout list: %w", err)
	}
	return string(b), nil
}

// DecodeWorkoutList parses a document produced by EncodeWorkoutList, a
// legacy bare array of IDs, or the empty string.
func DecodeWorkoutList(s string) (WorkoutList, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return WorkoutList{}, nil
	}

	if s[0] == '[' {
		var ids []uuid.UUID
		if err := json.Unmarshal([]byte(s), &ids); err != nil {
			return nil, fmt.Errorf("%w: workout list: %v", ErrInvalidFormat, err)
		}
		return WorkoutList(ids), nil
	}

	var doc workoutListDocument
	if err := strictUnmarshal([]byte(s), &doc); err != nil {
		return nil, fmt.Errorf("%w: workout list: %v", ErrInvalidFormat, err)
	}
	if doc.Version != DocumentVersion {
		return nil, fmt.Errorf("%w: unsupported workout list version %d", ErrInvalidFormat, doc.Version)
	}
	if doc.WorkoutIDs == nil {
		doc.WorkoutIDs = []uuid.UUID{}
	}
	return WorkoutList(doc.WorkoutIDs), nil
}

func strictUnmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("unexpected data after document")
	}
	return nil
}
