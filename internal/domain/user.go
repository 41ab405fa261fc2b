package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns events, workouts and exercises.
// PasswordHash and Salt are only ever written by SetPassword.
type User struct {
	ID           uuid.UUID `validate:"required"`
	Username     string    `validate:"min=1,max=32"`
	PasswordHash string
	Salt         string
	CreatedAt    time.Time
	IsSuperuser  bool
}

// UserSnapshot is the externalizable form of a User. It never carries
// credentials.
type UserSnapshot struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	CreatedAt   string    `json:"created_at"`
	IsSuperuser bool      `json:"is_superuser"`
}

// NewUser creates a user with the given username. The caller must set a
// password with SetPassword before the user can be persisted.
func NewUser(username string, superuser bool) (*User, error) {
	user := &User{
		ID:          uuid.New(),
		Username:    username,
		CreatedAt:   time.Now().UTC(),
		IsSuperuser: superuser,
	}

	if err := validateStruct(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks the user's fields. A persisted user must have credentials.
func (u *User) Validate() error {
	if err := validateStruct(u); err != nil {
		return err
	}
	if u.PasswordHash == "" || u.Salt == "" {
		return ErrMissingCredentials
	}
	return nil
}

// Snapshot returns the user's externalizable form.
func (u *User) Snapshot() UserSnapshot {
	return UserSnapshot{
		ID:          u.ID,
		Username:    u.Username,
		CreatedAt:   FormatTimestamp(u.CreatedAt),
		IsSuperuser: u.IsSuperuser,
	}
}
