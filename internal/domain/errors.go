// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidFormat is returned when an encoded document is not in the expected format.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidPassword is returned when a password doesn't meet the policy.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrInvalidGender is returned when a competitor's gender is neither male nor female.
	ErrInvalidGender = errors.New("invalid gender")

	// ErrNoCategory is returned when no category band matches a competitor.
	ErrNoCategory = errors.New("no matching category")

	// ErrNotAnInteger is returned when a result increment cannot be coerced to an integer.
	ErrNotAnInteger = errors.New("value is not coercible to an integer")
)
