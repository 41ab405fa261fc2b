package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/wodmeet/wodmeet/internal/api/shared"
	"github.com/wodmeet/wodmeet/internal/domain"
	"github.com/wodmeet/wodmeet/internal/service"
	"github.com/wodmeet/wodmeet/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// exposing the error types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, service.ErrNotOwned):
		return http.StatusForbidden

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, service.ErrEventClosed):
		return http.StatusConflict

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidPassword),
		errors.Is(err, domain.ErrInvalidGender),
		errors.Is(err, domain.ErrNoCategory),
		errors.Is(err, domain.ErrNotAnInteger),
		errors.Is(err, domain.ErrInvalidFormat),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, service.ErrWorkoutNotAssigned):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-facing message for err.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var policyErr *domain.PasswordPolicyError
	switch {
	case errors.As(err, &policyErr):
		rules := make([]string, len(policyErr.Failed))
		for i, rule := range policyErr.Failed {
			rules[i] = string(rule)
		}
		return "Password does not meet policy: " + strings.Join(rules, ", ")

	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid username or password"

	case errors.Is(err, service.ErrNotOwned):
		return "You do not own this resource"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, store.ErrEventNotFound):
		return "Event not found"
	case errors.Is(err, store.ErrWorkoutNotFound):
		return "Workout not found"
	case errors.Is(err, store.ErrCompetitorNotFound):
		return "Competitor not found"
	case errors.Is(err, store.ErrExerciseNotFound):
		return "Exercise not found"

	case errors.Is(err, store.ErrUsernameExists):
		return "Username already exists"
	case errors.Is(err, store.ErrWorkoutNameExists):
		return "Workout name already exists"

	case errors.Is(err, service.ErrEventClosed):
		return "Event is closed"
	case errors.Is(err, service.ErrWorkoutNotAssigned):
		return "Workout is not assigned to the event"

	case errors.Is(err, domain.ErrInvalidGender):
		return "Gender must be 1 (male) or 2 (female)"
	case errors.Is(err, domain.ErrNoCategory):
		return "No category matches the competitor"
	case errors.Is(err, domain.ErrNotAnInteger):
		return "Points must be an integer"
	case errors.Is(err, domain.ErrInvalidFormat):
		return "Invalid document format"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns a validator error into a short message
// naming the first failing field.
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
	}
	return "Validation error"
}

func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "len":
		return "wrong length"
	case "oneof":
		return "invalid value"
	case "gte", "lte", "gt", "lt":
		return "out of range"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the status and safe message for err and logs the
// redacted error. defaultMsg replaces the generic message for 5xx errors.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)
	msg := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && defaultMsg != "" {
		msg = defaultMsg
	}

	var opts []shared.ResponseOption
	if status == http.StatusUnauthorized {
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	shared.RespondWithErrorAndLog(w, r, status, msg, err, opts...)
}
