package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/rafael/jobmatch/internal/engine"
	"github.com/rafael/jobmatch/internal/lifecycle"
	"github.com/rafael/jobmatch/internal/store"
)

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		invalidTransition *lifecycle.InvalidTransitionError
		statusConflict    *store.StatusConflictError
		duplicateApp      *store.DuplicateApplicationError
		duplicateEmail    *store.DuplicateEmailError
		jobClosed         *engine.JobClosedError
		unauthorized      *engine.UnauthorizedError
		notFound          *engine.NotFoundError
		validation        validator.ValidationErrors
		credentials       *ErrInvalidCredentials
	)

	switch {
	case errors.As(err, &invalidTransition),
		errors.As(err, &statusConflict),
		errors.As(err, &duplicateApp),
		errors.As(err, &duplicateEmail),
		errors.As(err, &jobClosed):
		return http.StatusConflict
	case errors.As(err, &unauthorized):
		return http.StatusForbidden
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &credentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
