// Package server provides the HTTP REST API for the job discovery engine.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mkaneda/talentboard/internal/discovery"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validationErr *ErrValidation
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, discovery.ErrJobNotFound),
		errors.Is(err, discovery.ErrProfileNotFound):
		return http.StatusNotFound
	case errors.Is(err, discovery.ErrNotJobOwner):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
