// Package server provides the HTTP JSON API for the eligibility engine.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ananya/intern-match/internal/engine"
	"github.com/ananya/intern-match/internal/schemas"
	"github.com/ananya/intern-match/internal/store"
)

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error. Bad
// input, unknown targets, collaborator failures and uninitialized
// dependencies map to distinct classes so callers can tell them apart.
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		schemaErr     *schemas.ValidationError
		invalidReq    *engine.InvalidRequestError
		notFound      *store.NotFoundError
		notReady      *engine.NotReadyError
		stageErr      *engine.StageError
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &schemaErr), errors.As(err, &invalidReq):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &notReady):
		return http.StatusServiceUnavailable
	case errors.As(err, &stageErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// failingStage names the pipeline stage behind a collaborator failure, or
// "" for every other error.
func failingStage(err error) string {
	var stageErr *engine.StageError
	if errors.As(err, &stageErr) {
		return stageErr.Stage
	}
	return ""
}
