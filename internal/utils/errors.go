package utils

import (
	"errors"
	"net/http"

	"github.com/proxline/proxline/internal/pkg/models"
)

// HTTPStatus maps the saga error taxonomy to an HTTP status code at
// the echo boundary.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, models.ErrDuplicateCallback):
		return http.StatusConflict
	case errors.Is(err, models.ErrUpstreamFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
