package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/proxline/proxline/internal/pkg/models"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "not found",
			err:  models.ErrNotFound,
			want: http.StatusNotFound,
		},
		{
			name: "validation",
			err:  models.ErrValidation,
			want: http.StatusBadRequest,
		},
		{
			name: "insufficient funds",
			err:  models.ErrInsufficientFunds,
			want: http.StatusPaymentRequired,
		},
		{
			name: "duplicate callback",
			err:  models.ErrDuplicateCallback,
			want: http.StatusConflict,
		},
		{
			name: "upstream failure",
			err:  models.ErrUpstreamFailure,
			want: http.StatusBadGateway,
		},
		{
			name: "wrapped sentinel keeps its mapping",
			err:  fmt.Errorf("buy: %w", models.ErrUpstreamFailure),
			want: http.StatusBadGateway,
		},
		{
			name: "unknown error",
			err:  errors.New("connection reset"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
