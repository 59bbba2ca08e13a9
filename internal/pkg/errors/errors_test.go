package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"tour-backoffice/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{name: "bad request", err: errors.BadRequest("bad"), want: http.StatusBadRequest},
		{name: "unauthorized", err: errors.UnauthorizedError("who"), want: http.StatusUnauthorized},
		{name: "not found", err: errors.NotFound("Tour not found"), want: http.StatusNotFound},
		{name: "conflict", err: errors.Conflict("dup"), want: http.StatusConflict},
		{name: "internal", err: errors.InternalServerError("boom"), want: http.StatusInternalServerError},
		{name: "wrapped", err: fmt.Errorf("ctx: %w", errors.NotFound("x")), want: http.StatusNotFound},
		{name: "plain", err: errors.New("plain"), want: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errors.StatusCode(tc.err))
		})
	}
}

func TestCustomErrorMessage(t *testing.T) {
	err := errors.NotFound("Booking not found")
	assert.EqualError(t, err, "Booking not found")
	assert.Equal(t, errors.NotFound("Booking not found"), err)
}
