package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"required", errs.NewValueIsRequiredError("name"), http.StatusBadRequest},
		{"invalid", errs.NewValueIsInvalidError("category"), http.StatusBadRequest},
		{"out_of_range", errs.NewValueIsOutOfRangeError("quantity", 120, 1, 99), http.StatusBadRequest},
		{"joined_validation", errors.Join(errs.NewValueIsRequiredError("name"), errs.NewValueIsInvalidError("price")), http.StatusBadRequest},
		{"not_found", errs.NewObjectNotFoundError("orderId", "x"), http.StatusNotFound},
		{"wrapped_not_found", fmt.Errorf("load: %w", errs.NewObjectNotFoundError("productId", "x")), http.StatusNotFound},
		{"forbidden", errs.NewForbiddenError("cart item", "x"), http.StatusForbidden},
		{"unauthorized", errs.NewUnauthorizedError("session is missing"), http.StatusUnauthorized},
		{"unauthorized_over_forbidden_cause", errs.NewUnauthorizedErrorWithCause("revoked", errs.NewForbiddenError("customer", "x")), http.StatusUnauthorized},
		{"conflict", errs.NewConflictError("lineUserId", nil), http.StatusConflict},
		{"echo_error", echo.NewHTTPError(http.StatusTooManyRequests, "slow down"), http.StatusTooManyRequests},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := classify(tt.err)

			assert.Equal(t, tt.status, status)
			assert.NotEmpty(t, message)
		})
	}
}

func TestClassify_HidesInternalErrors(t *testing.T) {
	_, message := classify(errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusText(http.StatusInternalServerError), message)
}
