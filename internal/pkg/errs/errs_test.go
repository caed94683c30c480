package errs_test

import (
	"errors"
	"testing"

	"roadside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	storageDown := errors.New("connection reset")

	tests := []struct {
		name     string
		err      error
		sentinel error
		want     string
	}{
		{
			name:     "order not found",
			err:      errs.NewObjectNotFoundError("orderId", "7f1c"),
			sentinel: errs.ErrObjectNotFound,
			want:     "object not found: 7f1c",
		},
		{
			name:     "contract not found with cause",
			err:      errs.NewObjectNotFoundErrorWithCause("contractId", "c-42", storageDown),
			sentinel: errs.ErrObjectNotFound,
			want:     "object not found: param is: contractId, ID is: c-42 (cause: connection reset)",
		},
		{
			name:     "invalid status token",
			err:      errs.NewValueIsInvalidError("status"),
			sentinel: errs.ErrValueIsInvalid,
			want:     "value is invalid: status",
		},
		{
			name:     "invalid price with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("price", errors.New("can't convert abc to decimal")),
			sentinel: errs.ErrValueIsInvalid,
			want:     "value is invalid: price (cause: can't convert abc to decimal)",
		},
		{
			name:     "latitude out of range",
			err:      errs.NewValueIsOutOfRangeError("latitude", 91, -90, 90),
			sentinel: errs.ErrValueIsOutOfRange,
			want:     "value is invalid: 91 is latitude, min value is -90, max value is 90",
		},
		{
			name:     "missing driver",
			err:      errs.NewValueIsRequiredError("driverId"),
			sentinel: errs.ErrValueIsRequired,
			want:     "value is required: driverId",
		},
		{
			name:     "malformed stored version",
			err:      errs.NewVersionIsInvalidError("version", errors.New("negative")),
			sentinel: errs.ErrVersionIsInvalid,
			want:     "version is invalid: version (cause: negative)",
		},
		{
			name:     "stale order update",
			err:      errs.NewConcurrencyConflictError("order", "0b5c", 3),
			sentinel: errs.ErrConcurrencyConflict,
			want:     "concurrency conflict: order 0b5c was modified after version 3",
		},
		{
			name:     "cancel a paid order",
			err:      errs.NewTransitionIsNotAllowedError("Pagado", "Cancel"),
			sentinel: errs.ErrTransitionIsNotAllowed,
			want:     "transition is not allowed: Cancel from Pagado",
		},
		{
			name:     "assign without driver",
			err:      errs.NewTransitionIsNotAllowedErrorWithCause("PorAsignar", "AssignDriver", errors.New("driver is required")),
			sentinel: errs.ErrTransitionIsNotAllowed,
			want:     "transition is not allowed: AssignDriver from PorAsignar (cause: driver is required)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			require.ErrorIs(t, tt.err, tt.sentinel)
		})
	}
}

func TestErrorFields(t *testing.T) {
	t.Run("object not found keeps the lookup key", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("extraCostId", 12)

		assert.Equal(t, "extraCostId", err.ParamName)
		assert.Equal(t, 12, err.ID)
		require.NoError(t, err.Cause)
	})

	t.Run("out of range keeps the bounds", func(t *testing.T) {
		cause := errors.New("below zero")
		err := errs.NewValueIsOutOfRangeErrorWithCause("distanceTraveled", -3, 0, 1000, cause)

		assert.Equal(t, "distanceTraveled", err.ParamName)
		assert.Equal(t, -3, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 1000, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Contains(t, err.Error(), "(cause: below zero)")
	})

	t.Run("out of range flattens multi-line values", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("address", "Av. Bolivar\nCaracas", 0, 10)

		assert.Contains(t, err.Error(), "Av. Bolivar Caracas")
		assert.NotContains(t, err.Error(), "\n")
	})

	t.Run("required with cause", func(t *testing.T) {
		cause := errors.New("blank after trim")
		err := errs.NewValueIsRequiredErrorWithCause("deviceToken", cause)

		assert.Equal(t, "deviceToken", err.ParamName)
		assert.Equal(t, "value is required: deviceToken (cause: blank after trim)", err.Error())
	})

	t.Run("version without cause", func(t *testing.T) {
		err := errs.NewVersionIsInvalidErrorWithCause("version")

		require.NoError(t, err.Cause)
		assert.Equal(t, "version is invalid: version", err.Error())
	})

	t.Run("concurrency conflict keeps the entity", func(t *testing.T) {
		err := errs.NewConcurrencyConflictError("order", "0b5c", 3)

		assert.Equal(t, "order", err.Entity)
		assert.Equal(t, int64(3), err.Version)
	})
}

func TestErrorKindsStayDistinct(t *testing.T) {
	transition := errs.NewTransitionIsNotAllowedError("Finalizado", "Cancel")
	conflict := errs.NewConcurrencyConflictError("order", "0b5c", 1)
	notFound := errs.NewObjectNotFoundError("orderId", "0b5c")

	require.NotErrorIs(t, transition, errs.ErrValueIsInvalid)
	require.NotErrorIs(t, transition, errs.ErrConcurrencyConflict)
	require.NotErrorIs(t, conflict, errs.ErrTransitionIsNotAllowed)
	require.NotErrorIs(t, notFound, errs.ErrValueIsRequired)

	joined := errors.Join(errs.NewValueIsRequiredError("contractId"), errs.NewValueIsInvalidError("incidentAddress"))
	require.ErrorIs(t, joined, errs.ErrValueIsRequired)
	require.ErrorIs(t, joined, errs.ErrValueIsInvalid)
}
