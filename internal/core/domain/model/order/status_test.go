package order_test

import (
	"fmt"
	"testing"

	"roadside/internal/core/domain/model/order"
	"roadside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Tokens(t *testing.T) {
	want := map[order.Status]string{
		order.AwaitingAssignment:       "PorAsignar",
		order.AwaitingDriverAcceptance: "PorAceptar",
		order.Accepted:                 "Aceptado",
		order.DriverLocated:            "Localizado",
		order.InProgress:               "EnProceso",
		order.Completed:                "Finalizado",
		order.Paid:                     "Pagado",
		order.Canceled:                 "Cancelada",
	}

	for status, token := range want {
		t.Run(token, func(t *testing.T) {
			assert.Equal(t, token, status.String())

			parsed, err := order.StatusFromString(token)
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		})
	}

	assert.Len(t, order.Statuses(), len(want))
}

func TestStatusFromString_RejectsUnknownTokens(t *testing.T) {
	for _, token := range []string{"", "Unknown", "porasignar", "Completed"} {
		t.Run(fmt.Sprintf("%q", token), func(t *testing.T) {
			_, err := order.StatusFromString(token)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.Canceled.Validate())
	require.ErrorIs(t, order.Unknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, order.Status(42).Validate(), errs.ErrValueIsInvalid)
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_Permits(t *testing.T) {
	allowed := []struct {
		from    order.Status
		trigger order.Trigger
		to      order.Status
	}{
		{order.AwaitingAssignment, order.AssignDriver, order.AwaitingDriverAcceptance},
		{order.AwaitingDriverAcceptance, order.AcceptAssignment, order.Accepted},
		{order.AwaitingDriverAcceptance, order.RefuseAssignment, order.AwaitingAssignment},
		{order.AwaitingDriverAcceptance, order.AcceptanceTimeout, order.AwaitingAssignment},
		{order.AwaitingDriverAcceptance, order.AcceptanceTimeout, order.Canceled},
		{order.Accepted, order.LocateDriver, order.DriverLocated},
		{order.DriverLocated, order.StartService, order.InProgress},
		{order.InProgress, order.FinishService, order.Completed},
		{order.Completed, order.ConfirmPayment, order.Paid},
	}
	for _, tc := range allowed {
		t.Run(fmt.Sprintf("%s %s %s", tc.from, tc.trigger, tc.to), func(t *testing.T) {
			assert.NoError(t, tc.from.Permits(tc.trigger, tc.to))
		})
	}

	t.Run("cancel is allowed before completion only", func(t *testing.T) {
		for _, s := range order.Statuses() {
			err := s.Permits(order.Cancel, order.Canceled)
			if s.IsCancelable() {
				assert.NoError(t, err, s.String())
			} else {
				assert.ErrorIs(t, err, errs.ErrTransitionIsNotAllowed, s.String())
			}
		}
	})

	t.Run("closed statuses accept no trigger", func(t *testing.T) {
		for _, s := range []order.Status{order.Paid, order.Canceled} {
			for _, target := range order.Statuses() {
				_, err := s.TriggerFor(target)
				assert.ErrorIs(t, err, errs.ErrTransitionIsNotAllowed)
			}
		}
	})
}

func TestStatus_TriggerFor(t *testing.T) {
	t.Run("never resolves to the timeout trigger", func(t *testing.T) {
		trigger, err := order.AwaitingDriverAcceptance.TriggerFor(order.AwaitingAssignment)

		require.NoError(t, err)
		assert.Equal(t, order.RefuseAssignment, trigger)

		trigger, err = order.AwaitingDriverAcceptance.TriggerFor(order.Canceled)

		require.NoError(t, err)
		assert.Equal(t, order.Cancel, trigger)
	})

	t.Run("rejects skipping states", func(t *testing.T) {
		_, err := order.AwaitingAssignment.TriggerFor(order.Completed)
		require.ErrorIs(t, err, errs.ErrTransitionIsNotAllowed)
	})
}
