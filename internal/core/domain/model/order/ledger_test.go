package order_test

import (
	"testing"

	"roadside/internal/core/domain/model/billing"
	"roadside/internal/core/domain/model/kernel"
	"roadside/internal/core/domain/model/order"
	"roadside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExtraCostName(t *testing.T) {
	for _, name := range order.Catalog() {
		parsed, err := order.ParseExtraCostName(string(name))
		require.NoError(t, err)
		assert.Equal(t, name, parsed)
	}

	for _, bad := range []string{"", "cambio de aceite", "Lavado", "Carga de Bateria"} {
		_, err := order.ParseExtraCostName(bad)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid, bad)
	}
}

func TestOrder_AddExtraCost(t *testing.T) {
	t.Run("should append an active cost and recompute", func(t *testing.T) {
		o := newTestOrder(t)

		cost, err := o.AddExtraCost(order.TireChange, dec("35.5"))

		require.NoError(t, err)
		assert.True(t, cost.IsActive())
		assert.True(t, cost.OrderID().IsEqual(o.ID()))
		assert.Equal(t, order.TireChange, cost.Name())
		require.Len(t, o.ExtraCosts(), 1)
		assert.True(t, dec("15.5").Equal(o.TotalCost()))
	})

	t.Run("invalid catalog name leaves the order unchanged", func(t *testing.T) {
		o := newTestOrder(t)

		_, err := o.AddExtraCost(order.ExtraCostName("Lavado"), dec("10"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Empty(t, o.ExtraCosts())
		assert.True(t, o.TotalCost().IsZero())
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		o := newTestOrder(t)

		_, err := o.AddExtraCost(order.FuelSupply, dec("-0.01"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Empty(t, o.ExtraCosts())
	})

	t.Run("closed orders reject ledger changes", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Cancel(now))

		_, err := o.AddExtraCost(order.FuelSupply, dec("10"))

		require.ErrorIs(t, err, errs.ErrTransitionIsNotAllowed)
		assert.Empty(t, o.ExtraCosts())
	})
}

func TestOrder_SetExtraCostActive(t *testing.T) {
	t.Run("should exclude inactive costs from the total", func(t *testing.T) {
		o := newTestOrder(t)
		first, err := o.AddExtraCost(order.TireChange, dec("30"))
		require.NoError(t, err)
		_, err = o.AddExtraCost(order.Locksmith, dec("15"))
		require.NoError(t, err)
		require.True(t, dec("25").Equal(o.TotalCost()))

		updated, err := o.SetExtraCostActive(first.ID(), false)

		require.NoError(t, err)
		assert.False(t, updated.IsActive())
		assert.True(t, o.TotalCost().IsZero())
		assert.Len(t, o.ExtraCosts(), 2)

		_, err = o.SetExtraCostActive(first.ID(), true)
		require.NoError(t, err)
		assert.True(t, dec("25").Equal(o.TotalCost()))
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		o := newTestOrder(t)

		_, err := o.SetExtraCostActive(kernel.NewUUID(), false)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("paid orders keep their ledger", func(t *testing.T) {
		o := newTestOrder(t)
		cost, err := o.AddExtraCost(order.TireChange, dec("30"))
		require.NoError(t, err)
		advance(t, o, order.Paid)
		total := o.TotalCost()

		_, err = o.SetExtraCostActive(cost.ID(), false)

		require.ErrorIs(t, err, errs.ErrTransitionIsNotAllowed)
		assert.True(t, cost.IsActive())
		assert.True(t, total.Equal(o.TotalCost()))
	})
}

func TestOrder_TotalMatchesCalculator(t *testing.T) {
	o := newTestOrder(t)
	_, err := o.AddExtraCost(order.BatteryCharge, dec("12.35"))
	require.NoError(t, err)
	_, err = o.AddExtraCost(order.VehicleUnlock, dec("17.65"))
	require.NoError(t, err)
	advance(t, o, order.Completed)

	want, err := billing.CalculateTotalCost(billing.CostInputs{
		DistanceTraveled:          dec("150"),
		PolicyDistanceCoverage:    dec("100"),
		PolicyAmountCoverage:      dec("20"),
		PricePerExtraDistanceUnit: dec("2"),
		ExtraCostAmounts:          decs("12.35", "17.65"),
	})
	require.NoError(t, err)

	assert.True(t, want.Equal(o.TotalCost()), "want %s, got %s", want, o.TotalCost())
	assert.True(t, dec("110").Equal(o.TotalCost()))
}
