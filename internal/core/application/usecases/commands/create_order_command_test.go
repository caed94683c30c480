package commands_test

import (
	"testing"
	"time"

	"roadside/internal/core/application/usecases/commands"
	"roadside/internal/core/domain/model/kernel"
	"roadside/internal/core/domain/model/order"
	"roadside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id, contractID, driverID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	incident, err := commands.NewAddressFromCoordinates(10.48, -66.90)
	require.NoError(t, err)
	destination, err := commands.NewAddressFromText("Av. Francisco de Miranda, Caracas")
	require.NoError(t, err)
	extras := []commands.ExtraService{{Name: order.TireChange, Price: dec("25")}}

	cmd, err := commands.NewCreateOrderCommand(id, contractID, "Choque leve", now, incident, destination,
		&driverID, extras, now)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, contractID, cmd.ContractID())
	assert.Equal(t, &driverID, cmd.DriverID())
	assert.NotNil(t, cmd.IncidentAddress().Location())
	assert.Equal(t, "Av. Francisco de Miranda, Caracas", cmd.DestinationAddress().Text())
	assert.Len(t, cmd.ExtraServices(), 1)
}

func TestNewCreateOrderCommand_InvalidInput(t *testing.T) {
	t.Run("reports every problem", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.UUID{}, kernel.UUID{}, "", time.Time{},
			commands.Address{}, commands.Address{}, nil,
			[]commands.ExtraService{{Name: "Lavado", Price: dec("-1")}}, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, commands.ErrAddressIsNotConstructed)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "incidentType")
		assert.Contains(t, err.Error(), "contractId")
		assert.Contains(t, err.Error(), "extraCostName")
	})

	t.Run("out of range coordinates", func(t *testing.T) {
		_, err := commands.NewAddressFromCoordinates(91, 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("blank text address", func(t *testing.T) {
		_, err := commands.NewAddressFromText("   ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero command is not constructed", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
