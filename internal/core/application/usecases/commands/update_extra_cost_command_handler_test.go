package commands_test

import (
	"testing"

	"roadside/internal/core/application/usecases/commands"
	"roadside/internal/core/domain/model/kernel"
	"roadside/internal/core/domain/model/order"
	"roadside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateExtraCostCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := newOrderIn(t, order.Accepted)
	cost, err := o.AddExtraCost(order.TireChange, dec("50"))
	require.NoError(t, err)
	require.True(t, dec("30").Equal(o.TotalCost()))

	cmd, err := commands.NewUpdateExtraCostCommand(cost.ID(), false)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByExtraCostID", ctx, cost.ID()).Return(o, nil).Once(),
		repo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewUpdateExtraCostCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, o.ExtraCosts()[0].IsActive())
	assert.True(t, o.TotalCost().IsZero())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateExtraCostCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateExtraCostCommand(id, true)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByExtraCostID", ctx, id).Return(nil, errs.NewObjectNotFoundError("extraCostId", id.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewUpdateExtraCostCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestNewUpdateExtraCostCommand_InvalidID(t *testing.T) {
	_, err := commands.NewUpdateExtraCostCommand(kernel.UUID{}, true)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	var cmd commands.UpdateExtraCostCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateExtraCostCommandIsNotConstructed)
}
