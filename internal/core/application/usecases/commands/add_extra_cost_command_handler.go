package commands

import (
	"context"

	"roadside/internal/core/domain/model/kernel"
)

// AddExtraCostCommandHandler appends an extra cost and persists the
// recomputed total. It returns the id of the new extra cost.
type AddExtraCostCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAddExtraCostCommandHandler(uowFactory OrderUoWFactory) AddExtraCostCommandHandler {
	return AddExtraCostCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AddExtraCostCommandHandler) Handle(ctx context.Context, cmd AddExtraCostCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return kernel.UUID{}, err
	}

	cost, err := o.AddExtraCost(cmd.Name(), cmd.Price())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return cost.ID(), nil
}
