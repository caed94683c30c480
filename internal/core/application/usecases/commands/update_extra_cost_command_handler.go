package commands

import (
	"context"
)

// UpdateExtraCostCommandHandler resolves the owning order of an extra cost,
// flips its active flag and persists the recomputed total.
type UpdateExtraCostCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateExtraCostCommandHandler(uowFactory OrderUoWFactory) UpdateExtraCostCommandHandler {
	return UpdateExtraCostCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateExtraCostCommandHandler) Handle(ctx context.Context, cmd UpdateExtraCostCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetByExtraCostID(ctx, cmd.ExtraCostID())
	if err != nil {
		return err
	}

	if _, err = o.SetExtraCostActive(cmd.ExtraCostID(), cmd.IsActive()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
