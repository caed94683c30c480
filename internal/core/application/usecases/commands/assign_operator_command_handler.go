package commands

import (
	"context"
)

type AssignOperatorCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAssignOperatorCommandHandler(uowFactory OrderUoWFactory) AssignOperatorCommandHandler {
	return AssignOperatorCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AssignOperatorCommandHandler) Handle(ctx context.Context, cmd AssignOperatorCommand) error {
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
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.AssignOperator(cmd.OperatorID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
