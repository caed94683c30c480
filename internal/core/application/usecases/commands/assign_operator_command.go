package commands

import (
	"errors"

	"roadside/internal/core/domain/model/kernel"
	"roadside/internal/pkg/errs"
	"roadside/internal/pkg/guard"
)

var ErrAssignOperatorCommandIsNotConstructed = errors.New(
	"AssignOperatorCommand must be created via NewAssignOperatorCommand constructor",
)

// AssignOperatorCommand sets the operator handling an order.
type AssignOperatorCommand struct {
	orderID    kernel.UUID
	operatorID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignOperatorCommand(orderID, operatorID kernel.UUID) (AssignOperatorCommand, error) {
	var operatorErr error
	if err := operatorID.Validate(); err != nil {
		operatorErr = errs.NewValueIsRequiredErrorWithCause("operatorId", err)
	}
	if err := errors.Join(orderID.Validate(), operatorErr); err != nil {
		return AssignOperatorCommand{}, err
	}

	return AssignOperatorCommand{
		orderID:    orderID,
		operatorID: operatorID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AssignOperatorCommand) Validate() error {
	return c.guard.Validate(ErrAssignOperatorCommandIsNotConstructed)
}

func (c AssignOperatorCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AssignOperatorCommand) OperatorID() kernel.UUID {
	return c.operatorID
}
