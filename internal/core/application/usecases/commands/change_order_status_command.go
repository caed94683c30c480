package commands

import (
	"errors"
	"time"

	"roadside/internal/core/domain/model/billing"
	"roadside/internal/core/domain/model/kernel"
	"roadside/internal/core/domain/model/order"
	"roadside/internal/pkg/errs"
	"roadside/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand requests a move to a target status. driverID is
// needed to reach PorAceptar and distanceTraveled to reach Finalizado; the
// aggregate enforces both.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	target           order.Status
	driverID         *kernel.UUID
	distanceTraveled *decimal.Decimal
	at               time.Time

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	target order.Status,
	driverID *kernel.UUID,
	distanceTraveled *decimal.Decimal,
	at time.Time,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
		cmd.setDriverID(driverID),
		cmd.setDistanceTraveled(distanceTraveled),
		cmd.setAt(at),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

func (c ChangeOrderStatusCommand) Params() order.TransitionParams {
	return order.TransitionParams{
		DriverID:         c.driverID,
		DistanceTraveled: c.distanceTraveled,
		At:               c.at,
	}
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}

func (c *ChangeOrderStatusCommand) setDriverID(driverID *kernel.UUID) error {
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return err
		}
	}
	c.driverID = driverID
	return nil
}

func (c *ChangeOrderStatusCommand) setDistanceTraveled(distanceTraveled *decimal.Decimal) error {
	if distanceTraveled != nil {
		if err := billing.NonNegative("distanceTraveled", *distanceTraveled); err != nil {
			return err
		}
	}
	c.distanceTraveled = distanceTraveled
	return nil
}

func (c *ChangeOrderStatusCommand) setAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("at")
	}
	c.at = at
	return nil
}
