package commands

import (
	"errors"

	"roadside/internal/core/domain/model/billing"
	"roadside/internal/core/domain/model/kernel"
	"roadside/internal/core/domain/model/order"
	"roadside/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAddExtraCostCommandIsNotConstructed = errors.New(
	"AddExtraCostCommand must be created via NewAddExtraCostCommand constructor",
)

// AddExtraCostCommand charges a catalog service on an order. The name is
// checked against the catalog at construction.
type AddExtraCostCommand struct {
	orderID kernel.UUID
	name    order.ExtraCostName
	price   decimal.Decimal

	guard guard.ConstructorGuard
}

func NewAddExtraCostCommand(orderID kernel.UUID, name string, price decimal.Decimal) (AddExtraCostCommand, error) {
	parsed, nameErr := order.ParseExtraCostName(name)
	if err := errors.Join(orderID.Validate(), nameErr, billing.NonNegative("price", price)); err != nil {
		return AddExtraCostCommand{}, err
	}

	return AddExtraCostCommand{
		orderID: orderID,
		name:    parsed,
		price:   price,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AddExtraCostCommand) Validate() error {
	return c.guard.Validate(ErrAddExtraCostCommandIsNotConstructed)
}

func (c AddExtraCostCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddExtraCostCommand) Name() order.ExtraCostName {
	return c.name
}

func (c AddExtraCostCommand) Price() decimal.Decimal {
	return c.price
}
