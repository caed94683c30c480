package order

import (
	"errors"
	"fmt"
	"slices"

	"roadside/internal/core/domain/model/billing"
	"roadside/internal/core/domain/model/kernel"
	"roadside/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ExtraCostName is a member of the fixed catalog of ad-hoc services.
type ExtraCostName string

const (
	TireChange        ExtraCostName = "Cambio de Neumático"
	VehicleUnlock     ExtraCostName = "Desbloqueo del vehículo"
	ParkingLotRemoval ExtraCostName = "Retiro de Vehículo del Estacionamiento"
	OilChange         ExtraCostName = "Cambio de Aceite"
	BatteryCharge     ExtraCostName = "Carga de Batería"
	Locksmith         ExtraCostName = "Servicio de Cerrajería"
	FuelSupply        ExtraCostName = "Suministro de Combustible"
)

// Catalog returns the accepted extra cost names.
func Catalog() []ExtraCostName {
	return []ExtraCostName{TireChange, VehicleUnlock, ParkingLotRemoval, OilChange, BatteryCharge, Locksmith, FuelSupply}
}

// ParseExtraCostName matches s against the catalog, case-sensitively.
func ParseExtraCostName(s string) (ExtraCostName, error) {
	name := ExtraCostName(s)
	if !slices.Contains(Catalog(), name) {
		return "", errs.NewValueIsInvalidErrorWithCause("extraCostName", fmt.Errorf("%q is not in the catalog", s))
	}
	return name, nil
}

var ErrExtraCostIsNotConstructed = errors.New("ExtraCost must be created via an order")

// ExtraCost is an ad-hoc service charged on an order. Name and price are
// fixed once created; only the active flag changes. Inactive costs are kept
// but excluded from the total.
type ExtraCost struct {
	id            kernel.UUID
	orderID       kernel.UUID
	name          ExtraCostName
	price         decimal.Decimal
	isActive      bool
	isConstructed bool
}

func newExtraCost(orderID kernel.UUID, name ExtraCostName, price decimal.Decimal) (*ExtraCost, error) {
	return RestoreExtraCost(kernel.NewUUID(), orderID, string(name), price, true)
}

// RestoreExtraCost rebuilds a persisted extra cost.
func RestoreExtraCost(
	id, orderID kernel.UUID, name string, price decimal.Decimal, isActive bool,
) (*ExtraCost, error) {
	parsed, nameErr := ParseExtraCostName(name)
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		nameErr,
		billing.NonNegative("price", price),
	); err != nil {
		return nil, err
	}

	return &ExtraCost{
		id:            id,
		orderID:       orderID,
		name:          parsed,
		price:         billing.Round(price),
		isActive:      isActive,
		isConstructed: true,
	}, nil
}

func (e *ExtraCost) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrExtraCostIsNotConstructed
	}
	return nil
}

func (e *ExtraCost) ID() kernel.UUID {
	return e.id
}

func (e *ExtraCost) OrderID() kernel.UUID {
	return e.orderID
}

func (e *ExtraCost) Name() ExtraCostName {
	return e.name
}

func (e *ExtraCost) Price() decimal.Decimal {
	return e.price
}

func (e *ExtraCost) IsActive() bool {
	return e.isActive
}
