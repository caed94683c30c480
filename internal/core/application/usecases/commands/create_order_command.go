package commands

import (
	"errors"
	"strings"
	"time"

	"roadside/internal/core/domain/model/billing"
	"roadside/internal/core/domain/model/kernel"
	"roadside/internal/core/domain/model/order"
	"roadside/internal/pkg/errs"
	"roadside/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ExtraService is an extra cost requested when the order is opened.
type ExtraService struct {
	Name  order.ExtraCostName
	Price decimal.Decimal
}

// CreateOrderCommand opens a roadside-assistance order for a contract.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), contractID, "Batería descargada",
//	    incidentDate, incident, destination, nil, nil, time.Now().UTC())
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	contractID         kernel.UUID
	incidentType       string
	incidentDate       time.Time
	incidentAddress    Address
	destinationAddress Address
	driverID           *kernel.UUID
	extraServices      []ExtraService
	at                 time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request. driverID may be nil; when set
// the order starts awaiting that driver's acceptance.
func NewCreateOrderCommand(
	orderID, contractID kernel.UUID,
	incidentType string,
	incidentDate time.Time,
	incidentAddress, destinationAddress Address,
	driverID *kernel.UUID,
	extraServices []ExtraService,
	at time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(orderID, contractID, driverID),
		cmd.setIncident(incidentType, incidentDate),
		cmd.setAddresses(incidentAddress, destinationAddress),
		cmd.setExtraServices(extraServices),
		cmd.setAt(at),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) ContractID() kernel.UUID {
	return c.contractID
}

func (c CreateOrderCommand) IncidentType() string {
	return c.incidentType
}

func (c CreateOrderCommand) IncidentDate() time.Time {
	return c.incidentDate
}

func (c CreateOrderCommand) IncidentAddress() Address {
	return c.incidentAddress
}

func (c CreateOrderCommand) DestinationAddress() Address {
	return c.destinationAddress
}

func (c CreateOrderCommand) DriverID() *kernel.UUID {
	return c.driverID
}

func (c CreateOrderCommand) ExtraServices() []ExtraService {
	return c.extraServices
}

func (c CreateOrderCommand) At() time.Time {
	return c.at
}

func (c *CreateOrderCommand) setIDs(orderID, contractID kernel.UUID, driverID *kernel.UUID) error {
	errList := []error{orderID.Validate()}
	if err := contractID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("contractId", err))
	}
	if driverID != nil {
		errList = append(errList, driverID.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	c.orderID = orderID
	c.contractID = contractID
	c.driverID = driverID
	return nil
}

func (c *CreateOrderCommand) setIncident(incidentType string, incidentDate time.Time) error {
	var errList []error
	if strings.TrimSpace(incidentType) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("incidentType"))
	}
	if incidentDate.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("incidentDate"))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	c.incidentType = incidentType
	c.incidentDate = incidentDate
	return nil
}

func (c *CreateOrderCommand) setAddresses(incidentAddress, destinationAddress Address) error {
	if err := errors.Join(incidentAddress.Validate(), destinationAddress.Validate()); err != nil {
		return err
	}

	c.incidentAddress = incidentAddress
	c.destinationAddress = destinationAddress
	return nil
}

func (c *CreateOrderCommand) setExtraServices(extraServices []ExtraService) error {
	var errList []error
	for _, s := range extraServices {
		_, nameErr := order.ParseExtraCostName(string(s.Name))
		errList = append(errList, nameErr, billing.NonNegative("price", s.Price))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	c.extraServices = extraServices
	return nil
}

func (c *CreateOrderCommand) setAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("at")
	}

	c.at = at
	return nil
}
