package commands

import (
	"context"

	"roadside/internal/core/domain/model/order"
	"roadside/internal/core/ports"
)

// CreateOrderCommandHandler opens orders. Text addresses are geocoded before
// the transaction starts; the coverage snapshot is read inside it.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	geocoder   ports.Geocoder
	dispatcher EventDispatcher
}

func NewCreateOrderCommandHandler(
	uowFactory UoWFactory, geocoder ports.Geocoder, dispatcher EventDispatcher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
		dispatcher: dispatcher,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	incidentAddress, err := cmd.IncidentAddress().resolve(ctx, h.geocoder)
	if err != nil {
		return err
	}
	destinationAddress, err := cmd.DestinationAddress().resolve(ctx, h.geocoder)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	coverage, err := uow.CoverageRepository().GetCoverage(ctx, cmd.ContractID())
	if err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.ContractID(), cmd.IncidentType(), cmd.IncidentDate(),
		incidentAddress, destinationAddress, coverage, cmd.At())
	if err != nil {
		return err
	}

	if driverID := cmd.DriverID(); driverID != nil {
		if err = o.AssignDriver(*driverID, cmd.At()); err != nil {
			return err
		}
	}

	for _, s := range cmd.ExtraServices() {
		if _, err = o.AddExtraCost(s.Name, s.Price); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.dispatcher.Dispatch(ctx, o.PullDomainEvents())
	return nil
}
