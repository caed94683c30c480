package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"roadside/internal/core/application/usecases/commands"
	"roadside/internal/core/application/usecases/queries"
	"roadside/internal/core/domain/model/kernel"
	"roadside/internal/core/domain/model/order"
	"roadside/internal/generated/servers"
	"roadside/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Use case ports the server drives. The application handlers satisfy them.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}
	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) error
	}
	AssignOperatorHandler interface {
		Handle(ctx context.Context, cmd commands.AssignOperatorCommand) error
	}
	AddExtraCostHandler interface {
		Handle(ctx context.Context, cmd commands.AddExtraCostCommand) (kernel.UUID, error)
	}
	UpdateExtraCostHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateExtraCostCommand) error
	}
	RegisterDriverDeviceHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterDriverDeviceCommand) error
	}
	SweepStaleAcceptancesHandler interface {
		Handle(ctx context.Context, cmd commands.SweepStaleAcceptancesCommand) (int, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error)
	}
	GetActiveOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetActiveOrdersQuery) ([]queries.ActiveOrderResponse, error)
	}
)

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	CreateOrder           CreateOrderHandler
	ChangeOrderStatus     ChangeOrderStatusHandler
	AssignOperator        AssignOperatorHandler
	AddExtraCost          AddExtraCostHandler
	UpdateExtraCost       UpdateExtraCostHandler
	RegisterDriverDevice  RegisterDriverDeviceHandler
	SweepStaleAcceptances SweepStaleAcceptancesHandler
	GetOrder              GetOrderHandler
	GetActiveOrders       GetActiveOrdersHandler
}

// SweepSettings parameterize a sweep triggered through the API. The cron job
// uses the same values.
type SweepSettings struct {
	Threshold time.Duration
	BatchSize int
}

// Server implements servers.ServerInterface on top of the application layer.
type Server struct {
	handlers Handlers
	sweep    SweepSettings
	logger   *slog.Logger
	now      func() time.Time
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, sweep SweepSettings, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		sweep:    sweep,
		logger:   logger.With("component", "http"),
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req servers.NewOrder
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := s.newCreateOrderCommand(req)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedOrder{Id: cmd.OrderID().Bytes()})
}

func (s *Server) newCreateOrderCommand(req servers.NewOrder) (commands.CreateOrderCommand, error) {
	contractID, err := kernel.UUIDFromGoogle(req.ContractId)
	if err != nil {
		return commands.CreateOrderCommand{}, errs.NewValueIsRequiredErrorWithCause("contractId", err)
	}

	driverID, err := optionalID(req.DriverId)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	incident, err := toAddress("incidentAddress", req.IncidentAddress)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	destination, err := toAddress("destinationAddress", req.DestinationAddress)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	var extras []commands.ExtraService
	if req.ExtraServices != nil {
		for _, e := range *req.ExtraServices {
			price, parseErr := parseMoney("price", e.Price)
			if parseErr != nil {
				return commands.CreateOrderCommand{}, parseErr
			}
			extras = append(extras, commands.ExtraService{Name: order.ExtraCostName(e.Name), Price: price})
		}
	}

	return commands.NewCreateOrderCommand(
		kernel.NewUUID(), contractID, req.IncidentType, req.IncidentDate,
		incident, destination, driverID, extras, s.now(),
	)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	o, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	extraCosts := make([]servers.ExtraCost, len(o.ExtraCosts))
	for i, e := range o.ExtraCosts {
		extraCosts[i] = servers.ExtraCost{
			Id:       e.ID.Bytes(),
			Name:     e.Name,
			Price:    e.Price.StringFixed(2),
			IsActive: e.IsActive,
		}
	}

	return ctx.JSON(http.StatusOK, servers.Order{
		Id:                 o.ID.Bytes(),
		ContractId:         o.ContractID.Bytes(),
		OperatorId:         toOptionalUUID(o.OperatorID),
		DriverId:           toOptionalUUID(o.DriverID),
		IncidentType:       o.IncidentType,
		IncidentDate:       o.IncidentDate,
		IncidentAddress:    toLocation(o.IncidentAddress),
		DestinationAddress: toLocation(o.DestinationAddress),
		DistanceTraveled:   o.DistanceTraveled.String(),
		TotalCost:          o.TotalCost.StringFixed(2),
		Status:             servers.Status(o.Status),
		StatusChangedAt:    o.StatusChangedAt,
		AcceptanceTimeouts: o.AcceptanceTimeouts,
		Version:            o.Version,
		CreatedAt:          o.CreatedAt,
		ExtraCosts:         extraCosts,
	})
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	orders, err := s.handlers.GetActiveOrders.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]servers.ActiveOrder, len(orders))
	for i, o := range orders {
		response[i] = servers.ActiveOrder{
			Id:              o.ID.Bytes(),
			ContractId:      o.ContractID.Bytes(),
			DriverId:        toOptionalUUID(o.DriverID),
			IncidentType:    o.IncidentType,
			IncidentAddress: toLocation(o.IncidentAddress),
			TotalCost:       o.TotalCost.StringFixed(2),
			Status:          servers.Status(o.Status),
			StatusChangedAt: o.StatusChangedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeOrderStatus handles PUT /api/v1/orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderId servers.OrderId) error {
	var req servers.StatusChange
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := s.newChangeOrderStatusCommand(orderId, req)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err = s.handlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) newChangeOrderStatusCommand(
	orderId servers.OrderId, req servers.StatusChange,
) (commands.ChangeOrderStatusCommand, error) {
	id, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return commands.ChangeOrderStatusCommand{}, err
	}

	target, err := order.StatusFromString(string(req.Status))
	if err != nil {
		return commands.ChangeOrderStatusCommand{}, err
	}

	driverID, err := optionalID(req.DriverId)
	if err != nil {
		return commands.ChangeOrderStatusCommand{}, err
	}

	var distance *decimal.Decimal
	if req.DistanceTraveled != nil {
		d, parseErr := parseMoney("distanceTraveled", *req.DistanceTraveled)
		if parseErr != nil {
			return commands.ChangeOrderStatusCommand{}, parseErr
		}
		distance = &d
	}

	return commands.NewChangeOrderStatusCommand(id, target, driverID, distance, s.now())
}

// AssignOperator handles PUT /api/v1/orders/{orderId}/operator.
func (s *Server) AssignOperator(ctx echo.Context, orderId servers.OrderId) error {
	var req servers.OperatorAssignment
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	id, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	operatorID, err := kernel.UUIDFromGoogle(req.OperatorId)
	if err != nil {
		return s.errorResponse(ctx, errs.NewValueIsRequiredErrorWithCause("operatorId", err))
	}

	cmd, err := commands.NewAssignOperatorCommand(id, operatorID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err = s.handlers.AssignOperator.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddExtraCost handles POST /api/v1/orders/{orderId}/extra-costs.
func (s *Server) AddExtraCost(ctx echo.Context, orderId servers.OrderId) error {
	var req servers.NewExtraCost
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	id, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	price, err := parseMoney("price", req.Price)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	cmd, err := commands.NewAddExtraCostCommand(id, string(req.Name), price)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	extraCostID, err := s.handlers.AddExtraCost.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedExtraCost{Id: extraCostID.Bytes()})
}

// UpdateExtraCost handles PATCH /api/v1/extra-costs/{extraCostId}.
func (s *Server) UpdateExtraCost(ctx echo.Context, extraCostId openapi_types.UUID) error {
	var req servers.ExtraCostPatch
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	id, err := kernel.UUIDFromGoogle(extraCostId)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateExtraCostCommand(id, req.IsActive)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err = s.handlers.UpdateExtraCost.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RegisterDriverDevice handles PUT /api/v1/drivers/{driverId}/device.
func (s *Server) RegisterDriverDevice(ctx echo.Context, driverId openapi_types.UUID) error {
	var req servers.DeviceRegistration
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	id, err := kernel.UUIDFromGoogle(driverId)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	cmd, err := commands.NewRegisterDriverDeviceCommand(id, req.DeviceToken)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err = s.handlers.RegisterDriverDevice.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SweepEscalations handles POST /api/v1/escalations/sweep.
func (s *Server) SweepEscalations(ctx echo.Context) error {
	cmd, err := commands.NewSweepStaleAcceptancesCommand(s.now(), s.sweep.Threshold, s.sweep.BatchSize)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	escalated, err := s.handlers.SweepStaleAcceptances.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		// Escalations already committed in this pass stay committed.
		s.logger.WarnContext(ctx.Request().Context(), "sweep finished with errors",
			"escalated", escalated, "error", err)
		if escalated == 0 {
			return s.errorResponse(ctx, err)
		}
	}

	return ctx.JSON(http.StatusOK, servers.SweepResult{Escalated: escalated})
}

func toAddress(field string, a servers.Address) (commands.Address, error) {
	if a.Text != nil {
		return commands.NewAddressFromText(*a.Text)
	}
	if a.Latitude != nil && a.Longitude != nil {
		return commands.NewAddressFromCoordinates(*a.Latitude, *a.Longitude)
	}
	return commands.Address{}, errs.NewValueIsRequiredError(field)
}

func toLocation(l kernel.Location) servers.Location {
	return servers.Location{
		Latitude:  l.Latitude(),
		Longitude: l.Longitude(),
	}
}

func optionalID(id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	parsed, err := kernel.UUIDFromGoogle(*id)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func toOptionalUUID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	bytes := id.Bytes()
	return &bytes
}

func parseMoney(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	return d, nil
}
