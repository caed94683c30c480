package queries

import (
	"context"
	"database/sql"
	"errors"

	"roadside/internal/core/domain/model/kernel"
	"roadside/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads an order and its ledger in two statements.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var (
		resp                           OrderResponse
		id, contractID                 uuid.UUID
		operatorID, driverID           uuid.NullUUID
		incidentLat, incidentLon       float64
		destinationLat, destinationLon float64
	)

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			contract_id,
			operator_id,
			driver_id,
			incident_type,
			incident_date,
			incident_latitude,
			incident_longitude,
			destination_latitude,
			destination_longitude,
			distance_traveled,
			total_cost,
			status,
			status_changed_at,
			acceptance_timeouts,
			version,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row().Scan(
		&id,
		&contractID,
		&operatorID,
		&driverID,
		&resp.IncidentType,
		&resp.IncidentDate,
		&incidentLat,
		&incidentLon,
		&destinationLat,
		&destinationLon,
		&resp.DistanceTraveled,
		&resp.TotalCost,
		&resp.Status,
		&resp.StatusChangedAt,
		&resp.AcceptanceTimeouts,
		&resp.Version,
		&resp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
		}
		return OrderResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromGoogle(id); err != nil {
		return OrderResponse{}, err
	}
	if resp.ContractID, err = kernel.UUIDFromGoogle(contractID); err != nil {
		return OrderResponse{}, err
	}
	if resp.OperatorID, err = nullableID(operatorID); err != nil {
		return OrderResponse{}, err
	}
	if resp.DriverID, err = nullableID(driverID); err != nil {
		return OrderResponse{}, err
	}
	if resp.IncidentAddress, err = kernel.NewLocation(incidentLat, incidentLon); err != nil {
		return OrderResponse{}, err
	}
	if resp.DestinationAddress, err = kernel.NewLocation(destinationLat, destinationLon); err != nil {
		return OrderResponse{}, err
	}

	if resp.ExtraCosts, err = h.extraCosts(ctx, resp.ID); err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) extraCosts(ctx context.Context, orderID kernel.UUID) ([]ExtraCostResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			is_active
		FROM extra_costs
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	costs := make([]ExtraCostResponse, 0)
	for rows.Next() {
		var cost ExtraCostResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &cost.Name, &cost.Price, &cost.IsActive); err != nil {
			return nil, err
		}
		if cost.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		costs = append(costs, cost)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return costs, nil
}

func nullableID(raw uuid.NullUUID) (*kernel.UUID, error) {
	if !raw.Valid {
		return nil, nil
	}
	id, err := kernel.UUIDFromGoogle(raw.UUID)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
