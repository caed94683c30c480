package queries

import (
	"context"

	"roadside/internal/core/domain/model/kernel"
	"roadside/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler lists active orders, the longest waiting first.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]ActiveOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]ActiveOrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			contract_id,
			driver_id,
			incident_type,
			incident_latitude,
			incident_longitude,
			total_cost,
			status,
			status_changed_at
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY status_changed_at, id
	`, order.Paid.String(), order.Canceled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ActiveOrderResponse
		var id, contractID uuid.UUID
		var driverID uuid.NullUUID
		var latitude, longitude float64

		err = rows.Scan(
			&id,
			&contractID,
			&driverID,
			&resp.IncidentType,
			&latitude,
			&longitude,
			&resp.TotalCost,
			&resp.Status,
			&resp.StatusChangedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if resp.ContractID, err = kernel.UUIDFromGoogle(contractID); err != nil {
			return nil, err
		}
		if resp.DriverID, err = nullableID(driverID); err != nil {
			return nil, err
		}
		if resp.IncidentAddress, err = kernel.NewLocation(latitude, longitude); err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
