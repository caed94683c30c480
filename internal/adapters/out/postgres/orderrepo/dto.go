// Package orderrepo maps the order aggregate and its extra-cost ledger to the
// orders and extra_costs tables.
package orderrepo

import (
	"fmt"
	"time"

	"roadside/internal/core/domain/model/billing"
	"roadside/internal/core/domain/model/kernel"
	"roadside/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row of the orders table. The coverage columns hold the
// policy snapshot taken when the order was created.
type OrderDTO struct {
	ID                        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ContractID                uuid.UUID       `gorm:"type:uuid;not null"`
	OperatorID                *uuid.UUID      `gorm:"type:uuid"`
	DriverID                  *uuid.UUID      `gorm:"type:uuid;index"`
	IncidentType              string          `gorm:"not null"`
	IncidentDate              time.Time       `gorm:"not null"`
	IncidentAddress           LocationDTO     `gorm:"embedded;embeddedPrefix:incident_"`
	DestinationAddress        LocationDTO     `gorm:"embedded;embeddedPrefix:destination_"`
	DistanceCoverage          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	AmountCoverage            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PricePerExtraDistanceUnit decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DistanceTraveled          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalCost                 decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status                    string          `gorm:"not null;index:idx_orders_status_changed_at,priority:1"`
	StatusChangedAt           time.Time       `gorm:"not null;index:idx_orders_status_changed_at,priority:2"`
	AcceptanceTimeouts        int             `gorm:"not null"`
	Version                   int64           `gorm:"not null"`
	CreatedAt                 time.Time       `gorm:"not null;autoCreateTime:false"`
	ExtraCosts                []ExtraCostDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LocationDTO is embedded twice in OrderDTO, once per address.
type LocationDTO struct {
	Latitude  float64 `gorm:"type:double precision"`
	Longitude float64 `gorm:"type:double precision"`
}

type ExtraCostDTO struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_extra_costs_position,priority:1"`
	Position int             `gorm:"not null;uniqueIndex:idx_extra_costs_position,priority:2"`
	Name     string          `gorm:"not null"`
	Price    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	IsActive bool            `gorm:"not null"`
}

func (ExtraCostDTO) TableName() string {
	return "extra_costs"
}

// updatableColumns lists what Update may write. The immutable attributes of
// an order are never rewritten.
func (dto OrderDTO) updatableColumns(version int64) map[string]any {
	return map[string]any{
		"operator_id":         dto.OperatorID,
		"driver_id":           dto.DriverID,
		"distance_traveled":   dto.DistanceTraveled,
		"total_cost":          dto.TotalCost,
		"status":              dto.Status,
		"status_changed_at":   dto.StatusChangedAt,
		"acceptance_timeouts": dto.AcceptanceTimeouts,
		"version":             version,
	}
}

func optionalID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func fromDomain(o *order.Order) OrderDTO {
	coverage := o.Coverage()
	dto := OrderDTO{
		ID:           o.ID().Bytes(),
		ContractID:   o.ContractID().Bytes(),
		OperatorID:   optionalID(o.Operator()),
		DriverID:     optionalID(o.Driver()),
		IncidentType: o.IncidentType(),
		IncidentDate: o.IncidentDate().UTC(),
		IncidentAddress: LocationDTO{
			Latitude:  o.IncidentAddress().Latitude(),
			Longitude: o.IncidentAddress().Longitude(),
		},
		DestinationAddress: LocationDTO{
			Latitude:  o.DestinationAddress().Latitude(),
			Longitude: o.DestinationAddress().Longitude(),
		},
		DistanceCoverage:          coverage.DistanceCoverage(),
		AmountCoverage:            coverage.AmountCoverage(),
		PricePerExtraDistanceUnit: coverage.PricePerExtraDistanceUnit(),
		DistanceTraveled:          o.DistanceTraveled(),
		TotalCost:                 o.TotalCost(),
		Status:                    o.Status().String(),
		StatusChangedAt:           o.StatusChangedAt().UTC(),
		AcceptanceTimeouts:        o.AcceptanceTimeouts(),
		Version:                   o.Version(),
		CreatedAt:                 o.CreatedAt().UTC(),
	}

	for i, e := range o.ExtraCosts() {
		dto.ExtraCosts = append(dto.ExtraCosts, ExtraCostDTO{
			ID:       e.ID().Bytes(),
			OrderID:  dto.ID,
			Position: i,
			Name:     string(e.Name()),
			Price:    e.Price(),
			IsActive: e.IsActive(),
		})
	}

	return dto
}

func restoreOptionalID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromGoogle(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// toDomain expects dto.ExtraCosts ordered by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	contractID, err := kernel.UUIDFromGoogle(dto.ContractID)
	if err != nil {
		return nil, err
	}
	operatorID, err := restoreOptionalID(dto.OperatorID)
	if err != nil {
		return nil, err
	}
	driverID, err := restoreOptionalID(dto.DriverID)
	if err != nil {
		return nil, err
	}

	incident, err := kernel.NewLocation(dto.IncidentAddress.Latitude, dto.IncidentAddress.Longitude)
	if err != nil {
		return nil, err
	}
	destination, err := kernel.NewLocation(dto.DestinationAddress.Latitude, dto.DestinationAddress.Longitude)
	if err != nil {
		return nil, err
	}

	coverage, err := billing.NewCoverage(dto.DistanceCoverage, dto.AmountCoverage, dto.PricePerExtraDistanceUnit)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", dto.ID, err)
	}

	extraCosts := make([]*order.ExtraCost, 0, len(dto.ExtraCosts))
	for _, e := range dto.ExtraCosts {
		cost, costErr := restoreExtraCost(e)
		if costErr != nil {
			return nil, costErr
		}
		extraCosts = append(extraCosts, cost)
	}

	return order.RestoreOrder(order.Snapshot{
		ID:                 id,
		ContractID:         contractID,
		OperatorID:         operatorID,
		DriverID:           driverID,
		IncidentAddress:    incident,
		DestinationAddress: destination,
		IncidentType:       dto.IncidentType,
		IncidentDate:       dto.IncidentDate,
		Coverage:           coverage,
		DistanceTraveled:   dto.DistanceTraveled,
		ExtraCosts:         extraCosts,
		Status:             status,
		StatusChangedAt:    dto.StatusChangedAt,
		AcceptanceTimeouts: dto.AcceptanceTimeouts,
		Version:            dto.Version,
		CreatedAt:          dto.CreatedAt,
	})
}

func restoreExtraCost(dto ExtraCostDTO) (*order.ExtraCost, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromGoogle(dto.OrderID)
	if err != nil {
		return nil, err
	}
	return order.RestoreExtraCost(id, orderID, dto.Name, dto.Price, dto.IsActive)
}
