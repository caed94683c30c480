// Package queries contains the read side of the service. Query handlers read
// straight from the database with raw SQL and never load aggregates.
package queries

import (
	"time"

	"roadside/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// OrderResponse is the full read model of one order.
type OrderResponse struct {
	ID                 kernel.UUID
	ContractID         kernel.UUID
	OperatorID         *kernel.UUID
	DriverID           *kernel.UUID
	IncidentType       string
	IncidentDate       time.Time
	IncidentAddress    kernel.Location
	DestinationAddress kernel.Location
	DistanceTraveled   decimal.Decimal
	TotalCost          decimal.Decimal
	Status             string
	StatusChangedAt    time.Time
	AcceptanceTimeouts int
	Version            int64
	CreatedAt          time.Time
	ExtraCosts         []ExtraCostResponse
}

type ExtraCostResponse struct {
	ID       kernel.UUID
	Name     string
	Price    decimal.Decimal
	IsActive bool
}

// ActiveOrderResponse summarizes an order that is neither paid nor canceled.
type ActiveOrderResponse struct {
	ID              kernel.UUID
	ContractID      kernel.UUID
	DriverID        *kernel.UUID
	IncidentType    string
	IncidentAddress kernel.Location
	TotalCost       decimal.Decimal
	Status          string
	StatusChangedAt time.Time
}
