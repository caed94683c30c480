package order

import (
	"time"

	"roadside/internal/core/domain/model/kernel"
)

// StatusChanged is recorded on every transition and pulled by the application
// layer after the order has been committed.
type StatusChanged struct {
	OrderID kernel.UUID
	From    Status
	To      Status
	Trigger Trigger
	// DriverID is the driver concerned by the transition. For RefuseAssignment
	// and AcceptanceTimeout it is the driver that was just released.
	DriverID   *kernel.UUID
	OccurredAt time.Time
}
