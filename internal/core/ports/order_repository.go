package ports

import (
	"context"
	"time"

	"roadside/internal/core/domain/model/kernel"
	"roadside/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// their extra costs included.
type OrderRepository interface {
	// Add persists a new order and its extra costs.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order guarded by its version:
	// the row is only written when the stored version still equals
	// aggregate.Version(), and the stored version is incremented. Otherwise it
	// returns errs.ErrConcurrencyConflict.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the order with its extra costs, or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByExtraCostID returns the order owning the extra cost, or
	// errs.ErrObjectNotFound.
	GetByExtraCostID(ctx context.Context, extraCostID kernel.UUID) (*order.Order, error)

	// ListStaleAcceptances returns up to limit orders that entered PorAceptar
	// before the given instant, oldest first.
	ListStaleAcceptances(ctx context.Context, before time.Time, limit int) ([]*order.Order, error)
}
