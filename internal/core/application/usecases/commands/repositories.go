// Package commands contains the business operations that modify orders.
// Every command follows the same pattern: validated construction, a unit of
// work around load/mutate/persist, then hand-off of the lifecycle events of
// the committed order.
package commands

import (
	"context"

	"roadside/internal/core/domain/model/order"
	"roadside/internal/core/ports"
)

// Unit of Work interfaces give handlers only the repositories they need.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides the order repository bound to a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CoverageRepoFactory provides the coverage repository bound to a transaction.
	CoverageRepoFactory interface {
		CoverageRepository() ports.CoverageRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW spans orders and the contract coverage they are priced with.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   coverage, err := uow.CoverageRepository().GetCoverage(ctx, contractID)
	//   // ... build the order
	//   err = uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		CoverageRepoFactory
	}

	// UoWFactory creates new unit of work instances for order creation.
	UoWFactory interface {
		Create() UoW
	}
)

// EventDispatcher receives the lifecycle events of an order once it has been
// committed. Implementations must not block the caller.
type EventDispatcher interface {
	Dispatch(ctx context.Context, events []order.StatusChanged)
}
