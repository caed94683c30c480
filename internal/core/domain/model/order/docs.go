// Package order implements the Order aggregate of a roadside-assistance
// service: its status state machine, its extra-cost ledger and the total cost
// kept in step with both.
//
// Key business rules:
//   - statuses move only through the transition table in trigger.go
//   - the total cost is always CalculateTotalCost over the coverage snapshot,
//     the distance traveled and the active extra costs
//   - extra costs cannot change once an order is paid or canceled
//   - a failed operation leaves the order unchanged
//
// Every transition appends a StatusChanged event, drained with
// PullDomainEvents once the order has been persisted.
package order
