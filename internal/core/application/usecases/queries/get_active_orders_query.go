package queries

import (
	"errors"

	"roadside/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery lists every order that is neither paid nor canceled,
// which is the operators' working set.
//
// Example:
//
//	handler := NewGetActiveOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, NewGetActiveOrdersQuery())
//	if err != nil {
//	    return fmt.Errorf("list active orders: %w", err)
//	}
//	for _, o := range orders {
//	    fmt.Printf("%s %s since %s\n", o.ID, o.Status, o.StatusChangedAt)
//	}
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}
