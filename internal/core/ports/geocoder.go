package ports

import (
	"context"

	"roadside/internal/core/domain/model/kernel"
)

// Geocoder resolves a free-form address into a Location.
type Geocoder interface {
	// Geocode returns errs.ErrObjectNotFound when the address has no match.
	Geocode(ctx context.Context, address string) (kernel.Location, error)
}
