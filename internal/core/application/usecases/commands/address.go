package commands

import (
	"context"
	"errors"
	"strings"

	"roadside/internal/core/domain/model/kernel"
	"roadside/internal/core/ports"
	"roadside/internal/pkg/errs"
)

var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddressFromCoordinates or NewAddressFromText")

// Address is an address as received by a command: either coordinates, or a
// free-form text that is geocoded when the command is handled.
type Address struct {
	text     string
	location *kernel.Location
}

func NewAddressFromCoordinates(latitude, longitude float64) (Address, error) {
	loc, err := kernel.NewLocation(latitude, longitude)
	if err != nil {
		return Address{}, err
	}
	return Address{location: &loc}, nil
}

func NewAddressFromText(text string) (Address, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Address{}, errs.NewValueIsRequiredError("address")
	}
	return Address{text: text}, nil
}

func (a Address) Validate() error {
	if a.location == nil && a.text == "" {
		return ErrAddressIsNotConstructed
	}
	return nil
}

func (a Address) Text() string {
	return a.text
}

func (a Address) Location() *kernel.Location {
	return a.location
}

func (a Address) resolve(ctx context.Context, geocoder ports.Geocoder) (kernel.Location, error) {
	if a.location != nil {
		return *a.location, nil
	}
	return geocoder.Geocode(ctx, a.text)
}
