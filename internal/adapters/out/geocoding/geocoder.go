// Package geocoding resolves incident and destination addresses to
// coordinates.
package geocoding

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"roadside/internal/core/domain/model/kernel"
	"roadside/internal/pkg/errs"

	"googlemaps.github.io/maps"
)

type geocodingClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// GoogleGeocoder implements ports.Geocoder with the Google Maps Geocoding
// API. Addresses already written as "lat,lon" never reach the API.
type GoogleGeocoder struct {
	client   geocodingClient
	region   string
	language string
}

func NewGoogleGeocoder(apiKey, region, language string) (*GoogleGeocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GoogleGeocoder{client: client, region: region, language: language}, nil
}

func (g *GoogleGeocoder) Geocode(ctx context.Context, address string) (kernel.Location, error) {
	if loc, ok, err := parseCoordinates(address); ok {
		return loc, err
	}

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		Address:  address,
		Region:   g.region,
		Language: g.language,
	})
	if err != nil {
		return kernel.Location{}, fmt.Errorf("geocoding api error: %w", err)
	}
	if len(results) == 0 {
		return kernel.Location{}, errs.NewObjectNotFoundError("address", address)
	}

	best := results[0].Geometry.Location
	return kernel.NewLocation(best.Lat, best.Lng)
}

// LiteralGeocoder only understands "lat,lon" addresses. It stands in for
// GoogleGeocoder when no API key is configured.
type LiteralGeocoder struct{}

func (LiteralGeocoder) Geocode(_ context.Context, address string) (kernel.Location, error) {
	loc, ok, err := parseCoordinates(address)
	if !ok {
		return kernel.Location{}, errs.NewValueIsInvalidErrorWithCause("address",
			fmt.Errorf("%q is not a lat,lon pair and no geocoding service is configured", address))
	}
	return loc, err
}

// parseCoordinates reports ok when address has the lat,lon shape; err is set
// when the numbers are out of range.
func parseCoordinates(address string) (kernel.Location, bool, error) {
	parts := strings.Split(address, ",")
	if len(parts) != 2 {
		return kernel.Location{}, false, nil
	}

	lat, latErr := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lon, lonErr := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if latErr != nil || lonErr != nil {
		return kernel.Location{}, false, nil
	}

	loc, err := kernel.NewLocation(lat, lon)
	return loc, true, err
}
