package geocoding

import (
	"context"
	"errors"
	"testing"

	"roadside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

type mockGeocodingClient struct{ mock.Mock }

func (m *mockGeocodingClient) Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]maps.GeocodingResult), args.Error(1)
}

func result(lat, lng float64) maps.GeocodingResult {
	var r maps.GeocodingResult
	r.Geometry.Location = maps.LatLng{Lat: lat, Lng: lng}
	return r
}

func TestGoogleGeocoder_Geocode(t *testing.T) {
	t.Run("should use the first match", func(t *testing.T) {
		client := new(mockGeocodingClient)
		geocoder := &GoogleGeocoder{client: client, region: "ve", language: "es"}
		client.On("Geocode", mock.Anything, &maps.GeocodingRequest{
			Address: "Av. Francisco de Miranda, Caracas", Region: "ve", Language: "es",
		}).Return([]maps.GeocodingResult{result(10.4961, -66.8530), result(0, 0)}, nil).Once()

		loc, err := geocoder.Geocode(t.Context(), "Av. Francisco de Miranda, Caracas")

		require.NoError(t, err)
		assert.InDelta(t, 10.4961, loc.Latitude(), 1e-9)
		assert.InDelta(t, -66.8530, loc.Longitude(), 1e-9)
	})

	t.Run("should not call the api for coordinates", func(t *testing.T) {
		client := new(mockGeocodingClient)
		geocoder := &GoogleGeocoder{client: client}

		loc, err := geocoder.Geocode(t.Context(), "10.5, -66.91")

		require.NoError(t, err)
		assert.InDelta(t, 10.5, loc.Latitude(), 1e-9)
		client.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
	})

	t.Run("should report unknown addresses as not found", func(t *testing.T) {
		client := new(mockGeocodingClient)
		geocoder := &GoogleGeocoder{client: client}
		client.On("Geocode", mock.Anything, mock.Anything).Return([]maps.GeocodingResult{}, nil).Once()

		_, err := geocoder.Geocode(t.Context(), "Calle Inexistente 123")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should wrap api errors", func(t *testing.T) {
		client := new(mockGeocodingClient)
		geocoder := &GoogleGeocoder{client: client}
		client.On("Geocode", mock.Anything, mock.Anything).Return(nil, errors.New("OVER_QUERY_LIMIT")).Once()

		_, err := geocoder.Geocode(t.Context(), "Plaza Venezuela")

		require.ErrorContains(t, err, "OVER_QUERY_LIMIT")
	})
}

func TestLiteralGeocoder_Geocode(t *testing.T) {
	loc, err := LiteralGeocoder{}.Geocode(t.Context(), "-33.45,-70.66")
	require.NoError(t, err)
	assert.InDelta(t, -70.66, loc.Longitude(), 1e-9)

	_, err = LiteralGeocoder{}.Geocode(t.Context(), "95,10")
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = LiteralGeocoder{}.Geocode(t.Context(), "Plaza Venezuela")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
