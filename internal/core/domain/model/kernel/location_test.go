package kernel_test

import (
	"math"
	"testing"

	"roadside/internal/core/domain/model/kernel"
	"roadside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		wantErr   error
	}{
		{name: "valid location", latitude: 10.4806, longitude: -66.9036},
		{name: "valid at min bounds", latitude: kernel.LatitudeMin, longitude: kernel.LongitudeMin},
		{name: "valid at max bounds", latitude: kernel.LatitudeMax, longitude: kernel.LongitudeMax},
		{name: "latitude too small", latitude: -90.01, longitude: 0, wantErr: errs.ErrValueIsOutOfRange},
		{name: "latitude too large", latitude: 90.01, longitude: 0, wantErr: errs.ErrValueIsOutOfRange},
		{name: "longitude too small", latitude: 0, longitude: -180.01, wantErr: errs.ErrValueIsOutOfRange},
		{name: "longitude too large", latitude: 0, longitude: 180.01, wantErr: errs.ErrValueIsOutOfRange},
		{name: "latitude is NaN", latitude: math.NaN(), longitude: 0, wantErr: errs.ErrValueIsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := kernel.NewLocation(tt.latitude, tt.longitude)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, kernel.Location{}, loc)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.latitude, loc.Latitude())
			assert.Equal(t, tt.longitude, loc.Longitude())
			assert.NoError(t, loc.Validate())
		})
	}

	t.Run("reports both coordinates", func(t *testing.T) {
		_, err := kernel.NewLocation(100, 200)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
		assert.Contains(t, err.Error(), "longitude")
	})
}

func TestLocation_Validate(t *testing.T) {
	var loc kernel.Location
	assert.ErrorIs(t, loc.Validate(), errs.ErrValueIsRequired)
}

func TestLocation_IsEqual(t *testing.T) {
	a, _ := kernel.NewLocation(10.5, -66.9)
	b, _ := kernel.NewLocation(10.5, -66.9)
	c, _ := kernel.NewLocation(10.6, -66.9)

	eq, err := a.IsEqual(b)
	require.NoError(t, err)
	assert.True(t, eq)

	eq, err = a.IsEqual(c)
	require.NoError(t, err)
	assert.False(t, eq)

	_, err = a.IsEqual(kernel.Location{})
	require.Error(t, err)
}

func TestLocation_String(t *testing.T) {
	loc, _ := kernel.NewLocation(1.5, -2.25)
	assert.Equal(t, "Location(1.500000,-2.250000)", loc.String())
}
