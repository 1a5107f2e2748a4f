package kernel_test

import (
	"math"
	"testing"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
	"github.com/maxwellkiplagat/Deliveroo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create point with valid coordinates", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(40.7128, -74.0060)

		require.NoError(t, err)
		assert.InDelta(t, 40.7128, p.Lat(), 0.000001)
		assert.InDelta(t, -74.0060, p.Lng(), 0.000001)
		require.NoError(t, p.Validate())
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		corners := [][2]float64{
			{kernel.GeoLatMin, kernel.GeoLngMin},
			{kernel.GeoLatMax, kernel.GeoLngMax},
			{0, 0},
		}

		for _, c := range corners {
			_, err := kernel.NewGeoPoint(c[0], c[1])
			require.NoError(t, err)
		}
	})

	t.Run("should reject out of range latitude", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(90.5, 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject out of range longitude", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, -180.1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject non-finite coordinates", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(math.NaN(), 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = kernel.NewGeoPoint(0, math.Inf(1))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero value should fail validation", func(t *testing.T) {
		var p kernel.GeoPoint

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrGeoPointIsNotConstructed, err)
	})
}

func TestGeoPoint_DistanceTo(t *testing.T) {
	t.Run("should compute haversine distance between NYC boroughs", func(t *testing.T) {
		manhattan, err := kernel.NewGeoPoint(40.7128, -74.0060)
		require.NoError(t, err)
		brooklyn, err := kernel.NewGeoPoint(40.6782, -73.9442)
		require.NoError(t, err)

		distance, err := manhattan.DistanceTo(brooklyn)

		require.NoError(t, err)
		// Roughly 6.4 km between the two points.
		assert.InDelta(t, 6.4, distance, 0.5)
	})

	t.Run("distance to self should be zero", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(1.2921, 36.8219)
		require.NoError(t, err)

		distance, err := p.DistanceTo(p)

		require.NoError(t, err)
		assert.InDelta(t, 0, distance, 0.000001)
	})

	t.Run("should reject unconstructed operands", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(0, 0)
		require.NoError(t, err)

		var zero kernel.GeoPoint
		_, err = p.DistanceTo(zero)
		require.Error(t, err)

		_, err = zero.DistanceTo(p)
		require.Error(t, err)
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	t.Run("should compare by coordinates", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(1.5, 2.5)
		b, _ := kernel.NewGeoPoint(1.5, 2.5)
		c, _ := kernel.NewGeoPoint(1.5, 2.6)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}
