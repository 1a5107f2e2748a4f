package services_test

import (
	"testing"
	"time"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/courier"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/parcel"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDispatchParcel(t *testing.T) *parcel.Parcel {
	t.Helper()

	name, err := kernel.NewPersonName("Jane Doe")
	require.NoError(t, err)
	phone, err := kernel.NewPhone("+254 712 345 678")
	require.NoError(t, err)
	sender, err := parcel.NewParty(name, phone)
	require.NoError(t, err)

	pickup, err := kernel.NewAddress("12 Moi Avenue, Nairobi")
	require.NoError(t, err)
	destination, err := kernel.NewAddress("34 Kenyatta Road, Mombasa")
	require.NoError(t, err)

	createdAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	p, err := parcel.NewParcel(
		kernel.NewUUID(),
		kernel.NewTrackingNumber(createdAt),
		kernel.NewUUID(),
		sender,
		sender,
		pickup,
		destination,
		3,
		615,
		createdAt,
	)
	require.NoError(t, err)
	return p
}

func newDispatchCourier(t *testing.T, name string, lat, lng float64) *courier.Courier {
	t.Helper()

	phone, err := kernel.NewPhone("+254 700 000 000")
	require.NoError(t, err)
	c, err := courier.NewCourier(kernel.NewUUID(), name, phone, "motorbike")
	require.NoError(t, err)

	point, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	require.NoError(t, c.MoveTo(point))
	return c
}

func TestParcelDispatcher_Dispatch(t *testing.T) {
	t.Run("should assign the closest available courier", func(t *testing.T) {
		p := newDispatchParcel(t)
		pickup, err := kernel.NewGeoPoint(-1.2864, 36.8172)
		require.NoError(t, err)
		require.NoError(t, p.SetCoords(&pickup, nil))

		near := newDispatchCourier(t, "Near Rider", -1.29, 36.82)
		far := newDispatchCourier(t, "Far Rider", -4.04, 39.66)

		assigned, err := services.NewParcelDispatcher().Dispatch(p, []*courier.Courier{far, near})
		require.NoError(t, err)

		assert.True(t, assigned.IsEqual(near))
		assert.False(t, assigned.IsAvailable())
		require.NotNil(t, p.Courier())
		assert.True(t, p.Courier().ID().IsEqual(near.ID()))
	})

	t.Run("should skip busy couriers", func(t *testing.T) {
		p := newDispatchParcel(t)

		busy := newDispatchCourier(t, "Busy Rider", -1.29, 36.82)
		busy.MarkBusy()
		free := newDispatchCourier(t, "Free Rider", -4.04, 39.66)

		assigned, err := services.NewParcelDispatcher().Dispatch(p, []*courier.Courier{busy, free})
		require.NoError(t, err)
		assert.True(t, assigned.IsEqual(free))
	})

	t.Run("should return ErrCourierNotFound when all couriers are busy", func(t *testing.T) {
		p := newDispatchParcel(t)

		busy := newDispatchCourier(t, "Busy Rider", -1.29, 36.82)
		busy.MarkBusy()

		_, err := services.NewParcelDispatcher().Dispatch(p, []*courier.Courier{busy})
		assert.ErrorIs(t, err, services.ErrCourierNotFound)
	})

	t.Run("should return ErrCourierNotFound for an empty candidate list", func(t *testing.T) {
		p := newDispatchParcel(t)

		_, err := services.NewParcelDispatcher().Dispatch(p, nil)
		assert.ErrorIs(t, err, services.ErrCourierNotFound)
	})

	t.Run("should fall back to the first available courier without geography", func(t *testing.T) {
		p := newDispatchParcel(t)

		phone, err := kernel.NewPhone("+254 700 000 000")
		require.NoError(t, err)
		first, err := courier.NewCourier(kernel.NewUUID(), "First Rider", phone, "van")
		require.NoError(t, err)
		second, err := courier.NewCourier(kernel.NewUUID(), "Second Rider", phone, "van")
		require.NoError(t, err)

		assigned, err := services.NewParcelDispatcher().Dispatch(p, []*courier.Courier{first, second})
		require.NoError(t, err)
		assert.True(t, assigned.IsEqual(first))
	})
}
