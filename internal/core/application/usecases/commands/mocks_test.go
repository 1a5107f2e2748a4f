package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/application/usecases/commands"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/courier"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/parcel"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetByTrackingNumber(ctx context.Context, tn kernel.TrackingNumber) (*parcel.Parcel, error) {
	args := m.Called(ctx, tn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetFirstUnassignedPending(ctx context.Context) (*parcel.Parcel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetAllAvailable(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

type MockParcelUoW struct{ mock.Mock }

func (m *MockParcelUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelUoW)
}

type MockCourierUoW struct{ mock.Mock }

func (m *MockCourierUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCourierUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCourierUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCourierUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

type MockCourierUoWFactory struct{ mock.Mock }

func (m *MockCourierUoWFactory) Create() commands.CourierUoW {
	args := m.Called()
	return args.Get(0).(commands.CourierUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishParcelCreated(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishParcelStatusChanged(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockTrackingCache struct{ mock.Mock }

func (m *MockTrackingCache) Get(ctx context.Context, trackingNumber string) ([]byte, error) {
	args := m.Called(ctx, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockTrackingCache) Set(ctx context.Context, trackingNumber string, snapshot []byte, ttl time.Duration) error {
	args := m.Called(ctx, trackingNumber, snapshot, ttl)
	return args.Error(0)
}

func (m *MockTrackingCache) Invalidate(ctx context.Context, trackingNumber string) error {
	args := m.Called(ctx, trackingNumber)
	return args.Error(0)
}

// newStoredParcel builds a pending parcel the way the repository would
// return it.
func newStoredParcel(t *testing.T, ownerID kernel.UUID) *parcel.Parcel {
	t.Helper()

	name, err := kernel.NewPersonName("Jane Doe")
	require.NoError(t, err)
	phone, err := kernel.NewPhone("+254 712 345 678")
	require.NoError(t, err)
	party, err := parcel.NewParty(name, phone)
	require.NoError(t, err)

	pickup, err := kernel.NewAddress("12 Moi Avenue, Nairobi")
	require.NoError(t, err)
	destination, err := kernel.NewAddress("34 Kenyatta Road, Mombasa")
	require.NoError(t, err)

	createdAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	p, err := parcel.NewParcel(
		kernel.NewUUID(),
		kernel.NewTrackingNumber(createdAt),
		ownerID,
		party,
		party,
		pickup,
		destination,
		3,
		615,
		createdAt,
	)
	require.NoError(t, err)
	return p
}
