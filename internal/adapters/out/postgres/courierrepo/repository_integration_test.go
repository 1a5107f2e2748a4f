package courierrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/maxwellkiplagat/Deliveroo/internal/adapters/out/postgres/courierrepo"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/courier"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
	"github.com/maxwellkiplagat/Deliveroo/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// CourierRepositoryIntegrationTestSuite provides integration tests for
// CourierRepository using PostgreSQL containers.
type CourierRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *courierrepo.GormCourierRepository
	tracker    *MockAggregateTracker
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&courierrepo.CourierDTO{}))
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE couriers").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = courierrepo.NewGormCourierRepository(suite.db, suite.tracker)
}

func (suite *CourierRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CourierRepositoryIntegrationTestSuite) TestAdd_ValidCourier_Success() {
	ctx := context.Background()
	testCourier := suite.createTestCourier("John Kamau")

	suite.tracker.On("TrackAggregate", testCourier.ID(), testCourier).Once()

	err := suite.repository.Add(ctx, testCourier)
	suite.Require().NoError(err)

	suite.tracker.AssertExpectations(suite.T())

	var count int64
	suite.Require().NoError(suite.db.Model(&courierrepo.CourierDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGet_ExistingCourier_RoundTripsAllFields() {
	ctx := context.Background()
	testCourier := suite.createTestCourier("John Kamau")

	point, err := kernel.NewGeoPoint(-1.2921, 36.8219)
	suite.Require().NoError(err)
	suite.Require().NoError(testCourier.MoveTo(point))

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testCourier))

	retrieved, err := suite.repository.Get(ctx, testCourier.ID())
	suite.Require().NoError(err)

	suite.Equal(testCourier.ID(), retrieved.ID())
	suite.Equal("John Kamau", retrieved.Name())
	suite.Equal(testCourier.Phone().String(), retrieved.Phone().String())
	suite.Equal("Motorcycle", retrieved.VehicleType())
	suite.Equal(courier.Available, retrieved.Availability())
	suite.Require().NotNil(retrieved.Location())
	suite.InDelta(point.Lat(), retrieved.Location().Lat(), 0.000001)
	suite.InDelta(point.Lng(), retrieved.Location().Lng(), 0.000001)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGet_NonExistentCourier_ReturnsNotFoundError() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestUpdate_AvailabilityChange_Persists() {
	ctx := context.Background()
	testCourier := suite.createTestCourier("John Kamau")

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testCourier))

	testCourier.MarkBusy()
	suite.Require().NoError(suite.repository.Update(ctx, testCourier))

	retrieved, err := suite.repository.Get(ctx, testCourier.ID())
	suite.Require().NoError(err)
	suite.Equal(courier.Busy, retrieved.Availability())

	testCourier.MarkAvailable()
	suite.Require().NoError(suite.repository.Update(ctx, testCourier))

	retrieved, err = suite.repository.Get(ctx, testCourier.ID())
	suite.Require().NoError(err)
	suite.Equal(courier.Available, retrieved.Availability())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestUpdate_NonExistentCourier_ReturnsError() {
	ctx := context.Background()
	testCourier := suite.createTestCourier("John Kamau")

	err := suite.repository.Update(ctx, testCourier)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGetAllAvailable_MixedAvailability_ReturnsOnlyAvailable() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	available1 := suite.createTestCourier("Grace Wanjiru")
	available2 := suite.createTestCourier("John Kamau")
	busy := suite.createTestCourier("Peter Njoroge")
	busy.MarkBusy()

	suite.Require().NoError(suite.repository.Add(ctx, available1))
	suite.Require().NoError(suite.repository.Add(ctx, available2))
	suite.Require().NoError(suite.repository.Add(ctx, busy))

	couriers, err := suite.repository.GetAllAvailable(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(couriers, 2)

	// Results come back ordered by name.
	suite.Equal("Grace Wanjiru", couriers[0].Name())
	suite.Equal("John Kamau", couriers[1].Name())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGetAllAvailable_NoCouriers_ReturnsEmptySlice() {
	ctx := context.Background()

	couriers, err := suite.repository.GetAllAvailable(ctx)
	suite.Require().NoError(err)
	suite.Empty(couriers)
}

func (suite *CourierRepositoryIntegrationTestSuite) createTestCourier(name string) *courier.Courier {
	phone, err := kernel.NewPhone("+254 733 987 654")
	suite.Require().NoError(err)

	testCourier, err := courier.NewCourier(kernel.NewUUID(), name, phone, "Motorcycle")
	suite.Require().NoError(err)
	return testCourier
}

func TestCourierRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CourierRepositoryIntegrationTestSuite))
}
