package reprepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/reprepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/rep"
	"fulfillment/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// RepRepositoryIntegrationTestSuite provides integration tests for RepRepository
// using PostgreSQL containers to verify database persistence behavior.
type RepRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *reprepo.GormRepRepository
	tracker    *MockAggregateTracker
}

func (suite *RepRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&reprepo.RepDTO{}))
}

func (suite *RepRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE representatives").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = reprepo.NewGormRepRepository(suite.db, suite.tracker)
}

func (suite *RepRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RepRepositoryIntegrationTestSuite) mustAdd(name string, position int) *rep.Representative {
	representative, err := rep.NewRepresentative(kernel.NewUUID(), name, position)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), representative))
	return representative
}

func (suite *RepRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	added := suite.mustAdd("Alice", 0)

	loaded, err := suite.repository.Get(ctx, added.ID())

	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(added))
	suite.Equal("Alice", loaded.Name())
	suite.True(loaded.IsActive())
	suite.False(loaded.IsExcluded())
	suite.Equal(0, loaded.SequencePosition())
}

func (suite *RepRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RepRepositoryIntegrationTestSuite) TestUpdate_PersistsExclusionAndDeactivation() {
	ctx := context.Background()
	added := suite.mustAdd("Alice", 3)

	added.Exclude()
	suite.Require().NoError(suite.repository.Update(ctx, added))

	loaded, err := suite.repository.Get(ctx, added.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsExcluded())
	suite.Equal(3, loaded.SequencePosition(), "exclusion keeps the rotation slot")

	loaded.Deactivate()
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, added.ID())
	suite.Require().NoError(err)
	suite.False(reloaded.IsActive())
	suite.False(reloaded.IsExcluded(), "deactivation clears exclusion")
}

func (suite *RepRepositoryIntegrationTestSuite) TestGetAllActiveOrdered_OrderAndFiltering() {
	ctx := context.Background()

	carol := suite.mustAdd("Carol", 2)
	alice := suite.mustAdd("Alice", 0)
	bob := suite.mustAdd("Bob", 1)

	bob.Exclude()
	suite.Require().NoError(suite.repository.Update(ctx, bob))

	gone := suite.mustAdd("Dave", 3)
	gone.Deactivate()
	suite.Require().NoError(suite.repository.Update(ctx, gone))

	reps, err := suite.repository.GetAllActiveOrdered(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(reps, 3, "inactive reps drop out, excluded ones stay")
	suite.Equal(alice.ID(), reps[0].ID())
	suite.Equal(bob.ID(), reps[1].ID())
	suite.True(reps[1].IsExcluded())
	suite.Equal(carol.ID(), reps[2].ID())
}

func TestRepRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RepRepositoryIntegrationTestSuite))
}
