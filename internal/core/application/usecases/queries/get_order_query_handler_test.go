package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GetOrderQueryHandlerIntegrationTestSuite provides integration tests for the
// order read model using PostgreSQL containers.
type GetOrderQueryHandlerIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderQueryHandler
}

func (suite *GetOrderQueryHandlerIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *GetOrderQueryHandlerIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_items, orders").Error
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderQueryHandler(suite.db)
}

func (suite *GetOrderQueryHandlerIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrderQueryHandlerIntegrationTestSuite) TestHandle_ReturnsFullReadModel() {
	orderID := uuid.New()
	assignedTo := uuid.New()
	agentID := uuid.New()
	productA := uuid.New()
	productB := uuid.New()
	confirmedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	err := suite.db.Create(&orderrepo.OrderDTO{
		ID:          orderID,
		AssignedTo:  assignedTo,
		AgentID:     &agentID,
		Status:      "Confirmed",
		Currency:    "USD",
		TotalAmount: decimal.NewFromInt(300),
		ConfirmedAt: &confirmedAt,
		AuditNotes:  pq.StringArray{"New -> Confirmed: customer called back"},
		Version:     1,
		CreatedAt:   time.Now().UTC(),
		Items: []orderrepo.OrderItemDTO{
			{OrderID: orderID, ProductID: productA, Quantity: 2, Price: decimal.NewFromInt(100), Cost: decimal.NewFromInt(60)},
			{OrderID: orderID, ProductID: productB, Quantity: 1, Price: decimal.NewFromInt(100), Cost: decimal.NewFromInt(70)},
		},
	}).Error
	suite.Require().NoError(err)

	id, err := kernel.UUIDFromBytes(orderID[:])
	suite.Require().NoError(err)
	query, err := queries.NewGetOrderQuery(id)
	suite.Require().NoError(err)

	response, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(orderID, response.ID.Bytes())
	suite.Equal(assignedTo, response.AssignedTo.Bytes())
	suite.Require().NotNil(response.AgentID)
	suite.Equal(agentID, response.AgentID.Bytes())
	suite.Equal("Confirmed", response.Status)
	suite.Equal("USD", response.Currency)
	suite.True(decimal.NewFromInt(300).Equal(response.TotalAmount))
	suite.Require().NotNil(response.ConfirmedAt)
	suite.True(confirmedAt.Equal(*response.ConfirmedAt))
	suite.Nil(response.DeliveredAt)
	suite.Equal([]string{"New -> Confirmed: customer called back"}, response.AuditNotes)
	suite.Positive(response.Number)
	suite.Len(response.Items, 2)
}

func (suite *GetOrderQueryHandlerIntegrationTestSuite) TestHandle_ItemsOrderedByProduct() {
	orderID := uuid.New()

	err := suite.db.Create(&orderrepo.OrderDTO{
		ID:          orderID,
		AssignedTo:  uuid.New(),
		Status:      "New",
		Currency:    "USD",
		TotalAmount: decimal.NewFromInt(50),
		CreatedAt:   time.Now().UTC(),
		Items: []orderrepo.OrderItemDTO{
			{OrderID: orderID, ProductID: uuid.New(), Quantity: 1, Price: decimal.NewFromInt(30), Cost: decimal.NewFromInt(20)},
			{OrderID: orderID, ProductID: uuid.New(), Quantity: 2, Price: decimal.NewFromInt(10), Cost: decimal.NewFromInt(5)},
		},
	}).Error
	suite.Require().NoError(err)

	id, err := kernel.UUIDFromBytes(orderID[:])
	suite.Require().NoError(err)
	query, err := queries.NewGetOrderQuery(id)
	suite.Require().NoError(err)

	response, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(response.Items, 2)
	suite.True(response.Items[0].ProductID.String() < response.Items[1].ProductID.String())
}

func (suite *GetOrderQueryHandlerIntegrationTestSuite) TestHandle_NilAgentStaysNil() {
	orderID := uuid.New()

	err := suite.db.Create(&orderrepo.OrderDTO{
		ID:          orderID,
		AssignedTo:  uuid.New(),
		Status:      "New",
		Currency:    "USD",
		TotalAmount: decimal.NewFromInt(10),
		CreatedAt:   time.Now().UTC(),
	}).Error
	suite.Require().NoError(err)

	id, err := kernel.UUIDFromBytes(orderID[:])
	suite.Require().NoError(err)
	query, err := queries.NewGetOrderQuery(id)
	suite.Require().NoError(err)

	response, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Nil(response.AgentID)
	suite.Empty(response.Items)
}

func (suite *GetOrderQueryHandlerIntegrationTestSuite) TestHandle_NotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestGetOrderQueryHandlerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerIntegrationTestSuite))
}
