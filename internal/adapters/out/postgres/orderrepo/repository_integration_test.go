package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"canteen/internal/adapters/out/postgres/orderrepo"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"

	"github.com/shopspring/decimal"
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

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers to verify persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(1)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.assertItemCount(2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTrips() {
	ctx := context.Background()

	original := suite.createTestOrder(2)
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, 2)
	suite.Require().NoError(err)

	suite.Equal(int64(2), retrieved.ID())
	suite.Equal("ORD000002", retrieved.DisplayID())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Equal(kernel.Delivery, retrieved.OrderType())
	suite.Equal("Ada", retrieved.Customer())
	suite.Equal("ada@example.com", retrieved.Email())
	suite.False(retrieved.Archived())
	suite.Require().Len(retrieved.Items(), 2)

	// 2*50 + 1*30 + 15 delivery fee
	suite.True(retrieved.Total().Equal(decimal.NewFromInt(145)),
		"expected total 145, got %s", retrieved.Total())

	// item order and line totals survive the round trip
	first := retrieved.Items()[0]
	suite.Equal("Fried Rice", first.Name())
	suite.True(first.LineTotal().Equal(decimal.NewFromInt(100)))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, 9999)

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ItemSync_ReplacesItemRows() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(3)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// drop the second line and add a new one referencing the catalog
	foodID := int64(99)
	keep := testOrder.Items()[0]
	_, err := testOrder.SyncItems([]order.ItemSpec{
		{ID: ptrOf(keep.ID()), Name: keep.Name(), Quantity: keep.Quantity(), UnitPrice: keep.UnitPrice()},
		{FoodID: &foodID, Name: "Dumplings", Quantity: 1, UnitPrice: decimal.NewFromInt(45)},
	})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, 3)
	suite.Require().NoError(err)
	suite.Require().Len(retrieved.Items(), 2)
	suite.Equal("Dumplings", retrieved.Items()[1].Name())
	suite.Require().NotNil(retrieved.Items()[1].FoodID())
	suite.Equal(foodID, *retrieved.Items()[1].FoodID())
	// 2*50 + 1*45 + 15 delivery fee
	suite.True(retrieved.Total().Equal(decimal.NewFromInt(160)),
		"expected total 160, got %s", retrieved.Total())

	suite.assertItemCount(2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_RestoreClearsArchivalFlags() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(4)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Cancel(time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	archived, err := suite.repository.Get(ctx, 4)
	suite.Require().NoError(err)
	suite.True(archived.Archived())
	suite.NotNil(archived.ArchivedAt())
	suite.Equal(order.Cancelled, archived.Status())

	// restore writes the zero values back
	suite.Require().NoError(testOrder.Restore())
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, 4)
	suite.Require().NoError(err)
	suite.Equal(order.Pending, restored.Status())
	suite.False(restored.Archived())
	suite.Nil(restored.ArchivedAt())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	ghost := suite.createTestOrder(5)
	err := suite.repository.Update(ctx, ghost)
	suite.Require().Error(err)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestRemove_DeletesOrderAndItems() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(6)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(suite.repository.Remove(ctx, 6))

	suite.assertOrderCount(0)
	suite.assertItemCount(0)

	err := suite.repository.Remove(ctx, 6)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

// createTestOrder creates a pending delivery order with two item lines.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(id int64) *order.Order {
	contact := order.Contact{Customer: "Ada", Email: "ada@example.com"}
	items := []order.ItemSpec{
		{Name: "Fried Rice", Quantity: 2, UnitPrice: decimal.NewFromInt(50)},
		{Name: "Iced Tea", Quantity: 1, UnitPrice: decimal.NewFromInt(30)},
	}

	testOrder, err := order.NewOrder(id, contact, kernel.Delivery, items, time.Now())
	suite.Require().NoError(err)
	testOrder.PopNotifications()
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func (suite *OrderRepositoryIntegrationTestSuite) assertItemCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.ItemDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func ptrOf[T any](v T) *T {
	return &v
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
