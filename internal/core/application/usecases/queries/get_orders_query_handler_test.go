package queries_test

import (
	"context"
	"testing"
	"time"

	"canteen/internal/adapters/out/postgres/foodrepo"
	"canteen/internal/adapters/out/postgres/orderrepo"
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repository's tracker dependency in query tests.
type noopTracker struct{}

func (noopTracker) TrackAggregate(int64, any) {}

type GetOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrdersQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}, &foodrepo.FoodDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, noopTracker{})
}

func (suite *GetOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items, foods").Error)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.handler.Handle(context.Background(), queries.NewGetOrdersQuery(false))

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_SplitsActiveAndArchive() {
	ctx := context.Background()

	suite.seedOrder(1, kernel.Delivery)
	accepted := suite.seedOrder(2, kernel.Pickup)
	suite.Require().NoError(accepted.Accept(time.Now()))
	suite.Require().NoError(suite.orderRepo.Update(ctx, accepted))
	cancelled := suite.seedOrder(3, kernel.Pickup)
	suite.Require().NoError(cancelled.Cancel(time.Now()))
	suite.Require().NoError(suite.orderRepo.Update(ctx, cancelled))

	activeBoard, err := suite.handler.Handle(ctx, queries.NewGetOrdersQuery(false))
	suite.Require().NoError(err)
	suite.Require().Len(activeBoard, 2)

	archive, err := suite.handler.Handle(ctx, queries.NewGetOrdersQuery(true))
	suite.Require().NoError(err)
	suite.Require().Len(archive, 1)
	suite.Equal(cancelled.ID(), archive[0].ID)
	suite.Equal(order.Cancelled, archive[0].Status)
	suite.True(archive[0].Archived)
	suite.NotNil(archive[0].ArchivedAt)

	// no order appears on both sides
	seen := map[int64]bool{}
	for _, r := range activeBoard {
		seen[r.ID] = true
	}
	suite.False(seen[archive[0].ID])
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_NewestFirstWithItemsInDisplayOrder() {
	ctx := context.Background()

	suite.seedOrder(10, kernel.Delivery)
	suite.seedOrder(11, kernel.Delivery)

	result, err := suite.handler.Handle(ctx, queries.NewGetOrdersQuery(false))
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal(int64(11), result[0].ID)
	suite.Equal("ORD000011", result[0].DisplayID)
	suite.Equal(int64(10), result[1].ID)

	suite.Require().Len(result[0].Items, 2)
	suite.Equal("Fried Rice", result[0].Items[0].Name)
	suite.Equal("Iced Tea", result[0].Items[1].Name)
	suite.True(result[0].Items[0].LineTotal.Equal(decimal.NewFromInt(100)))
	suite.True(result[0].Total.Equal(decimal.NewFromInt(145)))
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := suite.handler.Handle(context.Background(), queries.GetOrdersQuery{})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetOrdersQuery constructor")
}

func (suite *GetOrdersQueryHandlerTestSuite) seedOrder(id int64, orderType kernel.OrderType) *order.Order {
	items := []order.ItemSpec{
		{Name: "Fried Rice", Quantity: 2, UnitPrice: decimal.NewFromInt(50)},
		{Name: "Iced Tea", Quantity: 1, UnitPrice: decimal.NewFromInt(30)},
	}

	o, err := order.NewOrder(id, order.Contact{Customer: "Ada"}, orderType, items, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func TestGetOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrdersQueryHandlerTestSuite))
}
