package commands_test

import (
	"context"
	"errors"
	"testing"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/domain/model/food"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"
	"canteen/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEditOrderRepository struct{ mock.Mock }

func (m *MockEditOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockEditOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockEditOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockEditOrderRepository) Remove(_ context.Context, _ int64) error {
	return errors.New("not implemented in mock")
}

type MockEditFoodRepository struct{ mock.Mock }

func (m *MockEditFoodRepository) Upsert(ctx context.Context, entry *food.Food) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockEditUoW struct{ mock.Mock }

func (m *MockEditUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockEditUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockEditUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEditUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockEditUoW) FoodRepository() ports.FoodRepository {
	args := m.Called()
	return args.Get(0).(ports.FoodRepository)
}

type MockEditUoWFactory struct{ mock.Mock }

func (m *MockEditUoWFactory) Create() commands.EditOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.EditOrderUoW)
}

func TestUpdateOrderCommandHandler_Handle_ContactPatch(t *testing.T) {
	ctx := t.Context()
	patch := order.ContactPatch{Customer: ptrOf("Grace")}
	cmd, _ := commands.NewUpdateOrderCommand(3, patch, nil, false)

	stored := pendingOrder(t, 3)
	repo := new(MockEditOrderRepository)
	uow := new(MockEditUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(3)).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEditUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "Grace", updated.Customer())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	uow.AssertNotCalled(t, "FoodRepository")
}

func TestUpdateOrderCommandHandler_Handle_ItemSyncWithCatalogUpsert(t *testing.T) {
	ctx := t.Context()

	stored := pendingOrder(t, 8)
	existing := stored.Items()[0]
	target := []order.ItemSpec{
		{ID: ptrOf(existing.ID()), Name: existing.Name(), Quantity: 3, UnitPrice: existing.UnitPrice()},
		{FoodID: ptrOf(int64(99)), Name: "Dumplings", Quantity: 1, UnitPrice: decimal.NewFromInt(45)},
	}
	cmd, _ := commands.NewUpdateOrderCommand(8, order.ContactPatch{}, target, true)

	repo := new(MockEditOrderRepository)
	foods := new(MockEditFoodRepository)
	uow := new(MockEditUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(8)).Return(stored, nil).Once(),
		uow.On("FoodRepository").Return(foods).Once(),
		foods.On("Upsert", mock.Anything, mock.AnythingOfType("*food.Food")).Return(nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEditUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, updated.Items(), 2)
	repo.AssertExpectations(t)
	foods.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_RejectsAcceptedOrder(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewUpdateOrderCommand(9, order.ContactPatch{Customer: ptrOf("Eve")}, nil, false)

	stored := pendingOrder(t, 9)
	require.NoError(t, stored.Accept(stored.CreatedAt()))

	repo := new(MockEditOrderRepository)
	uow := new(MockEditUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(9)).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEditUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrStateConflict)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func ptrOf[T any](v T) *T {
	return &v
}
