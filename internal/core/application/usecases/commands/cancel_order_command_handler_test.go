package commands_test

import (
	"testing"
	"time"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_PendingOrder(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCancelOrderCommand(6)

	stored := pendingOrder(t, 6)
	repo := new(MockStatusOrderRepository)
	uow := new(MockStatusUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(6)).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDispatcher)
	dispatcher.On("Dispatch", mock.Anything, mock.AnythingOfType("[]order.Notification")).Once()

	h := commands.NewCancelOrderCommandHandler(factory, dispatcher)
	cancelled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Cancelled, cancelled.Status())
	require.True(t, cancelled.Archived())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_AcceptedOrderConflict(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCancelOrderCommand(7)

	stored := pendingOrder(t, 7)
	require.NoError(t, stored.Accept(time.Now()))

	repo := new(MockStatusOrderRepository)
	uow := new(MockStatusUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(7)).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, new(MockDispatcher))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrStateConflict)
	require.Equal(t, order.Accepted, stored.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestNewCancelOrderCommand_InvalidID(t *testing.T) {
	_, err := commands.NewCancelOrderCommand(0)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
