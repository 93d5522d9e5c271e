package commands_test

import (
	"testing"
	"time"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRemoveOrderCommandHandler_Handle_ArchivedOrder(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRemoveOrderCommand(21)

	stored := pendingOrder(t, 21)
	require.NoError(t, stored.Cancel(time.Now()))

	repo := new(MockStatusOrderRepository)
	uow := new(MockStatusUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(21)).Return(stored, nil).Once(),
		repo.On("Remove", mock.Anything, int64(21)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRemoveOrderCommandHandler_Handle_ActiveOrderConflict(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRemoveOrderCommand(22)

	stored := pendingOrder(t, 22)
	repo := new(MockStatusOrderRepository)
	uow := new(MockStatusUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(22)).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrStateConflict)
	repo.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}
