package commands

import (
	"context"
	"time"

	"canteen/internal/core/domain/model/order"
)

// CancelOrderCommandHandler handles the soft-delete path: the order moves to
// CANCELLED, is archived, and the cancellation email goes out after commit.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher NotificationDispatcher
}

// NewCancelOrderCommandHandler creates a handler for order soft deletion.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, dispatcher NotificationDispatcher) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle cancels a pending order. Deleting an ACCEPTED or COMPLETED order
// fails with StateConflictError before any write.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.SoftDelete(time.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.dispatcher.Dispatch(ctx, aggregate.PopNotifications())
	return aggregate, nil
}
