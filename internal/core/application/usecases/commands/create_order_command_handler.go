package commands

import (
	"context"
	"time"

	"canteen/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles order creation. It draws the next order
// id from the shared counter and persists the priced aggregate in the same
// transaction, then dispatches the confirmation notification after commit.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	dispatcher NotificationDispatcher
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory, dispatcher NotificationDispatcher) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the order creation command and returns the created order.
// The counter increment and the order insert commit together, so ids are
// strictly increasing and never reused. The confirmation email, if any, is
// dispatched only after the order is durable.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	id, err := uow.CounterRepository().Next(ctx, "orders")
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(id, cmd.Contact(), cmd.OrderType(), cmd.Items(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.dispatcher.Dispatch(ctx, newOrder.PopNotifications())
	return newOrder, nil
}
