package commands

import (
	"context"

	"canteen/internal/core/domain/model/order"
)

// RestoreOrderCommandHandler returns archived orders to the active queue.
// Restore is silent: no notification is recorded or dispatched.
type RestoreOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRestoreOrderCommandHandler creates a handler for order restoration.
func NewRestoreOrderCommandHandler(uowFactory OrderUoWFactory) RestoreOrderCommandHandler {
	return RestoreOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle restores an archived order to PENDING with cleared archival flags.
// Restoring an order that is not archived fails with StateConflictError.
func (h *RestoreOrderCommandHandler) Handle(ctx context.Context, cmd RestoreOrderCommand) (*order.Order, error) {
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

	if err = aggregate.Restore(); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
