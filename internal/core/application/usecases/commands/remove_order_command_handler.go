package commands

import (
	"context"
)

// RemoveOrderCommandHandler permanently deletes archived orders.
type RemoveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveOrderCommandHandler creates a handler for permanent deletion.
func NewRemoveOrderCommandHandler(uowFactory OrderUoWFactory) RemoveOrderCommandHandler {
	return RemoveOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the order and its items irrecoverably. Orders still in the
// active queue fail with StateConflictError; the counter never hands out the
// removed id again.
func (h *RemoveOrderCommandHandler) Handle(ctx context.Context, cmd RemoveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.EnsurePurgeable(); err != nil {
		return err
	}

	if err = orderRepo.Remove(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
