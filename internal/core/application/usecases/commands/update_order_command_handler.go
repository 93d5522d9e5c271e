package commands

import (
	"context"

	"canteen/internal/core/domain/model/food"
	"canteen/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler handles admin edits: contact-field patches and
// item-list synchronization. The reconciled item rows, the re-derived total
// and any food catalog upserts commit in a single transaction, so a caller
// either sees the full edit or none of it.
type UpdateOrderCommandHandler struct {
	uowFactory EditOrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order edits.
func NewUpdateOrderCommandHandler(uowFactory EditOrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the contact patch and/or the item
// synchronization, applies resulting catalog upserts and persists everything
// atomically. Edits of ACCEPTED/COMPLETED orders are rejected by the
// aggregate before any write happens.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	if err = aggregate.PatchContact(cmd.Patch()); err != nil {
		return nil, err
	}

	if cmd.HasItems() {
		upserts, syncErr := aggregate.SyncItems(cmd.Items())
		if syncErr != nil {
			return nil, syncErr
		}

		foodRepo := uow.FoodRepository()
		for _, upsert := range upserts {
			entry, foodErr := food.NewFood(upsert.FoodID, upsert.Name, upsert.Price)
			if foodErr != nil {
				return nil, foodErr
			}
			if foodErr = foodRepo.Upsert(ctx, entry); foodErr != nil {
				return nil, foodErr
			}
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
