package commands

import (
	"errors"

	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents an admin edit of an order: a partial update
// of the contact fields, an item-list reconciliation, or both. A nil item
// list leaves the items untouched; an empty one is rejected by the
// aggregate.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  int64
	patch    order.ContactPatch
	items    []order.ItemSpec
	hasItems bool

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to edit an order. items carries the
// full target item list when non-nil; hasItems distinguishes "no item edit"
// from "empty target list" so the latter still reaches the aggregate's
// validation.
func NewUpdateOrderCommand(orderID int64, patch order.ContactPatch, items []order.ItemSpec, hasItems bool) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if orderID <= 0 {
		return UpdateOrderCommand{}, errs.NewValueIsInvalidError("order id")
	}

	cmd.orderID = orderID
	cmd.patch = patch
	cmd.items = items
	cmd.hasItems = hasItems
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UpdateOrderCommand) OrderID() int64 {
	return c.orderID
}

// Patch returns the partial contact update.
func (c UpdateOrderCommand) Patch() order.ContactPatch {
	return c.patch
}

// Items returns the target item list for synchronization.
func (c UpdateOrderCommand) Items() []order.ItemSpec {
	return c.items
}

// HasItems reports whether the request included an item list at all.
func (c UpdateOrderCommand) HasItems() bool {
	return c.hasItems
}
