package commands

import (
	"errors"

	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrRemoveOrderCommandIsNotConstructed = errors.New(
	"RemoveOrderCommand must be created via NewRemoveOrderCommand constructor",
)

// RemoveOrderCommand represents the permanent-delete action, reserved for
// orders that are already archived. The order and its items are removed
// irrecoverably.
type RemoveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewRemoveOrderCommand creates a command to permanently delete an order.
func NewRemoveOrderCommand(orderID int64) (RemoveOrderCommand, error) {
	if orderID <= 0 {
		return RemoveOrderCommand{}, errs.NewValueIsInvalidError("order id")
	}

	return RemoveOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c RemoveOrderCommand) OrderID() int64 {
	return c.orderID
}
