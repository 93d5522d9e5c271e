package commands

import (
	"errors"

	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrRestoreOrderCommandIsNotConstructed = errors.New(
	"RestoreOrderCommand must be created via NewRestoreOrderCommand constructor",
)

// RestoreOrderCommand represents the administrative un-archive action:
// an archived order returns to the active queue in PENDING status.
type RestoreOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewRestoreOrderCommand creates a command to restore an archived order.
func NewRestoreOrderCommand(orderID int64) (RestoreOrderCommand, error) {
	if orderID <= 0 {
		return RestoreOrderCommand{}, errs.NewValueIsInvalidError("order id")
	}

	return RestoreOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RestoreOrderCommand) Validate() error {
	return c.guard.Validate(ErrRestoreOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c RestoreOrderCommand) OrderID() int64 {
	return c.orderID
}
