package commands

import (
	"errors"

	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents an admin request to move an order to a
// target status. The legal-transition table is enforced by the aggregate.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	target  order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to apply a status transition.
func NewChangeOrderStatusCommand(orderID int64, target order.Status) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if orderID <= 0 {
		return ChangeOrderStatusCommand{}, errs.NewValueIsInvalidError("order id")
	}
	if err := target.Validate(); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	cmd.orderID = orderID
	cmd.target = target
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ChangeOrderStatusCommand) OrderID() int64 {
	return c.orderID
}

// Target returns the requested status.
func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}
