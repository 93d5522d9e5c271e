package commands

import (
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a storefront request to place a new order:
// contact metadata, the order type and the cart lines to be priced.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	contact   order.Contact
	orderType kernel.OrderType
	items     []order.ItemSpec

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// The order type must be valid and the cart must contain at least one line;
// per-line validation happens in the aggregate.
func NewCreateOrderCommand(contact order.Contact, orderType kernel.OrderType, items []order.ItemSpec) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderType.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	if len(items) == 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("items")
	}

	cmd.contact = contact
	cmd.orderType = orderType
	cmd.items = items
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Contact returns the customer metadata captured with the order.
func (c CreateOrderCommand) Contact() order.Contact {
	return c.contact
}

// OrderType returns how the customer wants to receive the order.
func (c CreateOrderCommand) OrderType() kernel.OrderType {
	return c.orderType
}

// Items returns the cart lines.
func (c CreateOrderCommand) Items() []order.ItemSpec {
	return c.items
}
