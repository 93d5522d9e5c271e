package ports

import (
	"context"

	"canteen/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations persist the order together with its item list in one
// transaction, so item synchronization is atomic from the caller's
// perspective.
type OrderRepository interface {
	// Add persists a new order aggregate and its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order, reconciling the stored
	// item rows with the aggregate's current item list.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its numeric identifier.
	// Returns ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// Remove permanently deletes the order and its items. Used only by the
	// permanent-delete path on already-archived orders.
	Remove(ctx context.Context, id int64) error
}
