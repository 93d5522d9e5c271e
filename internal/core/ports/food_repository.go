package ports

import (
	"context"

	"canteen/internal/core/domain/model/food"
)

// FoodRepository defines the persistence contract for the food catalog.
type FoodRepository interface {
	// Upsert creates the catalog entry when absent, otherwise refreshes its
	// name and price. Item synchronization uses this to keep the menu in
	// line with the latest price used in an order.
	Upsert(ctx context.Context, entry *food.Food) error
}
