package queries

import (
	"errors"

	"canteen/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetFoodsQueryIsNotConstructed = errors.New(
	"GetFoodsQuery must be created via NewGetFoodsQuery constructor",
)

// GetFoodsQuery retrieves the food catalog. The catalog grows as orders
// reference new food ids, and each entry carries the latest price an order
// actually used.
type GetFoodsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFoodsQuery creates a parameterless query for the whole catalog.
func NewGetFoodsQuery() GetFoodsQuery {
	return GetFoodsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetFoodsQuery) Validate() error {
	return q.guard.Validate(ErrGetFoodsQueryIsNotConstructed)
}

// FoodResponse is one catalog entry.
type FoodResponse struct {
	ID    int64
	Name  string
	Price decimal.Decimal
}
