package queries

import (
	"errors"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves one side of the order board: the active queue
// (archived = false) or the archive (archived = true). The two sets are
// disjoint, so paging through both queries never shows an order twice.
//
// Example:
//
//	query := NewGetOrdersQuery(false)
//	handler := NewGetOrdersQueryHandler(db)
//
//	active, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active orders: %w", err)
//	}
//
//	fmt.Printf("%d orders in the active queue\n", len(active))
type GetOrdersQuery struct {
	archived bool

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for the active queue or, with
// archived = true, for the archive.
func NewGetOrdersQuery(archived bool) GetOrdersQuery {
	return GetOrdersQuery{
		archived: archived,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Archived reports which side of the board the query targets.
func (q GetOrdersQuery) Archived() bool {
	return q.archived
}

// OrderItemResponse is one priced line of an order read model.
type OrderItemResponse struct {
	ID        int64
	FoodID    *int64
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
	Notes     string
}

// OrderResponse is the full order read model served to the storefront and
// the admin board. Money fields carry the persisted values; the repository
// re-derives totals on every write, so these are always consistent.
type OrderResponse struct {
	ID            int64
	DisplayID     string
	OrderType     kernel.OrderType
	Status        order.Status
	Customer      string
	ContactNumber string
	Email         string
	Address       string
	DesiredAt     *time.Time
	Archived      bool
	ArchivedAt    *time.Time
	Total         decimal.Decimal
	CreatedAt     time.Time
	Items         []OrderItemResponse
}
