package queries

import (
	"context"

	"canteen/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order with its item lines from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order read model or ObjectNotFoundError when no order
// with the given id exists.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_type,
			status,
			customer,
			contact_number,
			email,
			address,
			desired_at,
			archived,
			archived_at,
			total,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	resp, err := scanOrderRow(rows)
	if err != nil {
		return OrderResponse{}, err
	}
	rows.Close()

	itemRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			item_id,
			food_id,
			name,
			quantity,
			unit_price,
			line_total,
			notes
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, query.OrderID()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID int64
		item, scanErr := scanItemRow(itemRows, &orderID)
		if scanErr != nil {
			return OrderResponse{}, scanErr
		}
		resp.Items = append(resp.Items, item)
	}
	if err = itemRows.Err(); err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}
