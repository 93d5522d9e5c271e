package queries

import (
	"context"
	"database/sql"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler reads the order board straight from the database,
// bypassing the aggregate. The write side keeps the persisted totals in sync
// with the item rows, so the read model needs no re-pricing.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(db)
//	query := NewGetOrdersQuery(true)
//
//	archive, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get archived orders: %v", err)
//	    return err
//	}
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order board queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle returns the requested side of the board, newest orders first, each
// with its item lines in display order.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0)

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
		WHERE archived = ?
		ORDER BY id DESC
	`, query.Archived()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	index := make(map[int64]int)
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		index[resp.ID] = len(orders)
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	itemRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.order_id,
			i.item_id,
			i.food_id,
			i.name,
			i.quantity,
			i.unit_price,
			i.line_total,
			i.notes
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE o.archived = ?
		ORDER BY i.order_id, i.position
	`, query.Archived()).Rows()
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID int64
		item, scanErr := scanItemRow(itemRows, &orderID)
		if scanErr != nil {
			return nil, scanErr
		}
		if pos, ok := index[orderID]; ok {
			orders[pos].Items = append(orders[pos].Items, item)
		}
	}
	if err = itemRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// scanOrderRow maps one orders row onto the read model, converting the stored
// status and order type strings back into their domain values.
func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var (
		resp       OrderResponse
		orderType  string
		status     string
		desiredAt  sql.NullTime
		archivedAt sql.NullTime
		total      decimal.Decimal
	)

	err := rows.Scan(
		&resp.ID,
		&orderType,
		&status,
		&resp.Customer,
		&resp.ContactNumber,
		&resp.Email,
		&resp.Address,
		&desiredAt,
		&resp.Archived,
		&archivedAt,
		&total,
		&resp.CreatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	resp.OrderType, err = kernel.OrderTypeFromString(orderType)
	if err != nil {
		return OrderResponse{}, err
	}
	resp.Status, err = order.StatusFromString(status)
	if err != nil {
		return OrderResponse{}, err
	}
	resp.DisplayID = displayID(resp.ID)
	resp.Total = total
	resp.DesiredAt = nullableTime(desiredAt)
	resp.ArchivedAt = nullableTime(archivedAt)
	return resp, nil
}

func scanItemRow(rows *sql.Rows, orderID *int64) (OrderItemResponse, error) {
	var (
		item   OrderItemResponse
		foodID sql.NullInt64
	)

	err := rows.Scan(
		orderID,
		&item.ID,
		&foodID,
		&item.Name,
		&item.Quantity,
		&item.UnitPrice,
		&item.LineTotal,
		&item.Notes,
	)
	if err != nil {
		return OrderItemResponse{}, err
	}

	if foodID.Valid {
		item.FoodID = &foodID.Int64
	}
	return item, nil
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time
	return &value
}
