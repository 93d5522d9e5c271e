package queries

import (
	"context"

	"canteen/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetIncomeReportQueryHandler computes the per-day revenue rows in the
// database. An order counts towards the day it was completed, which is the
// archival timestamp for COMPLETED orders.
type GetIncomeReportQueryHandler struct {
	db *gorm.DB
}

// NewGetIncomeReportQueryHandler creates a handler for income report queries.
func NewGetIncomeReportQueryHandler(db *gorm.DB) GetIncomeReportQueryHandler {
	return GetIncomeReportQueryHandler{db: db}
}

// Handle returns one row per day that had at least one completed order in the
// range, oldest day first. Days without completed orders produce no row.
func (h GetIncomeReportQueryHandler) Handle(
	ctx context.Context,
	query GetIncomeReportQuery,
) ([]IncomeReportRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	report := make([]IncomeReportRow, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			date_trunc('day', archived_at) AS day,
			count(*) AS orders,
			sum(total) AS income
		FROM orders
		WHERE status = ?
		  AND archived_at >= ?
		  AND archived_at < ? + interval '1 day'
		GROUP BY day
		ORDER BY day
	`, order.Completed.String(), query.From(), query.To()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row IncomeReportRow
		if err = rows.Scan(&row.Day, &row.Orders, &row.Income); err != nil {
			return nil, err
		}
		report = append(report, row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return report, nil
}
