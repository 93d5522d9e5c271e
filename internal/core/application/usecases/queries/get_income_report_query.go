package queries

import (
	"errors"
	"time"

	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetIncomeReportQueryIsNotConstructed = errors.New(
	"GetIncomeReportQuery must be created via NewGetIncomeReportQuery constructor",
)

// GetIncomeReportQuery aggregates completed orders into per-day revenue rows
// over a closed date range. Cancelled and still-active orders never count as
// income.
//
// Example:
//
//	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
//	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
//	query, err := NewGetIncomeReportQuery(from, to)
//	if err != nil {
//	    return err
//	}
//
//	rows, err := NewGetIncomeReportQueryHandler(db).Handle(ctx, query)
type GetIncomeReportQuery struct {
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewGetIncomeReportQuery creates an income report query for [from, to].
// Both bounds are required and from must not be after to.
func NewGetIncomeReportQuery(from, to time.Time) (GetIncomeReportQuery, error) {
	if from.IsZero() || to.IsZero() {
		return GetIncomeReportQuery{}, errs.NewValueIsRequiredError("report range")
	}
	if from.After(to) {
		return GetIncomeReportQuery{}, errs.NewValueIsInvalidError("report range")
	}

	return GetIncomeReportQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetIncomeReportQuery) Validate() error {
	return q.guard.Validate(ErrGetIncomeReportQueryIsNotConstructed)
}

// From returns the inclusive lower bound of the range.
func (q GetIncomeReportQuery) From() time.Time {
	return q.from
}

// To returns the inclusive upper bound of the range.
func (q GetIncomeReportQuery) To() time.Time {
	return q.to
}

// IncomeReportRow is one day of completed order revenue.
type IncomeReportRow struct {
	Day    time.Time
	Orders int64
	Income decimal.Decimal
}
