package queries_test

import (
	"testing"
	"time"

	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetIncomeReportQuery_ValidRange(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	query, err := queries.NewGetIncomeReportQuery(from, to)
	require.NoError(t, err)
	assert.Equal(t, from, query.From())
	assert.Equal(t, to, query.To())
}

func TestNewGetIncomeReportQuery_SingleDayRange(t *testing.T) {
	day := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	_, err := queries.NewGetIncomeReportQuery(day, day)
	require.NoError(t, err)
}

func TestNewGetIncomeReportQuery_MissingBounds(t *testing.T) {
	_, err := queries.NewGetIncomeReportQuery(time.Time{}, time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewGetIncomeReportQuery_InvertedRange(t *testing.T) {
	from := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	_, err := queries.NewGetIncomeReportQuery(from, to)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetIncomeReportQuery_Validate_ZeroValue(t *testing.T) {
	query := queries.GetIncomeReportQuery{}
	require.ErrorIs(t, query.Validate(), queries.ErrGetIncomeReportQueryIsNotConstructed)
}

func TestNewGetOrderQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
