package jobs

import (
	"context"
	"log/slog"
	"time"

	"canteen/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
)

// IncomeReportJob logs yesterday's completed order count and revenue every
// morning at 06:00, giving operators a daily summary without opening the
// admin board.
type IncomeReportJob struct {
	handler queries.GetIncomeReportQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewIncomeReportJob creates the daily income summary job.
func NewIncomeReportJob(handler queries.GetIncomeReportQueryHandler, logger *slog.Logger) *IncomeReportJob {
	return &IncomeReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "income_report_job"),
	}
}

// Start schedules the job for 06:00 every day.
func (j *IncomeReportJob) Start() error {
	_, err := j.cron.AddFunc("0 0 6 * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Income report job started (running daily at 06:00)")
	return nil
}

// Stop stops the income report job.
func (j *IncomeReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Income report job stopped")
}

func (j *IncomeReportJob) run() {
	ctx := context.Background()
	yesterday := time.Now().AddDate(0, 0, -1)

	query, err := queries.NewGetIncomeReportQuery(yesterday, yesterday)
	if err != nil {
		j.logger.ErrorContext(ctx, "Income report job failed to build query", "error", err)
		return
	}

	report, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Income report job failed", "error", err)
		return
	}

	var orders int64
	income := decimal.Zero
	for _, row := range report {
		orders += row.Orders
		income = income.Add(row.Income)
	}

	j.logger.InfoContext(ctx, "Daily income report",
		"day", yesterday.Format("2006-01-02"),
		"completed_orders", orders,
		"income", income.StringFixed(2),
	)
}
