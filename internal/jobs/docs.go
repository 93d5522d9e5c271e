// Package jobs provides scheduled background tasks for the canteen service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. IncomeReportJob - Runs every morning and logs the previous day's
// completed order count and revenue.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(incomeReportHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job failures are logged and the schedule keeps running; a missed report can
// always be re-read through the reports endpoint.
package jobs
