// Package jobs provides scheduled background tasks for the ordering service.
//
// Jobs run on github.com/robfig/cron/v3 with second-level precision.
//
// # Available Jobs
//
// 1. KitchenBacklogJob - logs the confirmed orders and how many of them are not made yet
//
// # Usage
//
//	jobManager := jobs.NewJobManager(kitchenOrdersHandler, cfg.KitchenReportSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed report is logged and retried on the next tick. An invalid schedule
// fails StartAll.
package jobs
