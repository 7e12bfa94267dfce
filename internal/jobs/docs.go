// Package jobs provides scheduled background tasks for the tracker.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// The only job today is SnapshotExportJob, which periodically writes the full
// shipment snapshot to a JSON file while the tool runs in watch mode.
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(exportHandler, exportPath, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// Export failures are logged and retried on the next tick; a broken export
// never stops the schedule.
package jobs
