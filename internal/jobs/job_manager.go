package jobs

import (
	"fmt"
	"log/slog"

	"tracker/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	snapshotExportJob *SnapshotExportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	exportHandler queries.ExportSnapshotQueryHandler,
	exportPath string,
	exportSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		snapshotExportJob: NewSnapshotExportJob(exportHandler, exportPath, exportSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.snapshotExportJob.Start(); err != nil {
		return fmt.Errorf("failed to start snapshot export job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.snapshotExportJob.Stop()
}
