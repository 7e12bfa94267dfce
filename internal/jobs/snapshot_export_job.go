package jobs

import (
	"context"
	"log/slog"

	"tracker/internal/adapters/in/cli"
	"tracker/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// SnapshotExportJob periodically writes the full shipment snapshot to a JSON
// file. It backs the watch subcommand, keeping an on-disk export current while
// the process runs.
type SnapshotExportJob struct {
	handler  queries.ExportSnapshotQueryHandler
	path     string
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSnapshotExportJob creates a job that exports the snapshot to path on the
// given cron schedule (with a seconds field, e.g. "0 * * * * *" for every minute).
func NewSnapshotExportJob(
	handler queries.ExportSnapshotQueryHandler,
	path string,
	schedule string,
	logger *slog.Logger,
) *SnapshotExportJob {
	return &SnapshotExportJob{
		handler:  handler,
		path:     path,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "snapshot_export_job"),
	}
}

// Start begins the scheduled exports. An export failure is logged and retried
// on the next tick.
func (j *SnapshotExportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		records, err := j.handler.Handle(ctx, queries.NewExportSnapshotQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Snapshot export failed", "error", err)
			return
		}

		if err := cli.WriteSnapshot(j.path, records); err != nil {
			j.logger.ErrorContext(ctx, "Snapshot write failed", "error", err, "path", j.path)
			return
		}

		j.logger.InfoContext(ctx, "Snapshot exported", "records", len(records), "path", j.path)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Snapshot export job started",
		"schedule", j.schedule, "path", j.path)
	return nil
}

// Stop stops the scheduled exports.
func (j *SnapshotExportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Snapshot export job stopped")
}
