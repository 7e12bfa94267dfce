package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"tracker/internal/core/application/usecases/queries"
)

// Export writes the full shipment snapshot to path as an indented JSON array
// and prints the record count. An empty store exports as [].
func (a *App) Export(ctx context.Context, path string) error {
	records, err := a.exportSnapshotHandler.Handle(ctx, queries.NewExportSnapshotQuery())
	if err != nil {
		return err
	}

	if err := WriteSnapshot(path, records); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s✓ Exported %d shipments → %s%s\n", green, len(records), path, reset)
	return nil
}

// WriteSnapshot serializes export records to path as an indented JSON array.
// Shared by the export subcommand and the scheduled export job.
func WriteSnapshot(path string, records []queries.ExportRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	return os.WriteFile(path, data, 0o644)
}
