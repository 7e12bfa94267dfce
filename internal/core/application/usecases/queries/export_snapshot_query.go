package queries

import (
	"errors"
	"time"

	"tracker/internal/pkg/guard"
)

var ErrExportSnapshotQueryIsNotConstructed = errors.New(
	"ExportSnapshotQuery must be created via NewExportSnapshotQuery constructor",
)

// ExportSnapshotQuery retrieves every shipment as a flat record suitable for
// bulk serialization. The snapshot is a read-only projection of the unfiltered
// listing; it adds no state of its own.
type ExportSnapshotQuery struct {
	guard guard.ConstructorGuard
}

// NewExportSnapshotQuery creates a snapshot query over all shipments.
func NewExportSnapshotQuery() ExportSnapshotQuery {
	return ExportSnapshotQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ExportSnapshotQuery) Validate() error {
	return q.guard.Validate(ErrExportSnapshotQueryIsNotConstructed)
}

// ExportRecord is one flattened shipment in the snapshot, shaped for
// JSON-array output. Status is serialized as its string value; absent
// timestamps serialize as null.
type ExportRecord struct {
	ID                int64      `json:"id"`
	TrackingNumber    string     `json:"tracking_number"`
	Sender            string     `json:"sender"`
	Recipient         string     `json:"recipient"`
	Destination       string     `json:"destination"`
	WeightKg          float64    `json:"weight_kg"`
	Status            string     `json:"status"`
	EstimatedDelivery *time.Time `json:"estimated_delivery"`
	ActualDelivery    *time.Time `json:"actual_delivery"`
	Courier           string     `json:"courier"`
	Notes             string     `json:"notes"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
