package queries

import (
	"context"
)

// ExportSnapshotQueryHandler produces the bulk export projection.
// Consumes the unfiltered shipment listing and flattens each read model
// into an ExportRecord.
type ExportSnapshotQueryHandler struct {
	listHandler ListShipmentsQueryHandler
}

// NewExportSnapshotQueryHandler creates a handler for snapshot exports.
func NewExportSnapshotQueryHandler(listHandler ListShipmentsQueryHandler) ExportSnapshotQueryHandler {
	return ExportSnapshotQueryHandler{listHandler: listHandler}
}

// Handle executes the snapshot query, returning one record per shipment in
// the listing's order (most recently updated first).
func (h ExportSnapshotQueryHandler) Handle(
	ctx context.Context,
	query ExportSnapshotQuery,
) ([]ExportRecord, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	listQuery, err := NewListShipmentsQuery(nil)
	if err != nil {
		return nil, err
	}

	shipments, err := h.listHandler.Handle(ctx, listQuery)
	if err != nil {
		return nil, err
	}

	records := make([]ExportRecord, 0, len(shipments))
	for _, s := range shipments {
		records = append(records, ExportRecord{
			ID:                s.ID,
			TrackingNumber:    s.TrackingNumber,
			Sender:            s.Sender,
			Recipient:         s.Recipient,
			Destination:       s.Destination,
			WeightKg:          s.WeightKg,
			Status:            s.Status.String(),
			EstimatedDelivery: s.EstimatedDelivery,
			ActualDelivery:    s.ActualDelivery,
			Courier:           s.Courier,
			Notes:             s.Notes,
			CreatedAt:         s.CreatedAt,
			UpdatedAt:         s.UpdatedAt,
		})
	}

	return records, nil
}
