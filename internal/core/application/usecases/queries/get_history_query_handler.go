package queries

import (
	"context"

	"tracker/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// GetHistoryQueryHandler retrieves a shipment's audit trail in chronological
// (timestamp ascending) order. Uses direct SQL with a join on the owning
// shipment so an unknown tracking number simply yields no rows.
type GetHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetHistoryQueryHandler creates a handler for history retrieval.
func NewGetHistoryQueryHandler(db *gorm.DB) GetHistoryQueryHandler {
	return GetHistoryQueryHandler{db: db}
}

// Handle executes the history query. Returns an empty slice when the shipment
// does not exist; reads never fail on missing records.
func (h GetHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetHistoryQuery,
) ([]TrackingEventResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			e.id,
			e.shipment_id,
			e.status,
			e.location,
			e.message,
			e.timestamp
		FROM tracking_events e
		JOIN shipments s ON s.id = e.shipment_id
		WHERE s.tracking_number = ?
		ORDER BY e.timestamp, e.id
	`, query.TrackingNumber().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]TrackingEventResponse, 0)
	for rows.Next() {
		var (
			event  TrackingEventResponse
			status string
		)

		if err = rows.Scan(
			&event.ID,
			&event.ShipmentID,
			&status,
			&event.Location,
			&event.Message,
			&event.Timestamp,
		); err != nil {
			return nil, err
		}

		parsed, parseErr := shipment.StatusFromString(status)
		if parseErr != nil {
			return nil, parseErr
		}
		event.Status = parsed

		events = append(events, event)
	}

	return events, rows.Err()
}
