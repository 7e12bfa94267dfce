package ports

import (
	"context"

	"tracker/internal/core/domain/model/shipment"
)

// TrackingEventRepository defines the persistence contract for the append-only
// audit trail. Events are only ever inserted and read; there is no update or
// delete operation.
type TrackingEventRepository interface {
	// Add appends an event to the owning shipment's history and assigns its
	// storage identifier back to the entity.
	Add(ctx context.Context, event *shipment.TrackingEvent) error

	// ListByShipmentID retrieves all events for one shipment in chronological
	// (timestamp ascending) order. Returns an empty slice when the shipment
	// has no events.
	ListByShipmentID(ctx context.Context, shipmentID int64) ([]*shipment.TrackingEvent, error)
}
