package ports

import (
	"context"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
// The tracking number's uniqueness is enforced by the store; Add surfaces a
// collision as a DuplicateIdentifier error so callers can retry with a fresh code.
type ShipmentRepository interface {
	// Add persists a new shipment and assigns its storage identifier back to
	// the aggregate. Returns a DuplicateIdentifier error when the tracking
	// number collides with an existing shipment.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	// The shipment must already exist in the repository.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// GetByTrackingNumber retrieves a shipment by its unique tracking number.
	// Returns an ObjectNotFound error when no shipment carries the number.
	GetByTrackingNumber(ctx context.Context, trackingNumber kernel.TrackingNumber) (*shipment.Shipment, error)
}
