// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/shipment"
	"tracker/internal/pkg/guard"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery retrieves one shipment by its tracking number.
// A shipment that does not exist is reported as an absent result,
// not an error; reads never fail on missing records.
type GetShipmentQuery struct {
	trackingNumber kernel.TrackingNumber

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query for the given tracking number.
func NewGetShipmentQuery(trackingNumber kernel.TrackingNumber) (GetShipmentQuery, error) {
	if err := trackingNumber.Validate(); err != nil {
		return GetShipmentQuery{}, err
	}
	return GetShipmentQuery{trackingNumber: trackingNumber, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// TrackingNumber returns the tracking number being looked up.
func (q GetShipmentQuery) TrackingNumber() kernel.TrackingNumber {
	return q.trackingNumber
}

// ShipmentResponse represents one shipment in the read model.
// Field values mirror the persisted record; Status is the typed lifecycle state.
type ShipmentResponse struct {
	ID                int64
	TrackingNumber    string
	Sender            string
	Recipient         string
	Destination       string
	WeightKg          float64
	Status            shipment.Status
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	Courier           string
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsActive reports whether the shipment counts as in flight for reporting.
func (r ShipmentResponse) IsActive() bool {
	return r.Status.IsActive()
}
