package queries

import (
	"errors"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/shipment"
	"tracker/internal/pkg/guard"
)

var ErrGetHistoryQueryIsNotConstructed = errors.New(
	"GetHistoryQuery must be created via NewGetHistoryQuery constructor",
)

// GetHistoryQuery retrieves the full audit trail of one shipment in
// chronological order. An unknown tracking number yields an empty history,
// not an error.
type GetHistoryQuery struct {
	trackingNumber kernel.TrackingNumber

	guard guard.ConstructorGuard
}

// NewGetHistoryQuery creates a history query for the given tracking number.
func NewGetHistoryQuery(trackingNumber kernel.TrackingNumber) (GetHistoryQuery, error) {
	if err := trackingNumber.Validate(); err != nil {
		return GetHistoryQuery{}, err
	}
	return GetHistoryQuery{trackingNumber: trackingNumber, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetHistoryQueryIsNotConstructed)
}

// TrackingNumber returns the tracking number whose history is requested.
func (q GetHistoryQuery) TrackingNumber() kernel.TrackingNumber {
	return q.trackingNumber
}

// TrackingEventResponse represents one audit trail entry in the read model.
type TrackingEventResponse struct {
	ID         int64
	ShipmentID int64
	Status     shipment.Status
	Location   string
	Message    string
	Timestamp  time.Time
}
