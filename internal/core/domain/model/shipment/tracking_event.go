package shipment

import (
	"errors"
	"fmt"
	"time"

	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

var (
	// ErrTrackingEventIsNotConstructed is returned when a TrackingEvent was not
	// created through NewTrackingEvent or RestoreTrackingEvent.
	ErrTrackingEventIsNotConstructed = errors.New(
		"TrackingEvent must be created via NewTrackingEvent or RestoreTrackingEvent")

	// ErrTrackingEventIDAlreadyAssigned is returned when attempting to assign a
	// storage identifier to an event that already has one.
	ErrTrackingEventIDAlreadyAssigned = errors.New("tracking event ID is already assigned")
)

// TrackingEvent is one immutable entry in a shipment's append-only audit trail.
// Every status the shipment has ever held is mirrored by exactly one event:
// the creation event at Pending, and one per subsequent status change.
// Events are never updated or deleted.
type TrackingEvent struct {
	// id is the storage-assigned identifier; zero until persisted
	id int64

	// shipmentID references the owning shipment; always positive
	shipmentID int64

	// status is the lifecycle state recorded at this event
	status Status

	// location and message are optional free-text context
	location string
	message  string

	// timestamp is set at creation and never modified
	timestamp time.Time

	guard guard.ConstructorGuard
}

// NewTrackingEvent creates an event recording that the owning shipment held
// the given status at the given instant. The shipment must already be
// persisted (positive identifier) and the status must be valid.
func NewTrackingEvent(
	shipmentID int64,
	status Status,
	location string,
	message string,
	timestamp time.Time,
) (*TrackingEvent, error) {
	e := &TrackingEvent{
		location:  location,
		message:   message,
		timestamp: timestamp,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setShipmentID(shipmentID),
		e.setStatus(status),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreTrackingEvent reconstructs an event from persistent storage.
func RestoreTrackingEvent(
	id int64,
	shipmentID int64,
	status Status,
	location string,
	message string,
	timestamp time.Time,
) (*TrackingEvent, error) {
	e, err := NewTrackingEvent(shipmentID, status, location, message, timestamp)
	if err != nil {
		return nil, err
	}
	e.id = id
	return e, nil
}

// Validate ensures the TrackingEvent was properly constructed.
func (e *TrackingEvent) Validate() error {
	if e == nil {
		return ErrTrackingEventIsNotConstructed
	}
	return e.guard.Validate(ErrTrackingEventIsNotConstructed)
}

// AssignID records the identifier the persistence layer generated for this event.
// The identifier can be assigned exactly once and must be positive.
func (e *TrackingEvent) AssignID(id int64) error {
	if e.id != 0 {
		return ErrTrackingEventIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("tracking event ID is invalid",
			fmt.Errorf("%d is not greater than 0", id))
	}
	e.id = id
	return nil
}

// ID returns the storage-assigned identifier, or 0 if not yet persisted.
func (e *TrackingEvent) ID() int64 {
	return e.id
}

// ShipmentID returns the identifier of the owning shipment.
func (e *TrackingEvent) ShipmentID() int64 {
	return e.shipmentID
}

// Status returns the lifecycle status recorded at this event.
func (e *TrackingEvent) Status() Status {
	return e.status
}

// Location returns the optional location context, empty if none was recorded.
func (e *TrackingEvent) Location() string {
	return e.location
}

// Message returns the optional free-text message, empty if none was recorded.
func (e *TrackingEvent) Message() string {
	return e.message
}

// Timestamp returns the instant the event was recorded.
func (e *TrackingEvent) Timestamp() time.Time {
	return e.timestamp
}

func (e *TrackingEvent) setShipmentID(shipmentID int64) error {
	if shipmentID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("shipmentID is invalid",
			fmt.Errorf("%d is not greater than 0", shipmentID))
	}
	e.shipmentID = shipmentID
	return nil
}

func (e *TrackingEvent) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	e.status = status
	return nil
}
