package shipment

import (
	"errors"
	"fmt"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not created
	// through the NewShipment or RestoreShipment constructors.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

	// ErrShipmentIDAlreadyAssigned is returned when attempting to assign a storage
	// identifier to a shipment that already has one. The identifier is set once by
	// the persistence layer and is immutable thereafter.
	ErrShipmentIDAlreadyAssigned = errors.New("shipment ID is already assigned")
)

// Shipment represents one physical delivery tracked by the system. It is the
// aggregate root of the tracking domain: the mutable "current state" record
// whose status history is mirrored by an append-only log of TrackingEvents.
//
// Shipment follows these invariants:
//   - Must have a valid tracking number (unique per the persistence layer)
//   - Sender, recipient and destination are required and immutable
//   - Weight must be non-negative
//   - Status is the only mutable business field; every change refreshes UpdatedAt
//   - ActualDelivery is set when the shipment reaches Delivered and is never cleared
//   - Can only be created through NewShipment or RestoreShipment
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Shipment struct {
	// id is the storage-assigned identifier; zero until persisted
	id int64

	// trackingNumber is the globally unique human-readable code
	trackingNumber kernel.TrackingNumber

	// sender, recipient and destination describe the delivery; immutable
	sender      string
	recipient   string
	destination string

	// weightKg is the package weight in kilograms (non-negative)
	weightKg float64

	// status is the current lifecycle state
	status Status

	// estimatedDelivery is the optional promised delivery time
	estimatedDelivery *time.Time

	// actualDelivery is set when the shipment first reaches Delivered
	actualDelivery *time.Time

	// courier and notes are free-text context set at creation
	courier string
	notes   string

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewShipment creates a new Shipment in Pending status with validation.
// The tracking number is generated by the caller (see kernel.TrackingNumberGenerator);
// the storage identifier is assigned later by the persistence layer via AssignID.
//
// Parameters:
//   - trackingNumber: the generated unique code (must be valid)
//   - sender, recipient, destination: required free-text fields
//   - weightKg: package weight, must be >= 0
//   - courier, notes: optional free-text context
//   - estimatedDelivery: optional promised delivery time, nil if unknown
//   - now: creation instant, stamped on CreatedAt and UpdatedAt
//
// Returns a validation error if any required field is empty, the tracking
// number is invalid, or the weight is negative.
func NewShipment(
	trackingNumber kernel.TrackingNumber,
	sender string,
	recipient string,
	destination string,
	weightKg float64,
	courier string,
	estimatedDelivery *time.Time,
	notes string,
	now time.Time,
) (*Shipment, error) {
	s := &Shipment{
		status:    Pending,
		courier:   courier,
		notes:     notes,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}
	if estimatedDelivery != nil {
		eta := *estimatedDelivery
		s.estimatedDelivery = &eta
	}

	if err := errors.Join(
		s.setTrackingNumber(trackingNumber),
		s.setSender(sender),
		s.setRecipient(recipient),
		s.setDestination(destination),
		s.setWeightKg(weightKg),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a Shipment aggregate from persistent storage.
// Unlike NewShipment, it accepts the full persisted state including the storage
// identifier, current status and delivery timestamps. The restored shipment
// behaves identically to one created through normal domain operations.
func RestoreShipment(
	id int64,
	trackingNumber kernel.TrackingNumber,
	sender string,
	recipient string,
	destination string,
	weightKg float64,
	status Status,
	estimatedDelivery *time.Time,
	actualDelivery *time.Time,
	courier string,
	notes string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		id:        id,
		courier:   courier,
		notes:     notes,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}
	if estimatedDelivery != nil {
		eta := *estimatedDelivery
		s.estimatedDelivery = &eta
	}
	if actualDelivery != nil {
		delivered := *actualDelivery
		s.actualDelivery = &delivered
	}

	if err := errors.Join(
		s.setTrackingNumber(trackingNumber),
		s.setSender(sender),
		s.setRecipient(recipient),
		s.setDestination(destination),
		s.setWeightKg(weightKg),
		s.setStatus(status),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Shipment instance was properly constructed.
// Returns ErrShipmentIsNotConstructed for zero-value instances.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// AssignID records the identifier the persistence layer generated for this
// shipment. The identifier can be assigned exactly once and must be positive.
func (s *Shipment) AssignID(id int64) error {
	if s.id != 0 {
		return ErrShipmentIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("shipment ID is invalid",
			fmt.Errorf("%d is not greater than 0", id))
	}
	s.id = id
	return nil
}

// ChangeStatus moves the shipment to the given status and refreshes UpdatedAt.
//
// Any valid status may follow any other; the model does not enforce a
// transition graph. When the new status is Delivered, ActualDelivery is set to
// the transition instant (re-delivery refreshes it); it is never cleared by a
// later non-Delivered transition.
//
// Parameters:
//   - newStatus: the status to record (must be a valid member of the set)
//   - at: the transition instant, stamped on UpdatedAt
//
// Returns a validation error if the status is invalid; the shipment is left
// unchanged in that case.
func (s *Shipment) ChangeStatus(newStatus Status, at time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	s.status = newStatus
	s.updatedAt = at
	if newStatus == Delivered {
		delivered := at
		s.actualDelivery = &delivered
	}
	return nil
}

// IsEqual compares two shipments by their tracking numbers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.trackingNumber.Equals(other.trackingNumber)
}

// ID returns the storage-assigned identifier, or 0 if not yet persisted.
func (s *Shipment) ID() int64 {
	return s.id
}

// TrackingNumber returns the shipment's unique tracking code.
func (s *Shipment) TrackingNumber() kernel.TrackingNumber {
	return s.trackingNumber
}

// Sender returns the sender's name.
func (s *Shipment) Sender() string {
	return s.sender
}

// Recipient returns the recipient's name.
func (s *Shipment) Recipient() string {
	return s.recipient
}

// Destination returns the delivery destination.
func (s *Shipment) Destination() string {
	return s.destination
}

// WeightKg returns the package weight in kilograms.
func (s *Shipment) WeightKg() float64 {
	return s.weightKg
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// EstimatedDelivery returns the promised delivery time, or nil if none was set.
func (s *Shipment) EstimatedDelivery() *time.Time {
	return s.estimatedDelivery
}

// ActualDelivery returns the recorded delivery time, or nil if the shipment
// has never reached Delivered.
func (s *Shipment) ActualDelivery() *time.Time {
	return s.actualDelivery
}

// Courier returns the courier's name, empty if none was recorded.
func (s *Shipment) Courier() string {
	return s.courier
}

// Notes returns the free-text notes recorded at creation.
func (s *Shipment) Notes() string {
	return s.notes
}

// CreatedAt returns the creation timestamp.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns the timestamp of the most recent status change,
// or the creation timestamp if the status never changed.
func (s *Shipment) UpdatedAt() time.Time {
	return s.updatedAt
}

// IsActive reports whether the shipment is still in flight for business
// reporting, i.e. its status is none of Delivered, Returned or Cancelled.
func (s *Shipment) IsActive() bool {
	return s.status.IsActive()
}

func (s *Shipment) setTrackingNumber(trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	s.trackingNumber = trackingNumber
	return nil
}

func (s *Shipment) setSender(sender string) error {
	if sender == "" {
		return errs.NewValueIsRequiredError("sender")
	}
	s.sender = sender
	return nil
}

func (s *Shipment) setRecipient(recipient string) error {
	if recipient == "" {
		return errs.NewValueIsRequiredError("recipient")
	}
	s.recipient = recipient
	return nil
}

func (s *Shipment) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	s.destination = destination
	return nil
}

func (s *Shipment) setWeightKg(weightKg float64) error {
	if weightKg < 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightKg is invalid",
			fmt.Errorf("%v is negative", weightKg))
	}
	s.weightKg = weightKg
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}
