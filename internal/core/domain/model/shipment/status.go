package shipment

import (
	"fmt"

	"tracker/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// Unlike a strict state machine, Status deliberately imposes no
// transition-adjacency graph: a shipment may move from any declared status to
// any other, including "backwards" (e.g. Delivered -> Pending). Delivered,
// Returned and Cancelled are terminal only for business reporting, which the
// IsActive predicate captures; they do not block further transitions.
//
// Status is a value object that validates membership in the declared set and
// provides the string representation used for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at creation.
	Pending

	// PickedUp indicates the courier has collected the shipment.
	PickedUp

	// InTransit indicates the shipment is moving between facilities.
	InTransit

	// OutForDelivery indicates the shipment is on its final leg.
	OutForDelivery

	// Delivered indicates the shipment reached its recipient.
	// Transitioning here records the shipment's actual delivery time.
	Delivered

	// FailedAttempt indicates a delivery attempt that did not succeed.
	FailedAttempt

	// Returned indicates the shipment went back to the sender.
	Returned

	// Cancelled indicates the shipment was called off.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		PickedUp:       "picked_up",
		InTransit:      "in_transit",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		FailedAttempt:  "failed_attempt",
		Returned:       "returned",
		Cancelled:      "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		PickedUp:       "picked_up",
		InTransit:      "in_transit",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		FailedAttempt:  "failed_attempt",
		Returned:       "returned",
		Cancelled:      "cancelled",
	}
}

// Validate checks if the Status value is a member of the declared set.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, operator input) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name of the status, e.g. "out_for_delivery".
// This is the representation used in persistence and exports.
// Implements the fmt.Stringer interface and is safe to call on any Status
// value; invalid values render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsActive reports whether the status counts as an in-flight shipment for
// business reporting. Delivered, Returned and Cancelled are inactive; every
// other valid status is active. Invalid statuses are never active.
func (s Status) IsActive() bool {
	if s.Validate() != nil {
		return false
	}
	return s != Delivered && s != Returned && s != Cancelled
}

// StatusFromString parses a status from its string representation,
// e.g. "picked_up". Returns an error if the string does not name a valid status.
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", value))
}

// AllStatuses returns every valid status, ordered by lifecycle position.
// Useful for rendering choices and iterating over the closed set.
func AllStatuses() []Status {
	return []Status{Pending, PickedUp, InTransit, OutForDelivery, Delivered, FailedAttempt, Returned, Cancelled}
}
