package commands

import (
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/shipment"

	"tracker/internal/pkg/guard"
)

var ErrUpdateStatusCommandIsNotConstructed = errors.New(
	"UpdateStatusCommand must be created via NewUpdateStatusCommand constructor",
)

// UpdateStatusCommand represents a request to move a shipment to a new
// lifecycle status, identified by its tracking number. Location and message
// are optional context recorded on the resulting tracking event.
type UpdateStatusCommand struct { //nolint:recvcheck //using for validation
	trackingNumber kernel.TrackingNumber
	newStatus      shipment.Status
	location       string
	message        string

	guard guard.ConstructorGuard
}

// NewUpdateStatusCommand creates a command to update a shipment's status.
// The tracking number and status must be valid members of their respective sets.
func NewUpdateStatusCommand(
	trackingNumber kernel.TrackingNumber,
	newStatus shipment.Status,
	location string,
	message string,
) (UpdateStatusCommand, error) {
	cmd := UpdateStatusCommand{
		location: location,
		message:  message,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrackingNumber(trackingNumber),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return UpdateStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateStatusCommandIsNotConstructed if validation fails.
func (c UpdateStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStatusCommandIsNotConstructed)
}

// TrackingNumber returns the tracking number identifying the shipment.
func (c UpdateStatusCommand) TrackingNumber() kernel.TrackingNumber {
	return c.trackingNumber
}

// NewStatus returns the status the shipment should move to.
func (c UpdateStatusCommand) NewStatus() shipment.Status {
	return c.newStatus
}

// Location returns the optional location context for the tracking event.
func (c UpdateStatusCommand) Location() string {
	return c.location
}

// Message returns the optional message for the tracking event.
func (c UpdateStatusCommand) Message() string {
	return c.message
}

func (c *UpdateStatusCommand) setTrackingNumber(trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	c.trackingNumber = trackingNumber
	return nil
}

func (c *UpdateStatusCommand) setNewStatus(newStatus shipment.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	c.newStatus = newStatus
	return nil
}
