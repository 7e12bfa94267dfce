package commands

import (
	"errors"
	"time"

	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to register a new shipment.
// Encapsulates the delivery details captured at creation; the tracking number
// and timestamps are produced by the handler's injected collaborators.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand("Alice", "Bob", "123 Main St", 2.5, "", nil, "")
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory, generator, clock)
//	created, err := handler.Handle(ctx, cmd)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	sender            string
	recipient         string
	destination       string
	weightKg          float64
	courier           string
	estimatedDelivery *time.Time
	notes             string

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Sender, recipient and destination are required; weight must be non-negative.
// Courier, estimated delivery and notes are optional.
func NewCreateShipmentCommand(
	sender string,
	recipient string,
	destination string,
	weightKg float64,
	courier string,
	estimatedDelivery *time.Time,
	notes string,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		courier:           courier,
		estimatedDelivery: estimatedDelivery,
		notes:             notes,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSender(sender),
		cmd.setRecipient(recipient),
		cmd.setDestination(destination),
		cmd.setWeightKg(weightKg),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// Sender returns the sender's name.
func (c CreateShipmentCommand) Sender() string {
	return c.sender
}

// Recipient returns the recipient's name.
func (c CreateShipmentCommand) Recipient() string {
	return c.recipient
}

// Destination returns the delivery destination.
func (c CreateShipmentCommand) Destination() string {
	return c.destination
}

// WeightKg returns the package weight in kilograms.
func (c CreateShipmentCommand) WeightKg() float64 {
	return c.weightKg
}

// Courier returns the optional courier name.
func (c CreateShipmentCommand) Courier() string {
	return c.courier
}

// EstimatedDelivery returns the optional promised delivery time.
func (c CreateShipmentCommand) EstimatedDelivery() *time.Time {
	return c.estimatedDelivery
}

// Notes returns the optional free-text notes.
func (c CreateShipmentCommand) Notes() string {
	return c.notes
}

func (c *CreateShipmentCommand) setSender(sender string) error {
	if sender == "" {
		return errs.NewValueIsRequiredError("sender")
	}
	c.sender = sender
	return nil
}

func (c *CreateShipmentCommand) setRecipient(recipient string) error {
	if recipient == "" {
		return errs.NewValueIsRequiredError("recipient")
	}
	c.recipient = recipient
	return nil
}

func (c *CreateShipmentCommand) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	c.destination = destination
	return nil
}

func (c *CreateShipmentCommand) setWeightKg(weightKg float64) error {
	if weightKg < 0 {
		return errs.NewValueIsInvalidError("weightKg")
	}
	c.weightKg = weightKg
	return nil
}
