package commands

import (
	"context"
	"errors"
	"fmt"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/shipment"
	"tracker/internal/pkg/errs"
)

// maxTrackingNumberAttempts bounds the generate-and-retry loop on tracking
// number collisions. With a 36-character alphabet and ten random positions a
// collision is negligible, but it must be handled rather than assumed away.
const maxTrackingNumberAttempts = 5

// creationEventMessage is recorded on every shipment's first tracking event.
const creationEventMessage = "Shipment created"

// CreateShipmentCommandHandler handles the business logic for shipment registration.
// Generates a tracking number, persists the new shipment in Pending status and
// appends its creation event, all within one transaction: a shipment is never
// visible without its creation event, and vice versa.
//
// The storage unique constraint is the source of truth for tracking number
// uniqueness; on a collision the handler rolls back and retries with a freshly
// generated number, escalating after a bounded number of attempts.
type CreateShipmentCommandHandler struct {
	uowFactory UoWFactory
	generator  kernel.TrackingNumberGenerator
	clock      kernel.Clock
}

// NewCreateShipmentCommandHandler creates a handler for shipment registration.
// The generator and clock are injected so tests can make identifier generation
// and timestamp assignment deterministic.
func NewCreateShipmentCommandHandler(
	uowFactory UoWFactory,
	generator kernel.TrackingNumberGenerator,
	clock kernel.Clock,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		generator:  generator,
		clock:      clock,
	}
}

// Handle processes the shipment creation command and returns the persisted
// shipment with its storage identifier and generated tracking number.
func (h *CreateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var lastErr error
	for range maxTrackingNumberAttempts {
		trackingNumber, err := h.generator.Generate()
		if err != nil {
			return nil, err
		}

		created, err := h.createWithTrackingNumber(ctx, cmd, trackingNumber)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, errs.ErrDuplicateIdentifier) {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("generating a unique tracking number failed after %d attempts: %w",
		maxTrackingNumberAttempts, lastErr)
}

// createWithTrackingNumber persists the shipment and its creation event in one
// transaction. A tracking number collision surfaces as a DuplicateIdentifier
// error and leaves no partial state behind.
func (h *CreateShipmentCommandHandler) createWithTrackingNumber(
	ctx context.Context,
	cmd CreateShipmentCommand,
	trackingNumber kernel.TrackingNumber,
) (*shipment.Shipment, error) {
	now := h.clock.Now()

	newShipment, err := shipment.NewShipment(
		trackingNumber,
		cmd.Sender(),
		cmd.Recipient(),
		cmd.Destination(),
		cmd.WeightKg(),
		cmd.Courier(),
		cmd.EstimatedDelivery(),
		cmd.Notes(),
		now,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, newShipment); err != nil {
		return nil, err
	}

	event, err := shipment.NewTrackingEvent(newShipment.ID(), newShipment.Status(), "", creationEventMessage, now)
	if err != nil {
		return nil, err
	}

	if err = uow.TrackingEventRepository().Add(ctx, event); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newShipment, nil
}
