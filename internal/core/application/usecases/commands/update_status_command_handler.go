package commands

import (
	"context"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/shipment"
)

// UpdateStatusCommandHandler handles shipment status transitions.
// Looks the shipment up by tracking number, applies the new status (recording
// the actual delivery time on Delivered) and appends the matching tracking
// event, all within one transaction so the current record and its audit trail
// never diverge.
//
// A missing tracking number surfaces as an ObjectNotFound error: for a
// mutating operation the absence is a failure, unlike the read-side queries.
type UpdateStatusCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

// NewUpdateStatusCommandHandler creates a handler for status transitions.
// The clock is injected so timestamp assignment is deterministic in tests.
func NewUpdateStatusCommandHandler(uowFactory UoWFactory, clock kernel.Clock) UpdateStatusCommandHandler {
	return UpdateStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the status update command and returns the updated shipment.
func (h *UpdateStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateStatusCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	tracked, err := shipmentRepo.GetByTrackingNumber(ctx, cmd.TrackingNumber())
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	if err = tracked.ChangeStatus(cmd.NewStatus(), now); err != nil {
		return nil, err
	}

	if err = shipmentRepo.Update(ctx, tracked); err != nil {
		return nil, err
	}

	event, err := shipment.NewTrackingEvent(tracked.ID(), cmd.NewStatus(), cmd.Location(), cmd.Message(), now)
	if err != nil {
		return nil, err
	}

	if err = uow.TrackingEventRepository().Add(ctx, event); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return tracked, nil
}
