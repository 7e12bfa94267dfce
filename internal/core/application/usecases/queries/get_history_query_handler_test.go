package queries_test

import (
	"context"
	"testing"
	"time"

	"tracker/internal/core/application/usecases/queries"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHistoryQueryHandler_Handle_ReturnsEventsInChronologicalOrder(t *testing.T) {
	db := setupQueryDB(t)
	handler := queries.NewGetHistoryQueryHandler(db)

	base := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	seeded := seedShipment(t, db, "BRQRYHIST001", shipment.InTransit, base.Add(2*time.Hour))

	// Appended out of chronological order on purpose.
	seedEvent(t, db, seeded.ID(), shipment.InTransit, "hub", "departed hub", base.Add(2*time.Hour))
	seedEvent(t, db, seeded.ID(), shipment.Pending, "", "Shipment created", base)
	seedEvent(t, db, seeded.ID(), shipment.PickedUp, "warehouse", "picked up", base.Add(time.Hour))

	query, err := queries.NewGetHistoryQuery(seeded.TrackingNumber())
	require.NoError(t, err)

	result, err := handler.Handle(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, result, 3)

	assert.Equal(t, shipment.Pending, result[0].Status)
	assert.Equal(t, "Shipment created", result[0].Message)
	assert.Equal(t, shipment.PickedUp, result[1].Status)
	assert.Equal(t, "warehouse", result[1].Location)
	assert.Equal(t, shipment.InTransit, result[2].Status)

	for _, event := range result {
		assert.Equal(t, seeded.ID(), event.ShipmentID)
		assert.Positive(t, event.ID)
	}
}

func TestGetHistoryQueryHandler_Handle_ExcludesOtherShipmentsEvents(t *testing.T) {
	db := setupQueryDB(t)
	handler := queries.NewGetHistoryQueryHandler(db)

	base := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	first := seedShipment(t, db, "BRQRYHIST002", shipment.Pending, base)
	second := seedShipment(t, db, "BRQRYHIST003", shipment.Pending, base)

	seedEvent(t, db, first.ID(), shipment.Pending, "", "Shipment created", base)
	seedEvent(t, db, second.ID(), shipment.Pending, "", "Shipment created", base)
	seedEvent(t, db, second.ID(), shipment.Cancelled, "", "cancelled by sender", base.Add(time.Hour))

	query, err := queries.NewGetHistoryQuery(first.TrackingNumber())
	require.NoError(t, err)

	result, err := handler.Handle(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, first.ID(), result[0].ShipmentID)
}

func TestGetHistoryQueryHandler_Handle_UnknownTrackingNumberReturnsEmptySlice(t *testing.T) {
	db := setupQueryDB(t)
	handler := queries.NewGetHistoryQueryHandler(db)

	trackingNumber, err := kernel.NewTrackingNumber("BRNOSUCH0002")
	require.NoError(t, err)

	query, err := queries.NewGetHistoryQuery(trackingNumber)
	require.NoError(t, err)

	result, err := handler.Handle(context.Background(), query)
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestGetHistoryQueryHandler_Handle_InvalidQueryReturnsError(t *testing.T) {
	db := setupQueryDB(t)
	handler := queries.NewGetHistoryQueryHandler(db)

	result, err := handler.Handle(context.Background(), queries.GetHistoryQuery{})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, queries.ErrGetHistoryQueryIsNotConstructed)
}
