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

func TestGetShipmentQueryHandler_Handle_ExistingShipment(t *testing.T) {
	db := setupQueryDB(t)
	handler := queries.NewGetShipmentQueryHandler(db)

	updatedAt := time.Date(2026, 8, 28, 14, 0, 0, 0, time.UTC)
	seeded := seedShipment(t, db, "BRQRYGET0001", shipment.InTransit, updatedAt)

	query, err := queries.NewGetShipmentQuery(seeded.TrackingNumber())
	require.NoError(t, err)

	result, err := handler.Handle(context.Background(), query)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, seeded.ID(), result.ID)
	assert.Equal(t, "BRQRYGET0001", result.TrackingNumber)
	assert.Equal(t, shipment.InTransit, result.Status)
	assert.Equal(t, "sender", result.Sender)
	assert.Nil(t, result.EstimatedDelivery)
	assert.Nil(t, result.ActualDelivery)
	assert.True(t, result.IsActive())
}

func TestGetShipmentQueryHandler_Handle_DeliveredShipmentCarriesDeliveryTime(t *testing.T) {
	db := setupQueryDB(t)
	handler := queries.NewGetShipmentQueryHandler(db)

	updatedAt := time.Date(2026, 8, 28, 14, 0, 0, 0, time.UTC)
	seeded := seedShipment(t, db, "BRQRYGET0002", shipment.Delivered, updatedAt)

	query, err := queries.NewGetShipmentQuery(seeded.TrackingNumber())
	require.NoError(t, err)

	result, err := handler.Handle(context.Background(), query)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, shipment.Delivered, result.Status)
	require.NotNil(t, result.ActualDelivery)
	assert.True(t, updatedAt.Equal(result.ActualDelivery.UTC()))
	assert.False(t, result.IsActive())
}

func TestGetShipmentQueryHandler_Handle_MissingShipmentReturnsNil(t *testing.T) {
	db := setupQueryDB(t)
	handler := queries.NewGetShipmentQueryHandler(db)

	trackingNumber, err := kernel.NewTrackingNumber("BRNOSUCH0001")
	require.NoError(t, err)

	query, err := queries.NewGetShipmentQuery(trackingNumber)
	require.NoError(t, err)

	result, err := handler.Handle(context.Background(), query)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestGetShipmentQueryHandler_Handle_InvalidQueryReturnsError(t *testing.T) {
	db := setupQueryDB(t)
	handler := queries.NewGetShipmentQueryHandler(db)

	result, err := handler.Handle(context.Background(), queries.GetShipmentQuery{})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, queries.ErrGetShipmentQueryIsNotConstructed)
}
