package eventrepo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"tracker/internal/adapters/out/gormdb"
	"tracker/internal/adapters/out/gormdb/eventrepo"
	"tracker/internal/adapters/out/gormdb/shipmentrepo"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/shipment"
	"tracker/internal/pkg/errs"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.TrackingNumber, any) {}

func setupEventTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gormdb.OpenDB(gormdb.DriverSQLite, dsn)
	require.NoError(t, err)
	require.NoError(t, gormdb.Migrate(db))

	return db
}

func persistShipment(t *testing.T, db *gorm.DB, code string) *shipment.Shipment {
	t.Helper()

	trackingNumber, err := kernel.NewTrackingNumber(code)
	require.NoError(t, err)

	s, err := shipment.NewShipment(
		trackingNumber, "sender", "recipient", "destination", 1.5,
		"", nil, "",
		time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	repo := shipmentrepo.NewGormShipmentRepository(db, noopTracker{})
	require.NoError(t, repo.Add(context.Background(), s))
	return s
}

func TestGormTrackingEventRepository_AddForExistingShipment(t *testing.T) {
	ctx := context.Background()
	db := setupEventTestDB(t)
	s := persistShipment(t, db, "BREVENTADD01")

	repo := eventrepo.NewGormTrackingEventRepository(db)

	event, err := shipment.NewTrackingEvent(
		s.ID(), shipment.InTransit, "Depot A", "Departed depot",
		time.Date(2026, 8, 28, 11, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	require.NoError(t, repo.Add(ctx, event))
	require.Positive(t, event.ID())

	events, err := repo.ListByShipmentID(ctx, s.ID())
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "Departed depot", events[0].Message())
}

func TestGormTrackingEventRepository_AddRejectsUnknownShipment(t *testing.T) {
	ctx := context.Background()
	db := setupEventTestDB(t)

	repo := eventrepo.NewGormTrackingEventRepository(db)

	event, err := shipment.NewTrackingEvent(
		999, shipment.Pending, "", "Shipment created",
		time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	err = repo.Add(ctx, event)
	require.Error(t, err)

	var persistenceErr *errs.PersistenceError
	require.ErrorAs(t, err, &persistenceErr)

	events, err := repo.ListByShipmentID(ctx, 999)
	require.NoError(t, err)
	require.Empty(t, events)
}
