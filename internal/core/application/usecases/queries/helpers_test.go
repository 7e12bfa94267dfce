package queries_test

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

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// noopTracker satisfies the repository's aggregate tracker without recording
// anything; query tests do not care about tracked aggregates.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.TrackingNumber, _ any) {}

// setupQueryDB opens a private in-memory sqlite database for one test.
// The database name is derived from the test name so suites do not share state.
func setupQueryDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gormdb.OpenDB(gormdb.DriverSQLite, dsn)
	require.NoError(t, err)
	require.NoError(t, gormdb.Migrate(db))

	return db
}

// seedShipment persists a shipment with the given status and update instant.
func seedShipment(
	t *testing.T,
	db *gorm.DB,
	code string,
	status shipment.Status,
	updatedAt time.Time,
) *shipment.Shipment {
	t.Helper()

	trackingNumber, err := kernel.NewTrackingNumber(code)
	require.NoError(t, err)

	createdAt := updatedAt.Add(-24 * time.Hour)
	var actualDelivery *time.Time
	if status == shipment.Delivered {
		delivered := updatedAt
		actualDelivery = &delivered
	}

	s, err := shipment.RestoreShipment(
		0, trackingNumber, "sender", "recipient", "destination", 1.0,
		status, nil, actualDelivery, "", "", createdAt, updatedAt,
	)
	require.NoError(t, err)

	repo := shipmentrepo.NewGormShipmentRepository(db, noopTracker{})
	require.NoError(t, repo.Add(context.Background(), s))
	return s
}

// seedEvent appends one tracking event for the given shipment.
func seedEvent(
	t *testing.T,
	db *gorm.DB,
	shipmentID int64,
	status shipment.Status,
	location string,
	message string,
	at time.Time,
) {
	t.Helper()

	event, err := shipment.NewTrackingEvent(shipmentID, status, location, message, at)
	require.NoError(t, err)

	repo := eventrepo.NewGormTrackingEventRepository(db)
	require.NoError(t, repo.Add(context.Background(), event))
}
