package gormdb

import (
	"fmt"
	"strings"

	"tracker/internal/adapters/out/gormdb/eventrepo"
	"tracker/internal/adapters/out/gormdb/shipmentrepo"
	"tracker/internal/pkg/errs"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// OpenDB opens a GORM connection for the given driver. For sqlite the DSN is
// a file path (":memory:" for an in-process database); for postgres it is a
// standard connection string.
//
// TranslateError is enabled so unique-index violations surface as
// gorm.ErrDuplicatedKey regardless of the underlying driver.
func OpenDB(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverSQLite:
		dialector = sqlite.Open(sqliteDSN(dsn))
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("dbDriver",
			fmt.Errorf("%q is not a supported driver", driver))
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errs.NewPersistenceError("open database", err)
	}

	return db, nil
}

// sqliteDSN turns foreign key enforcement on for every connection in the
// pool. A one-off PRAGMA would only apply to the connection that ran it.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=1"
}

// Migrate creates or updates the shipments and tracking_events tables.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&eventrepo.TrackingEventDTO{},
	)
	if err != nil {
		return errs.NewPersistenceError("migrate schema", err)
	}
	return nil
}
