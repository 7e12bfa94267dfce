package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
// This ensures proper isolation between operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Every ledger mutation
// (create shipment + creation event, status change + event) commits through a
// single unit of work so the shipment and its audit trail never diverge.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ShipmentRepository returns a ShipmentRepository bound to the current transaction.
	// The repository will use the transaction started by Begin().
	ShipmentRepository() ShipmentRepository

	// TrackingEventRepository returns a TrackingEventRepository bound to the current transaction.
	// The repository will use the transaction started by Begin().
	TrackingEventRepository() TrackingEventRepository
}
