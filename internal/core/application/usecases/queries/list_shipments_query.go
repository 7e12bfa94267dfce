package queries

import (
	"errors"

	"tracker/internal/core/domain/model/shipment"
	"tracker/internal/pkg/guard"
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

// ListShipmentsQuery retrieves all shipments, optionally restricted to a
// single status, ordered by most recently touched first.
type ListShipmentsQuery struct {
	statusFilter *shipment.Status

	guard guard.ConstructorGuard
}

// NewListShipmentsQuery creates a query over all shipments.
// Pass nil to list every status, or a status to restrict the result.
func NewListShipmentsQuery(statusFilter *shipment.Status) (ListShipmentsQuery, error) {
	if statusFilter != nil {
		if err := statusFilter.Validate(); err != nil {
			return ListShipmentsQuery{}, err
		}
	}
	return ListShipmentsQuery{statusFilter: statusFilter, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

// StatusFilter returns the status restriction, or nil for all statuses.
func (q ListShipmentsQuery) StatusFilter() *shipment.Status {
	return q.statusFilter
}
