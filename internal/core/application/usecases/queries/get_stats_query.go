package queries

import (
	"errors"

	"tracker/internal/pkg/guard"
)

var ErrGetStatsQueryIsNotConstructed = errors.New(
	"GetStatsQuery must be created via NewGetStatsQuery constructor",
)

// GetStatsQuery retrieves aggregate shipment statistics: the total count,
// the count of active (in-flight) shipments and a per-status breakdown.
type GetStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStatsQuery creates a statistics query.
// This is a parameterless query over the whole store.
func NewGetStatsQuery() GetStatsQuery {
	return GetStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatsQueryIsNotConstructed)
}

// GetStatsQueryResponse carries the aggregate counters.
// ByStatus maps each observed status string to its shipment count;
// statuses with no shipments do not appear.
type GetStatsQueryResponse struct {
	Total    int
	Active   int
	ByStatus map[string]int
}
