package queries

import (
	"context"

	"tracker/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// GetStatsQueryHandler computes aggregate shipment statistics with a single
// grouped count over the status index.
type GetStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetStatsQueryHandler creates a handler for statistics retrieval.
func NewGetStatsQueryHandler(db *gorm.DB) GetStatsQueryHandler {
	return GetStatsQueryHandler{db: db}
}

// Handle executes the statistics query.
func (h GetStatsQueryHandler) Handle(
	ctx context.Context,
	query GetStatsQuery,
) (GetStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStatsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM shipments
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetStatsQueryResponse{}, err
	}
	defer rows.Close()

	response := GetStatsQueryResponse{ByStatus: make(map[string]int)}
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err = rows.Scan(&status, &count); err != nil {
			return GetStatsQueryResponse{}, err
		}

		parsed, parseErr := shipment.StatusFromString(status)
		if parseErr != nil {
			return GetStatsQueryResponse{}, parseErr
		}

		response.ByStatus[status] = count
		response.Total += count
		if parsed.IsActive() {
			response.Active += count
		}
	}

	return response, rows.Err()
}
