package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListShipmentsQueryHandler retrieves shipment read models, most recently
// updated first. Uses direct SQL queries for optimal read performance in the
// CQRS pattern; the status filter hits the status index.
type ListShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewListShipmentsQueryHandler creates a handler for shipment listings.
func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db}
}

// Handle executes the listing. Returns an empty slice when nothing matches.
func (h ListShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListShipmentsQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `SELECT ` + shipmentColumns + ` FROM shipments`
	args := make([]any, 0, 1)
	if filter := query.StatusFilter(); filter != nil {
		sqlQuery += ` WHERE status = ?`
		args = append(args, filter.String())
	}
	sqlQuery += ` ORDER BY updated_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shipments := make([]ShipmentResponse, 0)
	for rows.Next() {
		response, scanErr := scanShipmentRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		shipments = append(shipments, *response)
	}

	return shipments, rows.Err()
}
