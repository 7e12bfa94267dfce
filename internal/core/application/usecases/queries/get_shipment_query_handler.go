package queries

import (
	"context"
	"database/sql"

	"tracker/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// shipmentColumns is the select list shared by the shipment read queries.
const shipmentColumns = `
	id,
	tracking_number,
	sender,
	recipient,
	destination,
	weight_kg,
	status,
	estimated_delivery,
	actual_delivery,
	courier,
	notes,
	created_at,
	updated_at
`

// GetShipmentQueryHandler retrieves a single shipment read model by tracking
// number. Uses direct SQL for optimal read performance in the CQRS pattern.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for point lookups.
// Requires a GORM database connection for query execution.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the lookup. Returns nil (and no error) when no shipment
// carries the tracking number; absence is not a failure for reads.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (*ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT `+shipmentColumns+` FROM shipments WHERE tracking_number = ?`,
		query.TrackingNumber().String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	response, err := scanShipmentRow(rows)
	if err != nil {
		return nil, err
	}

	return response, rows.Err()
}

// scanShipmentRow maps one row of the shipment select list to the read model.
func scanShipmentRow(rows *sql.Rows) (*ShipmentResponse, error) {
	var (
		response          ShipmentResponse
		status            string
		estimatedDelivery sql.NullTime
		actualDelivery    sql.NullTime
	)

	if err := rows.Scan(
		&response.ID,
		&response.TrackingNumber,
		&response.Sender,
		&response.Recipient,
		&response.Destination,
		&response.WeightKg,
		&status,
		&estimatedDelivery,
		&actualDelivery,
		&response.Courier,
		&response.Notes,
		&response.CreatedAt,
		&response.UpdatedAt,
	); err != nil {
		return nil, err
	}

	parsed, err := shipment.StatusFromString(status)
	if err != nil {
		return nil, err
	}
	response.Status = parsed

	if estimatedDelivery.Valid {
		eta := estimatedDelivery.Time
		response.EstimatedDelivery = &eta
	}
	if actualDelivery.Valid {
		delivered := actualDelivery.Time
		response.ActualDelivery = &delivered
	}

	return &response, nil
}
