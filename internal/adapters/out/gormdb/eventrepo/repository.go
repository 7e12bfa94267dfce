package eventrepo

import (
	"context"

	"tracker/internal/core/domain/model/shipment"
	"tracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTrackingEventRepository implements TrackingEventRepository using GORM.
type GormTrackingEventRepository struct {
	db *gorm.DB
}

// NewGormTrackingEventRepository creates a new GORM tracking event repository.
func NewGormTrackingEventRepository(db *gorm.DB) *GormTrackingEventRepository {
	return &GormTrackingEventRepository{db: db}
}

// Add appends an event to the ledger and assigns the storage identifier back
// to the entity.
func (r *GormTrackingEventRepository) Add(ctx context.Context, event *shipment.TrackingEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("create tracking event", err)
	}

	if event.ID() == 0 {
		if err := event.AssignID(dto.ID); err != nil {
			return err
		}
	}

	return nil
}

// ListByShipmentID retrieves all events for one shipment in chronological order.
// The storage identifier breaks ties between events recorded at the same instant.
func (r *GormTrackingEventRepository) ListByShipmentID(
	ctx context.Context,
	shipmentID int64,
) ([]*shipment.TrackingEvent, error) {
	var dtos []TrackingEventDTO
	err := r.db.WithContext(ctx).
		Order("timestamp, id").
		Find(&dtos, "shipment_id = ?", shipmentID).Error
	if err != nil {
		return nil, errs.NewPersistenceError("list tracking events", err)
	}

	events := make([]*shipment.TrackingEvent, 0, len(dtos))
	for _, dto := range dtos {
		event, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}
