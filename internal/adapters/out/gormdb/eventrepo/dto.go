package eventrepo

import (
	"time"

	"tracker/internal/adapters/out/gormdb/shipmentrepo"
	"tracker/internal/core/domain/model/shipment"
	"tracker/internal/pkg/errs"
)

// TrackingEventDTO is the persistence shape of a tracking event.
// Rows are append-only: there is no update path for this table.
//
// The Shipment association exists so migration creates the foreign key on
// shipment_id; events can never reference a shipment that does not exist.
// It is never populated or saved through this DTO.
type TrackingEventDTO struct {
	ID         int64                     `gorm:"primaryKey;autoIncrement"`
	ShipmentID int64                     `gorm:"index;not null"`
	Shipment   *shipmentrepo.ShipmentDTO `gorm:"foreignKey:ShipmentID"`
	Status     string                    `gorm:"not null"`
	Location   string                    `gorm:"not null"`
	Message    string                    `gorm:"not null"`
	Timestamp  time.Time                 `gorm:"index;not null"`
}

func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

func fromDomain(event *shipment.TrackingEvent) TrackingEventDTO {
	return TrackingEventDTO{
		ID:         event.ID(),
		ShipmentID: event.ShipmentID(),
		Status:     event.Status().String(),
		Location:   event.Location(),
		Message:    event.Message(),
		Timestamp:  event.Timestamp(),
	}
}

func toDomain(dto TrackingEventDTO) (*shipment.TrackingEvent, error) {
	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	event, err := shipment.RestoreTrackingEvent(
		dto.ID,
		dto.ShipmentID,
		status,
		dto.Location,
		dto.Message,
		dto.Timestamp,
	)
	if err != nil {
		return nil, errs.NewPersistenceError("restore tracking event", err)
	}

	return event, nil
}
