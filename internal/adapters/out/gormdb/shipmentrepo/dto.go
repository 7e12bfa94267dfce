package shipmentrepo

import (
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/shipment"
	"tracker/internal/pkg/errs"
)

// ShipmentDTO is the persistence shape of the Shipment aggregate.
//
// Timestamps are owned by the domain layer, so GORM's automatic
// created_at/updated_at tracking is switched off on those columns.
type ShipmentDTO struct {
	ID                int64   `gorm:"primaryKey;autoIncrement"`
	TrackingNumber    string  `gorm:"uniqueIndex;not null"`
	Sender            string  `gorm:"not null"`
	Recipient         string  `gorm:"not null"`
	Destination       string  `gorm:"not null"`
	WeightKg          float64 `gorm:"not null"`
	Status            string  `gorm:"index;not null"`
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	Courier           string    `gorm:"not null"`
	Notes             string    `gorm:"not null"`
	CreatedAt         time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt         time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:                aggregate.ID(),
		TrackingNumber:    aggregate.TrackingNumber().String(),
		Sender:            aggregate.Sender(),
		Recipient:         aggregate.Recipient(),
		Destination:       aggregate.Destination(),
		WeightKg:          aggregate.WeightKg(),
		Status:            aggregate.Status().String(),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		ActualDelivery:    aggregate.ActualDelivery(),
		Courier:           aggregate.Courier(),
		Notes:             aggregate.Notes(),
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	trackingNumber, err := kernel.NewTrackingNumber(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	aggregate, err := shipment.RestoreShipment(
		dto.ID,
		trackingNumber,
		dto.Sender,
		dto.Recipient,
		dto.Destination,
		dto.WeightKg,
		status,
		dto.EstimatedDelivery,
		dto.ActualDelivery,
		dto.Courier,
		dto.Notes,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
	if err != nil {
		return nil, errs.NewPersistenceError("restore shipment", err)
	}

	return aggregate, nil
}
