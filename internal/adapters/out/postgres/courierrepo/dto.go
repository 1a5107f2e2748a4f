// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
// This package implements the repository pattern for the courier domain aggregate, handling
// the conversion between domain entities and database representations.
package courierrepo

import (
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/courier"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier aggregates.
type CourierDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Phone        string    `gorm:"type:varchar(32);not null"`
	VehicleType  string    `gorm:"type:varchar(64);not null"`
	Availability string    `gorm:"type:varchar(16);not null;index"`
	LocationLat  *float64
	LocationLng  *float64
}

// TableName specifies the database table name for courier entities.
// Overrides GORM's default naming convention to use "couriers" instead of "courier_dtos".
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	dto := CourierDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Phone:        aggregate.Phone().String(),
		VehicleType:  aggregate.VehicleType(),
		Availability: aggregate.Availability().String(),
	}

	if point := aggregate.Location(); point != nil {
		lat, lng := point.Lat(), point.Lng()
		dto.LocationLat = &lat
		dto.LocationLng = &lng
	}

	return dto
}

// toDomain converts a database DTO to a courier domain aggregate.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}

	availability, err := courier.AvailabilityFromString(dto.Availability)
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.LocationLat != nil && dto.LocationLng != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.LocationLat, *dto.LocationLng)
		if pointErr != nil {
			return nil, pointErr
		}
		location = &point
	}

	return courier.RestoreCourier(id, dto.Name, phone, dto.VehicleType, availability, location)
}
