// Package parcelrepo provides data transfer objects and mapping functions
// for parcel persistence. It implements the repository pattern for the
// parcel aggregate, handling the conversion between domain entities and
// database representations.
package parcelrepo

import (
	"time"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates. The timeline lives in its own table and is loaded eagerly,
// since the aggregate invariants require it.
type ParcelDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingNumber string    `gorm:"uniqueIndex;size:16"`
	OwnerID        uuid.UUID `gorm:"type:uuid;index"`

	SenderName    string
	SenderPhone   string
	ReceiverName  string
	ReceiverPhone string

	PickupAddress      string
	DestinationAddress string

	PickupLat      *float64
	PickupLng      *float64
	DestinationLat *float64
	DestinationLng *float64
	CurrentLat     *float64
	CurrentLng     *float64

	WeightKg float64
	Price    float64
	Status   string `gorm:"index"`

	CourierID    *uuid.UUID `gorm:"type:uuid;index"`
	CourierName  *string
	CourierPhone *string

	CreatedAt        time.Time `gorm:"index"`
	DeliveryDeadline time.Time

	Timeline []TimelineEntryDTO `gorm:"foreignKey:ParcelID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// TimelineEntryDTO is one row of a parcel's status and location history.
// Rows are append-only; ordering is by occurrence time then insertion id.
type TimelineEntryDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	ParcelID   uuid.UUID `gorm:"type:uuid;index"`
	Status     string
	OccurredAt time.Time
	Location   string
}

// TableName specifies the database table name for timeline entries.
func (TimelineEntryDTO) TableName() string {
	return "parcel_timeline_entries"
}

func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	dto := ParcelDTO{
		ID:                 aggregate.ID().Bytes(),
		TrackingNumber:     aggregate.TrackingNumber().String(),
		OwnerID:            aggregate.OwnerID().Bytes(),
		SenderName:         aggregate.Sender().Name().String(),
		SenderPhone:        aggregate.Sender().Phone().String(),
		ReceiverName:       aggregate.Receiver().Name().String(),
		ReceiverPhone:      aggregate.Receiver().Phone().String(),
		PickupAddress:      aggregate.PickupAddress().String(),
		DestinationAddress: aggregate.DestinationAddress().String(),
		WeightKg:           aggregate.WeightKg(),
		Price:              aggregate.Price(),
		Status:             aggregate.Status().String(),
		CreatedAt:          aggregate.CreatedAt(),
		DeliveryDeadline:   aggregate.DeliveryDeadline(),
	}

	dto.PickupLat, dto.PickupLng = pointToColumns(aggregate.PickupCoords())
	dto.DestinationLat, dto.DestinationLng = pointToColumns(aggregate.DestinationCoords())
	dto.CurrentLat, dto.CurrentLng = pointToColumns(aggregate.CurrentLocation())

	if ref := aggregate.Courier(); ref != nil {
		id := ref.ID().Bytes()
		name := ref.Name()
		phone := ref.Phone()
		dto.CourierID = &id
		dto.CourierName = &name
		dto.CourierPhone = &phone
	}

	for _, entry := range aggregate.Timeline() {
		dto.Timeline = append(dto.Timeline, TimelineEntryDTO{
			ParcelID:   dto.ID,
			Status:     entry.Status().String(),
			OccurredAt: entry.Timestamp(),
			Location:   entry.Location(),
		})
	}

	return dto
}

func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingNumber, err := kernel.TrackingNumberFromString(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	sender, err := partyFromColumns(dto.SenderName, dto.SenderPhone)
	if err != nil {
		return nil, err
	}

	receiver, err := partyFromColumns(dto.ReceiverName, dto.ReceiverPhone)
	if err != nil {
		return nil, err
	}

	pickupAddress, err := kernel.NewAddress(dto.PickupAddress)
	if err != nil {
		return nil, err
	}

	destinationAddress, err := kernel.NewAddress(dto.DestinationAddress)
	if err != nil {
		return nil, err
	}

	status, err := parcel.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	timeline := make([]parcel.TimelineEntry, 0, len(dto.Timeline))
	for _, row := range dto.Timeline {
		entryStatus, statusErr := parcel.StatusFromString(row.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		entry, entryErr := parcel.NewTimelineEntry(entryStatus, row.OccurredAt, row.Location)
		if entryErr != nil {
			return nil, entryErr
		}
		timeline = append(timeline, entry)
	}

	var courierRef *parcel.CourierRef
	if dto.CourierID != nil {
		courierID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		name, phone := "", ""
		if dto.CourierName != nil {
			name = *dto.CourierName
		}
		if dto.CourierPhone != nil {
			phone = *dto.CourierPhone
		}
		ref, refErr := parcel.NewCourierRef(courierID, name, phone)
		if refErr != nil {
			return nil, refErr
		}
		courierRef = &ref
	}

	pickupCoords, err := pointFromColumns(dto.PickupLat, dto.PickupLng)
	if err != nil {
		return nil, err
	}
	destinationCoords, err := pointFromColumns(dto.DestinationLat, dto.DestinationLng)
	if err != nil {
		return nil, err
	}
	currentLocation, err := pointFromColumns(dto.CurrentLat, dto.CurrentLng)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id,
		trackingNumber,
		ownerID,
		sender,
		receiver,
		pickupAddress,
		destinationAddress,
		dto.WeightKg,
		dto.Price,
		status,
		timeline,
		courierRef,
		pickupCoords,
		destinationCoords,
		currentLocation,
		dto.CreatedAt,
		dto.DeliveryDeadline,
	)
}

func partyFromColumns(name, phone string) (parcel.Party, error) {
	personName, err := kernel.NewPersonName(name)
	if err != nil {
		return parcel.Party{}, err
	}
	personPhone, err := kernel.NewPhone(phone)
	if err != nil {
		return parcel.Party{}, err
	}
	return parcel.NewParty(personName, personPhone)
}

func pointToColumns(point *kernel.GeoPoint) (*float64, *float64) {
	if point == nil {
		return nil, nil
	}
	lat := point.Lat()
	lng := point.Lng()
	return &lat, &lng
}

func pointFromColumns(lat, lng *float64) (*kernel.GeoPoint, error) {
	if lat == nil || lng == nil {
		return nil, nil
	}
	point, err := kernel.NewGeoPoint(*lat, *lng)
	if err != nil {
		return nil, err
	}
	return &point, nil
}
