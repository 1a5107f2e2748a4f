package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
	"github.com/maxwellkiplagat/Deliveroo/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelByIDQueryHandler retrieves the detail view of one parcel.
// Issues two reads: the parcel row and its timeline, ordered oldest first.
type GetParcelByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelByIDQueryHandler creates a handler for parcel detail queries.
// Requires a GORM database connection for query execution.
func NewGetParcelByIDQueryHandler(db *gorm.DB) GetParcelByIDQueryHandler {
	return GetParcelByIDQueryHandler{db: db}
}

// Handle executes the detail query.
// Returns errs.ErrObjectNotFound (wrapped) when the parcel does not exist.
func (h GetParcelByIDQueryHandler) Handle(
	ctx context.Context,
	query GetParcelByIDQuery,
) (GetParcelByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelByIDQueryResponse{}, err
	}

	resp, err := scanParcelDetail(h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			owner_id,
			status,
			sender_name,
			sender_phone,
			receiver_name,
			receiver_phone,
			pickup_address,
			destination_address,
			pickup_lat,
			pickup_lng,
			destination_lat,
			destination_lng,
			current_lat,
			current_lng,
			weight_kg,
			price,
			courier_id,
			courier_name,
			courier_phone,
			created_at,
			delivery_deadline
		FROM parcels
		WHERE id = ?
	`, query.ParcelID().Bytes()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetParcelByIDQueryResponse{}, errs.NewObjectNotFoundError("parcel", query.ParcelID())
		}
		return GetParcelByIDQueryResponse{}, err
	}

	resp.Timeline, err = loadTimeline(ctx, h.db, query.ParcelID())
	if err != nil {
		return GetParcelByIDQueryResponse{}, err
	}

	return resp, nil
}

func scanParcelDetail(tx *gorm.DB) (GetParcelByIDQueryResponse, error) {
	sqlRows, err := tx.Rows()
	if err != nil {
		return GetParcelByIDQueryResponse{}, err
	}
	defer sqlRows.Close()

	if !sqlRows.Next() {
		if err = sqlRows.Err(); err != nil {
			return GetParcelByIDQueryResponse{}, err
		}
		return GetParcelByIDQueryResponse{}, sql.ErrNoRows
	}

	var resp GetParcelByIDQueryResponse
	var id, ownerID uuid.UUID
	var courierID *uuid.UUID
	var courierName, courierPhone *string

	err = sqlRows.Scan(
		&id,
		&resp.TrackingNumber,
		&ownerID,
		&resp.Status,
		&resp.SenderName,
		&resp.SenderPhone,
		&resp.ReceiverName,
		&resp.ReceiverPhone,
		&resp.PickupAddress,
		&resp.DestinationAddress,
		&resp.PickupLat,
		&resp.PickupLng,
		&resp.DestinationLat,
		&resp.DestinationLng,
		&resp.CurrentLat,
		&resp.CurrentLng,
		&resp.WeightKg,
		&resp.Price,
		&courierID,
		&courierName,
		&courierPhone,
		&resp.CreatedAt,
		&resp.DeliveryDeadline,
	)
	if err != nil {
		return GetParcelByIDQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetParcelByIDQueryResponse{}, err
	}
	if resp.OwnerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
		return GetParcelByIDQueryResponse{}, err
	}

	if courierID != nil {
		ref := CourierResponse{}
		if ref.ID, err = kernel.UUIDFromBytes(courierID[:]); err != nil {
			return GetParcelByIDQueryResponse{}, err
		}
		if courierName != nil {
			ref.Name = *courierName
		}
		if courierPhone != nil {
			ref.Phone = *courierPhone
		}
		resp.Courier = &ref
	}

	return resp, nil
}

func loadTimeline(ctx context.Context, db *gorm.DB, parcelID kernel.UUID) ([]TimelineEntryResponse, error) {
	sqlRows, err := db.WithContext(ctx).Raw(`
		SELECT
			status,
			occurred_at,
			location
		FROM parcel_timeline_entries
		WHERE parcel_id = ?
		ORDER BY occurred_at, id
	`, parcelID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer sqlRows.Close()

	timeline := make([]TimelineEntryResponse, 0)
	for sqlRows.Next() {
		var entry TimelineEntryResponse
		if err = sqlRows.Scan(&entry.Status, &entry.Timestamp, &entry.Location); err != nil {
			return nil, err
		}
		timeline = append(timeline, entry)
	}

	if err = sqlRows.Err(); err != nil {
		return nil, err
	}

	return timeline, nil
}
