package queries

import (
	"context"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelsQueryHandler retrieves parcel listings from the database.
// Uses direct SQL for read performance; the aggregate is never rehydrated
// on the listing path.
type GetParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelsQueryHandler creates a handler for parcel listing queries.
// Requires a GORM database connection for query execution.
func NewGetParcelsQueryHandler(db *gorm.DB) GetParcelsQueryHandler {
	return GetParcelsQueryHandler{db: db}
}

// Handle executes the listing query.
// Owner-scoped queries return only that owner's parcels; the unscoped
// variant returns everything. Results are sorted newest first.
func (h GetParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetParcelsQuery,
) ([]GetParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const baseQuery = `
		SELECT
			id,
			tracking_number,
			owner_id,
			status,
			sender_name,
			receiver_name,
			pickup_address,
			destination_address,
			weight_kg,
			price,
			courier_name,
			created_at,
			delivery_deadline
		FROM parcels
	`

	tx := h.db.WithContext(ctx)
	var rows *gorm.DB
	if query.OwnerID() != nil {
		rows = tx.Raw(baseQuery+` WHERE owner_id = ? ORDER BY created_at DESC`, query.OwnerID().Bytes())
	} else {
		rows = tx.Raw(baseQuery + ` ORDER BY created_at DESC`)
	}

	sqlRows, err := rows.Rows()
	if err != nil {
		return nil, err
	}
	defer sqlRows.Close()

	parcels := make([]GetParcelsQueryResponse, 0)
	for sqlRows.Next() {
		var resp GetParcelsQueryResponse
		var id, ownerID uuid.UUID

		err = sqlRows.Scan(
			&id,
			&resp.TrackingNumber,
			&ownerID,
			&resp.Status,
			&resp.SenderName,
			&resp.ReceiverName,
			&resp.PickupAddress,
			&resp.DestinationAddress,
			&resp.WeightKg,
			&resp.Price,
			&resp.CourierName,
			&resp.CreatedAt,
			&resp.DeliveryDeadline,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.OwnerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
			return nil, err
		}

		parcels = append(parcels, resp)
	}

	if err = sqlRows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
