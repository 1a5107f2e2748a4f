package queries

import (
	"context"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllCouriersQueryHandler retrieves all courier information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllCouriersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCouriersQueryHandler creates a handler for courier roster queries.
// Requires a GORM database connection for query execution.
func NewGetAllCouriersQueryHandler(db *gorm.DB) GetAllCouriersQueryHandler {
	return GetAllCouriersQueryHandler{db: db}
}

// Handle executes the query to retrieve all couriers.
// Returns a slice of courier read models sorted by name.
func (h GetAllCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCouriersQuery,
) ([]GetAllCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	couriers := make([]GetAllCouriersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone,
			vehicle_type,
			availability,
			location_lat,
			location_lng
		FROM couriers
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var courier GetAllCouriersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&courier.Name,
			&courier.Phone,
			&courier.VehicleType,
			&courier.Availability,
			&courier.Lat,
			&courier.Lng,
		)
		if err != nil {
			return nil, err
		}

		courierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		courier.ID = courierID
		couriers = append(couriers, courier)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}
