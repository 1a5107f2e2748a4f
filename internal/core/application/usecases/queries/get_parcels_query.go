package queries

import (
	"errors"
	"time"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
	"github.com/maxwellkiplagat/Deliveroo/internal/pkg/guard"
)

var ErrGetParcelsQueryIsNotConstructed = errors.New(
	"GetParcelsQuery must be created via NewGetParcelsQuery or NewGetAllParcelsQuery constructor",
)

// GetParcelsQuery retrieves parcel summaries, either scoped to one owner
// (the customer dashboard) or unscoped (the admin dashboard).
//
// Example:
//
//	query, _ := NewGetParcelsQuery(ownerID)
//	handler := NewGetParcelsQueryHandler(db)
//
//	parcels, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get parcels: %w", err)
//	}
type GetParcelsQuery struct { //nolint:recvcheck //using for validation
	ownerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetParcelsQuery creates a query scoped to the parcels owned by ownerID.
func NewGetParcelsQuery(ownerID kernel.UUID) (GetParcelsQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetParcelsQuery{}, err
	}

	return GetParcelsQuery{
		ownerID: &ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// NewGetAllParcelsQuery creates an unscoped query returning every parcel.
// Used by the admin dashboard.
func NewGetAllParcelsQuery() GetParcelsQuery {
	return GetParcelsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through a constructor.
// Returns ErrGetParcelsQueryIsNotConstructed if validation fails.
func (q GetParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelsQueryIsNotConstructed)
}

// OwnerID returns the owner scope, or nil for the unscoped admin query.
func (q GetParcelsQuery) OwnerID() *kernel.UUID {
	return q.ownerID
}

// GetParcelsQueryResponse represents one row of a parcel listing.
type GetParcelsQueryResponse struct {
	ID                 kernel.UUID
	TrackingNumber     string
	OwnerID            kernel.UUID
	Status             string
	SenderName         string
	ReceiverName       string
	PickupAddress      string
	DestinationAddress string
	WeightKg           float64
	Price              float64
	CourierName        *string
	CreatedAt          time.Time
	DeliveryDeadline   time.Time
}
