package queries

import (
	"errors"
	"time"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
	"github.com/maxwellkiplagat/Deliveroo/internal/pkg/guard"
)

var ErrGetParcelByIDQueryIsNotConstructed = errors.New(
	"GetParcelByIDQuery must be created via NewGetParcelByIDQuery constructor",
)

// GetParcelByIDQuery retrieves the full detail view of a single parcel,
// including its timeline. Ownership is enforced by the transport layer
// using the OwnerID field of the response.
type GetParcelByIDQuery struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetParcelByIDQuery creates a query for the parcel identified by parcelID.
func NewGetParcelByIDQuery(parcelID kernel.UUID) (GetParcelByIDQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return GetParcelByIDQuery{}, err
	}

	return GetParcelByIDQuery{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetParcelByIDQueryIsNotConstructed if validation fails.
func (q GetParcelByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelByIDQueryIsNotConstructed)
}

// ParcelID returns the identifier of the requested parcel.
func (q GetParcelByIDQuery) ParcelID() kernel.UUID {
	return q.parcelID
}

// TimelineEntryResponse is one event of a parcel's history.
type TimelineEntryResponse struct {
	Status    string
	Timestamp time.Time
	Location  string
}

// CourierResponse describes the courier assigned to a parcel.
type CourierResponse struct {
	ID    kernel.UUID
	Name  string
	Phone string
}

// GetParcelByIDQueryResponse is the full detail read model of a parcel.
type GetParcelByIDQueryResponse struct {
	ID                 kernel.UUID
	TrackingNumber     string
	OwnerID            kernel.UUID
	Status             string
	SenderName         string
	SenderPhone        string
	ReceiverName       string
	ReceiverPhone      string
	PickupAddress      string
	DestinationAddress string
	PickupLat          *float64
	PickupLng          *float64
	DestinationLat     *float64
	DestinationLng     *float64
	CurrentLat         *float64
	CurrentLng         *float64
	WeightKg           float64
	Price              float64
	Courier            *CourierResponse
	CreatedAt          time.Time
	DeliveryDeadline   time.Time
	Timeline           []TimelineEntryResponse
}
