package queries

import (
	"errors"
	"time"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
	"github.com/maxwellkiplagat/Deliveroo/internal/pkg/guard"
)

var ErrTrackParcelQueryIsNotConstructed = errors.New(
	"TrackParcelQuery must be created via NewTrackParcelQuery constructor",
)

// TrackParcelQuery retrieves the public tracking view of a parcel by its
// tracking number. This is the only read that requires no authentication,
// so the response deliberately omits contacts, price and owner.
//
// Example:
//
//	tn, _ := kernel.TrackingNumberFromString("DEL123456ABC")
//	query, _ := NewTrackParcelQuery(tn)
//	handler := NewTrackParcelQueryHandler(db, cache, time.Minute)
//
//	snapshot, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("tracking lookup failed: %w", err)
//	}
type TrackParcelQuery struct { //nolint:recvcheck //using for validation
	trackingNumber kernel.TrackingNumber

	guard guard.ConstructorGuard
}

// NewTrackParcelQuery creates a tracking query for trackingNumber.
func NewTrackParcelQuery(trackingNumber kernel.TrackingNumber) (TrackParcelQuery, error) {
	if err := trackingNumber.Validate(); err != nil {
		return TrackParcelQuery{}, err
	}

	return TrackParcelQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrTrackParcelQueryIsNotConstructed if validation fails.
func (q TrackParcelQuery) Validate() error {
	return q.guard.Validate(ErrTrackParcelQueryIsNotConstructed)
}

// TrackingNumber returns the tracking number being looked up.
func (q TrackParcelQuery) TrackingNumber() kernel.TrackingNumber {
	return q.trackingNumber
}

// TrackParcelQueryResponse is the public tracking snapshot. It is also the
// payload cached by the tracking cache, so field changes invalidate any
// serialized snapshots.
type TrackParcelQueryResponse struct {
	TrackingNumber     string              `json:"trackingNumber"`
	Status             string              `json:"status"`
	PickupAddress      string              `json:"pickupAddress"`
	DestinationAddress string              `json:"destinationAddress"`
	CurrentLat         *float64            `json:"currentLat,omitempty"`
	CurrentLng         *float64            `json:"currentLng,omitempty"`
	DeliveryDeadline   time.Time           `json:"deliveryDeadline"`
	Timeline           []TimelineEntryView `json:"timeline"`
}

// TimelineEntryView is the public form of one timeline event.
type TimelineEntryView struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Location  string    `json:"location"`
}
