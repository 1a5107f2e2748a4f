package parcel

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
	"github.com/maxwellkiplagat/Deliveroo/internal/pkg/errs"
)

const (
	// WeightMaxKg is the heaviest parcel the service accepts.
	WeightMaxKg = 100.0

	// DeliveryDeadlineWindow is how long after creation a parcel is
	// promised to arrive.
	DeliveryDeadlineWindow = 48 * time.Hour
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not
	// created through NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel")

	// ErrLocationUpdateRejected is returned when attempting a location
	// update on a cancelled parcel.
	ErrLocationUpdateRejected = errors.New("cannot update location of a cancelled parcel")

	// ErrParcelNotEditable is returned when the owner attempts a
	// self-service edit after the parcel left the editable statuses.
	ErrParcelNotEditable = errors.New("parcel can no longer be updated")

	// ErrAddressesMustDiffer is returned when pickup and destination
	// addresses are the same exact string.
	ErrAddressesMustDiffer = errors.New("pickup and destination addresses cannot be the same")
)

// Parcel is the aggregate root of the delivery domain. It owns the shipment
// details, the lifecycle status, and the append-only timeline of status and
// location events.
//
// Invariants:
//   - pickup and destination addresses differ (exact string comparison)
//   - the timeline is never empty and its last entry's status equals the
//     parcel's current status
//   - price is fixed at creation and never recalculated on edits
//   - terminal statuses (delivered, cancelled) reject status transitions;
//     cancelled additionally rejects location updates
type Parcel struct {
	id             kernel.UUID
	trackingNumber kernel.TrackingNumber
	ownerID        kernel.UUID

	sender   Party
	receiver Party

	pickupAddress      kernel.Address
	destinationAddress kernel.Address
	pickupCoords       *kernel.GeoPoint
	destinationCoords  *kernel.GeoPoint
	currentLocation    *kernel.GeoPoint

	weightKg float64
	price    float64

	status   Status
	timeline []TimelineEntry
	courier  *CourierRef

	createdAt        time.Time
	deliveryDeadline time.Time

	isConstructed bool
}

// NewParcel creates a parcel in pending status with a single initial
// timeline entry located at the pickup address. The delivery deadline is
// set to createdAt plus DeliveryDeadlineWindow.
//
// The price must come from the pricing engine and be positive; it is
// immutable for the lifetime of the parcel.
func NewParcel(
	id kernel.UUID,
	trackingNumber kernel.TrackingNumber,
	ownerID kernel.UUID,
	sender Party,
	receiver Party,
	pickupAddress kernel.Address,
	destinationAddress kernel.Address,
	weightKg float64,
	price float64,
	createdAt time.Time,
) (*Parcel, error) {
	p := &Parcel{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingNumber(trackingNumber),
		p.setOwnerID(ownerID),
		p.setSender(sender),
		p.setReceiver(receiver),
		p.setAddresses(pickupAddress, destinationAddress),
		p.setWeight(weightKg),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}
	p.createdAt = createdAt
	p.deliveryDeadline = createdAt.Add(DeliveryDeadlineWindow)

	initial, err := NewTimelineEntry(Pending, createdAt, pickupAddress.String())
	if err != nil {
		return nil, err
	}
	p.timeline = []TimelineEntry{initial}

	return p, nil
}

// RestoreParcel rehydrates a parcel from persistence. Unlike NewParcel it
// accepts the full historical state, but it still re-checks the aggregate
// invariants so a corrupted row cannot produce an invalid aggregate.
func RestoreParcel(
	id kernel.UUID,
	trackingNumber kernel.TrackingNumber,
	ownerID kernel.UUID,
	sender Party,
	receiver Party,
	pickupAddress kernel.Address,
	destinationAddress kernel.Address,
	weightKg float64,
	price float64,
	status Status,
	timeline []TimelineEntry,
	courier *CourierRef,
	pickupCoords *kernel.GeoPoint,
	destinationCoords *kernel.GeoPoint,
	currentLocation *kernel.GeoPoint,
	createdAt time.Time,
	deliveryDeadline time.Time,
) (*Parcel, error) {
	p := &Parcel{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingNumber(trackingNumber),
		p.setOwnerID(ownerID),
		p.setSender(sender),
		p.setReceiver(receiver),
		p.setAddresses(pickupAddress, destinationAddress),
		p.setWeight(weightKg),
		p.setPrice(price),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	p.status = status

	if len(timeline) == 0 {
		return nil, errs.NewValueIsRequiredError("timeline")
	}
	for _, entry := range timeline {
		if err := entry.Validate(); err != nil {
			return nil, err
		}
	}
	if last := timeline[len(timeline)-1]; last.Status() != status {
		return nil, errs.NewValueIsInvalidErrorWithCause("timeline",
			fmt.Errorf("last entry status %s does not match parcel status %s", last.Status(), status))
	}
	p.timeline = append([]TimelineEntry(nil), timeline...)

	if err := p.setOptionalCoords(pickupCoords, destinationCoords, currentLocation); err != nil {
		return nil, err
	}
	if courier != nil {
		if err := courier.ID().Validate(); err != nil {
			return nil, err
		}
		ref := *courier
		p.courier = &ref
	}

	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}
	p.createdAt = createdAt
	if deliveryDeadline.IsZero() {
		deliveryDeadline = createdAt.Add(DeliveryDeadlineWindow)
	}
	p.deliveryDeadline = deliveryDeadline

	return p, nil
}

// Validate ensures the Parcel was constructed through a factory function.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares two parcels by identifier.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// TrackingNumber returns the public tracking number.
func (p *Parcel) TrackingNumber() kernel.TrackingNumber {
	return p.trackingNumber
}

// OwnerID returns the identifier of the user who created the parcel.
func (p *Parcel) OwnerID() kernel.UUID {
	return p.ownerID
}

// Sender returns the sending party.
func (p *Parcel) Sender() Party {
	return p.sender
}

// Receiver returns the receiving party.
func (p *Parcel) Receiver() Party {
	return p.receiver
}

// PickupAddress returns the pickup address.
func (p *Parcel) PickupAddress() kernel.Address {
	return p.pickupAddress
}

// DestinationAddress returns the destination address.
func (p *Parcel) DestinationAddress() kernel.Address {
	return p.destinationAddress
}

// PickupCoords returns the optional pickup coordinates.
func (p *Parcel) PickupCoords() *kernel.GeoPoint {
	return p.pickupCoords
}

// DestinationCoords returns the optional destination coordinates.
func (p *Parcel) DestinationCoords() *kernel.GeoPoint {
	return p.destinationCoords
}

// CurrentLocation returns the last reported location, if any.
func (p *Parcel) CurrentLocation() *kernel.GeoPoint {
	return p.currentLocation
}

// WeightKg returns the parcel weight in kilograms.
func (p *Parcel) WeightKg() float64 {
	return p.weightKg
}

// Price returns the price fixed at creation.
func (p *Parcel) Price() float64 {
	return p.price
}

// Status returns the current lifecycle status.
func (p *Parcel) Status() Status {
	return p.status
}

// Timeline returns a copy of the parcel's event history, oldest first.
func (p *Parcel) Timeline() []TimelineEntry {
	return append([]TimelineEntry(nil), p.timeline...)
}

// Courier returns the assigned courier reference, or nil.
func (p *Parcel) Courier() *CourierRef {
	return p.courier
}

// CreatedAt returns the immutable creation timestamp.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// DeliveryDeadline returns the promised delivery time.
func (p *Parcel) DeliveryDeadline() time.Time {
	return p.deliveryDeadline
}

// CanUpdate reports whether the owner may still edit destination and
// receiver details. It is derived from the status, never stored: true only
// while the parcel is pending or picked up.
func (p *Parcel) CanUpdate() bool {
	return p.status == Pending || p.status == PickedUp
}

// SetCoords attaches pickup and destination coordinates resolved by
// geocoding. Either argument may be nil to leave the value unchanged.
func (p *Parcel) SetCoords(pickup *kernel.GeoPoint, destination *kernel.GeoPoint) error {
	if pickup != nil {
		if err := pickup.Validate(); err != nil {
			return err
		}
		point := *pickup
		p.pickupCoords = &point
	}
	if destination != nil {
		if err := destination.Validate(); err != nil {
			return err
		}
		point := *destination
		p.destinationCoords = &point
	}
	return nil
}

// ChangeStatus moves the parcel to a new status, enforcing the lifecycle
// state machine, and appends exactly one timeline entry carrying the new
// status, the update time, and the location label describing the actor.
//
// Returns ErrInvalidTransition (wrapped) when the move is not allowed;
// the parcel is unchanged in that case.
func (p *Parcel) ChangeStatus(to Status, at time.Time, locationLabel string) error {
	newStatus, err := p.status.Transition(to)
	if err != nil {
		return err
	}

	entry, err := NewTimelineEntry(newStatus, at, locationLabel)
	if err != nil {
		return err
	}

	p.status = newStatus
	p.timeline = append(p.timeline, entry)
	return nil
}

// Cancel marks the parcel cancelled. Allowed from any non-terminal status.
func (p *Parcel) Cancel(at time.Time, locationLabel string) error {
	return p.ChangeStatus(Cancelled, at, locationLabel)
}

// UpdateLocation records a new current location and appends a timeline
// entry with the parcel's current status. Permitted on any parcel that is
// not cancelled; admins use this to correct the location of delivered
// parcels too.
//
// Returns ErrLocationUpdateRejected for cancelled parcels.
func (p *Parcel) UpdateLocation(point kernel.GeoPoint, at time.Time, locationLabel string) error {
	if p.status == Cancelled {
		return ErrLocationUpdateRejected
	}
	if err := point.Validate(); err != nil {
		return err
	}

	entry, err := NewTimelineEntry(p.status, at, locationLabel)
	if err != nil {
		return err
	}

	p.currentLocation = &point
	p.timeline = append(p.timeline, entry)
	return nil
}

// EditDelivery updates the receiver and destination details on behalf of
// the owning user. Only permitted while CanUpdate is true. The price is
// not recalculated.
//
// Returns ErrParcelNotEditable once the parcel left the editable statuses,
// or ErrAddressesMustDiffer when the new destination equals the pickup
// address.
func (p *Parcel) EditDelivery(
	receiver Party,
	destinationAddress kernel.Address,
	destinationCoords *kernel.GeoPoint,
) error {
	if !p.CanUpdate() {
		return ErrParcelNotEditable
	}
	if err := receiver.Validate(); err != nil {
		return err
	}
	if err := destinationAddress.Validate(); err != nil {
		return err
	}
	if p.pickupAddress.IsEqual(destinationAddress) {
		return ErrAddressesMustDiffer
	}
	if destinationCoords != nil {
		if err := destinationCoords.Validate(); err != nil {
			return err
		}
		point := *destinationCoords
		p.destinationCoords = &point
	}

	p.receiver = receiver
	p.destinationAddress = destinationAddress
	return nil
}

// AssignCourier attaches a courier reference to the parcel.
// Rejected once the parcel reached a terminal status.
func (p *Parcel) AssignCourier(ref CourierRef) error {
	if p.status.IsTerminal() {
		return fmt.Errorf("%w: cannot assign courier to %s parcels", ErrInvalidTransition, p.status)
	}
	if err := ref.ID().Validate(); err != nil {
		return err
	}

	p.courier = &ref
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setTrackingNumber(tn kernel.TrackingNumber) error {
	if err := tn.Validate(); err != nil {
		return err
	}
	p.trackingNumber = tn
	return nil
}

func (p *Parcel) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ownerID", err)
	}
	p.ownerID = id
	return nil
}

func (p *Parcel) setSender(sender Party) error {
	if err := sender.Validate(); err != nil {
		return err
	}
	p.sender = sender
	return nil
}

func (p *Parcel) setReceiver(receiver Party) error {
	if err := receiver.Validate(); err != nil {
		return err
	}
	p.receiver = receiver
	return nil
}

func (p *Parcel) setAddresses(pickup kernel.Address, destination kernel.Address) error {
	if err := pickup.Validate(); err != nil {
		return err
	}
	if err := destination.Validate(); err != nil {
		return err
	}
	if pickup.IsEqual(destination) {
		return ErrAddressesMustDiffer
	}
	p.pickupAddress = pickup
	p.destinationAddress = destination
	return nil
}

func (p *Parcel) setWeight(weightKg float64) error {
	if math.IsNaN(weightKg) || math.IsInf(weightKg, 0) {
		return errs.NewValueIsInvalidError("weight")
	}
	if weightKg <= 0 || weightKg > WeightMaxKg {
		return errs.NewValueIsOutOfRangeError("weight", weightKg, 0.0, WeightMaxKg)
	}
	p.weightKg = weightKg
	return nil
}

func (p *Parcel) setPrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is not greater than 0", price))
	}
	p.price = price
	return nil
}

func (p *Parcel) setOptionalCoords(pickup, destination, current *kernel.GeoPoint) error {
	if pickup != nil {
		if err := pickup.Validate(); err != nil {
			return err
		}
		point := *pickup
		p.pickupCoords = &point
	}
	if destination != nil {
		if err := destination.Validate(); err != nil {
			return err
		}
		point := *destination
		p.destinationCoords = &point
	}
	if current != nil {
		if err := current.Validate(); err != nil {
			return err
		}
		point := *current
		p.currentLocation = &point
	}
	return nil
}
