// Package courier contains the Courier aggregate: the people who pick up
// and deliver parcels. Couriers carry display data surfaced to customers
// (name, phone, vehicle) plus an availability status used by the
// assignment job.
package courier

import (
	"errors"
	"fmt"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
	"github.com/maxwellkiplagat/Deliveroo/internal/pkg/errs"
)

// Availability is the courier's duty status.
type Availability int

const (
	// AvailabilityUnknown represents an invalid or undefined availability.
	AvailabilityUnknown Availability = iota

	// Available means the courier can take a new parcel.
	Available

	// Busy means the courier is currently handling a delivery.
	Busy
)

// Domain errors for courier operations.
var (
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// String returns the wire name of the availability.
func (a Availability) String() string {
	switch a {
	case Available:
		return "available"
	case Busy:
		return "busy"
	default:
		return "unknown"
	}
}

// AvailabilityFromString parses a wire-format availability name.
func AvailabilityFromString(s string) (Availability, error) {
	switch s {
	case "available":
		return Available, nil
	case "busy":
		return Busy, nil
	default:
		return AvailabilityUnknown, errs.NewValueIsInvalidErrorWithCause("availability",
			fmt.Errorf("%q is not a valid availability", s))
	}
}

// Validate checks the availability is one of the defined duty statuses.
func (a Availability) Validate() error {
	if a != Available && a != Busy {
		return errs.NewValueIsInvalidErrorWithCause("availability",
			fmt.Errorf("%d is not a valid availability", a))
	}
	return nil
}

// Courier is an aggregate root representing a delivery courier.
//
// Business rules:
//   - must have a valid UUID, non-empty name, and valid phone
//   - availability toggles between available and busy as parcels are
//     assigned and completed
//   - position updates are free-form; couriers report from anywhere
type Courier struct {
	id           kernel.UUID
	name         string
	phone        kernel.Phone
	vehicleType  string
	availability Availability
	location     *kernel.GeoPoint

	isConstructed bool
}

// NewCourier creates an available courier with the given details.
// The vehicle type is free-form display text ("Motorcycle", "Van").
func NewCourier(id kernel.UUID, name string, phone kernel.Phone, vehicleType string) (*Courier, error) {
	c := &Courier{
		availability:  Available,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}
	c.vehicleType = vehicleType

	return c, nil
}

// RestoreCourier rehydrates a courier from persistence.
func RestoreCourier(
	id kernel.UUID,
	name string,
	phone kernel.Phone,
	vehicleType string,
	availability Availability,
	location *kernel.GeoPoint,
) (*Courier, error) {
	c, err := NewCourier(id, name, phone, vehicleType)
	if err != nil {
		return nil, err
	}
	if err = availability.Validate(); err != nil {
		return nil, err
	}
	c.availability = availability

	if location != nil {
		if err = location.Validate(); err != nil {
			return nil, err
		}
		point := *location
		c.location = &point
	}

	return c, nil
}

// Validate ensures the Courier was created through a constructor.
func (c *Courier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCourierIsNotConstructed
	}
	return nil
}

// IsEqual compares two couriers by identifier.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's display name.
func (c *Courier) Name() string {
	return c.name
}

// Phone returns the courier's phone number.
func (c *Courier) Phone() kernel.Phone {
	return c.phone
}

// VehicleType returns the courier's vehicle description.
func (c *Courier) VehicleType() string {
	return c.vehicleType
}

// Availability returns the courier's duty status.
func (c *Courier) Availability() Availability {
	return c.availability
}

// Location returns the courier's last reported position, or nil.
func (c *Courier) Location() *kernel.GeoPoint {
	return c.location
}

// IsAvailable reports whether the courier can take a new parcel.
func (c *Courier) IsAvailable() bool {
	return c.availability == Available
}

// MarkBusy flags the courier as handling a delivery.
func (c *Courier) MarkBusy() {
	c.availability = Busy
}

// MarkAvailable returns the courier to the assignment pool.
func (c *Courier) MarkAvailable() {
	c.availability = Available
}

// MoveTo records the courier's current position.
func (c *Courier) MoveTo(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	c.location = &point
	return nil
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	c.phone = phone
	return nil
}
