package parcel

import (
	"errors"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
	"github.com/maxwellkiplagat/Deliveroo/internal/pkg/guard"
)

// ErrPartyIsNotConstructed is returned when validating a zero-value Party.
var ErrPartyIsNotConstructed = errors.New("Party must be created via NewParty constructor")

// Party identifies one side of a shipment: the sender or the receiver.
// Both components are validated kernel value objects.
type Party struct {
	name  kernel.PersonName
	phone kernel.Phone

	guard guard.ConstructorGuard
}

// NewParty creates a Party from a validated name and phone.
func NewParty(name kernel.PersonName, phone kernel.Phone) (Party, error) {
	if err := errors.Join(name.Validate(), phone.Validate()); err != nil {
		return Party{}, err
	}

	return Party{
		name:  name,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Name returns the party's name.
func (p Party) Name() kernel.PersonName {
	return p.name
}

// Phone returns the party's phone number.
func (p Party) Phone() kernel.Phone {
	return p.phone
}

// Validate checks that the Party was built through NewParty.
func (p Party) Validate() error {
	return p.guard.Validate(ErrPartyIsNotConstructed)
}

// CourierRef is a weak reference to the courier assigned to a parcel.
// It snapshots the courier's display data; it does not own the courier
// aggregate and is not kept in sync with later courier edits.
type CourierRef struct {
	id    kernel.UUID
	name  string
	phone string
}

// NewCourierRef creates a courier reference for display on a parcel.
func NewCourierRef(id kernel.UUID, name string, phone string) (CourierRef, error) {
	if err := id.Validate(); err != nil {
		return CourierRef{}, err
	}

	return CourierRef{id: id, name: name, phone: phone}, nil
}

// ID returns the referenced courier's identifier.
func (c CourierRef) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's display name at assignment time.
func (c CourierRef) Name() string {
	return c.name
}

// Phone returns the courier's phone at assignment time.
func (c CourierRef) Phone() string {
	return c.phone
}
