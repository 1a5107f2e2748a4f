package commands

import (
	"errors"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/parcel"
	"github.com/maxwellkiplagat/Deliveroo/internal/pkg/guard"
)

var ErrEditParcelCommandIsNotConstructed = errors.New(
	"EditParcelCommand must be created via NewEditParcelCommand constructor",
)

// EditParcelCommand represents a customer's request to change the receiver
// contact or destination of their parcel. Allowed only while the parcel is
// still editable. The price is never recalculated.
type EditParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID    kernel.UUID
	requesterID kernel.UUID

	receiver           parcel.Party
	destinationAddress kernel.Address
	destinationCoords  *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewEditParcelCommand creates a command to edit a parcel's delivery details.
func NewEditParcelCommand(
	parcelID kernel.UUID,
	requesterID kernel.UUID,
	receiverName string,
	receiverPhone string,
	destinationAddress string,
) (EditParcelCommand, error) {
	command := EditParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setParcelID(parcelID),
		command.setRequesterID(requesterID),
		command.setReceiver(receiverName, receiverPhone),
		command.setDestinationAddress(destinationAddress),
	); err != nil {
		return EditParcelCommand{}, err
	}

	return command, nil
}

// WithDestinationCoords attaches optional destination coordinates and
// returns the updated command.
func (c EditParcelCommand) WithDestinationCoords(point *kernel.GeoPoint) (EditParcelCommand, error) {
	if point != nil {
		if err := point.Validate(); err != nil {
			return EditParcelCommand{}, err
		}
		copied := *point
		c.destinationCoords = &copied
	}
	return c, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEditParcelCommandIsNotConstructed if validation fails.
func (c EditParcelCommand) Validate() error {
	return c.guard.Validate(ErrEditParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to edit.
func (c EditParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// RequesterID returns the identifier of the user requesting the edit.
func (c EditParcelCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

// Receiver returns the new receiver contact details.
func (c EditParcelCommand) Receiver() parcel.Party {
	return c.receiver
}

// DestinationAddress returns the new destination address.
func (c EditParcelCommand) DestinationAddress() kernel.Address {
	return c.destinationAddress
}

// DestinationCoords returns the optional new destination coordinates, or nil.
func (c EditParcelCommand) DestinationCoords() *kernel.GeoPoint {
	return c.destinationCoords
}

func (c *EditParcelCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.parcelID = id
	return nil
}

func (c *EditParcelCommand) setRequesterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.requesterID = id
	return nil
}

func (c *EditParcelCommand) setReceiver(name string, phone string) error {
	party, err := newParty(name, phone)
	if err != nil {
		return err
	}

	c.receiver = party
	return nil
}

func (c *EditParcelCommand) setDestinationAddress(destination string) error {
	address, err := kernel.NewAddress(destination)
	if err != nil {
		return err
	}

	c.destinationAddress = address
	return nil
}
