package commands

import (
	"errors"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/parcel"
	"github.com/maxwellkiplagat/Deliveroo/internal/pkg/errs"
	"github.com/maxwellkiplagat/Deliveroo/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand represents a request to register a new parcel delivery.
// Encapsulates the sender and receiver contacts, the route, the weight and
// the price the customer accepted at quoting time.
//
// Example:
//
//	cmd, err := NewCreateParcelCommand(
//	    parcelID, ownerID,
//	    "Jane Doe", "+254 712 345 678",
//	    "John Smith", "+254 733 000 111",
//	    "12 Moi Avenue, Nairobi", "34 Kenyatta Road, Mombasa",
//	    3,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
//
//	handler := NewCreateParcelCommandHandler(uowFactory, tariff, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create parcel: %w", err)
//	}
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	ownerID  kernel.UUID

	sender   parcel.Party
	receiver parcel.Party

	pickupAddress      kernel.Address
	destinationAddress kernel.Address

	pickupCoords      *kernel.GeoPoint
	destinationCoords *kernel.GeoPoint

	weightKg float64

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new parcel.
// Contact and address fields are validated through the kernel value object
// constructors, so the command can only be built from well-formed input.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	ownerID kernel.UUID,
	senderName string,
	senderPhone string,
	receiverName string,
	receiverPhone string,
	pickupAddress string,
	destinationAddress string,
	weightKg float64,
) (CreateParcelCommand, error) {
	command := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setParcelID(parcelID),
		command.setOwnerID(ownerID),
		command.setSender(senderName, senderPhone),
		command.setReceiver(receiverName, receiverPhone),
		command.setAddresses(pickupAddress, destinationAddress),
		command.setWeight(weightKg),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return command, nil
}

// WithCoords attaches optional pickup and destination coordinates and
// returns the updated command. Either point may be nil.
func (c CreateParcelCommand) WithCoords(pickup *kernel.GeoPoint, destination *kernel.GeoPoint) (CreateParcelCommand, error) {
	if pickup != nil {
		if err := pickup.Validate(); err != nil {
			return CreateParcelCommand{}, err
		}
		point := *pickup
		c.pickupCoords = &point
	}
	if destination != nil {
		if err := destination.Validate(); err != nil {
			return CreateParcelCommand{}, err
		}
		point := *destination
		c.destinationCoords = &point
	}
	return c, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateParcelCommandIsNotConstructed if validation fails.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier the new parcel will be created with.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// OwnerID returns the identifier of the user creating the parcel.
func (c CreateParcelCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Sender returns the sender contact details.
func (c CreateParcelCommand) Sender() parcel.Party {
	return c.sender
}

// Receiver returns the receiver contact details.
func (c CreateParcelCommand) Receiver() parcel.Party {
	return c.receiver
}

// PickupAddress returns the pickup address.
func (c CreateParcelCommand) PickupAddress() kernel.Address {
	return c.pickupAddress
}

// DestinationAddress returns the destination address.
func (c CreateParcelCommand) DestinationAddress() kernel.Address {
	return c.destinationAddress
}

// PickupCoords returns the optional pickup coordinates, or nil.
func (c CreateParcelCommand) PickupCoords() *kernel.GeoPoint {
	return c.pickupCoords
}

// DestinationCoords returns the optional destination coordinates, or nil.
func (c CreateParcelCommand) DestinationCoords() *kernel.GeoPoint {
	return c.destinationCoords
}

// WeightKg returns the parcel weight in kilograms.
func (c CreateParcelCommand) WeightKg() float64 {
	return c.weightKg
}

func (c *CreateParcelCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.parcelID = id
	return nil
}

func (c *CreateParcelCommand) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.ownerID = id
	return nil
}

func (c *CreateParcelCommand) setSender(name string, phone string) error {
	party, err := newParty(name, phone)
	if err != nil {
		return err
	}

	c.sender = party
	return nil
}

func (c *CreateParcelCommand) setReceiver(name string, phone string) error {
	party, err := newParty(name, phone)
	if err != nil {
		return err
	}

	c.receiver = party
	return nil
}

func (c *CreateParcelCommand) setAddresses(pickup string, destination string) error {
	pickupAddress, err := kernel.NewAddress(pickup)
	if err != nil {
		return err
	}

	destinationAddress, err := kernel.NewAddress(destination)
	if err != nil {
		return err
	}

	if pickupAddress.IsEqual(destinationAddress) {
		return parcel.ErrAddressesMustDiffer
	}

	c.pickupAddress = pickupAddress
	c.destinationAddress = destinationAddress
	return nil
}

func (c *CreateParcelCommand) setWeight(weightKg float64) error {
	if weightKg <= 0 || weightKg > parcel.WeightMaxKg {
		return errs.NewValueIsOutOfRangeError("weightKg", weightKg, 0.0, parcel.WeightMaxKg)
	}

	c.weightKg = weightKg
	return nil
}

func newParty(name string, phone string) (parcel.Party, error) {
	personName, err := kernel.NewPersonName(name)
	if err != nil {
		return parcel.Party{}, err
	}

	personPhone, err := kernel.NewPhone(phone)
	if err != nil {
		return parcel.Party{}, err
	}

	return parcel.NewParty(personName, personPhone)
}
