package commands

import (
	"errors"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
	"github.com/maxwellkiplagat/Deliveroo/internal/pkg/guard"
)

var ErrUpdateParcelLocationCommandIsNotConstructed = errors.New(
	"UpdateParcelLocationCommand must be created via NewUpdateParcelLocationCommand constructor",
)

// UpdateParcelLocationCommand represents an admin request to record a new
// current location for a parcel. Admins may correct the location of
// delivered parcels; cancelled parcels reject the update.
type UpdateParcelLocationCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	point    kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewUpdateParcelLocationCommand creates a command to move a parcel's
// current location marker to point.
func NewUpdateParcelLocationCommand(parcelID kernel.UUID, point kernel.GeoPoint) (UpdateParcelLocationCommand, error) {
	command := UpdateParcelLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setParcelID(parcelID),
		command.setPoint(point),
	); err != nil {
		return UpdateParcelLocationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateParcelLocationCommandIsNotConstructed if validation fails.
func (c UpdateParcelLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelLocationCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to update.
func (c UpdateParcelLocationCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Point returns the new current location.
func (c UpdateParcelLocationCommand) Point() kernel.GeoPoint {
	return c.point
}

func (c *UpdateParcelLocationCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.parcelID = id
	return nil
}

func (c *UpdateParcelLocationCommand) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}

	c.point = point
	return nil
}
