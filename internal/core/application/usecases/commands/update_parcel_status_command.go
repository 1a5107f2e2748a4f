package commands

import (
	"errors"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/parcel"
	"github.com/maxwellkiplagat/Deliveroo/internal/pkg/guard"
)

var ErrUpdateParcelStatusCommandIsNotConstructed = errors.New(
	"UpdateParcelStatusCommand must be created via NewUpdateParcelStatusCommand constructor",
)

// UpdateParcelStatusCommand represents an admin request to move a parcel to
// a new lifecycle status. The status machine on the aggregate decides
// whether the transition is legal.
type UpdateParcelStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	status   parcel.Status

	guard guard.ConstructorGuard
}

// NewUpdateParcelStatusCommand creates a command to change a parcel's status.
// Validates that the parcel ID is constructed and the target status is a
// known one. Transition legality is checked later by the aggregate.
func NewUpdateParcelStatusCommand(parcelID kernel.UUID, status parcel.Status) (UpdateParcelStatusCommand, error) {
	command := UpdateParcelStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setParcelID(parcelID),
		command.setStatus(status),
	); err != nil {
		return UpdateParcelStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateParcelStatusCommandIsNotConstructed if validation fails.
func (c UpdateParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelStatusCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to update.
func (c UpdateParcelStatusCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Status returns the target status.
func (c UpdateParcelStatusCommand) Status() parcel.Status {
	return c.status
}

func (c *UpdateParcelStatusCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.parcelID = id
	return nil
}

func (c *UpdateParcelStatusCommand) setStatus(status parcel.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
