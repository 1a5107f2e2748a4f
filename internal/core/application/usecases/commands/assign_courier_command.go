package commands

import (
	"errors"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
	"github.com/maxwellkiplagat/Deliveroo/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand triggers the assignment of an available courier to a
// pending parcel. It finds the oldest unassigned pending parcel and matches
// it with the closest available courier.
//
// Example:
//
//	cmd := NewAssignCourierCommand()
//	handler := NewAssignCourierCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("no parcels to assign or no available couriers: %v", err)
//	}
type AssignCourierCommand struct {
	parcelID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignCourierCommand creates a new command to trigger courier assignment.
// This is a parameterless command that initiates the courier-parcel matching process.
func NewAssignCourierCommand() AssignCourierCommand {
	return AssignCourierCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// NewAssignCourierCommandForParcel creates a command that assigns a courier
// to one specific parcel instead of the oldest pending one. Used by the
// admin panel's manual assignment.
func NewAssignCourierCommandForParcel(parcelID kernel.UUID) (AssignCourierCommand, error) {
	if err := parcelID.Validate(); err != nil {
		return AssignCourierCommand{}, err
	}

	return AssignCourierCommand{
		parcelID: &parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// ParcelID returns the targeted parcel, or nil when the command picks the
// oldest unassigned pending parcel itself.
func (c *AssignCourierCommand) ParcelID() *kernel.UUID {
	return c.parcelID
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignCourierCommandIsNotConstructed if validation fails.
func (c *AssignCourierCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignCourierCommandIsNotConstructed,
	)
}
