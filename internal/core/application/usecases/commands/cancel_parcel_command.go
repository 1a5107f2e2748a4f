package commands

import (
	"errors"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
	"github.com/maxwellkiplagat/Deliveroo/internal/pkg/guard"
)

var (
	ErrCancelParcelCommandIsNotConstructed = errors.New(
		"CancelParcelCommand must be created via NewCancelParcelCommand constructor",
	)

	// ErrNotParcelOwner is returned when a user attempts a self-service
	// operation on a parcel that belongs to somebody else.
	ErrNotParcelOwner = errors.New("parcel belongs to another user")
)

// CancelParcelCommand represents a request to cancel a parcel. Owners may
// cancel their own parcels; admins may cancel anybody's via ByAdmin. The
// aggregate rejects cancellation only once the parcel reached a terminal
// status.
type CancelParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID    kernel.UUID
	requesterID kernel.UUID
	byAdmin     bool

	guard guard.ConstructorGuard
}

// NewCancelParcelCommand creates a command to cancel a parcel on behalf of
// requesterID.
func NewCancelParcelCommand(parcelID kernel.UUID, requesterID kernel.UUID) (CancelParcelCommand, error) {
	command := CancelParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setParcelID(parcelID),
		command.setRequesterID(requesterID),
	); err != nil {
		return CancelParcelCommand{}, err
	}

	return command, nil
}

// ByAdmin marks the cancellation as performed by an admin, which waives
// the ownership check.
func (c CancelParcelCommand) ByAdmin() CancelParcelCommand {
	c.byAdmin = true
	return c
}

// IsByAdmin reports whether the ownership check is waived.
func (c CancelParcelCommand) IsByAdmin() bool {
	return c.byAdmin
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelParcelCommandIsNotConstructed if validation fails.
func (c CancelParcelCommand) Validate() error {
	return c.guard.Validate(ErrCancelParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to cancel.
func (c CancelParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// RequesterID returns the identifier of the user requesting cancellation.
func (c CancelParcelCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

func (c *CancelParcelCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.parcelID = id
	return nil
}

func (c *CancelParcelCommand) setRequesterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.requesterID = id
	return nil
}
