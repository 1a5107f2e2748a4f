package commands

import (
	"errors"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
	"github.com/maxwellkiplagat/Deliveroo/internal/pkg/errs"
	"github.com/maxwellkiplagat/Deliveroo/internal/pkg/guard"
)

var ErrCreateCourierCommandIsNotConstructed = errors.New(
	"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
)

// CreateCourierCommand represents a request to register a new courier.
// Encapsulates the courier's contact details and vehicle type.
//
// Example:
//
//	cmd, err := NewCreateCourierCommand("John Rider", "+254 700 000 000", "motorbike")
//	if err != nil {
//	    return fmt.Errorf("invalid courier data: %w", err)
//	}
//
//	handler := NewCreateCourierCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create courier: %w", err)
//	}
//	fmt.Printf("Created courier with ID: %s", cmd.CourierID())
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID   kernel.UUID
	name        string
	phone       kernel.Phone
	vehicleType string

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand creates a command to register a new courier.
// Automatically generates a unique ID for the courier.
// Validates that name and vehicle type are not empty and the phone parses.
func NewCreateCourierCommand(name string, phone string, vehicleType string) (CreateCourierCommand, error) {
	command := CreateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(kernel.NewUUID()),
		command.setName(name),
		command.setPhone(phone),
		command.setVehicleType(vehicleType),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateCourierCommandIsNotConstructed if validation fails.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// CourierID returns the generated courier ID.
func (c CreateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Name returns the courier name.
func (c CreateCourierCommand) Name() string {
	return c.name
}

// Phone returns the courier phone.
func (c CreateCourierCommand) Phone() kernel.Phone {
	return c.phone
}

// VehicleType returns the courier's vehicle type.
func (c CreateCourierCommand) VehicleType() string {
	return c.vehicleType
}

func (c *CreateCourierCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}

func (c *CreateCourierCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateCourierCommand) setPhone(phone string) error {
	parsed, err := kernel.NewPhone(phone)
	if err != nil {
		return err
	}

	c.phone = parsed
	return nil
}

func (c *CreateCourierCommand) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return errs.NewValueIsRequiredError("vehicleType")
	}

	c.vehicleType = vehicleType
	return nil
}
