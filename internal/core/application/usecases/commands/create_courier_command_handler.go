package commands

import (
	"context"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/courier"
)

// CreateCourierCommandHandler handles the business logic for courier creation.
// New couriers start in Available state and may immediately receive parcels.
type CreateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewCreateCourierCommandHandler creates a handler for courier creation operations.
// Requires a CourierUoWFactory for transactional persistence.
func NewCreateCourierCommandHandler(uowFactory CourierUoWFactory) CreateCourierCommandHandler {
	return CreateCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier creation command.
// Uses a transaction to ensure the courier is properly persisted or rolled
// back on error.
func (h CreateCourierCommandHandler) Handle(ctx context.Context, cmd CreateCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := courier.NewCourier(cmd.CourierID(), cmd.Name(), cmd.Phone(), cmd.VehicleType())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CourierRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
