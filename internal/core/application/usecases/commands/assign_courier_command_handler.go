package commands

import (
	"context"
	"errors"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/parcel"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/services"
	"github.com/maxwellkiplagat/Deliveroo/internal/pkg/errs"
)

var (
	ErrNoAvailableCouriersFound = errors.New("no available couriers found")
	ErrNoParcelFound            = errors.New("no parcel found")
	ErrParcelAlreadyAssigned    = errors.New("parcel already has a courier assigned")
)

// AssignCourierCommandHandler orchestrates the courier assignment process.
// Finds pending parcels and matches them with available couriers using the
// ParcelDispatcher domain service. Ensures transactional consistency when
// updating both parcel and courier states.
//
// Example:
//
//	handler := NewAssignCourierCommandHandler(uowFactory)
//	cmd := NewAssignCourierCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoParcelFound):
//	    log.Println("No pending parcels")
//	case errors.Is(err, ErrNoAvailableCouriersFound):
//	    log.Println("All couriers are busy")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	default:
//	    log.Println("Courier assigned successfully")
//	}
type AssignCourierCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignCourierCommandHandler creates a handler for courier assignment operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAssignCourierCommandHandler(uowFactory UoWFactory) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier assignment command.
// Retrieves the oldest unassigned pending parcel, finds available couriers,
// and uses ParcelDispatcher to select the best match. Updates both entities
// within a single transaction. Returns specific errors for no parcels
// (ErrNoParcelFound) or no couriers (ErrNoAvailableCouriersFound).
func (h AssignCourierCommandHandler) Handle(ctx context.Context, command AssignCourierCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	parcelRepo := uow.ParcelRepository()

	var aggregate *parcel.Parcel
	var err error
	if parcelID := command.ParcelID(); parcelID != nil {
		aggregate, err = parcelRepo.Get(ctx, *parcelID)
		if err == nil && aggregate.Courier() != nil {
			return ErrParcelAlreadyAssigned
		}
	} else {
		aggregate, err = parcelRepo.GetFirstUnassignedPending(ctx)
	}
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoParcelFound
	}
	if err != nil {
		return err
	}

	couriers, err := courierRepo.GetAllAvailable(ctx)
	if err != nil {
		return err
	}
	if len(couriers) == 0 {
		return ErrNoAvailableCouriersFound
	}

	assignedCourier, err := services.NewParcelDispatcher().Dispatch(aggregate, couriers)
	if err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, assignedCourier); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
