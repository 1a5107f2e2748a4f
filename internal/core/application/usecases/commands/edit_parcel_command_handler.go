package commands

import (
	"context"
	"log/slog"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/ports"
)

// EditParcelCommandHandler handles customer edits to delivery details.
// Enforces ownership, then delegates the editable-status and address
// invariants to the aggregate.
type EditParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	cache      ports.TrackingCache
}

// NewEditParcelCommandHandler creates a handler for parcel edits.
func NewEditParcelCommandHandler(uowFactory ParcelUoWFactory, cache ports.TrackingCache) EditParcelCommandHandler {
	return EditParcelCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle processes the edit command.
// Returns ErrNotParcelOwner for foreign parcels, parcel.ErrParcelNotEditable
// once the parcel left the editable statuses, and
// parcel.ErrAddressesMustDiffer when the new destination matches the pickup
// address.
func (h EditParcelCommandHandler) Handle(ctx context.Context, cmd EditParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	aggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if !aggregate.OwnerID().IsEqual(cmd.RequesterID()) {
		return ErrNotParcelOwner
	}

	if err = aggregate.EditDelivery(cmd.Receiver(), cmd.DestinationAddress(), cmd.DestinationCoords()); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.cache.Invalidate(ctx, aggregate.TrackingNumber().String()); err != nil {
		slog.WarnContext(ctx, "failed to invalidate tracking cache",
			"trackingNumber", aggregate.TrackingNumber().String(), "error", err)
	}

	return nil
}
