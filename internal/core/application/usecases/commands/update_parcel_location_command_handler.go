package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/ports"
)

// UpdateParcelLocationCommandHandler handles admin-driven location updates.
// Appends the "Location updated by Admin" timeline entry and moves the
// parcel's current location marker. Cancelled parcels reject the update
// with parcel.ErrLocationUpdateRejected.
type UpdateParcelLocationCommandHandler struct {
	uowFactory ParcelUoWFactory
	cache      ports.TrackingCache
}

// NewUpdateParcelLocationCommandHandler creates a handler for location updates.
func NewUpdateParcelLocationCommandHandler(
	uowFactory ParcelUoWFactory,
	cache ports.TrackingCache,
) UpdateParcelLocationCommandHandler {
	return UpdateParcelLocationCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle processes the location update command.
func (h UpdateParcelLocationCommandHandler) Handle(ctx context.Context, cmd UpdateParcelLocationCommand) error {
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

	if err = aggregate.UpdateLocation(cmd.Point(), time.Now().UTC(), locationUpdateLabel); err != nil {
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
