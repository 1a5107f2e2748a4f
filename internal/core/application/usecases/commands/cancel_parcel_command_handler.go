package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/ports"
)

// CancelParcelCommandHandler handles parcel cancellations. Enforces
// ownership for self-service requests and delegates the status rule to
// the aggregate, which blocks only terminal parcels.
type CancelParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	publisher  ports.EventPublisher
	cache      ports.TrackingCache
}

// NewCancelParcelCommandHandler creates a handler for parcel cancellation.
func NewCancelParcelCommandHandler(
	uowFactory ParcelUoWFactory,
	publisher ports.EventPublisher,
	cache ports.TrackingCache,
) CancelParcelCommandHandler {
	return CancelParcelCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		cache:      cache,
	}
}

// Handle processes the cancellation command.
// Returns ErrNotParcelOwner when a non-admin requester does not own the
// parcel and parcel.ErrInvalidTransition (wrapped) once the parcel is
// delivered or already cancelled.
func (h CancelParcelCommandHandler) Handle(ctx context.Context, cmd CancelParcelCommand) error {
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

	if !cmd.IsByAdmin() && !aggregate.OwnerID().IsEqual(cmd.RequesterID()) {
		return ErrNotParcelOwner
	}

	if err = aggregate.Cancel(time.Now().UTC(), cancelledByUserLabel); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.PublishParcelStatusChanged(ctx, aggregate); err != nil {
		slog.WarnContext(ctx, "failed to publish parcel status changed event",
			"parcelID", aggregate.ID().String(), "error", err)
	}

	if err = h.cache.Invalidate(ctx, aggregate.TrackingNumber().String()); err != nil {
		slog.WarnContext(ctx, "failed to invalidate tracking cache",
			"trackingNumber", aggregate.TrackingNumber().String(), "error", err)
	}

	return nil
}
