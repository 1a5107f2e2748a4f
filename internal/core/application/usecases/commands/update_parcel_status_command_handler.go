package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/ports"
)

// UpdateParcelStatusCommandHandler handles admin-driven status transitions.
// Loads the parcel, applies the transition through the aggregate's status
// machine, and appends the "Status updated by admin" timeline entry.
// After commit it publishes a status changed event and drops the parcel's
// cached tracking snapshot.
type UpdateParcelStatusCommandHandler struct {
	uowFactory ParcelUoWFactory
	publisher  ports.EventPublisher
	cache      ports.TrackingCache
}

// NewUpdateParcelStatusCommandHandler creates a handler for status updates.
func NewUpdateParcelStatusCommandHandler(
	uowFactory ParcelUoWFactory,
	publisher ports.EventPublisher,
	cache ports.TrackingCache,
) UpdateParcelStatusCommandHandler {
	return UpdateParcelStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		cache:      cache,
	}
}

// Handle processes the status update command.
// Returns parcel.ErrInvalidTransition (wrapped) when the transition is not
// allowed from the parcel's current status.
func (h UpdateParcelStatusCommandHandler) Handle(ctx context.Context, cmd UpdateParcelStatusCommand) error {
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

	if err = aggregate.ChangeStatus(cmd.Status(), time.Now().UTC(), statusUpdateLabel); err != nil {
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
