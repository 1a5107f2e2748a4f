package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/parcel"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/services"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/ports"
)

// CreateParcelCommandHandler handles the business logic for parcel creation.
// Quotes the price from the configured tariff, generates a tracking number,
// creates the aggregate in "pending" status and persists it transactionally.
// The quote is computed server side, so a tampered client cannot pick its
// own price.
//
// Example:
//
//	handler := NewCreateParcelCommandHandler(uowFactory, services.DefaultTariff(), publisher)
//	cmd, _ := NewCreateParcelCommand(...)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("parcel creation failed: %w", err)
//	}
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	tariff     services.Tariff
	publisher  ports.EventPublisher
}

// NewCreateParcelCommandHandler creates a handler for parcel creation.
// Requires a ParcelUoWFactory for transactional persistence, a Tariff for
// pricing, and an EventPublisher for the parcel created notification.
func NewCreateParcelCommandHandler(
	uowFactory ParcelUoWFactory,
	tariff services.Tariff,
	publisher ports.EventPublisher,
) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
		tariff:     tariff,
		publisher:  publisher,
	}
}

// Handle processes the parcel creation command.
// Prices the parcel, creates it in "pending" status with the initial
// timeline entry, and persists it. The created event is published after
// commit; a publish failure is logged, never rolled back.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	quote, err := h.tariff.Quote(cmd.WeightKg())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	aggregate, err := parcel.NewParcel(
		cmd.ParcelID(),
		kernel.NewTrackingNumber(now),
		cmd.OwnerID(),
		cmd.Sender(),
		cmd.Receiver(),
		cmd.PickupAddress(),
		cmd.DestinationAddress(),
		cmd.WeightKg(),
		quote.Total,
		now,
	)
	if err != nil {
		return err
	}

	if err = aggregate.SetCoords(cmd.PickupCoords(), cmd.DestinationCoords()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParcelRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.PublishParcelCreated(ctx, aggregate); err != nil {
		slog.WarnContext(ctx, "failed to publish parcel created event",
			"parcelID", aggregate.ID().String(), "error", err)
	}

	return nil
}
