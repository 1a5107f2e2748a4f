package ports

import (
	"context"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/parcel"
)

// EventPublisher notifies external consumers about parcel lifecycle changes.
// Publishing is best effort from the caller's point of view: command
// handlers log publish failures but do not roll back the transaction.
type EventPublisher interface {
	// PublishParcelCreated announces a newly created parcel.
	PublishParcelCreated(ctx context.Context, aggregate *parcel.Parcel) error

	// PublishParcelStatusChanged announces a status transition on a parcel.
	PublishParcelStatusChanged(ctx context.Context, aggregate *parcel.Parcel) error
}
