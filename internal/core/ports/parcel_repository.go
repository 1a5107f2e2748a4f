package ports

import (
	"context"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
// Provides methods for storing, retrieving, and querying parcel entities
// together with their timeline history.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	// The parcel must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate,
	// including any timeline entries appended since it was loaded.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its unique identifier.
	// Returns the complete parcel with its full timeline.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByTrackingNumber retrieves a parcel by its public tracking number.
	// Used by the public tracking endpoint where no identifier is known.
	GetByTrackingNumber(ctx context.Context, tn kernel.TrackingNumber) (*parcel.Parcel, error)

	// GetFirstUnassignedPending retrieves the earliest created parcel that is
	// in Pending status and has no courier assigned.
	// Used by the courier assignment job to find work.
	GetFirstUnassignedPending(ctx context.Context) (*parcel.Parcel, error)
}
