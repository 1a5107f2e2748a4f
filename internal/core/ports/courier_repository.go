// Package ports defines the contracts between the core layer and the
// adapters. Repository interfaces cover aggregate persistence, while the
// gateway interfaces cover payment, messaging and caching infrastructure.
// They enable dependency inversion and testability.
package ports

import (
	"context"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/courier"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	// The courier must be valid and not already exist in the repository.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	// The courier must exist in the repository and be valid.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAllAvailable retrieves all couriers that can take a new parcel.
	// A courier is available when it is not marked Busy by an active
	// assignment.
	GetAllAvailable(ctx context.Context) ([]*courier.Courier, error)
}
