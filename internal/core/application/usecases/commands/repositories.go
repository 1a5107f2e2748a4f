// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/ports"
)

// Timeline labels written by the admin command handlers. The tracking UI
// shows them verbatim, so they are part of the external contract.
const (
	statusUpdateLabel    = "Status updated by admin"
	locationUpdateLabel  = "Location updated by Admin"
	cancelledByUserLabel = "Cancelled by user"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// CourierRepoFactory provides access to the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// ParcelUoW manages transactions for parcel-only operations.
	// Used when commands only modify parcel aggregates.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// CourierUoW manages transactions for courier-only operations.
	// Used when commands only modify courier aggregates.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	// CourierUoWFactory creates new courier unit of work instances.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// UoW manages transactions across both parcel and courier aggregates.
	// Used for commands that coordinate changes between multiple aggregate types.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   parcelRepo := uow.ParcelRepository()
	//   courierRepo := uow.CourierRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		CourierRepoFactory
		ParcelRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
