// Package postgres provides GORM-based implementation of the Unit of Work pattern.
// The Unit of Work pattern maintains a list of objects affected by a business
// transaction and coordinates writing out changes and resolving concurrency problems.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.ParcelRepository().Add(ctx, parcel); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance provides an isolated transaction; goroutines must
// not share instances. Aggregates touched by repository writes are tracked,
// which enables post-commit processing like event publishing.
package postgres

import (
	"context"

	"github.com/maxwellkiplagat/Deliveroo/internal/adapters/out/postgres/courierrepo"
	"github.com/maxwellkiplagat/Deliveroo/internal/adapters/out/postgres/parcelrepo"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using a shared GORM
// database connection. Each business operation gets a fresh unit of work
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for a business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction and tracks aggregate
// changes for a single business operation.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Calling Begin when a transaction is already active is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit, the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// After rollback, the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// CourierRepository provides courier persistence within the unit of work.
// Operations execute within the current transaction if one is active,
// otherwise they run directly against the main database connection.
func (uow *GormUnitOfWork) CourierRepository() ports.CourierRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return courierrepo.NewGormCourierRepository(db, uow)
}

// ParcelRepository provides parcel persistence within the unit of work.
// Operations execute within the current transaction if one is active,
// otherwise they run directly against the main database connection.
func (uow *GormUnitOfWork) ParcelRepository() ports.ParcelRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return parcelrepo.NewGormParcelRepository(db, uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Repository implementations call this after successful writes.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
