package parcelrepo

import (
	"context"
	"errors"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/parcel"
	"github.com/maxwellkiplagat/Deliveroo/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel and its initial timeline to the database.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing parcel. The timeline is append-only: rows the
// database already holds are never touched, only new entries are inserted.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	entries := dto.Timeline
	dto.Timeline = nil

	result := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at", "Timeline").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	var existing int64
	if err := r.db.WithContext(ctx).
		Model(&TimelineEntryDTO{}).
		Where("parcel_id = ?", dto.ID).
		Count(&existing).Error; err != nil {
		return err
	}
	if int(existing) < len(entries) {
		newEntries := entries[existing:]
		if err := r.db.WithContext(ctx).Create(&newEntries).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a parcel by ID, including its full timeline.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	err := r.preloaded(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTrackingNumber retrieves a parcel by its public tracking number.
func (r *GormParcelRepository) GetByTrackingNumber(ctx context.Context, tn kernel.TrackingNumber) (*parcel.Parcel, error) {
	if err := tn.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	err := r.preloaded(ctx).First(&dto, "tracking_number = ?", tn.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", tn.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetFirstUnassignedPending retrieves the oldest pending parcel without a
// courier, used by the assignment job.
func (r *GormParcelRepository) GetFirstUnassignedPending(ctx context.Context) (*parcel.Parcel, error) {
	var dto ParcelDTO
	err := r.preloaded(ctx).
		Where("status = ? AND courier_id IS NULL", parcel.Pending.String()).
		Order("created_at").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", "first unassigned pending")
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormParcelRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Timeline", func(db *gorm.DB) *gorm.DB {
		return db.Order("occurred_at, id")
	})
}
