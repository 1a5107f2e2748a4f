package courierrepo

import (
	"context"
	"errors"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/courier"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
	"github.com/maxwellkiplagat/Deliveroo/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCourierRepository implements CourierRepository using GORM.
type GormCourierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCourierRepository creates a new GORM courier repository.
func NewGormCourierRepository(db *gorm.DB, tracker aggregateTracker) *GormCourierRepository {
	return &GormCourierRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new courier to the database.
func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
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

// Update saves an existing courier to the database.
func (r *GormCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CourierDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a courier by ID.
func (r *GormCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAvailable retrieves all couriers ready to take a new parcel.
func (r *GormCourierRepository) GetAllAvailable(ctx context.Context) ([]*courier.Courier, error) {
	var dtos []CourierDTO
	if err := r.db.WithContext(ctx).
		Where("availability = ?", courier.Available.String()).
		Order("name").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	couriers := make([]*courier.Courier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}

	return couriers, nil
}
