package reprepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/rep"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRepRepository implements RepRepository using GORM.
type GormRepRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRepRepository creates a new GORM representative repository.
func NewGormRepRepository(db *gorm.DB, tracker aggregateTracker) *GormRepRepository {
	return &GormRepRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new representative to the database.
func (r *GormRepRepository) Add(ctx context.Context, aggregate *rep.Representative) error {
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

// Update saves an existing representative to the database.
func (r *GormRepRepository) Update(ctx context.Context, aggregate *rep.Representative) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RepDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "active", "excluded", "sequence_position").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("representative", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a representative by ID.
func (r *GormRepRepository) Get(ctx context.Context, id kernel.UUID) (*rep.Representative, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RepDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("representative", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActiveOrdered retrieves every active representative in rotation order.
// Excluded representatives keep their slot in the result; the rotation picker
// scans over them rather than removing them from the ordering.
func (r *GormRepRepository) GetAllActiveOrdered(ctx context.Context) ([]*rep.Representative, error) {
	var dtos []RepDTO
	err := r.db.WithContext(ctx).
		Where("active").
		Order("sequence_position, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	reps := make([]*rep.Representative, 0, len(dtos))
	for _, dto := range dtos {
		representative, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		reps = append(reps, representative)
	}

	return reps, nil
}
