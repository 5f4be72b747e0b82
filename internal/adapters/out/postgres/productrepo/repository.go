package productrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new product to the database.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
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

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AdjustStock atomically adds delta to the product's stock counter.
// The guard against going negative sits in the WHERE clause, so the check
// and the write are one statement; two concurrent deductions can never both
// pass a stale read of the counter. When allowNegative is false and the
// deduction would drop the counter below zero, no row matches and
// ErrInsufficientStock is returned.
func (r *GormProductRepository) AdjustStock(
	ctx context.Context,
	id kernel.UUID,
	delta int,
	allowNegative bool,
) error {
	if err := id.Validate(); err != nil {
		return err
	}

	query := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("id = ?", id.Bytes())
	if !allowNegative && delta < 0 {
		query = query.Where("current_stock + ? >= 0", delta)
	}

	result := query.Update("current_stock", gorm.Expr("current_stock + ?", delta))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing product from a blocked deduction.
		var count int64
		if err := r.db.WithContext(ctx).Model(&ProductDTO{}).
			Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("product", id.String())
		}
		return product.ErrInsufficientStock
	}

	return nil
}

// GetAllOversold retrieves products whose stock counter is negative,
// ordered by severity. Used by the oversell report.
func (r *GormProductRepository) GetAllOversold(ctx context.Context) ([]*product.Product, error) {
	var dtos []ProductDTO
	err := r.db.WithContext(ctx).
		Where("current_stock < 0").
		Order("current_stock, name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		products = append(products, p)
	}

	return products, nil
}
