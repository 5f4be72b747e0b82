package cursorrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/rep"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCursorRepository implements RotationCursorRepository using GORM.
type GormCursorRepository struct {
	db *gorm.DB
}

// NewGormCursorRepository creates a new GORM rotation cursor repository.
func NewGormCursorRepository(db *gorm.DB) *GormCursorRepository {
	return &GormCursorRepository{db: db}
}

// Get retrieves the cursor, creating the singleton row at position zero on
// first use. Creation uses an on-conflict no-op so two first readers racing
// each other both end up with the same row.
func (r *GormCursorRepository) Get(ctx context.Context) (*rep.RotationCursor, error) {
	var dto CursorDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", singletonID).Error
	if err == nil {
		return toDomain(dto)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	seed := CursorDTO{ID: singletonID}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error
	if err != nil {
		return nil, err
	}

	if err = r.db.WithContext(ctx).First(&dto, "id = ?", singletonID).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// Update persists the cursor using its version as a compare-and-swap
// precondition. Returns a ConcurrencyConflictError when a concurrent
// rotation operation advanced the cursor first; the caller's transaction
// must roll back so no two orders share one cursor value.
func (r *GormCursorRepository) Update(ctx context.Context, cursor *rep.RotationCursor) error {
	if err := cursor.Validate(); err != nil {
		return err
	}

	dto := fromDomain(cursor)
	result := r.db.WithContext(ctx).Model(&CursorDTO{}).
		Where("id = ? AND version = ?", singletonID, cursor.Version()).
		Updates(map[string]any{
			"position": dto.Position,
			"version":  cursor.Version() + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError("rotationCursor", singletonID)
	}

	return nil
}
