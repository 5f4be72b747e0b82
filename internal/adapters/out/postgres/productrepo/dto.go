// Package productrepo provides data transfer objects and mapping functions
// for product persistence. Stock deductions run as atomic counter updates in
// SQL rather than read-modify-write cycles, so concurrent deliveries cannot
// lose adjustments.
package productrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting products.
// CurrentStock may go negative when the oversell policy permits it; the
// oversell report watches for those rows.
type ProductDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	CurrentStock int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		CurrentStock: aggregate.CurrentStock(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.CurrentStock)
}
