// Package reprepo provides data transfer objects and mapping functions for
// representative persistence. This package implements the repository pattern
// for the representative domain aggregate, handling the conversion between
// domain entities and database representations.
package reprepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/rep"

	"github.com/google/uuid"
)

// RepDTO represents the database structure for persisting representative
// aggregates. The sequence position index backs the rotation ordering query.
type RepDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"type:varchar(255);not null"`
	Active           bool      `gorm:"not null;index"`
	Excluded         bool      `gorm:"not null"`
	SequencePosition int       `gorm:"type:int;not null;index"`
}

// TableName specifies the database table name for representative entities.
// Overrides GORM's default naming convention to use "representatives".
func (RepDTO) TableName() string {
	return "representatives"
}

// fromDomain converts a representative domain aggregate to its database representation.
func fromDomain(representative *rep.Representative) RepDTO {
	return RepDTO{
		ID:               representative.ID().Bytes(),
		Name:             representative.Name(),
		Active:           representative.IsActive(),
		Excluded:         representative.IsExcluded(),
		SequencePosition: representative.SequencePosition(),
	}
}

// toDomain converts a database DTO to a representative domain aggregate.
func toDomain(dto RepDTO) (*rep.Representative, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return rep.RestoreRepresentative(id, dto.Name, dto.Active, dto.Excluded, dto.SequencePosition)
}
