// Package cursorrepo persists the rotation cursor as a versioned singleton
// row. The cursor is the only piece of rotation state that is not derivable
// from the representatives table; every advance is a compare-and-swap on the
// version column.
package cursorrepo

import "fulfillment/internal/core/domain/model/rep"

// singletonID is the fixed primary key of the one cursor row.
const singletonID = 1

// CursorDTO represents the database structure for the rotation cursor.
type CursorDTO struct {
	ID       int `gorm:"primaryKey"`
	Position int `gorm:"type:int;not null"`
	Version  int `gorm:"type:int;not null"`
}

// TableName specifies the database table name for the rotation cursor.
// Overrides GORM's default naming convention to use "rotation_cursors".
func (CursorDTO) TableName() string {
	return "rotation_cursors"
}

// fromDomain converts the cursor to its database representation.
func fromDomain(cursor *rep.RotationCursor) CursorDTO {
	return CursorDTO{
		ID:       singletonID,
		Position: cursor.Position(),
		Version:  cursor.Version(),
	}
}

// toDomain converts a database DTO to the cursor domain object.
func toDomain(dto CursorDTO) (*rep.RotationCursor, error) {
	return rep.RestoreRotationCursor(dto.Position, dto.Version)
}
