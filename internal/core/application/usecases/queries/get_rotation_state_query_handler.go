package queries

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRotationStateQueryHandler retrieves the rotation read model.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetRotationStateQueryHandler struct {
	db *gorm.DB
}

// NewGetRotationStateQueryHandler creates a handler for rotation state queries.
// Requires a GORM database connection for query execution.
func NewGetRotationStateQueryHandler(db *gorm.DB) GetRotationStateQueryHandler {
	return GetRotationStateQueryHandler{db: db}
}

// Handle executes the query to retrieve the rotation state.
// Reads the cursor singleton and the active representatives in rotation
// order, then derives who would be served next: the first non-excluded slot
// at or after the cursor, wrapping around. A missing cursor row reads as
// position zero.
func (h GetRotationStateQueryHandler) Handle(
	ctx context.Context,
	query GetRotationStateQuery,
) (GetRotationStateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRotationStateQueryResponse{}, err
	}

	response := GetRotationStateQueryResponse{
		Reps: make([]RotationRepResponse, 0),
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT position
		FROM rotation_cursors
		LIMIT 1
	`).Scan(&response.CursorPosition).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return GetRotationStateQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			excluded,
			sequence_position
		FROM representatives
		WHERE active
		ORDER BY sequence_position, id
	`).Rows()
	if err != nil {
		return GetRotationStateQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var slot RotationRepResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&slot.Name,
			&slot.Excluded,
			&slot.SequencePosition,
		)
		if err != nil {
			return GetRotationStateQueryResponse{}, err
		}

		slotID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetRotationStateQueryResponse{}, idErr
		}
		slot.ID = slotID
		response.Reps = append(response.Reps, slot)
	}

	if err = rows.Err(); err != nil {
		return GetRotationStateQueryResponse{}, err
	}

	response.NextRep = nextInLine(response.Reps, response.CursorPosition)

	return response, nil
}

// nextInLine finds the first non-excluded slot at or after the cursor,
// wrapping around. Mirrors the picker's scan so the read model agrees with
// what order intake would actually do.
func nextInLine(reps []RotationRepResponse, cursor int) *RotationRepResponse {
	if len(reps) == 0 {
		return nil
	}

	start := cursor % len(reps)
	if start < 0 {
		start += len(reps)
	}

	for i := range reps {
		idx := (start + i) % len(reps)
		if !reps[idx].Excluded {
			return &reps[idx]
		}
	}

	return nil
}
