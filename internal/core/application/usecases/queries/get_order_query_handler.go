package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order read model from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order with its line items.
// Returns an ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	response, err := h.fetchOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	items, err := h.fetchItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Items = items

	return response, nil
}

func (h GetOrderQueryHandler) fetchOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (GetOrderQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			assigned_to,
			agent_id,
			status,
			currency,
			total_amount,
			confirmed_at,
			dispatched_at,
			delivered_at,
			cancelled_at,
			audit_notes,
			created_at
		FROM orders
		WHERE id = ?
	`, orderID.String()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", orderID)
	}

	var response GetOrderQueryResponse
	var id, assignedTo uuid.UUID
	var agentID uuid.NullUUID
	var auditNotes pq.StringArray

	err = rows.Scan(
		&id,
		&response.Number,
		&assignedTo,
		&agentID,
		&response.Status,
		&response.Currency,
		&response.TotalAmount,
		&response.ConfirmedAt,
		&response.DispatchedAt,
		&response.DeliveredAt,
		&response.CancelledAt,
		&auditNotes,
		&response.CreatedAt,
	)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.AssignedTo, err = kernel.UUIDFromBytes(assignedTo[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if agentID.Valid {
		agent, agentErr := kernel.UUIDFromBytes(agentID.UUID[:])
		if agentErr != nil {
			return GetOrderQueryResponse{}, agentErr
		}
		response.AgentID = &agent
	}
	response.AuditNotes = auditNotes

	return response, nil
}

func (h GetOrderQueryHandler) fetchItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]OrderItemResponse, error) {
	items := make([]OrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			price,
			cost
		FROM order_items
		WHERE order_id = ?
		ORDER BY product_id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse
		var productID uuid.UUID

		err = rows.Scan(
			&productID,
			&item.Quantity,
			&item.Price,
			&item.Cost,
		)
		if err != nil {
			return nil, err
		}

		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
