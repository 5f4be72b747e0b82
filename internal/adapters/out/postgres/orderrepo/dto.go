// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The display number comes from a database sequence, so it is monotonic and
// never reused even for orders created concurrently. The version column backs
// the optimistic concurrency check on updates.
type OrderDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number       int64           `gorm:"autoIncrement;uniqueIndex;not null"`
	AssignedTo   uuid.UUID       `gorm:"type:uuid;not null;index"`
	AgentID      *uuid.UUID      `gorm:"type:uuid;index"`
	Status       string          `gorm:"type:varchar(32);not null;index"`
	Currency     string          `gorm:"type:varchar(3);not null"`
	TotalAmount  decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	ConfirmedAt  *time.Time
	DispatchedAt *time.Time
	DeliveredAt  *time.Time
	CancelledAt  *time.Time
	StockApplied bool           `gorm:"not null"`
	AuditNotes   pq.StringArray `gorm:"type:text[]"`
	Version      int            `gorm:"not null"`
	CreatedAt    time.Time      `gorm:"not null"`
	Items        []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line in the database.
// Lines are immutable after intake; updates never touch this table.
type OrderItemDTO struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Quantity  int             `gorm:"type:int;not null"`
	Price     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Cost      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
}

// TableName specifies the database table name for order line entities.
// Overrides GORM's default naming convention to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	var agentID *uuid.UUID
	if id := aggregate.Agent(); id != nil {
		raw := id.Bytes()
		agentID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.LineItems()))
	for _, item := range aggregate.LineItems() {
		items = append(items, OrderItemDTO{
			OrderID:   orderID,
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			Price:     item.Price(),
			Cost:      item.Cost(),
		})
	}

	return OrderDTO{
		ID:           orderID,
		Number:       aggregate.Number(),
		AssignedTo:   aggregate.AssignedTo().Bytes(),
		AgentID:      agentID,
		Status:       aggregate.Status().String(),
		Currency:     aggregate.Currency(),
		TotalAmount:  aggregate.TotalAmount(),
		ConfirmedAt:  aggregate.ConfirmedAt(),
		DispatchedAt: aggregate.DispatchedAt(),
		DeliveredAt:  aggregate.DeliveredAt(),
		CancelledAt:  aggregate.CancelledAt(),
		StockApplied: aggregate.StockApplied(),
		AuditNotes:   aggregate.AuditNotes(),
		Version:      aggregate.Version(),
		CreatedAt:    aggregate.CreatedAt(),
		Items:        items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	assignedTo, err := kernel.UUIDFromBytes(dto.AssignedTo[:])
	if err != nil {
		return nil, err
	}

	var agentID *kernel.UUID
	if dto.AgentID != nil {
		aID, agentErr := kernel.UUIDFromBytes((*dto.AgentID)[:])
		if agentErr != nil {
			return nil, agentErr
		}
		agentID = &aID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewLineItem(productID, itemDTO.Quantity, itemDTO.Price, itemDTO.Cost)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.RestoreParams{
		ID:           id,
		Number:       dto.Number,
		AssignedToID: assignedTo,
		AgentID:      agentID,
		Status:       status,
		Currency:     dto.Currency,
		LineItems:    items,
		TotalAmount:  dto.TotalAmount,
		ConfirmedAt:  dto.ConfirmedAt,
		DispatchedAt: dto.DispatchedAt,
		DeliveredAt:  dto.DeliveredAt,
		CancelledAt:  dto.CancelledAt,
		StockApplied: dto.StockApplied,
		AuditNotes:   dto.AuditNotes,
		Version:      dto.Version,
		CreatedAt:    dto.CreatedAt,
	})
}
