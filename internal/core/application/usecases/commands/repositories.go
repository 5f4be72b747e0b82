// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RepRepoFactory provides access to representative repository within a transaction.
	RepRepoFactory interface {
		RepRepository() ports.RepRepository
	}

	// ProductRepoFactory provides access to product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// CursorRepoFactory provides access to the rotation cursor repository within a transaction.
	CursorRepoFactory interface {
		RotationCursorRepository() ports.RotationCursorRepository
	}

	// RepUoW manages transactions for representative-only operations.
	// Used by commands that modify a single representative aggregate.
	RepUoW interface {
		TxManager
		RepRepoFactory
	}

	// RepUoWFactory creates new representative unit of work instances.
	RepUoWFactory interface {
		Create() RepUoW
	}

	// RotationUoW manages transactions for rotation maintenance.
	// Skip, reset and reordering touch the representative set and the
	// cursor inside one transaction.
	RotationUoW interface {
		TxManager
		RepRepoFactory
		CursorRepoFactory
	}

	// RotationUoWFactory creates new rotation unit of work instances.
	RotationUoWFactory interface {
		Create() RotationUoW
	}

	// OrderCreationUoW manages transactions for order intake.
	// Creating an order advances the rotation cursor and persists the new
	// order atomically, so the commit binds the cursor value to exactly
	// one order.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repRepo := uow.RepRepository()
	//   cursorRepo := uow.RotationCursorRepository()
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	OrderCreationUoW interface {
		TxManager
		RepRepoFactory
		CursorRepoFactory
		OrderRepoFactory
	}

	// OrderCreationUoWFactory creates new order creation unit of work instances.
	OrderCreationUoWFactory interface {
		Create() OrderCreationUoW
	}

	// TransitionUoW manages transactions for order status transitions.
	// A transition that crosses the delivered boundary adjusts product
	// stock in the same transaction as the status write.
	TransitionUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
	}

	// TransitionUoWFactory creates new transition unit of work instances.
	TransitionUoWFactory interface {
		Create() TransitionUoW
	}
)
