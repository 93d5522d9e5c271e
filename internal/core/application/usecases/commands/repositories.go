// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations. All commands follow a
// consistent shape: constructor validation, transaction management through a
// unit of work, persistence, and post-commit notification dispatch.
package commands

import (
	"context"

	"canteen/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest interface that covers the
// repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// FoodRepoFactory provides access to the food catalog repository within a transaction.
	FoodRepoFactory interface {
		FoodRepository() ports.FoodRepository
	}

	// CounterRepoFactory provides access to the id counters within a transaction.
	CounterRepoFactory interface {
		CounterRepository() ports.CounterRepository
	}

	// OrderUoW manages transactions for order-only operations
	// (status changes, soft delete, restore, permanent delete).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW manages transactions for order creation, which needs
	// the id counter and the order repository in one transaction so the
	// handed-out id is never burned without a matching order row.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		CounterRepoFactory
	}

	// CreateOrderUoWFactory creates new creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// EditOrderUoW manages transactions for order edits, where item
	// synchronization may additionally upsert food catalog entries.
	EditOrderUoW interface {
		TxManager
		OrderRepoFactory
		FoodRepoFactory
	}

	// EditOrderUoWFactory creates new edit unit of work instances.
	EditOrderUoWFactory interface {
		Create() EditOrderUoW
	}
)
