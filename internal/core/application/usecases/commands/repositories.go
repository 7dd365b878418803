// Package commands contains business operations that modify system state.
// All commands follow a consistent pattern: constructor validation,
// transaction management through a unit of work, and persistence.
// Workflow commands additionally enqueue their notification task inside
// the same transaction as the order mutation.
package commands

import (
	"context"

	"fastfeet/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each command depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CourierRepoFactory provides access to the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// RecipientRepoFactory provides access to the recipient repository within a transaction.
	RecipientRepoFactory interface {
		RecipientRepository() ports.RecipientRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// FileRepoFactory provides access to the file repository within a transaction.
	FileRepoFactory interface {
		FileRepository() ports.FileRepository
	}

	// ProblemRepoFactory provides access to the problem repository within a transaction.
	ProblemRepoFactory interface {
		ProblemRepository() ports.ProblemRepository
	}

	// TaskQueueFactory provides access to the notification task queue
	// within a transaction, so enqueued tasks commit together with the
	// order mutation that produced them.
	TaskQueueFactory interface {
		Tasks() ports.TaskQueue
	}

	// OrderUoW manages transactions for the order workflow commands.
	// Create, finish, and cancel resolve related entities and enqueue
	// notification tasks, so the full set of lookups is available.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		CourierRepoFactory
		RecipientRepoFactory
		FileRepoFactory
		TaskQueueFactory
	}

	// OrderUoWFactory creates order workflow unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CourierUoW manages transactions for courier CRUD operations.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
		FileRepoFactory
	}

	// CourierUoWFactory creates courier unit of work instances.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// RecipientUoW manages transactions for recipient registration.
	RecipientUoW interface {
		TxManager
		RecipientRepoFactory
		UserRepoFactory
		FileRepoFactory
	}

	// RecipientUoWFactory creates recipient unit of work instances.
	RecipientUoWFactory interface {
		Create() RecipientUoW
	}

	// ProblemUoW manages transactions for order problem reports.
	ProblemUoW interface {
		TxManager
		ProblemRepoFactory
		OrderRepoFactory
	}

	// ProblemUoWFactory creates problem unit of work instances.
	ProblemUoWFactory interface {
		Create() ProblemUoW
	}

	// UserUoW manages transactions for user registration.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// FileUoW manages transactions for file record creation.
	FileUoW interface {
		TxManager
		FileRepoFactory
	}

	// FileUoWFactory creates file unit of work instances.
	FileUoWFactory interface {
		Create() FileUoW
	}
)
