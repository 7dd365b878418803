package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each
// request/command. This ensures proper isolation between concurrent
// operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Repositories and the task queue obtained from it are bound to the
// transaction started by Begin, so an order mutation and its enqueued
// notification task commit or roll back together.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// CourierRepository returns a CourierRepository bound to the current transaction.
	CourierRepository() CourierRepository

	// RecipientRepository returns a RecipientRepository bound to the current transaction.
	RecipientRepository() RecipientRepository

	// UserRepository returns a UserRepository bound to the current transaction.
	UserRepository() UserRepository

	// FileRepository returns a FileRepository bound to the current transaction.
	FileRepository() FileRepository

	// ProblemRepository returns a ProblemRepository bound to the current transaction.
	ProblemRepository() ProblemRepository

	// Tasks returns the TaskQueue bound to the current transaction.
	Tasks() TaskQueue
}
