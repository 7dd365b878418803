// Package postgres provides the GORM-based Unit of Work implementation.
// Repositories and the task queue obtained from a unit of work share the
// transaction started by Begin, so an order mutation and its enqueued
// notification task commit or roll back together.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"fastfeet/internal/adapters/out/postgres/courierrepo"
	"fastfeet/internal/adapters/out/postgres/filerepo"
	"fastfeet/internal/adapters/out/postgres/orderrepo"
	"fastfeet/internal/adapters/out/postgres/problemrepo"
	"fastfeet/internal/adapters/out/postgres/recipientrepo"
	"fastfeet/internal/adapters/out/postgres/taskrepo"
	"fastfeet/internal/adapters/out/postgres/userrepo"
	"fastfeet/internal/core/ports"
)

// GormUnitOfWorkFactory creates UnitOfWork instances over one GORM
// connection. Each business operation gets a fresh instance with its own
// transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for a business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction across the
// repositories it hands out. Repositories requested before Begin operate
// on the main connection; after Begin they are bound to the transaction.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a new database transaction. Calling Begin again on an
// instance with an open transaction is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the current transaction. Returns
// gorm.ErrInvalidTransaction when none is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the current transaction. Returns
// gorm.ErrInvalidTransaction when none is open, which lets callers run
// it unconditionally in a defer after Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository returns an order repository bound to the current
// transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

// CourierRepository returns a courier repository bound to the current
// transaction.
func (uow *GormUnitOfWork) CourierRepository() ports.CourierRepository {
	return courierrepo.NewGormCourierRepository(uow.conn())
}

// RecipientRepository returns a recipient repository bound to the current
// transaction.
func (uow *GormUnitOfWork) RecipientRepository() ports.RecipientRepository {
	return recipientrepo.NewGormRecipientRepository(uow.conn())
}

// UserRepository returns a user repository bound to the current
// transaction.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn())
}

// FileRepository returns a file repository bound to the current
// transaction.
func (uow *GormUnitOfWork) FileRepository() ports.FileRepository {
	return filerepo.NewGormFileRepository(uow.conn())
}

// ProblemRepository returns a problem repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ProblemRepository() ports.ProblemRepository {
	return problemrepo.NewGormProblemRepository(uow.conn())
}

// Tasks returns the task queue bound to the current transaction.
func (uow *GormUnitOfWork) Tasks() ports.TaskQueue {
	return taskrepo.NewGormTaskQueue(uow.conn())
}
