// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"
	"sync/atomic"

	"bizdir/config"
	domainerrors "bizdir/internal/domain/errors"
	"bizdir/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db                   *gorm.DB
	childInsertBatchSize int
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx                   *gorm.DB // In GORM, a transaction object is also a *gorm.DB
	childInsertBatchSize int
	savepoints           *atomic.Int64
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB, cfg *config.Config) repository.TransactionManager {
	return &gormTransactionManager{
		db:                   db,
		childInsertBatchSize: childBatchSize(cfg),
	}
}

// ListingRepo creates a new listing repository instance bound to the transaction.
func (f *gormRepositoryFactory) ListingRepo() repository.ListingRepository {
	return newListingRepository(f.tx, f.childInsertBatchSize)
}

// Savepoint runs fn between SAVEPOINT and RELEASE SAVEPOINT. On failure it rolls back to the
// savepoint, which keeps the outer transaction usable for the next record.
func (f *gormRepositoryFactory) Savepoint(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	name := fmt.Sprintf("sp_%d", f.savepoints.Add(1))
	tx := f.tx.WithContext(ctx)

	// The dialector's SavePoint and RollbackTo drop the Exec error, so the statements are issued directly.
	if err := tx.Exec("SAVEPOINT " + name).Error; err != nil {
		return domainerrors.NewSystemicError(err, "failed to create savepoint")
	}

	if err := fn(f); err != nil {
		if rbErr := tx.Exec("ROLLBACK TO SAVEPOINT " + name).Error; rbErr != nil {
			return domainerrors.NewSystemicError(rbErr, fmt.Sprintf("failed to roll back to savepoint (original error: %v)", err))
		}

		return err
	}

	if err := tx.Exec("RELEASE SAVEPOINT " + name).Error; err != nil {
		return domainerrors.NewSystemicError(err, "failed to release savepoint")
	}

	return nil
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return domainerrors.NewSystemicError(tx.Error, "failed to begin transaction")
	}

	// Roll back on panic, then re-panic so the recover middleware can handle it.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{
		tx:                   tx,
		childInsertBatchSize: tm.childInsertBatchSize,
		savepoints:           new(atomic.Int64),
	}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return domainerrors.NewSystemicError(rbErr, fmt.Sprintf("transaction rollback failed (original error: %v)", err))
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return domainerrors.NewSystemicError(err, "failed to commit transaction")
	}

	return nil
}

func childBatchSize(cfg *config.Config) int {
	if cfg == nil || cfg.Import == nil || cfg.Import.ChildInsertBatchSize <= 0 {
		return defaultChildInsertBatchSize
	}

	return cfg.Import.ChildInsertBatchSize
}
