package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	// Failures to begin or commit are reported as *errors.SystemicError.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// ListingRepo returns a ListingRepository instance bound to the current transaction.
	ListingRepo() ListingRepository

	// Savepoint runs fn inside a savepoint of the current transaction. When fn fails, only the
	// work done inside the savepoint is undone and fn's error is returned; the surrounding
	// transaction stays usable. Failures of the savepoint machinery itself are returned as
	// *errors.SystemicError.
	Savepoint(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}
