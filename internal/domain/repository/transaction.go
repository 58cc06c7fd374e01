package repository

import "context"

// RepositoryFactory creates repository instances bound to one transaction.
// Registration uses it to persist a store, its location and its photos as a
// single atomic unit.
type RepositoryFactory interface {
	NewStoreRepository() StoreRepository
	NewPhotoRepository() PhotoRepository
}

// TransactionManager executes a function within a single database transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
