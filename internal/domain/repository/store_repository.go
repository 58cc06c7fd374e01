// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"abgad/internal/domain/entity"
	"abgad/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for store persistence.
var (
	// ErrStoreNotFound is returned when a store is not found.
	ErrStoreNotFound = errors.New("store not found")
)

// StoreRepository defines the interface for store-related database operations.
type StoreRepository interface {
	// Create persists a new store together with its associated locations and photos.
	Create(ctx context.Context, store *entity.Store) error

	// FindByID retrieves a store by its unique ID, preloading the primary
	// location and featured photos. Returns ErrStoreNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// ListEligible retrieves every store with Active and Verified set, ordered
	// by ID ascending, with primary locations and featured photos preloaded.
	// This is the snapshot the search and suggestion paths operate on.
	ListEligible(ctx context.Context) ([]*entity.Store, error)

	// Update updates the mutable listing fields of an existing store.
	Update(ctx context.Context, store *entity.Store) error
}
