package repository

import (
	"context"
	"time"

	"abgad/internal/domain/entity"

	"github.com/google/uuid"
)

// VisitRepository defines the interface for profile visit persistence.
// Visits are append-only; aggregation happens in the use case layer.
type VisitRepository interface {
	// Record persists a single profile visit.
	Record(ctx context.Context, visit *entity.Visit) error

	// ListByStoreSince retrieves all visits for a store at or after the given
	// time, ordered by VisitedAt ascending.
	ListByStoreSince(ctx context.Context, storeID uuid.UUID, since time.Time) ([]*entity.Visit, error)

	// CountByStore returns the total number of recorded visits for a store.
	CountByStore(ctx context.Context, storeID uuid.UUID) (int64, error)
}
