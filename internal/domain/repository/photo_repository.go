package repository

import (
	"context"

	"abgad/internal/domain/entity"
	"abgad/internal/errors"

	"github.com/google/uuid"
)

// ErrPhotoNotFound is returned when a photo is not found.
var ErrPhotoNotFound = errors.New("photo not found")

// PhotoRepository defines the interface for store photo persistence.
type PhotoRepository interface {
	// AddPhoto persists a new photo for a store.
	AddPhoto(ctx context.Context, photo *entity.Photo) error

	// ListByStore retrieves all photos for a store, featured first.
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Photo, error)

	// DeletePhoto removes a photo by its ID.
	DeletePhoto(ctx context.Context, id uuid.UUID) error
}
