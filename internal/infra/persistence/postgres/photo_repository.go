package postgres

import (
	"context"

	"abgad/internal/domain/entity"
	domainerrors "abgad/internal/domain/errors"
	"abgad/internal/domain/repository"
	"abgad/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// photoRepository implements the domain.PhotoRepository interface using GORM.
type photoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository is the constructor for photoRepository.
func NewPhotoRepository(db *gorm.DB) repository.PhotoRepository {
	return &photoRepository{db: db}
}

// AddPhoto persists a new photo for a store.
func (repo *photoRepository) AddPhoto(ctx context.Context, photo *entity.Photo) error {
	photoM := fromPhotoDomain(photo)

	if err := repo.db.WithContext(ctx).Create(photoM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPhotoCreationFailed.WrapMessage("invalid store reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add photo")
	}

	photo.CreatedAt = photoM.CreatedAt

	return nil
}

// ListByStore retrieves all photos for a store, featured first, then newest first.
func (repo *photoRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Photo, error) {
	var photoModels []*model.StorePhotoModel
	err := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("featured desc, created_at desc").
		Find(&photoModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list photos by store")
	}

	photos := make([]*entity.Photo, 0, len(photoModels))
	for _, photoM := range photoModels {
		photos = append(photos, toPhotoDomain(photoM))
	}

	return photos, nil
}

// DeletePhoto removes a photo by its ID.
func (repo *photoRepository) DeletePhoto(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.StorePhotoModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete photo")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPhotoNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPhotoDomain(data *model.StorePhotoModel) *entity.Photo {
	return &entity.Photo{
		ID:        data.ID,
		StoreID:   data.StoreID,
		URL:       data.URL,
		Caption:   data.Caption,
		Featured:  data.Featured,
		CreatedAt: data.CreatedAt,
	}
}

func fromPhotoDomain(data *entity.Photo) *model.StorePhotoModel {
	return &model.StorePhotoModel{
		ID:        data.ID,
		StoreID:   data.StoreID,
		URL:       data.URL,
		Caption:   data.Caption,
		Featured:  data.Featured,
		CreatedAt: data.CreatedAt,
	}
}
