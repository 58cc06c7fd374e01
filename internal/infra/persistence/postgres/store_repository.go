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

// storeRepository implements the domain.StoreRepository interface using GORM.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

// Create persists a new store entity, including its associated location and
// photos. GORM's Create with associations inserts into stores, store_locations
// and store_photos together.
func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateTradingName.WrapMessage("store already registered")
		}
		if isForeignKeyConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrStoreCreationFailed.WrapMessage("missing required store information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// FindByID retrieves a store by its unique ID with its locations and photos preloaded.
func (repo *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var storeM model.StoreModel
	err := repo.db.WithContext(ctx).
		Preload("Locations").
		Preload("Photos").
		Where("id = ?", id).
		First(&storeM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by id")
	}

	return toStoreDomain(&storeM), nil
}

// ListEligible retrieves every active and verified store ordered by ID
// ascending. The fixed order keeps downstream sorting and suggestion caps
// deterministic.
func (repo *storeRepository) ListEligible(ctx context.Context) ([]*entity.Store, error) {
	var storeModels []*model.StoreModel
	err := repo.db.WithContext(ctx).
		Preload("Locations").
		Preload("Photos", "featured = ?", true).
		Where("active = ? AND verified = ?", true, true).
		Order("id asc").
		Find(&storeModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list eligible stores")
	}

	stores := make([]*entity.Store, 0, len(storeModels))
	for _, storeM := range storeModels {
		stores = append(stores, toStoreDomain(storeM))
	}

	return stores, nil
}

// Update updates the mutable listing fields of an existing store.
func (repo *storeRepository) Update(ctx context.Context, store *entity.Store) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("id = ?", store.ID).
		Updates(map[string]any{
			"trading_name": store.TradingName,
			"description":  store.Description,
			"category":     store.Category,
			"active":       store.Active,
			"verified":     store.Verified,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrDuplicateTradingName.WrapMessage("trading name already in use")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update store")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toStoreDomain converts a GORM StoreModel to a domain Store entity.
// The primary location is surfaced directly; non-primary rows are ignored by
// the search paths.
func toStoreDomain(data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	store := &entity.Store{
		ID:          data.ID,
		TradingName: data.TradingName,
		Description: data.Description,
		Category:    data.Category,
		Verified:    data.Verified,
		Active:      data.Active,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	for i := range data.Locations {
		if data.Locations[i].IsPrimary {
			store.Location = toLocationDomain(&data.Locations[i])

			break
		}
	}

	for i := range data.Photos {
		store.Photos = append(store.Photos, *toPhotoDomain(&data.Photos[i]))
	}

	return store
}

// fromStoreDomain converts a domain Store entity to a GORM StoreModel.
func fromStoreDomain(data *entity.Store) *model.StoreModel {
	if data == nil {
		return nil
	}

	storeM := &model.StoreModel{
		ID:          data.ID,
		TradingName: data.TradingName,
		Description: data.Description,
		Category:    data.Category,
		Verified:    data.Verified,
		Active:      data.Active,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if data.Location != nil {
		storeM.Locations = []model.StoreLocationModel{*fromLocationDomain(data.Location)}
	}
	for i := range data.Photos {
		storeM.Photos = append(storeM.Photos, *fromPhotoDomain(&data.Photos[i]))
	}

	return storeM
}

func toLocationDomain(data *model.StoreLocationModel) *entity.Location {
	return &entity.Location{
		ID:          data.ID,
		StoreID:     data.StoreID,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		City:        data.City,
		Governorate: data.Governorate,
		Address:     data.Address,
		IsPrimary:   data.IsPrimary,
		CreatedAt:   data.CreatedAt,
	}
}

func fromLocationDomain(data *entity.Location) *model.StoreLocationModel {
	return &model.StoreLocationModel{
		ID:          data.ID,
		StoreID:     data.StoreID,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		City:        data.City,
		Governorate: data.Governorate,
		Address:     data.Address,
		IsPrimary:   data.IsPrimary,
		CreatedAt:   data.CreatedAt,
	}
}
