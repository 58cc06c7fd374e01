package impl

import (
	"context"
	"strconv"
	"strings"
	"time"

	"abgad/internal/domain/entity"
	domainerrors "abgad/internal/domain/errors"
	"abgad/internal/domain/geo"
	"abgad/internal/domain/repository"
	"abgad/internal/errors"
	"abgad/internal/usecase"

	"github.com/google/uuid"
)

type registrationService struct {
	txManager repository.TransactionManager
}

// NewRegistrationService creates the store registration use case.
func NewRegistrationService(txManager repository.TransactionManager) usecase.RegistrationUsecase {
	return &registrationService{
		txManager: txManager,
	}
}

// RegisterStore validates the input and persists the store, its primary
// location and its photos inside one transaction. Stores start out active but
// unverified; verification happens in the back office.
func (s *registrationService) RegisterStore(ctx context.Context, input *usecase.RegisterStoreInput) (*entity.Store, error) {
	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	now := time.Now()
	storeID := uuid.New()

	store := &entity.Store{
		ID:          storeID,
		TradingName: strings.TrimSpace(input.TradingName),
		Description: strings.TrimSpace(input.Description),
		Category:    strings.TrimSpace(input.Category),
		Active:      true,
		Verified:    false,
		Location: &entity.Location{
			ID:          uuid.New(),
			StoreID:     storeID,
			Latitude:    input.Location.Latitude,
			Longitude:   input.Location.Longitude,
			City:        strings.TrimSpace(input.Location.City),
			Governorate: strings.TrimSpace(input.Location.Governorate),
			Address:     strings.TrimSpace(input.Location.Address),
			IsPrimary:   true,
			CreatedAt:   now,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewStoreRepository().Create(ctx, store); err != nil {
			return errors.Wrap(err, "failed to create store")
		}

		photoRepo := repoFactory.NewPhotoRepository()
		for _, photoInput := range input.Photos {
			photo := &entity.Photo{
				ID:        uuid.New(),
				StoreID:   storeID,
				URL:       strings.TrimSpace(photoInput.URL),
				Caption:   strings.TrimSpace(photoInput.Caption),
				Featured:  photoInput.Featured,
				CreatedAt: now,
			}
			if err := photoRepo.AddPhoto(ctx, photo); err != nil {
				return errors.Wrap(err, "failed to add photo")
			}
			store.Photos = append(store.Photos, *photo)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

func validateRegistration(input *usecase.RegisterStoreInput) error {
	fieldErrs := make(map[string]string)

	if strings.TrimSpace(input.TradingName) == "" {
		fieldErrs["trading_name"] = "is required"
	}
	if strings.TrimSpace(input.Category) == "" {
		fieldErrs["category"] = "is required"
	}
	if !geo.ValidLatitude(input.Location.Latitude) {
		fieldErrs["location.latitude"] = "must be between -90 and 90"
	}
	if !geo.ValidLongitude(input.Location.Longitude) {
		fieldErrs["location.longitude"] = "must be between -180 and 180"
	}
	if strings.TrimSpace(input.Location.City) == "" {
		fieldErrs["location.city"] = "is required"
	}
	for i, photo := range input.Photos {
		if strings.TrimSpace(photo.URL) == "" {
			fieldErrs["photos."+strconv.Itoa(i)+".url"] = "is required"
		}
	}

	if len(fieldErrs) > 0 {
		return domainerrors.NewValidationError(fieldErrs)
	}

	return nil
}
