package usecase

import (
	"context"

	"abgad/internal/domain/entity"
)

// RegisterLocationInput is the primary location supplied at registration.
type RegisterLocationInput struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	City        string  `json:"city"`
	Governorate string  `json:"governorate"`
	Address     string  `json:"address"`
}

// RegisterPhotoInput is one photo supplied at registration.
type RegisterPhotoInput struct {
	URL      string `json:"url"`
	Caption  string `json:"caption"`
	Featured bool   `json:"featured"`
}

// RegisterStoreInput carries everything needed to register a store. The store,
// its primary location and its photos are persisted in one transaction.
type RegisterStoreInput struct {
	TradingName string                `json:"trading_name"`
	Description string                `json:"description"`
	Category    string                `json:"category"`
	Location    RegisterLocationInput `json:"location"`
	Photos      []RegisterPhotoInput  `json:"photos"`
}

// RegistrationUsecase defines the public store registration flow.
type RegistrationUsecase interface {
	// RegisterStore creates a new unverified store with its primary location
	// and optional photos. Any persistence failure rolls the whole unit back.
	RegisterStore(ctx context.Context, input *RegisterStoreInput) (*entity.Store, error)
}
