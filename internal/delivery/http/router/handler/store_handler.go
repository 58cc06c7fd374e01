package handler

import (
	"log/slog"
	"net/http"

	"abgad/internal/delivery/http/response"
	"abgad/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StoreHandlerParams holds dependencies for StoreHandler, injected by Fx.
type StoreHandlerParams struct {
	fx.In

	RegistrationUC usecase.RegistrationUsecase
	ProfileUC      usecase.ProfileUsecase
	Logger         *slog.Logger
}

// StoreHandler serves store registration and the public store profile.
type StoreHandler struct {
	registrationUC usecase.RegistrationUsecase
	profileUC      usecase.ProfileUsecase
	logger         *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler
func NewStoreHandler(params StoreHandlerParams) *StoreHandler {
	return &StoreHandler{
		registrationUC: params.RegistrationUC,
		profileUC:      params.ProfileUC,
		logger:         params.Logger,
	}
}

// RegisterLocationRequest is the primary location part of a registration request.
type RegisterLocationRequest struct {
	Latitude    float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude   float64 `json:"longitude" validate:"min=-180,max=180"`
	City        string  `json:"city" validate:"required"`
	Governorate string  `json:"governorate"`
	Address     string  `json:"address"`
}

// RegisterPhotoRequest is one photo in a registration request.
type RegisterPhotoRequest struct {
	URL      string `json:"url" validate:"required"`
	Caption  string `json:"caption"`
	Featured bool   `json:"featured"`
}

// RegisterStoreRequest represents the request body for registering a store.
type RegisterStoreRequest struct {
	TradingName string                  `json:"trading_name" validate:"required,max=255"`
	Description string                  `json:"description" validate:"max=2000"`
	Category    string                  `json:"category" validate:"required,max=100"`
	Location    RegisterLocationRequest `json:"location" validate:"required"`
	Photos      []RegisterPhotoRequest  `json:"photos" validate:"dive"`
}

// Register handles POST /stores.
func (h *StoreHandler) Register(c echo.Context) error {
	var req RegisterStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid registration payload")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, validationFields(err))
	}

	input := &usecase.RegisterStoreInput{
		TradingName: req.TradingName,
		Description: req.Description,
		Category:    req.Category,
		Location: usecase.RegisterLocationInput{
			Latitude:    req.Location.Latitude,
			Longitude:   req.Location.Longitude,
			City:        req.Location.City,
			Governorate: req.Location.Governorate,
			Address:     req.Location.Address,
		},
	}
	for _, photo := range req.Photos {
		input.Photos = append(input.Photos, usecase.RegisterPhotoInput{
			URL:      photo.URL,
			Caption:  photo.Caption,
			Featured: photo.Featured,
		})
	}

	store, err := h.registrationUC.RegisterStore(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, newStoreView(store, nil), "Store registered successfully")
}

// GetProfile handles GET /stores/:id.
func (h *StoreHandler) GetProfile(c echo.Context) error {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid store ID")
	}

	store, err := h.profileUC.GetPublicProfile(c.Request().Context(), storeID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newStoreView(store, nil), "")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
