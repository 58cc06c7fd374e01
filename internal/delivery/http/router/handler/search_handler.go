package handler

import (
	"log/slog"
	"net/http"
	"time"

	"abgad/internal/delivery/http/response"
	"abgad/internal/domain/entity"
	"abgad/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
	Logger   *slog.Logger
}

// SearchHandler serves the public search and suggestion endpoints.
type SearchHandler struct {
	searchUC usecase.SearchUsecase
	logger   *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{
		searchUC: params.SearchUC,
		logger:   params.Logger,
	}
}

// SearchStoresRequest represents the query parameters for store search.
// Optional numerics are pointers so "absent" and "zero" stay distinct.
type SearchStoresRequest struct {
	Query       string   `query:"q"`
	Category    string   `query:"category"`
	City        string   `query:"city"`
	Governorate string   `query:"governorate"`
	Latitude    *float64 `query:"latitude"`
	Longitude   *float64 `query:"longitude"`
	Radius      *float64 `query:"radius"`
	Sort        string   `query:"sort"`
	PerPage     int      `query:"per_page"`
	Page        int      `query:"page"`
}

// SuggestionsRequest represents the query parameters for suggestions.
type SuggestionsRequest struct {
	Query string `query:"q"`
}

// StoreView is the wire representation of a store in search results and
// profile responses.
type StoreView struct {
	ID          uuid.UUID     `json:"id"`
	TradingName string        `json:"trading_name"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Verified    bool          `json:"verified"`
	Location    *LocationView `json:"location,omitempty"`
	Photos      []PhotoView   `json:"photos"`
	DistanceKm  *float64      `json:"distance_km,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// LocationView is the wire representation of a store's primary location.
type LocationView struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	City        string  `json:"city"`
	Governorate string  `json:"governorate"`
	Address     string  `json:"address,omitempty"`
}

// PhotoView is the wire representation of a store photo.
type PhotoView struct {
	ID       uuid.UUID `json:"id"`
	URL      string    `json:"url"`
	Caption  string    `json:"caption,omitempty"`
	Featured bool      `json:"featured"`
}

// SearchStores handles GET /stores/search.
func (h *SearchHandler) SearchStores(c echo.Context) error {
	var req SearchStoresRequest
	if err := c.Bind(&req); err != nil {
		return response.ValidationFailed(c, map[string]string{
			"query": "invalid query parameter types",
		})
	}

	input := &usecase.SearchStoresInput{
		Query:       req.Query,
		Category:    req.Category,
		City:        req.City,
		Governorate: req.Governorate,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		RadiusKm:    req.Radius,
		Sort:        req.Sort,
		Page:        req.Page,
		PerPage:     req.PerPage,
	}

	page, err := h.searchUC.SearchStores(c.Request().Context(), input)
	if err != nil {
		return err
	}

	views := make([]StoreView, 0, len(page.Stores))
	for _, result := range page.Stores {
		views = append(views, newStoreView(result.Store, result.DistanceKm))
	}

	return response.Paginated(c, views, response.NewPagination(page.Pagination))
}

// Suggestions handles GET /stores/suggestions.
func (h *SearchHandler) Suggestions(c echo.Context) error {
	var req SuggestionsRequest
	if err := c.Bind(&req); err != nil {
		return response.ValidationFailed(c, map[string]string{
			"q": "invalid query parameter",
		})
	}

	suggestions, err := h.searchUC.Suggest(c.Request().Context(), req.Query)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, suggestions, "")
}

// newStoreView maps a store entity (and optional computed distance) onto its
// wire form.
func newStoreView(store *entity.Store, distanceKm *float64) StoreView {
	view := StoreView{
		ID:          store.ID,
		TradingName: store.TradingName,
		Description: store.Description,
		Category:    store.Category,
		Verified:    store.Verified,
		Photos:      []PhotoView{},
		DistanceKm:  distanceKm,
		CreatedAt:   store.CreatedAt,
	}

	if store.Location != nil {
		view.Location = &LocationView{
			Latitude:    store.Location.Latitude,
			Longitude:   store.Location.Longitude,
			City:        store.Location.City,
			Governorate: store.Location.Governorate,
			Address:     store.Location.Address,
		}
	}

	for _, photo := range store.Photos {
		view.Photos = append(view.Photos, PhotoView{
			ID:       photo.ID,
			URL:      photo.URL,
			Caption:  photo.Caption,
			Featured: photo.Featured,
		})
	}

	return view
}
