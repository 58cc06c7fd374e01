package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"abgad/internal/delivery/http/middleware"
	"abgad/internal/domain/entity"
	domainerrors "abgad/internal/domain/errors"
	"abgad/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSearchUC lets each test script the use case responses.
type fakeSearchUC struct {
	searchFn  func(ctx context.Context, input *usecase.SearchStoresInput) (*usecase.SearchResultPage, error)
	suggestFn func(ctx context.Context, term string) (*usecase.SuggestionSet, error)
}

func (f *fakeSearchUC) SearchStores(ctx context.Context, input *usecase.SearchStoresInput) (*usecase.SearchResultPage, error) {
	return f.searchFn(ctx, input)
}

func (f *fakeSearchUC) Suggest(ctx context.Context, term string) (*usecase.SuggestionSet, error) {
	return f.suggestFn(ctx, term)
}

// newTestServer wires the handler and the error handler the way the real
// server does, so use case errors render through the shared envelope.
func newTestServer(uc usecase.SearchUsecase) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	h := &SearchHandler{searchUC: uc, logger: logger}
	e.GET("/stores/search", h.SearchStores)
	e.GET("/stores/suggestions", h.Suggestions)

	return e
}

func TestSearchHandler_SearchStores_Success(t *testing.T) {
	from, to := 1, 1
	store := &entity.Store{
		ID:          uuid.New(),
		TradingName: "Amman Bakery",
		Category:    "Bakery",
		Verified:    true,
		Active:      true,
		Location: &entity.Location{
			Latitude:  31.9454,
			Longitude: 35.9284,
			City:      "Amman",
		},
	}
	distance := 1.25
	uc := &fakeSearchUC{
		searchFn: func(ctx context.Context, input *usecase.SearchStoresInput) (*usecase.SearchResultPage, error) {
			assert.Equal(t, "bakery", input.Query)
			return &usecase.SearchResultPage{
				Stores: []usecase.StoreResult{{Store: store, DistanceKm: &distance}},
				Pagination: usecase.Pagination{
					CurrentPage: 1, LastPage: 1, PerPage: 15, Total: 1,
					From: &from, To: &to,
				},
			}, nil
		},
	}

	e := newTestServer(uc)
	req := httptest.NewRequest(http.MethodGet, "/stores/search?q=bakery", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success    bool        `json:"success"`
		Data       []StoreView `json:"data"`
		Pagination *struct {
			CurrentPage int  `json:"current_page"`
			LastPage    int  `json:"last_page"`
			PerPage     int  `json:"per_page"`
			Total       int  `json:"total"`
			From        *int `json:"from"`
			To          *int `json:"to"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	assert.True(t, envelope.Success)
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "Amman Bakery", envelope.Data[0].TradingName)
	require.NotNil(t, envelope.Data[0].DistanceKm)
	assert.InDelta(t, 1.25, *envelope.Data[0].DistanceKm, 1e-9)
	require.NotNil(t, envelope.Pagination)
	assert.Equal(t, 1, envelope.Pagination.Total)
	require.NotNil(t, envelope.Pagination.From)
	assert.Equal(t, 1, *envelope.Pagination.From)
}

func TestSearchHandler_SearchStores_EmptyResultIsSuccess(t *testing.T) {
	uc := &fakeSearchUC{
		searchFn: func(ctx context.Context, input *usecase.SearchStoresInput) (*usecase.SearchResultPage, error) {
			return &usecase.SearchResultPage{
				Stores:     nil,
				Pagination: usecase.Pagination{CurrentPage: 1, PerPage: 15},
			}, nil
		},
	}

	e := newTestServer(uc)
	req := httptest.NewRequest(http.MethodGet, "/stores/search?q=nothing", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"data":[]`)
	assert.Contains(t, body, `"from":null`)
	assert.Contains(t, body, `"to":null`)
}

func TestSearchHandler_SearchStores_ValidationErrorRenders422(t *testing.T) {
	uc := &fakeSearchUC{
		searchFn: func(ctx context.Context, input *usecase.SearchStoresInput) (*usecase.SearchResultPage, error) {
			return nil, domainerrors.NewFieldValidationError("longitude", "longitude is required when latitude is supplied")
		},
	}

	e := newTestServer(uc)
	req := httptest.NewRequest(http.MethodGet, "/stores/search?latitude=31.95", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"success":false`)
	assert.Contains(t, body, `"longitude"`)
}

func TestSearchHandler_SearchStores_MalformedNumberRenders422(t *testing.T) {
	uc := &fakeSearchUC{
		searchFn: func(ctx context.Context, input *usecase.SearchStoresInput) (*usecase.SearchResultPage, error) {
			t.Fatal("use case must not be reached on bind failure")
			return nil, nil
		},
	}

	e := newTestServer(uc)
	req := httptest.NewRequest(http.MethodGet, "/stores/search?latitude=abc", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestSearchHandler_Suggestions(t *testing.T) {
	uc := &fakeSearchUC{
		suggestFn: func(ctx context.Context, term string) (*usecase.SuggestionSet, error) {
			assert.Equal(t, "am", term)
			return &usecase.SuggestionSet{
				Stores:     []usecase.StoreSuggestion{{ID: uuid.New(), Name: "Amman Bakery", Category: "Bakery"}},
				Categories: []string{"Automotive"},
				Cities:     []string{"Amman"},
			}, nil
		},
	}

	e := newTestServer(uc)
	req := httptest.NewRequest(http.MethodGet, "/stores/suggestions?q=am", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Amman Bakery")
	assert.Contains(t, body, "Automotive")
}

func TestSearchHandler_Suggestions_ShortTermRenders422(t *testing.T) {
	uc := &fakeSearchUC{
		suggestFn: func(ctx context.Context, term string) (*usecase.SuggestionSet, error) {
			return nil, domainerrors.NewFieldValidationError("q", "must be at least 2 characters")
		},
	}

	e := newTestServer(uc)
	req := httptest.NewRequest(http.MethodGet, "/stores/suggestions?q=a", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"q"`)
}
