package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"abgad/internal/delivery/http/middleware"
	"abgad/internal/delivery/http/validator"
	"abgad/internal/domain/entity"
	domainerrors "abgad/internal/domain/errors"
	"abgad/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type fakeRegistrationUC struct {
	registerFn func(ctx context.Context, input *usecase.RegisterStoreInput) (*entity.Store, error)
}

func (f *fakeRegistrationUC) RegisterStore(ctx context.Context, input *usecase.RegisterStoreInput) (*entity.Store, error) {
	return f.registerFn(ctx, input)
}

type fakeProfileUC struct {
	getFn func(ctx context.Context, storeID uuid.UUID) (*entity.Store, error)
}

func (f *fakeProfileUC) GetPublicProfile(ctx context.Context, storeID uuid.UUID) (*entity.Store, error) {
	return f.getFn(ctx, storeID)
}

func newStoreTestServer(registrationUC usecase.RegistrationUsecase, profileUC usecase.ProfileUsecase) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	h := &StoreHandler{registrationUC: registrationUC, profileUC: profileUC, logger: logger}
	e.POST("/stores", h.Register)
	e.GET("/stores/:id", h.GetProfile)

	return e
}

func TestStoreHandler_Register(t *testing.T) {
	uc := &fakeRegistrationUC{
		registerFn: func(ctx context.Context, input *usecase.RegisterStoreInput) (*entity.Store, error) {
			assert.Equal(t, "Amman Bakery", input.TradingName)
			return &entity.Store{
				ID:          uuid.New(),
				TradingName: input.TradingName,
				Category:    input.Category,
				Active:      true,
			}, nil
		},
	}
	e := newStoreTestServer(uc, nil)

	body := `{
		"trading_name": "Amman Bakery",
		"category": "Bakery",
		"location": {"latitude": 31.9454, "longitude": 35.9284, "city": "Amman"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/stores", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Amman Bakery")
}

func TestStoreHandler_Register_MissingNameRenders422(t *testing.T) {
	uc := &fakeRegistrationUC{
		registerFn: func(ctx context.Context, input *usecase.RegisterStoreInput) (*entity.Store, error) {
			t.Fatal("use case must not be reached on validation failure")
			return nil, nil
		},
	}
	e := newStoreTestServer(uc, nil)

	body := `{"category": "Bakery", "location": {"latitude": 31.9, "longitude": 35.9, "city": "Amman"}}`
	req := httptest.NewRequest(http.MethodPost, "/stores", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "trading_name")
}

func TestStoreHandler_GetProfile(t *testing.T) {
	storeID := uuid.New()
	uc := &fakeProfileUC{
		getFn: func(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
			assert.Equal(t, storeID, id)
			return &entity.Store{ID: id, TradingName: "Visible", Active: true, Verified: true}, nil
		},
	}
	e := newStoreTestServer(nil, uc)

	req := httptest.NewRequest(http.MethodGet, "/stores/"+storeID.String(), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Visible")
}

func TestStoreHandler_GetProfile_InvalidIDRenders400(t *testing.T) {
	e := newStoreTestServer(nil, &fakeProfileUC{})

	req := httptest.NewRequest(http.MethodGet, "/stores/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStoreHandler_GetProfile_HiddenStoreRenders404(t *testing.T) {
	uc := &fakeProfileUC{
		getFn: func(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
			return nil, domainerrors.ErrStoreNotVisible
		},
	}
	e := newStoreTestServer(nil, uc)

	req := httptest.NewRequest(http.MethodGet, "/stores/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}
