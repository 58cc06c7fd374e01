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

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	DashboardUC usecase.DashboardUsecase
	Logger      *slog.Logger
}

// DashboardHandler serves the owner-facing store dashboard.
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
	logger      *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: params.DashboardUC,
		logger:      params.Logger,
	}
}

// GetStore handles GET /dashboard/stores/:id.
func (h *DashboardHandler) GetStore(c echo.Context) error {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid store ID")
	}

	store, err := h.dashboardUC.GetStore(c.Request().Context(), storeID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newStoreView(store, nil), "")
}

// GetAnalytics handles GET /dashboard/stores/:id/analytics.
func (h *DashboardHandler) GetAnalytics(c echo.Context) error {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid store ID")
	}

	summary, err := h.dashboardUC.GetVisitSummary(c.Request().Context(), storeID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, summary, "")
}

// GetQRCode handles GET /dashboard/stores/:id/qrcode and returns a PNG image.
func (h *DashboardHandler) GetQRCode(c echo.Context) error {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid store ID")
	}

	png, err := h.dashboardUC.GetProfileQR(c.Request().Context(), storeID)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
