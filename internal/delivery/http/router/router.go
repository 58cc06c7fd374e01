// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"abgad/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SearchHandler    *handler.SearchHandler
	StoreHandler     *handler.StoreHandler
	DashboardHandler *handler.DashboardHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	searchHandler    *handler.SearchHandler
	storeHandler     *handler.StoreHandler
	dashboardHandler *handler.DashboardHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		searchHandler:    params.SearchHandler,
		storeHandler:     params.StoreHandler,
		dashboardHandler: params.DashboardHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public store routes
	storeGroup := e.Group("/stores")
	{
		storeGroup.GET("/search", r.searchHandler.SearchStores)
		storeGroup.GET("/suggestions", r.searchHandler.Suggestions)
		storeGroup.POST("", r.storeHandler.Register)
		storeGroup.GET("/:id", r.storeHandler.GetProfile)
	}

	// Owner-facing dashboard routes
	dashboardGroup := e.Group("/dashboard/stores")
	{
		dashboardGroup.GET("/:id", r.dashboardHandler.GetStore)
		dashboardGroup.GET("/:id/analytics", r.dashboardHandler.GetAnalytics)
		dashboardGroup.GET("/:id/qrcode", r.dashboardHandler.GetQRCode)
	}
}
