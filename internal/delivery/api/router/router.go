// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bizdir/config"
	"bizdir/internal/delivery/api/middleware"
	"bizdir/internal/delivery/api/router/handler"
	"bizdir/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ImportHandler  *handler.ImportHandler
	ListingHandler *handler.ListingHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	importHandler  *handler.ImportHandler
	listingHandler *handler.ListingHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		importHandler:  params.ImportHandler,
		listingHandler: params.ListingHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Bulk import, optionally restricted to admins
	importMiddleware := r.adminOnly()
	if r.config.Import != nil && !r.config.Import.RequireAuth {
		importMiddleware = nil
	}
	api.POST("/import/listings", r.importHandler.ImportListings, importMiddleware...)
	api.POST("/listings/import", r.importHandler.ImportListings, importMiddleware...)

	listingsGroup := api.Group("/listings")
	{
		listingsGroup.GET("", r.listingHandler.ListListings)
		listingsGroup.GET("/nearby", r.listingHandler.NearbyListings)
		listingsGroup.GET("/:externalId", r.listingHandler.GetListing)

		listingsGroup.PATCH("/:externalId", r.listingHandler.PatchListing,
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleEditor),
		)
		listingsGroup.DELETE("/:externalId", r.listingHandler.DeleteListing, r.adminOnly()...)
	}
}

func (r *router) adminOnly() []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireRole(entity.RoleAdmin),
	}
}
