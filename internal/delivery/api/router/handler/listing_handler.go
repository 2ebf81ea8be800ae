package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"bizdir/internal/delivery/api/response"
	"bizdir/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ListingHandlerParams holds dependencies for ListingHandler, injected by Fx.
type ListingHandlerParams struct {
	fx.In

	ListingUC usecase.ListingUsecase
	Logger    *slog.Logger
}

// ListingHandler serves the listing read and maintenance endpoints.
type ListingHandler struct {
	listingUC usecase.ListingUsecase
	logger    *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler
func NewListingHandler(params ListingHandlerParams) *ListingHandler {
	return &ListingHandler{
		listingUC: params.ListingUC,
		logger:    params.Logger,
	}
}

// ListListings handles GET /api/listings?type=&page=&limit=
func (h *ListingHandler) ListListings(c echo.Context) error {
	input := &usecase.ListListingsInput{}
	err := echo.QueryParamsBinder(c).
		String("type", &input.PrimaryType).
		Int("page", &input.Page).
		Int("limit", &input.Limit).
		BindError()
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "page and limit must be integers")
	}

	output, err := h.listingUC.ListListings(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, newListingResponses(output.Listings), output.Page, output.Limit, output.Total)
}

// NearbyListings handles GET /api/listings/nearby?lat=&lng=&radiusKm=&limit=
func (h *ListingHandler) NearbyListings(c echo.Context) error {
	input := &usecase.NearbyListingsInput{}
	err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &input.Latitude).
		MustFloat64("lng", &input.Longitude).
		MustFloat64("radiusKm", &input.RadiusKm).
		Int("limit", &input.Limit).
		BindError()
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "lat, lng and radiusKm are required numbers")
	}

	nearby, err := h.listingUC.NearbyListings(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newNearbyResponses(nearby))
}

// GetListing handles GET /api/listings/:externalId
func (h *ListingHandler) GetListing(c echo.Context) error {
	externalID, ok := externalIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	listing, err := h.listingUC.GetListing(c.Request().Context(), externalID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newListingResponse(listing))
}

// PatchListing handles PATCH /api/listings/:externalId
func (h *ListingHandler) PatchListing(c echo.Context) error {
	externalID, ok := externalIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	var req PatchListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Input validation failed", err.Error())
	}

	listing, err := h.listingUC.PatchListing(c.Request().Context(), externalID, req.toPatch())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newListingResponse(listing))
}

// DeleteListing handles DELETE /api/listings/:externalId
func (h *ListingHandler) DeleteListing(c echo.Context) error {
	externalID, ok := externalIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	if err := h.listingUC.DeleteListing(c.Request().Context(), externalID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

func externalIDParam(c echo.Context) (string, bool) {
	externalID := strings.TrimSpace(c.Param("externalId"))

	return externalID, externalID != ""
}
