package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bizdir/config"
	apimiddleware "bizdir/internal/delivery/api/middleware"
	"bizdir/internal/delivery/api/router"
	"bizdir/internal/delivery/api/router/handler"
	mockSvc "bizdir/internal/mocks/service"
	mockUC "bizdir/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestServerParams(t *testing.T, bodyLimit string) ServerParams {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = bodyLimit
	cfg.ApplyDefaults()
	cfg.Import.RequireAuth = false

	return ServerParams{
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			ImportHandler:  handler.NewImportHandler(handler.ImportHandlerParams{ImportUC: mockUC.NewMockImportUsecase(t), Logger: logger}),
			ListingHandler: handler.NewListingHandler(handler.ListingHandlerParams{ListingUC: mockUC.NewMockListingUsecase(t), Logger: logger}),
			AuthMiddleware: apimiddleware.NewAuthMiddleware(mockSvc.NewMockTokenService(t)),
			Config:         cfg,
		},
		ErrorMiddleware: apimiddleware.NewErrorMiddleware(logger),
	}
}

func TestNewEcho_HealthCarriesRequestID(t *testing.T) {
	e := newEcho(newTestServerParams(t, "1M"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "probe-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "probe-1", rec.Header().Get("X-Request-Id"))
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.Contains(t, rec.Body.String(), `"request_id":"probe-1"`)
}

func TestNewEcho_RejectsOversizedBody(t *testing.T) {
	e := newEcho(newTestServerParams(t, "1K"))

	body := `[{"place_id":"A","name":"` + strings.Repeat("x", 2048) + `"}]`
	req := httptest.NewRequest(http.MethodPost, "/api/import/listings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestNewEcho_UnknownRoute(t *testing.T) {
	e := newEcho(newTestServerParams(t, "1M"))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}
