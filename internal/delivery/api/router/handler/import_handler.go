package handler

import (
	"io"
	"log/slog"
	"net/http"

	"bizdir/internal/delivery/api/response"
	deliverycontext "bizdir/internal/delivery/context"
	domainerrors "bizdir/internal/domain/errors"
	"bizdir/internal/errors"
	"bizdir/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	msgMissingBody = "Request body is required"
	msgInvalidJSON = "Request body must be valid JSON"
)

// ImportHandlerParams holds dependencies for ImportHandler, injected by Fx.
type ImportHandlerParams struct {
	fx.In

	ImportUC usecase.ImportUsecase
	Logger   *slog.Logger
}

// ImportHandler accepts bulk listing uploads.
type ImportHandler struct {
	importUC usecase.ImportUsecase
	logger   *slog.Logger
}

// NewImportHandler is the constructor for ImportHandler
func NewImportHandler(params ImportHandlerParams) *ImportHandler {
	return &ImportHandler{
		importUC: params.ImportUC,
		logger:   params.Logger,
	}
}

// ImportListings takes a JSON array of raw listing records. Malformed batches are rejected
// before any write; per-record failures still answer 200 with the failures listed.
func (h *ImportHandler) ImportListings(c echo.Context) error {
	records, status, rejection := decodeBatch(c)
	if rejection != "" {
		return response.ImportRejected(c, status, rejection)
	}

	ctx := c.Request().Context()
	result, err := h.importUC.ImportBatch(ctx, records)
	if err != nil {
		var appErr domainerrors.AppError
		if !domainerrors.IsSystemic(err) && errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
			message := appErr.Message()
			if appErr.Details() != "" {
				message += ": " + appErr.Details()
			}

			return response.ImportRejected(c, appErr.HTTPCode(), message)
		}

		deliverycontext.LoggerOrDefault(ctx, h.logger).Error("Listing import failed",
			slog.Int("records", len(records)),
			slog.Any("error", err),
		)

		return response.ImportFailed(c, err)
	}

	return response.Import(c, result)
}

// decodeBatch reads the body as a JSON array. Elements that are not objects become nil
// records and are reported by the import as invalid.
func decodeBatch(c echo.Context) ([]map[string]any, int, string) {
	var payload any
	if err := c.Echo().JSONSerializer.Deserialize(c, &payload); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, http.StatusBadRequest, msgMissingBody
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) && httpErr.Code == http.StatusRequestEntityTooLarge {
			return nil, httpErr.Code, domainerrors.ErrBatchTooLarge.Message()
		}

		return nil, http.StatusBadRequest, msgInvalidJSON
	}

	if payload == nil {
		return nil, http.StatusBadRequest, msgMissingBody
	}

	items, ok := payload.([]any)
	if !ok {
		return nil, http.StatusBadRequest, domainerrors.ErrInvalidBatch.Message()
	}

	if len(items) == 0 {
		return nil, http.StatusBadRequest, domainerrors.ErrEmptyBatch.Message()
	}

	records := make([]map[string]any, len(items))
	for i, item := range items {
		records[i], _ = item.(map[string]any)
	}

	return records, http.StatusOK, ""
}
