package response

import (
	"fmt"
	"net/http"

	"bizdir/internal/domain/entity"
	domainerrors "bizdir/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// ImportResult is the body returned for a completed import batch.
type ImportResult struct {
	Message   string            `json:"message"`
	Processed int               `json:"processed"`
	Inserted  int               `json:"inserted"`
	Updated   int               `json:"updated"`
	Failed    int               `json:"failed"`
	Errors    []ImportErrorItem `json:"errors"`
}

// ImportErrorItem reports one rejected record. ExternalID is omitted when the record had none.
type ImportErrorItem struct {
	ExternalID string `json:"externalId,omitempty"`
	Index      int    `json:"index"`
	Error      string `json:"error"`
}

// ImportMessage is the body of a rejected or failed import.
type ImportMessage struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// NewImportResult formats a batch outcome.
func NewImportResult(result *entity.ImportBatchResult) ImportResult {
	items := make([]ImportErrorItem, 0, len(result.Errors))
	for _, importErr := range result.Errors {
		items = append(items, ImportErrorItem{
			ExternalID: importErr.ExternalID,
			Index:      importErr.Index,
			Error:      importErr.Message,
		})
	}

	message := "Import completed"
	if result.Failed > 0 {
		message = fmt.Sprintf("Import completed with %d failed record(s)", result.Failed)
	}

	return ImportResult{
		Message:   message,
		Processed: result.Processed,
		Inserted:  result.Inserted,
		Updated:   result.Updated,
		Failed:    result.Failed,
		Errors:    items,
	}
}

// Import relays a finished batch with 200, even when some records failed.
func Import(c echo.Context, result *entity.ImportBatchResult) error {
	return c.JSON(http.StatusOK, NewImportResult(result))
}

// ImportRejected answers a batch that was refused before any write.
func ImportRejected(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ImportMessage{Message: message})
}

// ImportFailed answers a batch that was rolled back by a systemic failure.
func ImportFailed(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, ImportMessage{
		Message: domainerrors.ErrImportFailed.Message(),
		Error:   err.Error(),
	})
}
