package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bizdir/internal/delivery/api/response"
	"bizdir/internal/domain/entity"
	domainerrors "bizdir/internal/domain/errors"
	mockUC "bizdir/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newImportHandlerUnderTest(t *testing.T) (*ImportHandler, *mockUC.MockImportUsecase) {
	t.Helper()

	importUC := mockUC.NewMockImportUsecase(t)
	handler := NewImportHandler(ImportHandlerParams{
		ImportUC: importUC,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return handler, importUC
}

func postImport(t *testing.T, handler *ImportHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/import/listings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.ImportListings(e.NewContext(req, rec)))

	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) response.ImportMessage {
	t.Helper()

	var msg response.ImportMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))

	return msg
}

func TestImportHandler_ImportListings_RejectsMalformedBatches(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{name: "missing body", body: "", message: msgMissingBody},
		{name: "null body", body: "null", message: msgMissingBody},
		{name: "object instead of array", body: `{}`, message: domainerrors.ErrInvalidBatch.Message()},
		{name: "scalar instead of array", body: `"listings"`, message: domainerrors.ErrInvalidBatch.Message()},
		{name: "empty array", body: `[]`, message: domainerrors.ErrEmptyBatch.Message()},
		{name: "broken json", body: `[{"place_id":`, message: msgInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The usecase mock has no expectations, so any call fails the test.
			handler, _ := newImportHandlerUnderTest(t)

			rec := postImport(t, handler, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.message, decodeMessage(t, rec).Message)
		})
	}
}

func TestImportHandler_ImportListings_Success(t *testing.T) {
	handler, importUC := newImportHandlerUnderTest(t)

	result := &entity.ImportBatchResult{
		Processed: 3,
		Inserted:  1,
		Failed:    2,
		Errors: []entity.ImportError{
			{Index: 1, ExternalID: "B", Message: "name is required"},
			{Index: 2, Message: "record must be a JSON object"},
		},
	}

	importUC.EXPECT().
		ImportBatch(mock.Anything, mock.MatchedBy(func(records []map[string]any) bool {
			return len(records) == 3 &&
				records[0]["place_id"] == "A" &&
				records[1]["place_id"] == "B" &&
				records[2] == nil
		})).
		Return(result, nil).
		Once()

	rec := postImport(t, handler, `[{"place_id":"A","name":"Cafe X"},{"place_id":"B"},42]`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Import completed with 2 failed record(s)", body["message"])
	assert.EqualValues(t, 3, body["processed"])
	assert.EqualValues(t, 1, body["inserted"])
	assert.EqualValues(t, 0, body["updated"])
	assert.EqualValues(t, 2, body["failed"])

	errs, ok := body["errors"].([]any)
	require.True(t, ok)
	require.Len(t, errs, 2)

	first := errs[0].(map[string]any)
	assert.Equal(t, "B", first["externalId"])
	assert.Equal(t, "name is required", first["error"])

	second := errs[1].(map[string]any)
	assert.NotContains(t, second, "externalId")
	assert.EqualValues(t, 2, second["index"])
}

func TestImportHandler_ImportListings_SystemicFailure(t *testing.T) {
	handler, importUC := newImportHandlerUnderTest(t)

	importUC.EXPECT().
		ImportBatch(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewSystemicError(errors.New("connection refused"), "import transaction failed")).
		Once()

	rec := postImport(t, handler, `[{"place_id":"A","name":"Cafe X"}]`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	msg := decodeMessage(t, rec)
	assert.Equal(t, "Import failed", msg.Message)
	assert.Contains(t, msg.Error, "connection refused")
}

func TestImportHandler_ImportListings_BatchTooLarge(t *testing.T) {
	handler, importUC := newImportHandlerUnderTest(t)

	importUC.EXPECT().
		ImportBatch(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrBatchTooLarge.WithDetails("batch has 2 records, the limit is 1")).
		Once()

	rec := postImport(t, handler, `[{"place_id":"A","name":"a"},{"place_id":"B","name":"b"}]`)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "Too many listings in a single batch: batch has 2 records, the limit is 1", decodeMessage(t, rec).Message)
}

func TestImportHandler_ImportListings_UnclassifiedErrorIsServerError(t *testing.T) {
	handler, importUC := newImportHandlerUnderTest(t)

	importUC.EXPECT().
		ImportBatch(mock.Anything, mock.Anything).
		Return(nil, errors.New("boom")).
		Once()

	rec := postImport(t, handler, `[{"place_id":"A","name":"Cafe X"}]`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "boom", decodeMessage(t, rec).Error)
}
