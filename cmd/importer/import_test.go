package main

import (
	"context"
	"errors"
	"testing"

	"bizdir/internal/domain/entity"
	mockUC "bizdir/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDecodeRecords(t *testing.T) {
	records, err := decodeRecords([]byte(`[{"place_id":"A"}, "oops", {"place_id":"B"}]`))

	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "A", records[0]["place_id"])
	assert.Nil(t, records[1])
	assert.Equal(t, "B", records[2]["place_id"])
}

func TestDecodeRecords_Rejects(t *testing.T) {
	for _, input := range []string{`{}`, `[]`, `not json`} {
		_, err := decodeRecords([]byte(input))
		assert.Error(t, err, input)
	}
}

func TestImportInBatches(t *testing.T) {
	importUC := mockUC.NewMockImportUsecase(t)

	records := []map[string]any{
		{"place_id": "A"}, {"place_id": "B"}, {"place_id": "C"},
		{"place_id": "D"}, {"place_id": "E"},
	}

	importUC.EXPECT().
		ImportBatch(mock.Anything, mock.MatchedBy(func(batch []map[string]any) bool { return len(batch) == 2 && batch[0]["place_id"] == "A" })).
		Return(&entity.ImportBatchResult{Processed: 2, Inserted: 2, Errors: []entity.ImportError{}}, nil).
		Once()
	importUC.EXPECT().
		ImportBatch(mock.Anything, mock.MatchedBy(func(batch []map[string]any) bool { return len(batch) == 2 && batch[0]["place_id"] == "C" })).
		Return(&entity.ImportBatchResult{
			Processed: 2, Updated: 1, Failed: 1,
			Errors: []entity.ImportError{{Index: 1, ExternalID: "D", Message: "name is required"}},
		}, nil).
		Once()
	importUC.EXPECT().
		ImportBatch(mock.Anything, mock.MatchedBy(func(batch []map[string]any) bool { return len(batch) == 1 })).
		Return(&entity.ImportBatchResult{Processed: 1, Inserted: 1, Errors: []entity.ImportError{}}, nil).
		Once()

	total, err := importInBatches(context.Background(), importUC, records, 2)

	require.NoError(t, err)
	assert.Equal(t, 5, total.Processed)
	assert.Equal(t, 3, total.Inserted)
	assert.Equal(t, 1, total.Updated)
	assert.Equal(t, 1, total.Failed)
	assert.Equal(t, []entity.ImportError{{Index: 3, ExternalID: "D", Message: "name is required"}}, total.Errors)
}

func TestImportInBatches_StopsOnError(t *testing.T) {
	importUC := mockUC.NewMockImportUsecase(t)

	importUC.EXPECT().
		ImportBatch(mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset")).
		Once()

	_, err := importInBatches(context.Background(), importUC, []map[string]any{{"place_id": "A"}, {"place_id": "B"}}, 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}
