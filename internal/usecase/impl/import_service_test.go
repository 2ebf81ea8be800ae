package impl

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"bizdir/internal/domain/entity"
	domainerrors "bizdir/internal/domain/errors"
	"bizdir/internal/domain/repository"
	mockRepo "bizdir/internal/mocks/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newImportServiceWithStore(store *memoryStore) *importService {
	svc := NewImportService(ImportServiceParams{
		TxManager: store,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return svc.(*importService)
}

func records(t *testing.T, body string) []map[string]any {
	t.Helper()

	var batch []map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &batch))

	return batch
}

func assertCountsInvariant(t *testing.T, result *entity.ImportBatchResult) {
	t.Helper()

	assert.Equal(t, result.Processed, result.Inserted+result.Updated+result.Failed)
	assert.Len(t, result.Errors, result.Failed)
}

func TestImportService_ExampleBatch(t *testing.T) {
	store := newMemoryStore()
	svc := newImportServiceWithStore(store)

	result, err := svc.ImportBatch(context.Background(), records(t, `[
		{"externalId": "A", "name": "Cafe X", "reviews": [{"author": "Bob", "rating": 5, "text": "Great"}]},
		{"externalId": "B"}
	]`))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "B", result.Errors[0].ExternalID)
	assert.Equal(t, 1, result.Errors[0].Index)
	assert.Equal(t, "name is required", result.Errors[0].Message)

	stored, ok := store.get("A")
	require.True(t, ok)
	require.Len(t, stored.reviews, 1)
	assert.Equal(t, "Bob", stored.reviews[0].AuthorName)
	assert.Equal(t, 1, store.count())
	assert.Equal(t, 1, store.commits)
}

func TestImportService_ReimportIsIdempotent(t *testing.T) {
	store := newMemoryStore()
	svc := newImportServiceWithStore(store)
	batch := `[{"externalId": "A", "name": "Cafe X"}]`

	first, err := svc.ImportBatch(context.Background(), records(t, batch))
	require.NoError(t, err)
	assert.Equal(t, 1, first.Inserted)

	second, err := svc.ImportBatch(context.Background(), records(t, batch))
	require.NoError(t, err)
	assert.Equal(t, 0, second.Inserted)
	assert.Equal(t, 1, second.Updated)
	assert.Equal(t, 1, store.count())
}

func TestImportService_PartialFailureIsolation(t *testing.T) {
	store := newMemoryStore()
	store.upsertErrors["C"] = domainerrors.NewConflictError("C", &pgconn.PgError{Code: "23505"})
	svc := newImportServiceWithStore(store)

	result, err := svc.ImportBatch(context.Background(), records(t, `[
		{"externalId": "A", "name": "One"},
		{"name": "No ID"},
		{"externalId": "C", "name": "Conflicting"},
		{"externalId": "D", "name": "Four"}
	]`))
	require.NoError(t, err)

	assert.Equal(t, 4, result.Processed)
	assert.Equal(t, 2, result.Inserted)
	assert.Equal(t, 2, result.Failed)
	assertCountsInvariant(t, result)

	require.Len(t, result.Errors, 2)
	assert.Equal(t, 1, result.Errors[0].Index)
	assert.Empty(t, result.Errors[0].ExternalID)
	assert.Equal(t, "externalId is required", result.Errors[0].Message)
	assert.Equal(t, 2, result.Errors[1].Index)
	assert.Equal(t, "C", result.Errors[1].ExternalID)
	assert.Contains(t, result.Errors[1].Message, "constraint violation")

	_, ok := store.get("A")
	assert.True(t, ok)
	_, ok = store.get("D")
	assert.True(t, ok)
	_, ok = store.get("C")
	assert.False(t, ok)
}

func TestImportService_ChildFullReplace(t *testing.T) {
	store := newMemoryStore()
	svc := newImportServiceWithStore(store)

	_, err := svc.ImportBatch(context.Background(), records(t, `[
		{"externalId": "A", "name": "Cafe", "reviews": [{"author": "1"}, {"author": "2"}, {"author": "3"}]}
	]`))
	require.NoError(t, err)

	_, err = svc.ImportBatch(context.Background(), records(t, `[
		{"externalId": "A", "name": "Cafe", "reviews": [{"author": "4"}, {"author": "5"}]}
	]`))
	require.NoError(t, err)

	stored, ok := store.get("A")
	require.True(t, ok)
	require.Len(t, stored.reviews, 2)
	assert.Equal(t, "4", stored.reviews[0].AuthorName)
	assert.Equal(t, "5", stored.reviews[1].AuthorName)
}

func TestImportService_AbsentChildrenAreKeptEmptyChildrenAreCleared(t *testing.T) {
	store := newMemoryStore()
	svc := newImportServiceWithStore(store)
	ctx := context.Background()

	_, err := svc.ImportBatch(ctx, records(t, `[
		{"externalId": "A", "name": "Cafe",
		 "reviews": [{"author": "Bob"}],
		 "photos": [{"photo_reference": "p1"}],
		 "opening_hours": {"periods": [{"open": {"day": 1, "time": "0900"}}]}}
	]`))
	require.NoError(t, err)

	// No child keys at all: everything stays.
	_, err = svc.ImportBatch(ctx, records(t, `[{"externalId": "A", "name": "Cafe renamed"}]`))
	require.NoError(t, err)

	stored, _ := store.get("A")
	assert.Equal(t, "Cafe renamed", stored.listing.Name)
	assert.Len(t, stored.reviews, 1)
	assert.Len(t, stored.photos, 1)
	assert.Len(t, stored.periods, 1)

	// Explicit empty reviews clear only the reviews.
	_, err = svc.ImportBatch(ctx, records(t, `[{"externalId": "A", "name": "Cafe", "reviews": []}]`))
	require.NoError(t, err)

	stored, _ = store.get("A")
	assert.Empty(t, stored.reviews)
	assert.Len(t, stored.photos, 1)
	assert.Len(t, stored.periods, 1)
}

func TestImportService_RecordIsAtomic(t *testing.T) {
	store := newMemoryStore()
	store.reviewErrors["B"] = domainerrors.NewRecordDatabaseError("B", errors.New("bad review row"))
	svc := newImportServiceWithStore(store)

	result, err := svc.ImportBatch(context.Background(), records(t, `[
		{"externalId": "A", "name": "One", "reviews": [{"author": "x"}]},
		{"externalId": "B", "name": "Two", "reviews": [{"author": "y"}]}
	]`))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, "B", result.Errors[0].ExternalID)

	// The listing row written before the failing child sync is rolled back with it.
	_, ok := store.get("B")
	assert.False(t, ok)
	_, ok = store.get("A")
	assert.True(t, ok)
}

func TestImportService_SystemicFailureAbortsBatch(t *testing.T) {
	store := newMemoryStore()
	store.systemicAfter["B"] = true
	svc := newImportServiceWithStore(store)

	result, err := svc.ImportBatch(context.Background(), records(t, `[
		{"externalId": "A", "name": "One"},
		{"externalId": "B", "name": "Two"},
		{"externalId": "C", "name": "Three"}
	]`))
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, domainerrors.IsSystemic(err))

	assert.Equal(t, 0, store.count())
	assert.Equal(t, 1, store.rollbacks)
	assert.Equal(t, 0, store.commits)
}

func TestImportService_CountsInvariant(t *testing.T) {
	store := newMemoryStore()
	store.upsertErrors["X"] = domainerrors.NewRecordDatabaseError("X", errors.New("boom"))
	svc := newImportServiceWithStore(store)
	ctx := context.Background()

	_, err := svc.ImportBatch(ctx, records(t, `[{"externalId": "A", "name": "a"}]`))
	require.NoError(t, err)

	result, err := svc.ImportBatch(ctx, records(t, `[
		{"externalId": "A", "name": "a"},
		{"externalId": "B", "name": "b"},
		{"externalId": "X", "name": "x"},
		{"externalId": "Y"},
		{"externalId": "Z", "name": "z", "latitude": 120},
		{"externalId": "B", "name": "b again"}
	]`))
	require.NoError(t, err)

	assert.Equal(t, 6, result.Processed)
	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 2, result.Updated)
	assert.Equal(t, 3, result.Failed)
	assertCountsInvariant(t, result)
}

func TestImportService_EmptyBatchOpensNoTransaction(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewImportService(ImportServiceParams{
		TxManager: txManager,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	result, err := svc.ImportBatch(context.Background(), []map[string]any{})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyBatch)

	result, err = svc.ImportBatch(context.Background(), nil)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyBatch)
}

func TestImportService_BatchTooLarge(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	cfg := newTestConfig()
	cfg.Import.MaxBatchSize = 2
	svc := NewImportService(ImportServiceParams{
		TxManager: txManager,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})

	result, err := svc.ImportBatch(context.Background(), make([]map[string]any, 3))
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrBatchTooLarge)
}

func TestImportService_CancelledContextIsSystemic(t *testing.T) {
	store := newMemoryStore()
	svc := newImportServiceWithStore(store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := svc.ImportBatch(ctx, records(t, `[{"externalId": "A", "name": "a"}]`))
	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, domainerrors.IsSystemic(err))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, store.count())
}

func TestImportService_TransactionManagerFailureIsSystemic(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewImportService(ImportServiceParams{
		TxManager: txManager,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})
	ctx := context.Background()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("pool exhausted"))

	result, err := svc.ImportBatch(ctx, []map[string]any{{"externalId": "A", "name": "a"}})
	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, domainerrors.IsSystemic(err))
}

func TestImportService_SkipsAbsentChildCollections(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewImportService(ImportServiceParams{
		TxManager: txManager,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})
	ctx := context.Background()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)

			mockFactory.EXPECT().
				Savepoint(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
				RunAndReturn(func(ctx context.Context, inner func(repository.RepositoryFactory) error) error {
					return inner(mockFactory)
				})
			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)

			mockListingRepo.EXPECT().
				Upsert(ctx, mock.MatchedBy(func(listing *entity.Listing) bool {
					return listing.ExternalID == "A" && listing.Name == "Cafe"
				})).
				Return(true, nil)
			mockListingRepo.EXPECT().
				ReplacePhotos(ctx, "A", []entity.Photo{}).
				Return(nil)

			return fn(mockFactory)
		})

	result, err := svc.ImportBatch(ctx, []map[string]any{
		{"externalId": "A", "name": "Cafe", "photos": []any{}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Inserted)
}
