package usecase

import (
	"context"

	"bizdir/internal/domain/entity"
)

// ImportUsecase defines the bulk listing import.
type ImportUsecase interface {
	// ImportBatch normalizes and upserts records in input order inside one transaction.
	// A record that fails is rolled back on its own and reported in the result; the rest of
	// the batch is still committed. Batch-level problems (empty or oversized batch) and
	// systemic storage failures are returned as errors with no result.
	ImportBatch(ctx context.Context, records []map[string]any) (*entity.ImportBatchResult, error)
}
