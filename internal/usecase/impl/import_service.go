package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bizdir/config"
	deliverycontext "bizdir/internal/delivery/context"
	"bizdir/internal/domain/entity"
	domainerrors "bizdir/internal/domain/errors"
	"bizdir/internal/domain/repository"
	"bizdir/internal/usecase"
	"bizdir/internal/usecase/normalize"

	"go.uber.org/fx"
)

// importService implements the ImportUsecase interface.
type importService struct {
	txManager    repository.TransactionManager
	maxBatchSize int
	logger       *slog.Logger
}

// ImportServiceParams holds dependencies for ImportService, injected by Fx.
type ImportServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewImportService is the constructor for importService.
func NewImportService(params ImportServiceParams) usecase.ImportUsecase {
	maxBatchSize := 0
	if params.Config != nil && params.Config.Import != nil {
		maxBatchSize = params.Config.Import.MaxBatchSize
	}

	return &importService{
		txManager:    params.TxManager,
		maxBatchSize: maxBatchSize,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *importService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOrDefault(ctx, srv.logger)
}

// ImportBatch runs the whole batch in one transaction with one savepoint per record.
func (srv *importService) ImportBatch(ctx context.Context, records []map[string]any) (*entity.ImportBatchResult, error) {
	if len(records) == 0 {
		return nil, domainerrors.ErrEmptyBatch
	}

	if srv.maxBatchSize > 0 && len(records) > srv.maxBatchSize {
		return nil, domainerrors.ErrBatchTooLarge.WithDetails(
			fmt.Sprintf("batch has %d records, the limit is %d", len(records), srv.maxBatchSize),
		)
	}

	start := time.Now()
	srv.log(ctx).Debug("Starting listing import", slog.Int("records", len(records)))

	var result *entity.ImportBatchResult
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// A retried callback must not double count.
		result = &entity.ImportBatchResult{Errors: []entity.ImportError{}}

		for index, raw := range records {
			if err := ctx.Err(); err != nil {
				return domainerrors.NewSystemicError(err, "import cancelled")
			}

			if err := srv.importRecord(ctx, repoFactory, result, index, raw); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Listing import aborted",
			slog.Int("records", len(records)),
			slog.Duration("elapsed", time.Since(start)),
			slog.Any("error", err),
		)

		if domainerrors.IsSystemic(err) {
			return nil, err
		}

		return nil, domainerrors.NewSystemicError(err, "import transaction failed")
	}

	srv.log(ctx).Info("Listing import completed",
		slog.Int("processed", result.Processed),
		slog.Int("inserted", result.Inserted),
		slog.Int("updated", result.Updated),
		slog.Int("failed", result.Failed),
		slog.Duration("elapsed", time.Since(start)),
	)

	return result, nil
}

// importRecord normalizes and writes one record. Record-level failures are added to result
// and swallowed; only a systemic failure is returned.
func (srv *importService) importRecord(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	result *entity.ImportBatchResult,
	index int,
	raw map[string]any,
) error {
	listing, err := normalize.Record(index, raw)
	if err != nil {
		srv.recordFailure(ctx, result, index, "", err)

		return nil
	}

	var inserted bool
	err = repoFactory.Savepoint(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		var upsertErr error
		inserted, upsertErr = upsertListing(ctx, txRepoFactory.ListingRepo(), listing)

		return upsertErr
	})
	if err != nil {
		if domainerrors.IsSystemic(err) {
			return err
		}

		srv.recordFailure(ctx, result, index, listing.ExternalID, err)

		return nil
	}

	if inserted {
		result.RecordInserted()
	} else {
		result.RecordUpdated()
	}

	return nil
}

// upsertListing writes the listing row, then replaces every child collection the record carried.
// A nil collection was absent from the source and its stored rows are kept.
func upsertListing(ctx context.Context, listingRepo repository.ListingRepository, listing *entity.Listing) (bool, error) {
	inserted, err := listingRepo.Upsert(ctx, listing)
	if err != nil {
		return false, err
	}

	if listing.Reviews != nil {
		if err := listingRepo.ReplaceReviews(ctx, listing.ExternalID, listing.Reviews); err != nil {
			return false, err
		}
	}

	if listing.Photos != nil {
		if err := listingRepo.ReplacePhotos(ctx, listing.ExternalID, listing.Photos); err != nil {
			return false, err
		}
	}

	if listing.OpeningPeriods != nil {
		if err := listingRepo.ReplaceOpeningPeriods(ctx, listing.ExternalID, listing.OpeningPeriods); err != nil {
			return false, err
		}
	}

	return inserted, nil
}

func (srv *importService) recordFailure(ctx context.Context, result *entity.ImportBatchResult, index int, externalID string, err error) {
	kind := domainerrors.RecordDatabase
	if recordErr, ok := domainerrors.AsRecordError(err); ok {
		kind = recordErr.Kind
		if recordErr.ExternalID != "" {
			externalID = recordErr.ExternalID
		}
	}

	result.RecordFailure(index, externalID, err.Error())

	srv.log(ctx).Warn("Listing record rejected",
		slog.Int("index", index),
		slog.String("external_id", externalID),
		slog.String("kind", string(kind)),
		slog.Any("error", err),
	)
}
