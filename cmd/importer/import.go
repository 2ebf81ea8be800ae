package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"bizdir/config"
	deliverycontext "bizdir/internal/delivery/context"
	"bizdir/internal/delivery/api/response"
	"bizdir/internal/domain/entity"
	"bizdir/internal/usecase"
	"bizdir/internal/util"

	"github.com/pkg/errors"
)

func runImport(ctx context.Context, filePath string, batchSize int) error {
	data, checksum, err := util.ReadFileWithChecksum(filePath)
	if err != nil {
		return err
	}

	records, err := decodeRecords(data)
	if err != nil {
		return errors.Wrapf(err, "invalid listing file %s", filePath)
	}

	var (
		cfg      *config.Config
		logger   *slog.Logger
		importUC usecase.ImportUsecase
	)

	return withApp(ctx, func(ctx context.Context) error {
		if batchSize == 0 {
			batchSize = cfg.Import.MaxBatchSize
		}

		logger = logger.With(slog.String("file", filePath))
		ctx = deliverycontext.WithLogger(ctx, logger)

		logger.Info("Importing listing file",
			slog.String("size", util.FormatBytes(int64(len(data)))),
			slog.String("sha256", checksum),
			slog.Int("records", len(records)),
			slog.Int("batch_size", batchSize),
		)

		start := time.Now()
		total, err := importInBatches(ctx, importUC, records, batchSize)
		if err != nil {
			return err
		}

		logger.Info("Listing file imported",
			slog.Int("processed", total.Processed),
			slog.Int("failed", total.Failed),
			slog.String("elapsed", util.FormatDuration(time.Since(start))),
		)

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return encoder.Encode(response.NewImportResult(total))
	}, &cfg, &logger, &importUC)
}

// decodeRecords parses a JSON array. Elements that are not objects become nil records so
// the import reports them at their original index.
func decodeRecords(data []byte) ([]map[string]any, error) {
	var items []any
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, errors.Wrap(err, "file must hold a JSON array")
	}

	if len(items) == 0 {
		return nil, errors.New("file holds no listings")
	}

	records := make([]map[string]any, len(items))
	for i, item := range items {
		records[i], _ = item.(map[string]any)
	}

	return records, nil
}

// importInBatches commits each chunk in its own transaction and merges the results.
// A systemic failure stops the run; earlier chunks stay committed.
func importInBatches(
	ctx context.Context,
	importUC usecase.ImportUsecase,
	records []map[string]any,
	batchSize int,
) (*entity.ImportBatchResult, error) {
	total := &entity.ImportBatchResult{Errors: []entity.ImportError{}}

	for offset := 0; offset < len(records); offset += batchSize {
		end := min(offset+batchSize, len(records))

		result, err := importUC.ImportBatch(ctx, records[offset:end])
		if err != nil {
			return nil, errors.Wrapf(err, "batch starting at record %d failed after %d records were committed", offset, total.Processed)
		}

		total.Processed += result.Processed
		total.Inserted += result.Inserted
		total.Updated += result.Updated
		total.Failed += result.Failed
		for _, importErr := range result.Errors {
			importErr.Index += offset
			total.Errors = append(total.Errors, importErr)
		}
	}

	return total, nil
}
