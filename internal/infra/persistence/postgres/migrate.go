package postgres

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"sort"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrate applies the embedded schema files in name order inside one transaction.
// Every statement is idempotent, so running it against an up-to-date database is a no-op.
func Migrate(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	names, err := fs.Glob(migrationFiles, "migrations/*.sql")
	if err != nil {
		return errors.Wrap(err, "failed to list migrations")
	}
	sort.Strings(names)

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, name := range names {
			script, err := migrationFiles.ReadFile(name)
			if err != nil {
				return errors.Wrapf(err, "failed to read migration %s", name)
			}

			if err := tx.Exec(string(script)).Error; err != nil {
				return errors.Wrapf(err, "failed to apply migration %s", name)
			}

			if logger != nil {
				logger.InfoContext(ctx, "Applied migration", slog.String("file", name))
			}
		}

		return nil
	})
}
