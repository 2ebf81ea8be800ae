package main

import (
	"context"
	"log/slog"

	"bizdir/internal/infra/persistence/postgres"

	"gorm.io/gorm"
)

func runMigrate(ctx context.Context) error {
	var (
		db     *gorm.DB
		logger *slog.Logger
	)

	return withApp(ctx, func(ctx context.Context) error {
		return postgres.Migrate(ctx, db, logger)
	}, &db, &logger)
}
