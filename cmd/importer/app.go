package main

import (
	"context"

	"bizdir/config"
	logs "bizdir/internal/infra/log"
	"bizdir/internal/infra/persistence/postgres"
	"bizdir/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// withApp starts the store and the import usecase, runs fn and always stops the app.
// Every target passed to fx.Populate is filled before fn runs.
func withApp(ctx context.Context, fn func(ctx context.Context) error, targets ...any) error {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewListingRepository,
			postgres.NewTransactionManager,
			impl.NewImportService,
		),
		fx.Populate(targets...),
	)

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start importer")
	}

	runErr := fn(ctx)

	if err := app.Stop(context.Background()); err != nil && runErr == nil {
		return errors.Wrap(err, "failed to stop importer")
	}

	return runErr
}
