package main

import (
	"context"
	"log/slog"
	"os"

	"menubuilder/config"
	"menubuilder/internal/delivery"
	"menubuilder/internal/delivery/console"
	"menubuilder/internal/domain/repository"
	logs "menubuilder/internal/infra/log"
	"menubuilder/internal/infra/persistence/memory"
	"menubuilder/internal/infra/persistence/snapshot"
	"menubuilder/internal/usecase/impl"

	"go.uber.org/fx"
	"gocloud.dev/blob"
)

type startConsoleParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectDelivery(),
		fx.Invoke(
			startConsole,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newStore,
			newBucket,
			newSnapshotStore,
		),
	)
}

func newStore() repository.Store {
	return memory.New()
}

func newBucket(ctx context.Context, cfg *config.Config, lc fx.Lifecycle) (*blob.Bucket, error) {
	bucket, err := snapshot.OpenBucket(ctx, cfg.Data.BucketURL)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return bucket, nil
}

func newSnapshotStore(bucket *blob.Bucket, cfg *config.Config, logger *slog.Logger) repository.SnapshotStore {
	return snapshot.NewStore(bucket, cfg.Data.FileName, cfg.Data.BackupKeep, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewStateService,
			impl.NewCatalogService,
			impl.NewExportService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				console.NewConsole,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startConsole(ctx context.Context, params startConsoleParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start console", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
