// Command seed replaces the clothing style catalogue with the sample set.
package main

import (
	"context"
	"log/slog"

	"sews/config"
	logs "sews/internal/infra/log"
	"sews/internal/infra/persistence/postgres"
	"sews/internal/usecase"
	"sews/internal/usecase/impl"
	"sews/internal/validator"

	"go.uber.org/fx"
)

type seedParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Catalog usecase.CatalogUsecase
	Logger  *slog.Logger
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewRepositoryFactory,
			postgres.NewTransactionManager,
			validator.New,
			impl.NewCatalogService,
		),
		fx.Invoke(seed),
	).Run()
}

// seed runs once the database hooks have started, then stops the app.
func seed(params seedParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			count, err := params.Catalog.ReplaceClothingStyles(ctx, sampleClothingStyles())
			if err != nil {
				return err
			}

			params.Logger.Info("Seeded clothing styles", slog.Int("count", count))

			return params.Shutdown()
		},
	})
}
