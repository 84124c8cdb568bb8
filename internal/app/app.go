package app

import (
	"context"

	"github.com/carousell/ct-go/pkg/logger"
	"github.com/salad-karo/storefront/internal/config"
	"github.com/salad-karo/storefront/internal/events"
	"github.com/salad-karo/storefront/internal/repo/mongodb"
	"github.com/salad-karo/storefront/internal/server"
	"github.com/salad-karo/storefront/internal/usecase"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zapcore"
)

func Invoke(funcs ...any) *fx.App {
	log := logger.MustNamed("app")
	conf := config.MustLoad()
	log.Debugw("config loaded", log.Reflect("config", conf))
	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			l := &fxevent.ZapLogger{
				Logger: log.Unwrap().Desugar(),
			}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),
		fx.Provide(
			newMongoDB,

			server.NewHandler,

			usecase.NewCatalogUsecase,
			usecase.NewOrderUsecase,
			usecase.NewUserUsecase,
			usecase.NewMirrorUsecase,

			mongodb.NewSaladRepository,
			mongodb.NewOrderRepository,
			mongodb.NewUserRepository,
			mongodb.NewCartEventRepository,
			mongodb.NewFavoriteRepository,

			events.NewPublisher,
		),
		fx.Supply(conf),
		fx.Invoke(SeedCatalog),
		fx.Invoke(funcs...),
	)
}

// SeedCatalog loads the static product list into the salads collection on
// startup when the collection is empty.
func SeedCatalog(
	lc fx.Lifecycle,
	catalogUsecase usecase.CatalogUsecase,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return catalogUsecase.SeedCatalog(ctx)
		},
	})
}
