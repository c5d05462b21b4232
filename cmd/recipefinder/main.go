package main

import (
	"context"
	"log/slog"
	"os"

	"recipefinder/config"
	"recipefinder/internal/delivery"
	"recipefinder/internal/delivery/api"
	"recipefinder/internal/delivery/api/middleware"
	"recipefinder/internal/delivery/api/router/handler"
	"recipefinder/internal/infra/identity"
	logs "recipefinder/internal/infra/log"
	"recipefinder/internal/infra/metrics"
	"recipefinder/internal/infra/persistence/sqlstore"
	"recipefinder/internal/infra/pubsub"
	"recipefinder/internal/infra/qrcode"
	"recipefinder/internal/infra/storage"
	"recipefinder/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		sqlstore.New,
		metrics.NewRegistry,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqlstore.NewRecipeRepository,
			sqlstore.NewIngredientRepository,
			sqlstore.NewUsedIngredientRepository,
			sqlstore.NewFavoriteRepository,
			sqlstore.NewCommentRepository,
			sqlstore.NewUserRepository,
			sqlstore.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			identity.NewIdentityProvider,
			storage.NewImageStorage,
			qrcode.NewQRCodeServiceFromConfig,
			metrics.NewMetrics,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIngredientService,
			impl.NewRecipeService,
			impl.NewFavoriteService,
			impl.NewCommentService,
			impl.NewProfileService,
			impl.NewImageService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRecipeHandler,
			handler.NewIngredientHandler,
			handler.NewUserHandler,
			handler.NewImageHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
