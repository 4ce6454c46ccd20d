package main

import (
	"context"
	"log/slog"
	"os"

	"tracenfind/config"
	"tracenfind/internal/delivery"
	"tracenfind/internal/delivery/api"
	"tracenfind/internal/delivery/api/router/handler"
	"tracenfind/internal/delivery/watcher"
	"tracenfind/internal/infra/cache"
	firebaseinfra "tracenfind/internal/infra/firebase"
	logs "tracenfind/internal/infra/log"
	"tracenfind/internal/infra/persistence"
	"tracenfind/internal/infra/pubsub"
	"tracenfind/internal/infra/realtime"
	"tracenfind/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
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
		firebaseinfra.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.NewRepositories,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		cache.Module,
		realtime.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationService,
			impl.NewTrackingService,
			impl.NewUnreadService,
			impl.NewPushTokenService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewNotificationHandler,
			handler.NewDeviceHandler,
			handler.NewZoneHandler,
			handler.NewPushTokenHandler,
			handler.NewStreamHandler,
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
			fx.Annotate(
				watcher.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
