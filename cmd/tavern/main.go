package main

import (
	"context"
	"log/slog"
	"os"

	"tavern/config"
	"tavern/internal/delivery"
	"tavern/internal/delivery/http"
	httpmiddleware "tavern/internal/delivery/http/middleware"
	"tavern/internal/delivery/http/router/handler"
	deliverymiddleware "tavern/internal/delivery/middleware"
	"tavern/internal/domain/service"
	"tavern/internal/infra/auth"
	logs "tavern/internal/infra/log"
	"tavern/internal/infra/persistence/postgres"
	"tavern/internal/usecase/impl"

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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewArmoryRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newCredentialHasher,
		),
	)
}

// newCredentialHasher creates the PBKDF2 hasher with the configured work factor.
func newCredentialHasher(cfg *config.Config) service.CredentialHasher {
	iterations := auth.DefaultIterations
	if cfg.Auth != nil && cfg.Auth.PBKDF2Iterations > 0 {
		iterations = cfg.Auth.PBKDF2Iterations
	}

	return auth.NewPBKDF2Hasher(iterations)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewProfileService,
			impl.NewArmoryService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			deliverymiddleware.NewRequestIDMiddleware,
			httpmiddleware.NewLoggerMiddleware,
			httpmiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewProfileHandler,
			handler.NewArmoryHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
