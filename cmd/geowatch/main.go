package main

import (
	"context"
	"log/slog"
	"os"

	"geowatch/config"
	"geowatch/internal/delivery"
	"geowatch/internal/delivery/http"
	"geowatch/internal/delivery/http/router/handler"
	"geowatch/internal/domain/service"
	"geowatch/internal/infra/catalog"
	"geowatch/internal/infra/guildconfig"
	logs "geowatch/internal/infra/log"
	"geowatch/internal/infra/persistence/postgres"
	"geowatch/internal/infra/queue"
	"geowatch/internal/infra/render"
	"geowatch/internal/infra/stats"
	"geowatch/internal/usecase/impl"

	"github.com/pkg/errors"
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
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		queue.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewSubscriptionRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			stats.NewCounters,
			newCatalog,
			newGuildStore,
			guildconfig.AsGuildSettingsService,
			guildconfig.AsMemberService,
			render.NewRenderer,
		),
	)
}

// newCatalog loads the master reference data from the configured path.
func newCatalog(cfg *config.Config) (service.Catalog, error) {
	if cfg.Catalog == nil || cfg.Catalog.Path == "" {
		return nil, errors.New("catalog path is not configured")
	}

	return catalog.Load(cfg.Catalog.Path)
}

// newGuildStore loads per-guild settings from the configured path.
func newGuildStore(cfg *config.Config) (*guildconfig.Store, error) {
	if cfg.Guilds == nil || cfg.Guilds.Path == "" {
		return nil, errors.New("guild settings path is not configured")
	}

	return guildconfig.Load(cfg.Guilds.Path)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDispatchService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewEventHandler,
			handler.NewSubscriberHandler,
			handler.NewStatsHandler,
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
