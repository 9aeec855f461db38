package components

import (
	"foodbridge/internal/pkg/clock"
	"foodbridge/internal/pkg/config"
	"foodbridge/internal/usecase/commands"
	"foodbridge/internal/usecase/queries"
	"foodbridge/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) queries.ForecastSettings {
		return queries.ForecastSettings{
			Window:     cfg.Forecast.Window,
			TopN:       cfg.Forecast.TopN,
			MinSamples: cfg.Forecast.MinSamples,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewInventoryCommands,
		commands.NewRequestCommands,
		newNotificationCommands,
		newExpiryWatcher,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewInventoryQueries,
		queries.NewRequestQueries,
		queries.NewNotificationQueries,
		queries.NewForecastQueries,
	),
)

func newNotificationCommands(
	uow shared.UnitOfWork,
	clk clock.Clock,
	publisher shared.AlertPublisher,
	cfg config.Config,
) commands.NotificationCommands {
	return commands.NewNotificationCommands(uow, clk, publisher, cfg.Expiry.NearThreshold)
}

func newExpiryWatcher(
	uow shared.UnitOfWork,
	clk clock.Clock,
	notifications commands.NotificationCommands,
	publisher shared.AlertPublisher,
	cfg config.Config,
) commands.ExpiryWatcher {
	return commands.NewExpiryWatcher(uow, clk, notifications, publisher, cfg.Expiry.NearThreshold)
}
