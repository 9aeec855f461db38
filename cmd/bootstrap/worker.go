package bootstrap

import (
	"context"
	"log/slog"

	"foodbridge/internal/pkg/config"
	"foodbridge/internal/usecase/commands"
	"foodbridge/internal/usecase/shared"
	"foodbridge/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewExpirySweeper,
	),
	fx.Invoke(startExpirySweeper),
)

func NewExpirySweeper(watcher commands.ExpiryWatcher, lock shared.SweepLock, cfg config.Config, logger *slog.Logger) *worker.ExpirySweeper {
	return worker.NewExpirySweeper(watcher, lock, cfg.Expiry.SweepInterval, logger)
}

func startExpirySweeper(lc fx.Lifecycle, sweeper *worker.ExpirySweeper, cfg config.Config, logger *slog.Logger) {
	if cfg.Expiry.Disabled {
		logger.Info("expiry worker disabled")
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("starting expiry worker", "interval", cfg.Expiry.SweepInterval)
			sweeper.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return sweeper.Stop(ctx)
		},
	})
}
