package bootstrap

import (
	"context"
	"log/slog"

	"foodbridge/internal/infra/messaging"
	"foodbridge/internal/pkg/config"
	"foodbridge/internal/usecase/shared"

	"go.uber.org/fx"
)

var KafkaModule = fx.Module("kafka",
	fx.Provide(
		NewAlertPublisher,
	),
)

// NewAlertPublisher falls back to logging alerts when KAFKA_BROKERS is unset.
func NewAlertPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.AlertPublisher {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Info("kafka disabled: supplier alerts are only logged")
		return messaging.LogAlertPublisher{}
	}

	publisher := messaging.NewKafkaAlertPublisher(messaging.NewKafkaWriter(cfg.Kafka))
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher
}
