package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"foodbridge/internal/pkg/config"
	"foodbridge/internal/pkg/errs"
	"foodbridge/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the subset of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaAlertPublisher struct {
	writer MessageWriter
}

var _ shared.AlertPublisher = (*KafkaAlertPublisher)(nil)

func NewKafkaWriter(cfg config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.AlertTopic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           cfg.BatchDelay,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

func NewKafkaAlertPublisher(writer MessageWriter) *KafkaAlertPublisher {
	return &KafkaAlertPublisher{writer: writer}
}

// Publish keys messages by owner so one supplier's alerts stay ordered.
func (p *KafkaAlertPublisher) Publish(ctx context.Context, alert shared.SupplierAlert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return errs.Wrap(err, "encode supplier alert")
	}

	msg := kafka.Message{
		Key:   []byte(alert.OwnerID.String()),
		Value: payload,
		Time:  alert.OccurredAt,
		Headers: []kafka.Header{
			{Key: "alert-type", Value: []byte(alert.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Mark(errs.Wrapf(err, "publish %s alert", alert.Type), errs.ErrUpstream)
	}
	return nil
}

func (p *KafkaAlertPublisher) Close() error {
	return p.writer.Close()
}

// LogAlertPublisher records alerts in the application log when no broker is configured.
type LogAlertPublisher struct{}

func (LogAlertPublisher) Publish(_ context.Context, alert shared.SupplierAlert) error {
	slog.Info("supplier alert",
		"type", alert.Type,
		"item_id", alert.ItemID,
		"owner_id", alert.OwnerID,
		"occurred_at", alert.OccurredAt.Format(time.RFC3339),
	)
	return nil
}
