//go:build unit

package messaging_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"foodbridge/internal/infra/messaging"
	"foodbridge/internal/pkg/errs"
	"foodbridge/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaAlertPublisher_Publish(t *testing.T) {
	ctx := context.Background()
	alert := shared.SupplierAlert{
		Type:       shared.AlertNearExpiry,
		ItemID:     uuid.New(),
		OwnerID:    uuid.New(),
		ItemName:   "Milk",
		Message:    "Milk reaches its best-before date in 20 hours",
		OccurredAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	t.Run("success: keyed by owner with the alert type header", func(t *testing.T) {
		w := &fakeWriter{}
		p := messaging.NewKafkaAlertPublisher(w)

		require.NoError(t, p.Publish(ctx, alert))
		require.Len(t, w.messages, 1)

		msg := w.messages[0]
		assert.Equal(t, alert.OwnerID.String(), string(msg.Key))
		require.Len(t, msg.Headers, 1)
		assert.Equal(t, "alert-type", msg.Headers[0].Key)
		assert.Equal(t, "near_expiry", string(msg.Headers[0].Value))

		var decoded shared.SupplierAlert
		require.NoError(t, json.Unmarshal(msg.Value, &decoded))
		assert.Equal(t, alert, decoded)

		require.NoError(t, p.Close())
		assert.True(t, w.closed)
	})

	t.Run("error: writer failures are upstream errors", func(t *testing.T) {
		p := messaging.NewKafkaAlertPublisher(&fakeWriter{err: errors.New("leader not available")})

		err := p.Publish(ctx, alert)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrUpstream))
	})
}
