//go:build unit || e2e

package builder

import (
	"time"

	"foodbridge/internal/domain/notification"
	sqlc "foodbridge/internal/infra/sqlc/generated"
	"foodbridge/internal/pkg/pgconv"
	"foodbridge/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationBuilder struct {
	ID             uuid.UUID
	ItemID         uuid.UUID
	ItemName       string
	OwnerID        uuid.UUID
	Kind           notification.Kind
	Message        string
	TriggeredAt    time.Time
	AcknowledgedAt *time.Time
	Version        int64
}

func NewNotificationBuilder() *NotificationBuilder {
	return &NotificationBuilder{
		ID:          uuid.New(),
		ItemID:      uuid.New(),
		ItemName:    "Basmati Rice",
		OwnerID:     uuid.New(),
		Kind:        notification.KindNearExpiry,
		Message:     "Basmati Rice reaches its best-before date in 36 hours. Consider listing it for distributors.",
		TriggeredAt: time.Now().UTC().Truncate(time.Microsecond),
		Version:     1,
	}
}

func (b *NotificationBuilder) With(mutate func(*NotificationBuilder)) *NotificationBuilder {
	mutate(b)
	return b
}

func (b *NotificationBuilder) ForItem(item *ItemBuilder) *NotificationBuilder {
	b.ItemID = item.ID
	b.ItemName = item.Name
	b.OwnerID = item.OwnerID
	return b
}

// Build methods
func (b *NotificationBuilder) BuildDomain() *notification.Notification {
	return notification.Reconstruct(b.ID, b.ItemID, b.OwnerID, b.Kind, b.Message, b.TriggeredAt, b.AcknowledgedAt, b.Version)
}

func (b *NotificationBuilder) BuildInfra() sqlc.Notifications {
	return sqlc.Notifications{
		ID:             b.ID,
		ItemID:         b.ItemID,
		OwnerID:        b.OwnerID,
		Kind:           string(b.Kind),
		Message:        b.Message,
		TriggeredAt:    pgconv.TimeToPgtype(b.TriggeredAt),
		AcknowledgedAt: pgconv.TimePtrToPgtype(b.AcknowledgedAt),
		Version:        b.Version,
	}
}

func (b *NotificationBuilder) BuildView() *queries.NotificationView {
	return &queries.NotificationView{
		ID:          b.ID,
		ItemID:      b.ItemID,
		ItemName:    b.ItemName,
		Kind:        string(b.Kind),
		Message:     b.Message,
		TriggeredAt: b.TriggeredAt,
	}
}

func (b *NotificationBuilder) AsAcknowledged(at time.Time) *NotificationBuilder {
	b.AcknowledgedAt = &at
	return b
}
