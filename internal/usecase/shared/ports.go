package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type AlertType string

const (
	AlertNearExpiry  AlertType = "near_expiry"
	AlertItemRetired AlertType = "item_retired"
)

// SupplierAlert is the event fanned out to downstream consumers after commit.
type SupplierAlert struct {
	Type           AlertType  `json:"type"`
	ItemID         uuid.UUID  `json:"item_id"`
	OwnerID        uuid.UUID  `json:"owner_id"`
	NotificationID *uuid.UUID `json:"notification_id,omitempty"`
	ItemName       string     `json:"item_name"`
	Message        string     `json:"message,omitempty"`
	IgnoredCount   int64      `json:"ignored_requests,omitempty"`
	OccurredAt     time.Time  `json:"occurred_at"`
}

type AlertPublisher interface {
	Publish(ctx context.Context, alert SupplierAlert) error
}

// SweepLock guards the expiry sweep across service instances.
type SweepLock interface {
	TryAcquire(ctx context.Context) (release func(context.Context), acquired bool, err error)
}
