package shared

import (
	"context"
	"time"

	"foodbridge/internal/domain/inventory"
	"foodbridge/internal/domain/notification"
	"foodbridge/internal/domain/request"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations; fn's writes commit together or not at all
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Inventory() InventoryStore
	Requests() RequestRepository
	Notifications() NotificationRepository
}

// MutateFunc applies a domain change to a freshly read item. Returning an error aborts the update.
type MutateFunc func(item *inventory.Item) error

// InventoryStore is the only path through which items change.
type InventoryStore interface {
	Get(ctx context.Context, id uuid.UUID) (*inventory.Item, error)
	Create(ctx context.Context, item *inventory.Item) (uuid.UUID, error)
	// CompareAndUpdate fails with inventory.ErrVersionConflict when the stored
	// version differs from expectedVersion, before or after mutate runs.
	CompareAndUpdate(ctx context.Context, id uuid.UUID, expectedVersion int64, mutate MutateFunc) (*inventory.Item, error)
	Remove(ctx context.Context, id uuid.UUID, expectedVersion int64) error
	// ListSweepable returns every non-retired item carrying an expiry or best-before date.
	ListSweepable(ctx context.Context) ([]*inventory.Item, error)
}

type RequestRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*request.FoodRequest, error)
	Create(ctx context.Context, req *request.FoodRequest) error
	// Resolve persists an Approved/Ignored status only if the stored request is still pending.
	Resolve(ctx context.Context, req *request.FoodRequest) error
	IgnorePendingForItem(ctx context.Context, itemID uuid.UUID, now time.Time) (int64, error)
	CountPendingForItem(ctx context.Context, itemID uuid.UUID) (int64, error)
}

type NotificationRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*notification.Notification, error)
	// CreateIfAbsent stores n unless the item already has an unacknowledged
	// notification, in which case that one is returned with created=false.
	CreateIfAbsent(ctx context.Context, n *notification.Notification) (stored *notification.Notification, created bool, err error)
	Acknowledge(ctx context.Context, n *notification.Notification) error
	SupersedeForItem(ctx context.Context, itemID uuid.UUID, now time.Time) (int64, error)
	ExistsForItem(ctx context.Context, itemID uuid.UUID, kind notification.Kind) (bool, error)
}
