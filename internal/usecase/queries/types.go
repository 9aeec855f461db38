package queries

import (
	"context"
	"time"

	"foodbridge/internal/domain/forecast"
	"foodbridge/internal/domain/location"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemView represents read-optimized inventory data
type ItemView struct {
	ID           uuid.UUID       `json:"id"`
	OwnerID      uuid.UUID       `json:"owner_id"`
	Name         string          `json:"name"`
	Quantity     decimal.Decimal `json:"quantity"`
	BestBeforeAt *time.Time      `json:"best_before_at,omitempty"`
	ExpiresAt    *time.Time      `json:"expires_at,omitempty"`
	Status       string          `json:"status"`
	City         string          `json:"city"`
	Pincode      string          `json:"pincode"`
	Version      int64           `json:"version"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// RequestView represents read-optimized food request data
type RequestView struct {
	ID          uuid.UUID       `json:"id"`
	RequesterID uuid.UUID       `json:"requester_id"`
	SupplierID  uuid.UUID       `json:"supplier_id"`
	ItemID      uuid.UUID       `json:"item_id"`
	ItemName    string          `json:"item_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	PickupDate  *time.Time      `json:"pickup_date,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	Status      string          `json:"status"`
	City        string          `json:"city"`
	Pincode     string          `json:"pincode"`
	CreatedAt   time.Time       `json:"created_at"`
	ResolvedAt  *time.Time      `json:"resolved_at,omitempty"`
}

// NotificationView represents an outstanding supplier notification
type NotificationView struct {
	ID          uuid.UUID `json:"id"`
	ItemID      uuid.UUID `json:"item_id"`
	ItemName    string    `json:"item_name"`
	Kind        string    `json:"kind"`
	Message     string    `json:"message"`
	TriggeredAt time.Time `json:"triggered_at"`
}

// PageKey is the keyset position of the last row of a page.
type PageKey struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

type InventoryReadStore interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemView, error)
	// ListAvailable returns Listing items in the region, soonest best-before first.
	ListAvailable(ctx context.Context, filter location.Filter) ([]*ItemView, error)
}

type RequestReadStore interface {
	ListByRequester(ctx context.Context, requesterID uuid.UUID, after *PageKey, limit int32) ([]*RequestView, error)
	ListBySupplier(ctx context.Context, supplierID uuid.UUID, status *string, after *PageKey, limit int32) ([]*RequestView, error)
}

type NotificationReadStore interface {
	ListUnacknowledgedByOwner(ctx context.Context, ownerID uuid.UUID) ([]*NotificationView, error)
}

type DemandHistoryReadStore interface {
	// AggregateDemand groups pending and approved requests created since the given time by item name.
	AggregateDemand(ctx context.Context, since time.Time, filter location.Filter) ([]forecast.DemandSample, error)
}

type ForecastCache interface {
	Get(ctx context.Context, key string) (*forecast.Forecast, bool, error)
	Set(ctx context.Context, key string, f *forecast.Forecast) error
}
