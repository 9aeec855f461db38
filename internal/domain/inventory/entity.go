package inventory

import (
	"time"

	"foodbridge/internal/domain/location"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Item struct {
	id           uuid.UUID
	ownerID      uuid.UUID
	name         Name
	quantity     decimal.Decimal
	bestBeforeAt *time.Time
	expiresAt    *time.Time
	status       Status
	location     location.Location
	version      int64
	createdAt    time.Time
	updatedAt    time.Time
}

type NewItemParams struct {
	OwnerID      uuid.UUID
	Name         Name
	Quantity     Quantity
	BestBeforeAt *time.Time
	ExpiresAt    *time.Time
	Location     location.Location
}

// NewItem creates an item in the Selling state.
func NewItem(p NewItemParams, now time.Time) (*Item, error) {
	if p.ExpiresAt != nil && !p.ExpiresAt.After(now) {
		return nil, ErrAlreadyExpired
	}

	return &Item{
		id:           uuid.New(),
		ownerID:      p.OwnerID,
		name:         p.Name,
		quantity:     p.Quantity.Decimal(),
		bestBeforeAt: p.BestBeforeAt,
		expiresAt:    p.ExpiresAt,
		status:       StatusSelling,
		location:     p.Location,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructItem(
	id, ownerID uuid.UUID,
	name string,
	quantity decimal.Decimal,
	bestBeforeAt, expiresAt *time.Time,
	status Status,
	loc location.Location,
	version int64,
	createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:           id,
		ownerID:      ownerID,
		name:         Name{value: name},
		quantity:     quantity,
		bestBeforeAt: bestBeforeAt,
		expiresAt:    expiresAt,
		status:       status,
		location:     loc,
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Sell records a sale made by the supplier outside the platform.
func (i *Item) Sell(qty Quantity) error {
	if i.status == StatusRetired {
		return ErrItemRetired
	}
	if i.status != StatusSelling {
		return ErrInvalidTransition
	}
	if qty.Decimal().GreaterThan(i.quantity) {
		return ErrInsufficientQuantity
	}
	i.quantity = i.quantity.Sub(qty.Decimal())
	return nil
}

// List makes the item visible to distributors.
func (i *Item) List() error {
	return i.transition(StatusListing)
}

// EnsureRequestable checks that a distributor may request qty right now.
func (i *Item) EnsureRequestable(qty Quantity) error {
	switch i.status {
	case StatusListing:
	case StatusRetired:
		return ErrItemRetired
	case StatusApproved:
		// fully allocated
		return ErrInsufficientQuantity
	default:
		return ErrNotListing
	}
	if qty.Decimal().GreaterThan(i.quantity) {
		return ErrInsufficientQuantity
	}
	return nil
}

// Allocate hands qty to an approved request. A fully allocated item becomes Approved.
func (i *Item) Allocate(qty Quantity) error {
	if err := i.EnsureRequestable(qty); err != nil {
		return err
	}
	i.quantity = i.quantity.Sub(qty.Decimal())
	if i.quantity.IsZero() {
		return i.transition(StatusApproved)
	}
	return nil
}

func (i *Item) Retire() error {
	return i.transition(StatusRetired)
}

func (i *Item) transition(next Status) error {
	if i.status == StatusRetired {
		return ErrItemRetired
	}
	if !i.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	i.status = next
	return nil
}

// ApplyVersion is called by stores once a mutation has been committed.
func (i *Item) ApplyVersion(version int64, updatedAt time.Time) {
	i.version = version
	i.updatedAt = updatedAt
}

func (i *Item) IsExpired(now time.Time) bool {
	return i.expiresAt != nil && !now.Before(*i.expiresAt)
}

func (i *Item) IsNearExpiry(now time.Time, threshold time.Duration) bool {
	if i.bestBeforeAt == nil {
		return false
	}
	if i.status != StatusSelling && i.status != StatusListing {
		return false
	}
	return i.bestBeforeAt.Sub(now) <= threshold
}

func (i *Item) IsOwnedBy(ownerID uuid.UUID) bool { return i.ownerID == ownerID }
func (i *Item) IsDepleted() bool                 { return i.quantity.IsZero() }

func (i *Item) ID() uuid.UUID               { return i.id }
func (i *Item) OwnerID() uuid.UUID          { return i.ownerID }
func (i *Item) Name() string                { return i.name.String() }
func (i *Item) Quantity() decimal.Decimal   { return i.quantity }
func (i *Item) BestBeforeAt() *time.Time    { return i.bestBeforeAt }
func (i *Item) ExpiresAt() *time.Time       { return i.expiresAt }
func (i *Item) Status() Status              { return i.status }
func (i *Item) Location() location.Location { return i.location }
func (i *Item) Version() int64              { return i.version }
func (i *Item) CreatedAt() time.Time        { return i.createdAt }
func (i *Item) UpdatedAt() time.Time        { return i.updatedAt }

// Clone returns an independent copy for stores that hand out snapshots.
func (i *Item) Clone() *Item {
	c := *i
	return &c
}
