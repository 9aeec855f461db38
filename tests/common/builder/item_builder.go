//go:build unit || e2e

package builder

import (
	"time"

	"foodbridge/internal/domain/inventory"
	"foodbridge/internal/domain/location"
	reqdto "foodbridge/internal/handler/dto/request"
	sqlc "foodbridge/internal/infra/sqlc/generated"
	"foodbridge/internal/pkg/pgconv"
	"foodbridge/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ItemBuilder struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Name         string
	Quantity     decimal.Decimal
	BestBeforeAt *time.Time
	ExpiresAt    *time.Time
	Status       inventory.Status
	City         string
	Pincode      string
	Version      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewItemBuilder() *ItemBuilder {
	now := time.Now().UTC().Truncate(time.Microsecond)
	bestBefore := now.Add(7 * 24 * time.Hour)
	return &ItemBuilder{
		ID:           uuid.New(),
		OwnerID:      uuid.New(),
		Name:         "Basmati Rice",
		Quantity:     decimal.NewFromInt(10),
		BestBeforeAt: &bestBefore,
		Status:       inventory.StatusSelling,
		City:         "Pune",
		Pincode:      "411001",
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ItemBuilder) BuildDomain() *inventory.Item {
	return inventory.ReconstructItem(
		b.ID,
		b.OwnerID,
		b.Name,
		b.Quantity,
		b.BestBeforeAt,
		b.ExpiresAt,
		b.Status,
		location.Reconstruct(b.City, b.Pincode),
		b.Version,
		b.CreatedAt,
		b.UpdatedAt,
	)
}

func (b *ItemBuilder) BuildInfra() sqlc.InventoryItems {
	return sqlc.InventoryItems{
		ID:           b.ID,
		OwnerID:      b.OwnerID,
		Name:         b.Name,
		Quantity:     b.Quantity,
		BestBeforeAt: pgconv.TimePtrToPgtype(b.BestBeforeAt),
		ExpiresAt:    pgconv.TimePtrToPgtype(b.ExpiresAt),
		Status:       b.Status.String(),
		City:         b.City,
		Pincode:      b.Pincode,
		Version:      b.Version,
		CreatedAt:    pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:    pgconv.TimeToPgtype(b.UpdatedAt),
	}
}

func (b *ItemBuilder) BuildCreateRequestDTO() reqdto.CreateItemRequest {
	city := b.City
	pincode := b.Pincode
	return reqdto.CreateItemRequest{
		Name:         b.Name,
		Quantity:     b.Quantity,
		BestBeforeAt: b.BestBeforeAt,
		ExpiresAt:    b.ExpiresAt,
		City:         &city,
		Pincode:      &pincode,
	}
}

func (b *ItemBuilder) BuildView() *queries.ItemView {
	return &queries.ItemView{
		ID:           b.ID,
		OwnerID:      b.OwnerID,
		Name:         b.Name,
		Quantity:     b.Quantity,
		BestBeforeAt: b.BestBeforeAt,
		ExpiresAt:    b.ExpiresAt,
		Status:       b.Status.String(),
		City:         b.City,
		Pincode:      b.Pincode,
		Version:      b.Version,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// Fluent builder methods
func (b *ItemBuilder) WithOwnerID(ownerID uuid.UUID) *ItemBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	b.Name = name
	return b
}

func (b *ItemBuilder) WithQuantity(qty int64) *ItemBuilder {
	b.Quantity = decimal.NewFromInt(qty)
	return b
}

func (b *ItemBuilder) WithStatus(status inventory.Status) *ItemBuilder {
	b.Status = status
	return b
}

func (b *ItemBuilder) WithRegion(city, pincode string) *ItemBuilder {
	b.City = city
	b.Pincode = pincode
	return b
}

func (b *ItemBuilder) WithBestBefore(t *time.Time) *ItemBuilder {
	b.BestBeforeAt = t
	return b
}

func (b *ItemBuilder) WithExpiresAt(t *time.Time) *ItemBuilder {
	b.ExpiresAt = t
	return b
}

func (b *ItemBuilder) WithCreatedAt(t time.Time) *ItemBuilder {
	b.CreatedAt = t
	b.UpdatedAt = t
	return b
}

func (b *ItemBuilder) AsListing() *ItemBuilder {
	b.Status = inventory.StatusListing
	return b
}

func (b *ItemBuilder) AsRetired() *ItemBuilder {
	b.Status = inventory.StatusRetired
	return b
}
