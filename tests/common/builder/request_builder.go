//go:build unit || e2e

package builder

import (
	"time"

	"foodbridge/internal/domain/location"
	domrequest "foodbridge/internal/domain/request"
	reqdto "foodbridge/internal/handler/dto/request"
	sqlc "foodbridge/internal/infra/sqlc/generated"
	"foodbridge/internal/pkg/pgconv"
	"foodbridge/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RequestBuilder struct {
	ID          uuid.UUID
	RequesterID uuid.UUID
	SupplierID  uuid.UUID
	ItemID      uuid.UUID
	ItemName    string
	City        string
	Pincode     string
	Quantity    decimal.Decimal
	PickupDate  *time.Time
	Notes       string
	Status      domrequest.Status
	Version     int64
	CreatedAt   time.Time
	ResolvedAt  *time.Time
}

func NewRequestBuilder() *RequestBuilder {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &RequestBuilder{
		ID:          uuid.New(),
		RequesterID: uuid.New(),
		SupplierID:  uuid.New(),
		ItemID:      uuid.New(),
		ItemName:    "Basmati Rice",
		City:        "Pune",
		Pincode:     "411001",
		Quantity:    decimal.NewFromInt(4),
		Notes:       "Evening pickup works best",
		Status:      domrequest.StatusPending,
		Version:     1,
		CreatedAt:   now,
	}
}

func (b *RequestBuilder) With(mutate func(*RequestBuilder)) *RequestBuilder {
	mutate(b)
	return b
}

// ForItem copies the item-derived fields a request captures at creation.
func (b *RequestBuilder) ForItem(item *ItemBuilder) *RequestBuilder {
	b.ItemID = item.ID
	b.SupplierID = item.OwnerID
	b.ItemName = item.Name
	b.City = item.City
	b.Pincode = item.Pincode
	return b
}

// Build methods
func (b *RequestBuilder) BuildDomain() *domrequest.FoodRequest {
	return domrequest.ReconstructFoodRequest(
		b.ID,
		b.RequesterID,
		b.SupplierID,
		b.ItemID,
		b.ItemName,
		location.Reconstruct(b.City, b.Pincode),
		b.Quantity,
		b.PickupDate,
		b.Notes,
		b.Status,
		b.Version,
		b.CreatedAt,
		b.ResolvedAt,
	)
}

func (b *RequestBuilder) BuildInfra() sqlc.FoodRequests {
	return sqlc.FoodRequests{
		ID:          b.ID,
		RequesterID: b.RequesterID,
		SupplierID:  b.SupplierID,
		ItemID:      b.ItemID,
		ItemName:    b.ItemName,
		City:        b.City,
		Pincode:     b.Pincode,
		Quantity:    b.Quantity,
		PickupDate:  pgconv.TimePtrToPgtype(b.PickupDate),
		Notes:       b.Notes,
		Status:      b.Status.String(),
		Version:     b.Version,
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt),
		ResolvedAt:  pgconv.TimePtrToPgtype(b.ResolvedAt),
	}
}

func (b *RequestBuilder) BuildCreateRequestDTO() reqdto.CreateFoodRequestRequest {
	return reqdto.CreateFoodRequestRequest{
		ItemID:     b.ItemID,
		Quantity:   b.Quantity,
		PickupDate: b.PickupDate,
		Notes:      b.Notes,
	}
}

func (b *RequestBuilder) BuildView() *queries.RequestView {
	return &queries.RequestView{
		ID:          b.ID,
		RequesterID: b.RequesterID,
		SupplierID:  b.SupplierID,
		ItemID:      b.ItemID,
		ItemName:    b.ItemName,
		Quantity:    b.Quantity,
		PickupDate:  b.PickupDate,
		Notes:       b.Notes,
		Status:      b.Status.String(),
		City:        b.City,
		Pincode:     b.Pincode,
		CreatedAt:   b.CreatedAt,
		ResolvedAt:  b.ResolvedAt,
	}
}

// Fluent builder methods
func (b *RequestBuilder) WithRequesterID(id uuid.UUID) *RequestBuilder {
	b.RequesterID = id
	return b
}

func (b *RequestBuilder) WithQuantity(qty int64) *RequestBuilder {
	b.Quantity = decimal.NewFromInt(qty)
	return b
}

func (b *RequestBuilder) WithCreatedAt(t time.Time) *RequestBuilder {
	b.CreatedAt = t
	return b
}

func (b *RequestBuilder) AsApproved(at time.Time) *RequestBuilder {
	b.Status = domrequest.StatusApproved
	b.ResolvedAt = &at
	return b
}

func (b *RequestBuilder) AsIgnored(at time.Time) *RequestBuilder {
	b.Status = domrequest.StatusIgnored
	b.ResolvedAt = &at
	return b
}
