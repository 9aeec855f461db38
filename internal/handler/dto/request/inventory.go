package request

import (
	"time"

	"foodbridge/internal/domain/location"
	"foodbridge/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type CreateItemRequest struct {
	Name         string          `json:"name" binding:"required,max=120"`
	Quantity     decimal.Decimal `json:"quantity"`
	BestBeforeAt *time.Time      `json:"best_before_at,omitempty"`
	ExpiresAt    *time.Time      `json:"expires_at,omitempty"`
	City         *string         `json:"city,omitempty" binding:"omitempty,max=80"`
	Pincode      *string         `json:"pincode,omitempty"`
}

func (r CreateItemRequest) ToCommand() commands.AddItemRequest {
	return commands.AddItemRequest{
		Name:         r.Name,
		Quantity:     r.Quantity,
		BestBeforeAt: r.BestBeforeAt,
		ExpiresAt:    r.ExpiresAt,
		City:         r.City,
		Pincode:      r.Pincode,
	}
}

type SellItemRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}

// RegionQuery is bound from ?city=&pincode=.
type RegionQuery struct {
	City    string `form:"city"`
	Pincode string `form:"pincode"`
}

func (q RegionQuery) ToFilter() location.Filter {
	return location.Filter{City: q.City, Pincode: q.Pincode}
}
