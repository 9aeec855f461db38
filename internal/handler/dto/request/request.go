package request

import (
	"time"

	"foodbridge/internal/usecase/commands"
	"foodbridge/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateFoodRequestRequest struct {
	ItemID     uuid.UUID       `json:"item_id" binding:"required"`
	Quantity   decimal.Decimal `json:"quantity"`
	PickupDate *time.Time      `json:"pickup_date,omitempty"`
	Notes      string          `json:"notes,omitempty" binding:"max=500"`
}

func (r CreateFoodRequestRequest) ToCommand() commands.CreateFoodRequest {
	return commands.CreateFoodRequest{
		ItemID:     r.ItemID,
		Quantity:   r.Quantity,
		PickupDate: r.PickupDate,
		Notes:      r.Notes,
	}
}

type ListRequestsQuery struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1"`
	Status string `form:"status" binding:"omitempty,oneof=pending approved ignored"`
}

func (q ListRequestsQuery) PageCursor() *queries.Cursor {
	if q.Cursor == "" {
		return nil
	}
	return &queries.Cursor{After: q.Cursor}
}
