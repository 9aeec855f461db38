package response

import (
	"time"

	"foodbridge/internal/usecase/commands"
	"foodbridge/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type ItemResponse struct {
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

type ItemChangeResponse struct {
	ItemID   uuid.UUID       `json:"item_id"`
	Status   string          `json:"status"`
	Quantity decimal.Decimal `json:"quantity"`
	Version  int64           `json:"version"`
	Removed  bool            `json:"removed"`
}

func FromItemViews(views []*queries.ItemView) ([]ItemResponse, error) {
	out := make([]ItemResponse, 0, len(views))
	if err := copier.Copy(&out, views); err != nil {
		return nil, err
	}
	return out, nil
}

func FromItemChange(ch *commands.ItemChange) *ItemChangeResponse {
	return &ItemChangeResponse{
		ItemID:   ch.ItemID,
		Status:   ch.Status.String(),
		Quantity: ch.Quantity,
		Version:  ch.Version,
		Removed:  ch.Removed,
	}
}
