package response

import (
	"time"

	"foodbridge/internal/usecase/commands"
	"foodbridge/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type RequestResponse struct {
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

type RequestListResponse struct {
	Items      []RequestResponse `json:"items"`
	NextCursor *string           `json:"next_cursor,omitempty"`
}

type RequestCreatedResponse struct {
	RequestID uuid.UUID `json:"request_id"`
	ItemID    uuid.UUID `json:"item_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type RequestResolutionResponse struct {
	RequestID         uuid.UUID       `json:"request_id"`
	ItemID            uuid.UUID       `json:"item_id"`
	Status            string          `json:"status"`
	RemainingQuantity decimal.Decimal `json:"remaining_quantity"`
	ItemStatus        string          `json:"item_status,omitempty"`
	ResolvedAt        time.Time       `json:"resolved_at"`
}

func FromRequestPage(views []*queries.RequestView, next *queries.Cursor) (*RequestListResponse, error) {
	items := make([]RequestResponse, 0, len(views))
	if err := copier.Copy(&items, views); err != nil {
		return nil, err
	}
	resp := &RequestListResponse{Items: items}
	if next != nil {
		resp.NextCursor = &next.After
	}
	return resp, nil
}

func FromRequestCreated(r *commands.RequestCreated) *RequestCreatedResponse {
	return &RequestCreatedResponse{
		RequestID: r.RequestID,
		ItemID:    r.ItemID,
		Status:    r.Status.String(),
		CreatedAt: r.CreatedAt,
	}
}

func FromRequestResolution(r *commands.RequestResolution) *RequestResolutionResponse {
	return &RequestResolutionResponse{
		RequestID:         r.RequestID,
		ItemID:            r.ItemID,
		Status:            r.Status.String(),
		RemainingQuantity: r.RemainingQuantity,
		ItemStatus:        r.ItemStatus.String(),
		ResolvedAt:        r.ResolvedAt,
	}
}
