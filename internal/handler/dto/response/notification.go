package response

import (
	"time"

	"foodbridge/internal/domain/forecast"
	"foodbridge/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type NotificationResponse struct {
	ID          uuid.UUID `json:"id"`
	ItemID      uuid.UUID `json:"item_id"`
	ItemName    string    `json:"item_name"`
	Kind        string    `json:"kind"`
	Message     string    `json:"message"`
	TriggeredAt time.Time `json:"triggered_at"`
}

func FromNotificationViews(views []*queries.NotificationView) ([]NotificationResponse, error) {
	out := make([]NotificationResponse, 0, len(views))
	if err := copier.Copy(&out, views); err != nil {
		return nil, err
	}
	return out, nil
}

type DemandItemResponse struct {
	ItemName               string          `json:"item_name"`
	TotalRequestedQuantity decimal.Decimal `json:"total_requested_quantity"`
	RequestCount           int             `json:"request_count"`
}

type ForecastResponse struct {
	TopDemandedFoods   []DemandItemResponse `json:"top_demanded_foods"`
	DemandForecastText string               `json:"demand_forecast_text"`
	DataSource         string               `json:"data_source"`
	City               string               `json:"city,omitempty"`
	Pincode            string               `json:"pincode,omitempty"`
	WindowStart        time.Time            `json:"window_start"`
	GeneratedAt        time.Time            `json:"generated_at"`
}

func FromForecast(f *forecast.Forecast) (*ForecastResponse, error) {
	top := make([]DemandItemResponse, 0, len(f.TopDemandedItems))
	if err := copier.Copy(&top, f.TopDemandedItems); err != nil {
		return nil, err
	}
	return &ForecastResponse{
		TopDemandedFoods:   top,
		DemandForecastText: f.Narrative,
		DataSource:         string(f.DataSource),
		City:               f.Region.City,
		Pincode:            f.Region.Pincode,
		WindowStart:        f.WindowStart,
		GeneratedAt:        f.GeneratedAt,
	}, nil
}
