package forecast

import (
	"context"
	"time"

	"foodbridge/internal/domain/location"

	"github.com/shopspring/decimal"
)

type DataSource string

const (
	DataSourceHistorical DataSource = "historical"
	DataSourceFallback   DataSource = "fallback"
)

// DemandSample is a read projection over request history.
type DemandSample struct {
	ItemName               string
	TotalRequestedQuantity decimal.Decimal
	RequestCount           int
}

type Forecast struct {
	TopDemandedItems []DemandSample
	Narrative        string
	DataSource       DataSource
	Region           location.Filter
	WindowStart      time.Time
	GeneratedAt      time.Time
}

// NarrativeGenerator turns ranked samples into prose for producers.
type NarrativeGenerator interface {
	Generate(ctx context.Context, samples []DemandSample) (string, error)
}
