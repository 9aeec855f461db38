package readstore

import (
	"context"
	"time"

	"foodbridge/internal/domain/forecast"
	"foodbridge/internal/domain/location"
	"foodbridge/internal/infra"
	sqlc "foodbridge/internal/infra/sqlc/generated"
	"foodbridge/internal/pkg/pgconv"
	"foodbridge/internal/usecase/queries"
)

type DemandReadQueries interface {
	AggregateDemandByItemName(ctx context.Context, db sqlc.DBTX, arg sqlc.AggregateDemandByItemNameParams) ([]sqlc.AggregateDemandByItemNameRow, error)
}

// DemandReadStore reads request history only; inventory is never consulted.
type DemandReadStore struct {
	queries DemandReadQueries
	db      sqlc.DBTX
}

var _ queries.DemandHistoryReadStore = (*DemandReadStore)(nil)

func NewDemandReadStore(q DemandReadQueries, db sqlc.DBTX) *DemandReadStore {
	return &DemandReadStore{
		queries: q,
		db:      db,
	}
}

func (s *DemandReadStore) AggregateDemand(ctx context.Context, since time.Time, filter location.Filter) ([]forecast.DemandSample, error) {
	f := filter.Normalize()
	rows, err := s.queries.AggregateDemandByItemName(ctx, s.db, sqlc.AggregateDemandByItemNameParams{
		Since:   pgconv.TimeToPgtype(since),
		City:    pgconv.OptionalText(f.City),
		Pincode: pgconv.OptionalText(f.Pincode),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate demand", err)
	}

	samples := make([]forecast.DemandSample, len(rows))
	for i, row := range rows {
		samples[i] = forecast.DemandSample{
			ItemName:               row.ItemName,
			TotalRequestedQuantity: row.TotalQuantity,
			RequestCount:           int(row.RequestCount),
		}
	}
	return samples, nil
}
