package readstore

import (
	"context"

	"foodbridge/internal/infra"
	sqlc "foodbridge/internal/infra/sqlc/generated"
	"foodbridge/internal/pkg/pgconv"
	"foodbridge/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RequestReadQueries interface {
	ListFoodRequestsByRequester(ctx context.Context, db sqlc.DBTX, arg sqlc.ListFoodRequestsByRequesterParams) ([]sqlc.FoodRequests, error)
	ListFoodRequestsBySupplier(ctx context.Context, db sqlc.DBTX, arg sqlc.ListFoodRequestsBySupplierParams) ([]sqlc.FoodRequests, error)
}

type RequestReadStore struct {
	queries RequestReadQueries
	db      sqlc.DBTX
}

var _ queries.RequestReadStore = (*RequestReadStore)(nil)

func NewRequestReadStore(q RequestReadQueries, db sqlc.DBTX) *RequestReadStore {
	return &RequestReadStore{
		queries: q,
		db:      db,
	}
}

func (s *RequestReadStore) ListByRequester(ctx context.Context, requesterID uuid.UUID, after *queries.PageKey, limit int32) ([]*queries.RequestView, error) {
	afterAt, afterID := pageKeyParams(after)
	rows, err := s.queries.ListFoodRequestsByRequester(ctx, s.db, sqlc.ListFoodRequestsByRequesterParams{
		RequesterID:    requesterID,
		AfterCreatedAt: afterAt,
		AfterID:        afterID,
		PageLimit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests by requester", err)
	}
	return toRequestViews(rows), nil
}

func (s *RequestReadStore) ListBySupplier(ctx context.Context, supplierID uuid.UUID, status *string, after *queries.PageKey, limit int32) ([]*queries.RequestView, error) {
	afterAt, afterID := pageKeyParams(after)
	rows, err := s.queries.ListFoodRequestsBySupplier(ctx, s.db, sqlc.ListFoodRequestsBySupplierParams{
		SupplierID:     supplierID,
		Status:         pgconv.StringPtrToPgtype(status),
		AfterCreatedAt: afterAt,
		AfterID:        afterID,
		PageLimit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests by supplier", err)
	}
	return toRequestViews(rows), nil
}

func pageKeyParams(after *queries.PageKey) (pgtype.Timestamptz, pgtype.UUID) {
	if after == nil {
		return pgtype.Timestamptz{}, pgtype.UUID{}
	}
	return pgconv.TimeToPgtype(after.CreatedAt), pgconv.UUIDToPgtype(after.ID)
}

func toRequestViews(rows []sqlc.FoodRequests) []*queries.RequestView {
	result := make([]*queries.RequestView, len(rows))
	for i, row := range rows {
		result[i] = &queries.RequestView{
			ID:          row.ID,
			RequesterID: row.RequesterID,
			SupplierID:  row.SupplierID,
			ItemID:      row.ItemID,
			ItemName:    row.ItemName,
			Quantity:    row.Quantity,
			PickupDate:  pgconv.TimePtrFromPgtype(row.PickupDate),
			Notes:       row.Notes,
			Status:      row.Status,
			City:        row.City,
			Pincode:     row.Pincode,
			CreatedAt:   row.CreatedAt.Time,
			ResolvedAt:  pgconv.TimePtrFromPgtype(row.ResolvedAt),
		}
	}
	return result
}
