package repository

import (
	"context"
	"time"

	"foodbridge/internal/domain/request"
	"foodbridge/internal/infra"
	"foodbridge/internal/infra/repository/converter"
	sqlc "foodbridge/internal/infra/sqlc/generated"
	"foodbridge/internal/pkg/pgconv"
	"foodbridge/internal/usecase/shared"

	"github.com/google/uuid"
)

type RequestWriteQueries interface {
	CreateFoodRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateFoodRequestParams) error
	GetFoodRequestByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FoodRequests, error)
	ResolveFoodRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.ResolveFoodRequestParams) (int64, error)
	IgnorePendingFoodRequestsForItem(ctx context.Context, db sqlc.DBTX, arg sqlc.IgnorePendingFoodRequestsForItemParams) (int64, error)
	CountPendingFoodRequestsForItem(ctx context.Context, db sqlc.DBTX, itemID uuid.UUID) (int64, error)
}

type RequestRepository struct {
	queries RequestWriteQueries
	db      sqlc.DBTX
}

var _ shared.RequestRepository = (*RequestRepository)(nil)

func NewRequestRepository(queries RequestWriteQueries, db sqlc.DBTX) *RequestRepository {
	return &RequestRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RequestRepository) Get(ctx context.Context, id uuid.UUID) (*request.FoodRequest, error) {
	row, err := r.queries.GetFoodRequestByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, request.ErrRequestNotFound
		}
		return nil, infra.WrapRepoErr("failed to get food request", err)
	}
	return converter.RequestFromRow(row)
}

func (r *RequestRepository) Create(ctx context.Context, req *request.FoodRequest) error {
	if err := r.queries.CreateFoodRequest(ctx, r.db, converter.RequestToCreateParams(req)); err != nil {
		return infra.WrapRepoErr("failed to create food request", err)
	}
	return nil
}

// Resolve fails with request.ErrAlreadyResolved when the stored request has left Pending.
func (r *RequestRepository) Resolve(ctx context.Context, req *request.FoodRequest) error {
	affected, err := r.queries.ResolveFoodRequest(ctx, r.db, sqlc.ResolveFoodRequestParams{
		ID:         req.ID(),
		Status:     req.Status().String(),
		ResolvedAt: pgconv.TimePtrToPgtype(req.ResolvedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to resolve food request", err)
	}
	if affected == 0 {
		return request.ErrAlreadyResolved
	}
	return nil
}

func (r *RequestRepository) IgnorePendingForItem(ctx context.Context, itemID uuid.UUID, now time.Time) (int64, error) {
	affected, err := r.queries.IgnorePendingFoodRequestsForItem(ctx, r.db, sqlc.IgnorePendingFoodRequestsForItemParams{
		ItemID:     itemID,
		ResolvedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to ignore pending food requests", err)
	}
	return affected, nil
}

func (r *RequestRepository) CountPendingForItem(ctx context.Context, itemID uuid.UUID) (int64, error) {
	count, err := r.queries.CountPendingFoodRequestsForItem(ctx, r.db, itemID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count pending food requests", err)
	}
	return count, nil
}
