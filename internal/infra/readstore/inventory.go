package readstore

import (
	"context"

	"foodbridge/internal/domain/location"
	"foodbridge/internal/infra"
	sqlc "foodbridge/internal/infra/sqlc/generated"
	"foodbridge/internal/pkg/pgconv"
	"foodbridge/internal/usecase/queries"

	"github.com/google/uuid"
)

type InventoryReadQueries interface {
	ListInventoryItemsByOwner(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) ([]sqlc.InventoryItems, error)
	ListAvailableInventoryItems(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAvailableInventoryItemsParams) ([]sqlc.InventoryItems, error)
}

type InventoryReadStore struct {
	queries InventoryReadQueries
	db      sqlc.DBTX
}

var _ queries.InventoryReadStore = (*InventoryReadStore)(nil)

func NewInventoryReadStore(q InventoryReadQueries, db sqlc.DBTX) *InventoryReadStore {
	return &InventoryReadStore{
		queries: q,
		db:      db,
	}
}

func (s *InventoryReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.ItemView, error) {
	rows, err := s.queries.ListInventoryItemsByOwner(ctx, s.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list inventory by owner", err)
	}
	return toItemViews(rows), nil
}

func (s *InventoryReadStore) ListAvailable(ctx context.Context, filter location.Filter) ([]*queries.ItemView, error) {
	f := filter.Normalize()
	rows, err := s.queries.ListAvailableInventoryItems(ctx, s.db, sqlc.ListAvailableInventoryItemsParams{
		City:    pgconv.OptionalText(f.City),
		Pincode: pgconv.OptionalText(f.Pincode),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available inventory", err)
	}
	return toItemViews(rows), nil
}

func toItemViews(rows []sqlc.InventoryItems) []*queries.ItemView {
	result := make([]*queries.ItemView, len(rows))
	for i, row := range rows {
		result[i] = &queries.ItemView{
			ID:           row.ID,
			OwnerID:      row.OwnerID,
			Name:         row.Name,
			Quantity:     row.Quantity,
			BestBeforeAt: pgconv.TimePtrFromPgtype(row.BestBeforeAt),
			ExpiresAt:    pgconv.TimePtrFromPgtype(row.ExpiresAt),
			Status:       row.Status,
			City:         row.City,
			Pincode:      row.Pincode,
			Version:      row.Version,
			CreatedAt:    row.CreatedAt.Time,
			UpdatedAt:    row.UpdatedAt.Time,
		}
	}
	return result
}
