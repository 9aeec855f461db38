package repository

import (
	"context"

	"foodbridge/internal/domain/inventory"
	"foodbridge/internal/infra"
	"foodbridge/internal/infra/repository/converter"
	sqlc "foodbridge/internal/infra/sqlc/generated"
	"foodbridge/internal/pkg/clock"
	"foodbridge/internal/pkg/pgconv"
	"foodbridge/internal/usecase/shared"

	"github.com/google/uuid"
)

type InventoryWriteQueries interface {
	CreateInventoryItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateInventoryItemParams) (sqlc.InventoryItems, error)
	GetInventoryItemByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.InventoryItems, error)
	UpdateInventoryItemVersioned(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateInventoryItemVersionedParams) (sqlc.UpdateInventoryItemVersionedRow, error)
	DeleteInventoryItemVersioned(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteInventoryItemVersionedParams) (int64, error)
	ListSweepableInventoryItems(ctx context.Context, db sqlc.DBTX) ([]sqlc.InventoryItems, error)
}

type InventoryRepository struct {
	queries InventoryWriteQueries
	db      sqlc.DBTX
	clock   clock.Clock
}

var _ shared.InventoryStore = (*InventoryRepository)(nil)

func NewInventoryRepository(queries InventoryWriteQueries, db sqlc.DBTX, clk clock.Clock) *InventoryRepository {
	return &InventoryRepository{
		queries: queries,
		db:      db,
		clock:   clk,
	}
}

func (r *InventoryRepository) Get(ctx context.Context, id uuid.UUID) (*inventory.Item, error) {
	row, err := r.queries.GetInventoryItemByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, inventory.ErrItemNotFound
		}
		return nil, infra.WrapRepoErr("failed to get inventory item", err)
	}
	return converter.ItemFromRow(row)
}

func (r *InventoryRepository) Create(ctx context.Context, item *inventory.Item) (uuid.UUID, error) {
	row, err := r.queries.CreateInventoryItem(ctx, r.db, converter.ItemToCreateParams(item))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create inventory item", err)
	}
	return row.ID, nil
}

// CompareAndUpdate re-reads the item, applies mutate and writes it back only
// if nobody else bumped the version in between.
func (r *InventoryRepository) CompareAndUpdate(ctx context.Context, id uuid.UUID, expectedVersion int64, mutate shared.MutateFunc) (*inventory.Item, error) {
	item, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.Version() != expectedVersion {
		return nil, inventory.ErrVersionConflict
	}
	if err := mutate(item); err != nil {
		return nil, err
	}

	row, err := r.queries.UpdateInventoryItemVersioned(ctx, r.db, sqlc.UpdateInventoryItemVersionedParams{
		ID:        id,
		Version:   expectedVersion,
		Quantity:  item.Quantity(),
		Status:    item.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(r.clock.Now()),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, inventory.ErrVersionConflict
		}
		return nil, infra.WrapRepoErr("failed to update inventory item", err)
	}

	item.ApplyVersion(row.Version, pgconv.TimeFromPgtype(row.UpdatedAt))
	return item, nil
}

func (r *InventoryRepository) Remove(ctx context.Context, id uuid.UUID, expectedVersion int64) error {
	affected, err := r.queries.DeleteInventoryItemVersioned(ctx, r.db, sqlc.DeleteInventoryItemVersionedParams{
		ID:      id,
		Version: expectedVersion,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to delete inventory item", err)
	}
	if affected > 0 {
		return nil
	}

	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	return inventory.ErrVersionConflict
}

func (r *InventoryRepository) ListSweepable(ctx context.Context) ([]*inventory.Item, error) {
	rows, err := r.queries.ListSweepableInventoryItems(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sweepable inventory items", err)
	}

	items := make([]*inventory.Item, 0, len(rows))
	for _, row := range rows {
		item, cerr := converter.ItemFromRow(row)
		if cerr != nil {
			return nil, cerr
		}
		items = append(items, item)
	}
	return items, nil
}
