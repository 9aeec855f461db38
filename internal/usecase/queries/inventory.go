package queries

import (
	"context"

	"foodbridge/internal/domain/actor"
	"foodbridge/internal/domain/location"
)

type InventoryQueries interface {
	ListInventory(ctx context.Context, a actor.Actor) ([]*ItemView, error)
	BrowseAvailable(ctx context.Context, a actor.Actor, filter location.Filter) ([]*ItemView, error)
}

type inventoryQueriesImpl struct {
	store InventoryReadStore
}

func NewInventoryQueries(store InventoryReadStore) InventoryQueries {
	return &inventoryQueriesImpl{store: store}
}

func (q *inventoryQueriesImpl) ListInventory(ctx context.Context, a actor.Actor) ([]*ItemView, error) {
	if err := a.Require(actor.RoleSupplier); err != nil {
		return nil, err
	}
	return q.store.ListByOwner(ctx, a.ID)
}

// BrowseAvailable shows Listing items only. An empty filter shows every region.
func (q *inventoryQueriesImpl) BrowseAvailable(ctx context.Context, a actor.Actor, filter location.Filter) ([]*ItemView, error) {
	if err := a.Require(actor.RoleDistributor); err != nil {
		return nil, err
	}
	return q.store.ListAvailable(ctx, filter.Normalize())
}
