package memstore

import (
	"context"
	"slices"

	"foodbridge/internal/domain/inventory"
	"foodbridge/internal/infra"
	"foodbridge/internal/usecase/shared"

	"github.com/google/uuid"
)

type inventoryTx memTx

func (t *inventoryTx) Get(_ context.Context, id uuid.UUID) (*inventory.Item, error) {
	it, ok := lookup(t.s, t.s.items, t.items, id)
	if !ok {
		return nil, inventory.ErrItemNotFound
	}
	return it.Clone(), nil
}

func (t *inventoryTx) Create(_ context.Context, item *inventory.Item) (uuid.UUID, error) {
	if _, exists := lookup(t.s, t.s.items, t.items, item.ID()); exists {
		return uuid.Nil, infra.WrapRepoErr("inventory item already exists", nil, infra.KindDuplicateKey)
	}
	t.items[item.ID()] = item.Clone()
	return item.ID(), nil
}

func (t *inventoryTx) CompareAndUpdate(ctx context.Context, id uuid.UUID, expectedVersion int64, mutate shared.MutateFunc) (*inventory.Item, error) {
	item, err := t.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.Version() != expectedVersion {
		return nil, inventory.ErrVersionConflict
	}
	if err := mutate(item); err != nil {
		return nil, err
	}

	item.ApplyVersion(expectedVersion+1, t.s.clock.Now())
	t.items[id] = item.Clone()
	return item, nil
}

func (t *inventoryTx) Remove(ctx context.Context, id uuid.UUID, expectedVersion int64) error {
	item, err := t.Get(ctx, id)
	if err != nil {
		return err
	}
	if item.Version() != expectedVersion {
		return inventory.ErrVersionConflict
	}
	t.items[id] = nil
	return nil
}

func (t *inventoryTx) ListSweepable(_ context.Context) ([]*inventory.Item, error) {
	var out []*inventory.Item
	for _, it := range merged(t.s, t.s.items, t.items) {
		if it.Status() == inventory.StatusRetired {
			continue
		}
		if it.ExpiresAt() == nil && it.BestBeforeAt() == nil {
			continue
		}
		out = append(out, it.Clone())
	}
	slices.SortFunc(out, func(a, b *inventory.Item) int {
		if c := compareNullsLast(a.ExpiresAt(), b.ExpiresAt()); c != 0 {
			return c
		}
		return compareID(a.ID(), b.ID())
	})
	return out, nil
}
