//go:build unit

package memstore_test

import (
	"context"
	"testing"
	"time"

	"foodbridge/internal/domain/inventory"
	"foodbridge/internal/domain/location"
	"foodbridge/internal/domain/notification"
	"foodbridge/internal/infra/memstore"
	"foodbridge/internal/pkg/clock"
	"foodbridge/internal/usecase/queries"
	"foodbridge/internal/usecase/shared"
	"foodbridge/tests/common/builder"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func seed(t *testing.T, s *memstore.Store, fn func(ctx context.Context, tx shared.Tx) error) {
	t.Helper()
	require.NoError(t, s.Within(context.Background(), fn))
}

func TestWithin_DiscardsWritesOnError(t *testing.T) {
	ctx := context.Background()
	s := memstore.New(clock.NewMockClock(now))
	item := builder.NewItemBuilder().BuildDomain()

	boom := errors.New("boom")
	err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, cerr := tx.Inventory().Create(ctx, item)
		require.NoError(t, cerr)

		// visible inside the transaction
		_, gerr := tx.Inventory().Get(ctx, item.ID())
		require.NoError(t, gerr)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	err = s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, gerr := tx.Inventory().Get(ctx, item.ID())
		return gerr
	})
	assert.ErrorIs(t, err, inventory.ErrItemNotFound)
}

func TestInventory_CompareAndUpdate(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(now)
	s := memstore.New(clk)
	item := builder.NewItemBuilder().WithQuantity(10).BuildDomain()
	seed(t, s, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Inventory().Create(ctx, item)
		return err
	})

	clk.Add(time.Minute)
	seed(t, s, func(ctx context.Context, tx shared.Tx) error {
		updated, err := tx.Inventory().CompareAndUpdate(ctx, item.ID(), 1, func(it *inventory.Item) error {
			return it.List()
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), updated.Version())
		assert.Equal(t, now.Add(time.Minute), updated.UpdatedAt())
		return nil
	})

	err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Inventory().CompareAndUpdate(ctx, item.ID(), 1, func(it *inventory.Item) error { return nil })
		return err
	})
	assert.ErrorIs(t, err, inventory.ErrVersionConflict)

	err = s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Inventory().Remove(ctx, item.ID(), 1)
	})
	assert.ErrorIs(t, err, inventory.ErrVersionConflict)

	err = s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Inventory().Remove(ctx, uuid.New(), 1)
	})
	assert.ErrorIs(t, err, inventory.ErrItemNotFound)
}

func TestInventory_ListSweepable(t *testing.T) {
	s := memstore.New(clock.NewMockClock(now))
	soon := now.Add(time.Hour)
	later := now.Add(48 * time.Hour)

	undated := builder.NewItemBuilder().WithBestBefore(nil).BuildDomain()
	bestBeforeOnly := builder.NewItemBuilder().BuildDomain()
	expiresLater := builder.NewItemBuilder().WithExpiresAt(&later).BuildDomain()
	expiresSoon := builder.NewItemBuilder().WithExpiresAt(&soon).BuildDomain()
	retired := builder.NewItemBuilder().WithExpiresAt(&soon).AsRetired().BuildDomain()

	var got []*inventory.Item
	seed(t, s, func(ctx context.Context, tx shared.Tx) error {
		for _, it := range []*inventory.Item{undated, bestBeforeOnly, expiresLater, expiresSoon, retired} {
			if _, err := tx.Inventory().Create(ctx, it); err != nil {
				return err
			}
		}
		var err error
		got, err = tx.Inventory().ListSweepable(ctx)
		return err
	})

	require.Len(t, got, 3)
	assert.Equal(t, expiresSoon.ID(), got[0].ID())
	assert.Equal(t, expiresLater.ID(), got[1].ID())
	assert.Equal(t, bestBeforeOnly.ID(), got[2].ID())
}

func TestReadStore_ListAvailable(t *testing.T) {
	ctx := context.Background()
	s := memstore.New(clock.NewMockClock(now))
	early := now.Add(24 * time.Hour)
	late := now.Add(96 * time.Hour)

	first := builder.NewItemBuilder().AsListing().WithBestBefore(&early).BuildDomain()
	second := builder.NewItemBuilder().AsListing().WithBestBefore(&late).BuildDomain()
	undated := builder.NewItemBuilder().AsListing().WithBestBefore(nil).BuildDomain()
	elsewhere := builder.NewItemBuilder().AsListing().WithRegion("Mumbai", "400001").BuildDomain()
	selling := builder.NewItemBuilder().BuildDomain()
	depleted := builder.NewItemBuilder().AsListing().WithQuantity(0).BuildDomain()

	seed(t, s, func(ctx context.Context, tx shared.Tx) error {
		for _, it := range []*inventory.Item{undated, second, first, elsewhere, selling, depleted} {
			if _, err := tx.Inventory().Create(ctx, it); err != nil {
				return err
			}
		}
		return nil
	})

	views, err := s.ListAvailable(ctx, location.Filter{City: "pune"})
	require.NoError(t, err)
	ids := make([]uuid.UUID, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}
	assert.Equal(t, []uuid.UUID{first.ID(), second.ID(), undated.ID()}, ids)

	all, err := s.ListAvailable(ctx, location.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestReadStore_RequestPaging(t *testing.T) {
	ctx := context.Background()
	s := memstore.New(clock.NewMockClock(now))
	itemB := builder.NewItemBuilder().AsListing()

	var created []uuid.UUID
	seed(t, s, func(ctx context.Context, tx shared.Tx) error {
		for i := 0; i < 5; i++ {
			fr := builder.NewRequestBuilder().ForItem(itemB).WithCreatedAt(now.Add(time.Duration(i) * time.Minute)).BuildDomain()
			if err := tx.Requests().Create(ctx, fr); err != nil {
				return err
			}
			created = append(created, fr.ID())
		}
		return nil
	})

	page, err := s.ListBySupplier(ctx, itemB.OwnerID, nil, nil, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, created[4], page[0].ID)
	assert.Equal(t, created[3], page[1].ID)

	key := &queries.PageKey{CreatedAt: page[1].CreatedAt, ID: page[1].ID}
	page, err = s.ListBySupplier(ctx, itemB.OwnerID, nil, key, 10)
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, created[2], page[0].ID)

	ignored := "ignored"
	page, err = s.ListBySupplier(ctx, itemB.OwnerID, &ignored, nil, 10)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestReadStore_AggregateDemand(t *testing.T) {
	ctx := context.Background()
	s := memstore.New(clock.NewMockClock(now))
	rice := builder.NewItemBuilder().WithName("Rice")
	dal := builder.NewItemBuilder().WithName("Dal")
	mumbai := builder.NewItemBuilder().WithName("Rice").WithRegion("Mumbai", "400001")

	seed(t, s, func(ctx context.Context, tx shared.Tx) error {
		reqs := []*builder.RequestBuilder{
			builder.NewRequestBuilder().ForItem(rice).WithQuantity(4).WithCreatedAt(now),
			builder.NewRequestBuilder().ForItem(rice).WithQuantity(6).WithCreatedAt(now).AsApproved(now),
			builder.NewRequestBuilder().ForItem(rice).WithQuantity(50).WithCreatedAt(now).AsIgnored(now),
			builder.NewRequestBuilder().ForItem(rice).WithQuantity(50).WithCreatedAt(now.Add(-60 * 24 * time.Hour)),
			builder.NewRequestBuilder().ForItem(dal).WithQuantity(3).WithCreatedAt(now),
			builder.NewRequestBuilder().ForItem(mumbai).WithQuantity(99).WithCreatedAt(now),
		}
		for _, b := range reqs {
			if err := tx.Requests().Create(ctx, b.BuildDomain()); err != nil {
				return err
			}
		}
		return nil
	})

	samples, err := s.AggregateDemand(ctx, now.Add(-30*24*time.Hour), location.Filter{City: "Pune"})
	require.NoError(t, err)
	require.Len(t, samples, 2)

	assert.Equal(t, "Rice", samples[0].ItemName)
	assert.True(t, decimal.NewFromInt(10).Equal(samples[0].TotalRequestedQuantity))
	assert.Equal(t, 2, samples[0].RequestCount)
	assert.Equal(t, "Dal", samples[1].ItemName)
}

func TestNotifications_OnePerItem(t *testing.T) {
	ctx := context.Background()
	s := memstore.New(clock.NewMockClock(now))
	itemID := uuid.New()
	owner := uuid.New()

	first, err := notification.New(itemID, owner, notification.KindNearExpiry, "first", now)
	require.NoError(t, err)
	second, err := notification.New(itemID, owner, notification.KindNearExpiry, "second", now)
	require.NoError(t, err)

	seed(t, s, func(ctx context.Context, tx shared.Tx) error {
		stored, created, err := tx.Notifications().CreateIfAbsent(ctx, first)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, first.ID(), stored.ID())

		stored, created, err = tx.Notifications().CreateIfAbsent(ctx, second)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID(), stored.ID())
		return nil
	})

	err = s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		stale := first.Clone()
		stale.Acknowledge(now)
		require.NoError(t, tx.Notifications().Acknowledge(ctx, stale))
		// the stored version moved on
		return tx.Notifications().Acknowledge(ctx, stale)
	})
	assert.ErrorIs(t, err, notification.ErrAcknowledgeConflicted)

	views, err := s.ListUnacknowledgedByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, views, 1, "the failed transaction left the notification open")
}
