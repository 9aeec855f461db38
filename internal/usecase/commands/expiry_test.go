//go:build unit

package commands_test

import (
	"testing"
	"time"

	"foodbridge/internal/domain/inventory"
	"foodbridge/internal/domain/request"
	"foodbridge/internal/pkg/errs"
	"foodbridge/internal/usecase/commands"
	"foodbridge/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpiryWatcher_RetiresExpiredItems(t *testing.T) {
	f := newFixture(t)
	expires := baseTime.Add(2 * time.Hour)
	itemID := f.addItem(t, commands.AddItemRequest{Quantity: qty(10), ExpiresAt: &expires})
	_, err := f.inventory.ListItem(f.ctx, f.supplier, itemID)
	require.NoError(t, err)
	pending := f.createRequest(t, f.distributor, itemID, 4)

	report, err := f.watcher.Sweep(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Retired)

	f.clock.Set(expires)

	report, err = f.watcher.Sweep(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Retired)
	assert.Equal(t, int64(1), report.IgnoredRequests)

	assert.Equal(t, inventory.StatusRetired, f.item(t, itemID).Status())
	assert.Equal(t, request.StatusIgnored, f.request(t, pending).Status())

	retired := f.publisher.ofType(shared.AlertItemRetired)
	require.Len(t, retired, 1)
	assert.Equal(t, itemID, retired[0].ItemID)
	assert.Equal(t, int64(1), retired[0].IgnoredCount)

	t.Run("retired items reject new work", func(t *testing.T) {
		_, err := f.requests.Approve(f.ctx, f.supplier, pending)
		assert.Equal(t, "state_conflict", errs.Kind(err))

		_, err = f.requests.CreateRequest(f.ctx, f.distributor, commands.CreateFoodRequest{ItemID: itemID, Quantity: qty(1)})
		assert.ErrorIs(t, err, inventory.ErrItemRetired)

		_, err = f.inventory.SellItem(f.ctx, f.supplier, itemID, qty(1))
		assert.ErrorIs(t, err, inventory.ErrItemRetired)
	})

	t.Run("sweeping again is a no-op", func(t *testing.T) {
		report, err := f.watcher.Sweep(f.ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, report.Scanned)
		assert.Len(t, f.publisher.ofType(shared.AlertItemRetired), 1)
	})
}

func TestExpiryWatcher_NearExpiryNotification(t *testing.T) {
	f := newFixture(t)
	bestBefore := baseTime.Add(72 * time.Hour)
	itemID := f.addItem(t, commands.AddItemRequest{Quantity: qty(3), BestBeforeAt: &bestBefore})

	report, err := f.watcher.Sweep(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Notified, "outside the threshold")

	f.clock.Add(30 * time.Hour)

	report, err = f.watcher.Sweep(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Notified)

	views, err := f.store.ListUnacknowledgedByOwner(f.ctx, f.supplier.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, itemID, views[0].ItemID)
	assert.Equal(t, "Tomatoes", views[0].ItemName)
	assert.Contains(t, views[0].Message, "42 hours")

	t.Run("a second sweep does not duplicate the alert", func(t *testing.T) {
		f.clock.Add(time.Hour)
		report, err := f.watcher.Sweep(f.ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, report.Notified)
		assert.Len(t, f.publisher.ofType(shared.AlertNearExpiry), 1)
	})

	t.Run("an ignored alert is not raised again", func(t *testing.T) {
		require.NoError(t, f.notifications.Acknowledge(f.ctx, f.supplier, views[0].ID))

		report, err := f.watcher.Sweep(f.ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, report.Notified)

		views, err := f.store.ListUnacknowledgedByOwner(f.ctx, f.supplier.ID)
		require.NoError(t, err)
		assert.Empty(t, views)
	})
}

func TestExpiryWatcher_ApprovedItemsStillRetire(t *testing.T) {
	f := newFixture(t)
	expires := baseTime.Add(time.Hour)
	itemID := f.addItem(t, commands.AddItemRequest{Quantity: qty(2), ExpiresAt: &expires})
	_, err := f.inventory.ListItem(f.ctx, f.supplier, itemID)
	require.NoError(t, err)
	reqID := f.createRequest(t, f.distributor, itemID, 2)
	_, err = f.requests.Approve(f.ctx, f.supplier, reqID)
	require.NoError(t, err)

	f.clock.Add(2 * time.Hour)
	report, err := f.watcher.Sweep(f.ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Retired)
	assert.Equal(t, int64(0), report.IgnoredRequests)
	assert.Equal(t, request.StatusApproved, f.request(t, reqID).Status())
}

func TestExpiryWatcher_RetirementClosesOpenNotification(t *testing.T) {
	f := newFixture(t)
	bestBefore := baseTime.Add(10 * time.Hour)
	expires := baseTime.Add(20 * time.Hour)
	itemID := f.addItem(t, commands.AddItemRequest{Quantity: qty(6), BestBeforeAt: &bestBefore, ExpiresAt: &expires})
	_, err := f.inventory.ListItem(f.ctx, f.supplier, itemID)
	require.NoError(t, err)
	pending := f.createRequest(t, f.distributor, itemID, 2)

	report, err := f.watcher.Sweep(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Notified)
	assert.Equal(t, 0, report.Retired)

	open, err := f.store.ListUnacknowledgedByOwner(f.ctx, f.supplier.ID)
	require.NoError(t, err)
	require.Len(t, open, 1)

	f.clock.Set(expires)

	report, err = f.watcher.Sweep(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Retired)
	assert.Equal(t, int64(1), report.IgnoredRequests)
	assert.Equal(t, 0, report.Notified)

	assert.Equal(t, inventory.StatusRetired, f.item(t, itemID).Status())
	assert.Equal(t, request.StatusIgnored, f.request(t, pending).Status())

	open, err = f.store.ListUnacknowledgedByOwner(f.ctx, f.supplier.ID)
	require.NoError(t, err)
	assert.Empty(t, open)
}
