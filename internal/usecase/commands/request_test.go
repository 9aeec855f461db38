//go:build unit

package commands_test

import (
	"sync"
	"testing"

	"foodbridge/internal/domain/actor"
	"foodbridge/internal/domain/inventory"
	"foodbridge/internal/domain/location"
	"foodbridge/internal/domain/request"
	"foodbridge/internal/pkg/errs"
	"foodbridge/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestCommands_CreateRequest(t *testing.T) {
	t.Run("success: pending request leaves the item untouched", func(t *testing.T) {
		f := newFixture(t)
		itemID := f.listedItem(t, 10)
		before := f.item(t, itemID)

		created, err := f.requests.CreateRequest(f.ctx, f.distributor, commands.CreateFoodRequest{
			ItemID:   itemID,
			Quantity: qty(4),
			Notes:    "  weekday mornings ",
		})
		require.NoError(t, err)
		assert.Equal(t, request.StatusPending, created.Status)
		assert.Equal(t, itemID, created.ItemID)

		after := f.item(t, itemID)
		assert.True(t, before.Quantity().Equal(after.Quantity()))
		assert.Equal(t, inventory.StatusListing, after.Status())

		fr := f.request(t, created.RequestID)
		assert.Equal(t, "weekday mornings", fr.Notes())
		assert.Equal(t, f.supplier.ID, fr.SupplierID())
	})

	t.Run("success: requests may exceed the remainder in aggregate", func(t *testing.T) {
		f := newFixture(t)
		itemID := f.listedItem(t, 10)
		f.createRequest(t, f.distributor, itemID, 6)
		f.createRequest(t, newDistributor(), itemID, 6)
	})

	testCases := []struct {
		name     string
		setup    func(t *testing.T, f *fixture) uuid.UUID
		by       func(f *fixture) actor.Actor
		quantity decimal.Decimal
		errIs    error
		kind     string
	}{
		{
			name: "item not listed",
			setup: func(t *testing.T, f *fixture) uuid.UUID {
				return f.addItem(t, commands.AddItemRequest{Quantity: qty(5)})
			},
			by:       func(f *fixture) actor.Actor { return f.distributor },
			quantity: qty(1),
			errIs:    inventory.ErrNotListing,
			kind:     "state_conflict",
		},
		{
			name:     "quantity above remainder",
			setup:    func(t *testing.T, f *fixture) uuid.UUID { return f.listedItem(t, 5) },
			by:       func(f *fixture) actor.Actor { return f.distributor },
			quantity: qty(6),
			errIs:    inventory.ErrInsufficientQuantity,
			kind:     "state_conflict",
		},
		{
			name:     "non-positive quantity",
			setup:    func(t *testing.T, f *fixture) uuid.UUID { return f.listedItem(t, 5) },
			by:       func(f *fixture) actor.Actor { return f.distributor },
			quantity: qty(0),
			errIs:    inventory.ErrInvalidQuantity,
			kind:     "validation",
		},
		{
			name:     "unknown item",
			setup:    func(t *testing.T, f *fixture) uuid.UUID { return uuid.New() },
			by:       func(f *fixture) actor.Actor { return f.distributor },
			quantity: qty(1),
			errIs:    inventory.ErrItemNotFound,
			kind:     "not_found",
		},
		{
			name:     "suppliers cannot request",
			setup:    func(t *testing.T, f *fixture) uuid.UUID { return f.listedItem(t, 5) },
			by:       func(f *fixture) actor.Actor { return f.supplier },
			quantity: qty(1),
			errIs:    actor.ErrRoleRequired,
			kind:     "unauthorized",
		},
	}
	for _, tc := range testCases {
		t.Run("error: "+tc.name, func(t *testing.T) {
			f := newFixture(t)
			itemID := tc.setup(t, f)

			_, err := f.requests.CreateRequest(f.ctx, tc.by(f), commands.CreateFoodRequest{ItemID: itemID, Quantity: tc.quantity})
			assert.ErrorIs(t, err, tc.errIs)
			assert.Equal(t, tc.kind, errs.Kind(err))
		})
	}
}

func TestRequestCommands_Approve(t *testing.T) {
	t.Run("second approval of an oversubscribed item fails", func(t *testing.T) {
		f := newFixture(t)
		itemID := f.listedItem(t, 10)
		first := f.createRequest(t, f.distributor, itemID, 6)
		second := f.createRequest(t, newDistributor(), itemID, 6)

		res, err := f.requests.Approve(f.ctx, f.supplier, first)
		require.NoError(t, err)
		assert.Equal(t, request.StatusApproved, res.Status)
		assert.True(t, qty(4).Equal(res.RemainingQuantity))
		assert.Equal(t, inventory.StatusListing, res.ItemStatus)

		_, err = f.requests.Approve(f.ctx, f.supplier, second)
		assert.ErrorIs(t, err, inventory.ErrInsufficientQuantity)

		assert.Equal(t, request.StatusPending, f.request(t, second).Status())
		assert.True(t, qty(4).Equal(f.item(t, itemID).Quantity()))
	})

	t.Run("full allocation moves the item to approved", func(t *testing.T) {
		f := newFixture(t)
		itemID := f.listedItem(t, 5)
		reqID := f.createRequest(t, f.distributor, itemID, 5)

		res, err := f.requests.Approve(f.ctx, f.supplier, reqID)
		require.NoError(t, err)
		assert.Equal(t, inventory.StatusApproved, res.ItemStatus)
		assert.True(t, res.RemainingQuantity.IsZero())
	})

	t.Run("error: already resolved", func(t *testing.T) {
		f := newFixture(t)
		itemID := f.listedItem(t, 5)
		reqID := f.createRequest(t, f.distributor, itemID, 1)

		_, err := f.requests.Approve(f.ctx, f.supplier, reqID)
		require.NoError(t, err)
		_, err = f.requests.Approve(f.ctx, f.supplier, reqID)
		assert.ErrorIs(t, err, request.ErrAlreadyResolved)
		assert.True(t, qty(4).Equal(f.item(t, itemID).Quantity()))
	})

	t.Run("error: only the item owner approves", func(t *testing.T) {
		f := newFixture(t)
		itemID := f.listedItem(t, 5)
		reqID := f.createRequest(t, f.distributor, itemID, 1)
		other := actor.New(uuid.New(), []actor.Role{actor.RoleSupplier}, location.Location{})

		_, err := f.requests.Approve(f.ctx, other, reqID)
		assert.ErrorIs(t, err, request.ErrNotItemOwner)
	})

	t.Run("error: unknown request", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.requests.Approve(f.ctx, f.supplier, uuid.New())
		assert.ErrorIs(t, err, request.ErrRequestNotFound)
	})
}

func TestRequestCommands_ConcurrentApprovalsNeverOverdraw(t *testing.T) {
	f := newFixture(t)
	itemID := f.listedItem(t, 10)

	reqIDs := make([]uuid.UUID, 8)
	for i := range reqIDs {
		reqIDs[i] = f.createRequest(t, newDistributor(), itemID, 3)
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		approved  int
		conflicts int
	)
	for _, id := range reqIDs {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			_, err := f.requests.Approve(f.ctx, f.supplier, id)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				approved++
			case errs.Kind(err) == "state_conflict":
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(id)
	}
	wg.Wait()

	assert.Equal(t, 3, approved)
	assert.Equal(t, 5, conflicts)

	item := f.item(t, itemID)
	assert.True(t, qty(1).Equal(item.Quantity()))
	assert.Equal(t, inventory.StatusListing, item.Status())
}

func TestRequestCommands_Ignore(t *testing.T) {
	t.Run("success: item quantity and version are unchanged", func(t *testing.T) {
		f := newFixture(t)
		itemID := f.listedItem(t, 10)
		reqID := f.createRequest(t, f.distributor, itemID, 4)
		before := f.item(t, itemID)

		res, err := f.requests.Ignore(f.ctx, f.supplier, reqID)
		require.NoError(t, err)
		assert.Equal(t, request.StatusIgnored, res.Status)
		assert.True(t, qty(10).Equal(res.RemainingQuantity))

		after := f.item(t, itemID)
		assert.Equal(t, before.Version(), after.Version())
		assert.True(t, before.Quantity().Equal(after.Quantity()))

		_, err = f.requests.Approve(f.ctx, f.supplier, reqID)
		assert.ErrorIs(t, err, request.ErrAlreadyResolved)
	})

	t.Run("error: only the item owner ignores", func(t *testing.T) {
		f := newFixture(t)
		itemID := f.listedItem(t, 10)
		reqID := f.createRequest(t, f.distributor, itemID, 4)
		other := actor.New(uuid.New(), []actor.Role{actor.RoleSupplier}, location.Location{})

		_, err := f.requests.Ignore(f.ctx, other, reqID)
		assert.ErrorIs(t, err, request.ErrNotItemOwner)
	})
}

func TestRequestCommands_Cancel(t *testing.T) {
	f := newFixture(t)
	itemID := f.listedItem(t, 10)
	reqID := f.createRequest(t, f.distributor, itemID, 4)

	_, err := f.requests.Cancel(f.ctx, newDistributor(), reqID)
	assert.ErrorIs(t, err, request.ErrNotRequester)

	res, err := f.requests.Cancel(f.ctx, f.distributor, reqID)
	require.NoError(t, err)
	assert.Equal(t, request.StatusIgnored, res.Status)

	// the item can be removed once nothing is pending
	require.NoError(t, f.inventory.RemoveItem(f.ctx, f.supplier, itemID))
}

func TestRequestCommands_AutoIgnorePendingFor(t *testing.T) {
	f := newFixture(t)
	itemID := f.listedItem(t, 10)
	pending := f.createRequest(t, f.distributor, itemID, 2)
	approved := f.createRequest(t, newDistributor(), itemID, 2)
	_, err := f.requests.Approve(f.ctx, f.supplier, approved)
	require.NoError(t, err)

	n, err := f.requests.AutoIgnorePendingFor(f.ctx, itemID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, request.StatusIgnored, f.request(t, pending).Status())
	assert.Equal(t, request.StatusApproved, f.request(t, approved).Status())
}
