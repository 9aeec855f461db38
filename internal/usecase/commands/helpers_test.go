//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"foodbridge/internal/domain/actor"
	"foodbridge/internal/domain/inventory"
	"foodbridge/internal/domain/location"
	"foodbridge/internal/domain/request"
	"foodbridge/internal/infra/memstore"
	"foodbridge/internal/pkg/clock"
	"foodbridge/internal/usecase/commands"
	"foodbridge/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

const nearThreshold = 48 * time.Hour

type recordingPublisher struct {
	mu     sync.Mutex
	alerts []shared.SupplierAlert
}

func (p *recordingPublisher) Publish(_ context.Context, alert shared.SupplierAlert) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.alerts = append(p.alerts, alert)
	return nil
}

func (p *recordingPublisher) ofType(t shared.AlertType) []shared.SupplierAlert {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []shared.SupplierAlert
	for _, a := range p.alerts {
		if a.Type == t {
			out = append(out, a)
		}
	}
	return out
}

type fixture struct {
	ctx           context.Context
	store         *memstore.Store
	clock         *clock.MockClock
	publisher     *recordingPublisher
	inventory     commands.InventoryCommands
	requests      commands.RequestCommands
	notifications commands.NotificationCommands
	watcher       commands.ExpiryWatcher

	supplier    actor.Actor
	distributor actor.Actor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	clk := clock.NewMockClock(baseTime)
	store := memstore.New(clk)
	pub := &recordingPublisher{}
	notifications := commands.NewNotificationCommands(store, clk, pub, nearThreshold)
	region := location.Reconstruct("Pune", "411001")

	return &fixture{
		ctx:           context.Background(),
		store:         store,
		clock:         clk,
		publisher:     pub,
		inventory:     commands.NewInventoryCommands(store, clk),
		requests:      commands.NewRequestCommands(store, clk),
		notifications: notifications,
		watcher:       commands.NewExpiryWatcher(store, clk, notifications, pub, nearThreshold),
		supplier:      actor.New(uuid.New(), []actor.Role{actor.RoleSupplier}, region),
		distributor:   actor.New(uuid.New(), []actor.Role{actor.RoleDistributor}, region),
	}
}

func newDistributor() actor.Actor {
	return actor.New(uuid.New(), []actor.Role{actor.RoleDistributor}, location.Location{})
}

func qty(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func (f *fixture) addItem(t *testing.T, req commands.AddItemRequest) uuid.UUID {
	t.Helper()
	if req.Name == "" {
		req.Name = "Tomatoes"
	}
	change, err := f.inventory.AddItem(f.ctx, f.supplier, req)
	require.NoError(t, err)
	return change.ItemID
}

// listedItem adds an item of the given quantity and lists it.
func (f *fixture) listedItem(t *testing.T, amount int64) uuid.UUID {
	t.Helper()
	id := f.addItem(t, commands.AddItemRequest{Quantity: qty(amount)})
	_, err := f.inventory.ListItem(f.ctx, f.supplier, id)
	require.NoError(t, err)
	return id
}

func (f *fixture) createRequest(t *testing.T, by actor.Actor, itemID uuid.UUID, amount int64) uuid.UUID {
	t.Helper()
	created, err := f.requests.CreateRequest(f.ctx, by, commands.CreateFoodRequest{ItemID: itemID, Quantity: qty(amount)})
	require.NoError(t, err)
	return created.RequestID
}

func (f *fixture) item(t *testing.T, id uuid.UUID) *inventory.Item {
	t.Helper()
	var item *inventory.Item
	err := f.store.Within(f.ctx, func(ctx context.Context, tx shared.Tx) error {
		var gerr error
		item, gerr = tx.Inventory().Get(ctx, id)
		return gerr
	})
	require.NoError(t, err)
	return item
}

func (f *fixture) itemExists(id uuid.UUID) bool {
	err := f.store.Within(f.ctx, func(ctx context.Context, tx shared.Tx) error {
		_, gerr := tx.Inventory().Get(ctx, id)
		return gerr
	})
	return err == nil
}

func (f *fixture) request(t *testing.T, id uuid.UUID) *request.FoodRequest {
	t.Helper()
	var fr *request.FoodRequest
	err := f.store.Within(f.ctx, func(ctx context.Context, tx shared.Tx) error {
		var gerr error
		fr, gerr = tx.Requests().Get(ctx, id)
		return gerr
	})
	require.NoError(t, err)
	return fr
}
