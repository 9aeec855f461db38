// Package memstore is the in-memory storage driver. Write transactions are
// serialized and staged in an overlay that is applied only when fn succeeds.
package memstore

import (
	"context"
	"sync"

	"foodbridge/internal/domain/inventory"
	"foodbridge/internal/domain/notification"
	"foodbridge/internal/domain/request"
	"foodbridge/internal/pkg/clock"
	"foodbridge/internal/usecase/shared"

	"github.com/google/uuid"
)

type Store struct {
	writeMu sync.Mutex
	mu      sync.RWMutex
	clock   clock.Clock

	items         map[uuid.UUID]*inventory.Item
	requests      map[uuid.UUID]*request.FoodRequest
	notifications map[uuid.UUID]*notification.Notification
}

var _ shared.UnitOfWork = (*Store)(nil)

func New(clk clock.Clock) *Store {
	return &Store{
		clock:         clk,
		items:         make(map[uuid.UUID]*inventory.Item),
		requests:      make(map[uuid.UUID]*request.FoodRequest),
		notifications: make(map[uuid.UUID]*notification.Notification),
	}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	tx := newMemTx(s)
	if err := fn(ctx, tx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	tx.apply()
	return nil
}

// memTx holds staged writes; a nil map value marks a deletion.
type memTx struct {
	s *Store

	items         map[uuid.UUID]*inventory.Item
	requests      map[uuid.UUID]*request.FoodRequest
	notifications map[uuid.UUID]*notification.Notification
}

func newMemTx(s *Store) *memTx {
	return &memTx{
		s:             s,
		items:         make(map[uuid.UUID]*inventory.Item),
		requests:      make(map[uuid.UUID]*request.FoodRequest),
		notifications: make(map[uuid.UUID]*notification.Notification),
	}
}

func (t *memTx) Inventory() shared.InventoryStore             { return (*inventoryTx)(t) }
func (t *memTx) Requests() shared.RequestRepository           { return (*requestTx)(t) }
func (t *memTx) Notifications() shared.NotificationRepository { return (*notificationTx)(t) }

func (t *memTx) apply() {
	applyOverlay(t.s.items, t.items)
	applyOverlay(t.s.requests, t.requests)
	applyOverlay(t.s.notifications, t.notifications)
}

func applyOverlay[V any](base, overlay map[uuid.UUID]*V) {
	for id, v := range overlay {
		if v == nil {
			delete(base, id)
			continue
		}
		base[id] = v
	}
}

// lookup resolves id against the overlay first, then committed state.
func lookup[V any](s *Store, base, overlay map[uuid.UUID]*V, id uuid.UUID) (*V, bool) {
	if v, staged := overlay[id]; staged {
		return v, v != nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := base[id]
	return v, ok
}

// merged returns the transaction's view of every live row.
func merged[V any](s *Store, base, overlay map[uuid.UUID]*V) []*V {
	s.mu.RLock()
	out := make([]*V, 0, len(base)+len(overlay))
	for id, v := range base {
		if _, staged := overlay[id]; staged {
			continue
		}
		out = append(out, v)
	}
	s.mu.RUnlock()

	for _, v := range overlay {
		if v != nil {
			out = append(out, v)
		}
	}
	return out
}
