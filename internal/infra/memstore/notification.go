package memstore

import (
	"context"
	"time"

	"foodbridge/internal/domain/notification"

	"github.com/google/uuid"
)

type notificationTx memTx

func (t *notificationTx) Get(_ context.Context, id uuid.UUID) (*notification.Notification, error) {
	n, ok := lookup(t.s, t.s.notifications, t.notifications, id)
	if !ok {
		return nil, notification.ErrNotificationNotFound
	}
	return n.Clone(), nil
}

func (t *notificationTx) CreateIfAbsent(_ context.Context, n *notification.Notification) (*notification.Notification, bool, error) {
	for _, existing := range merged(t.s, t.s.notifications, t.notifications) {
		if existing.ItemID() == n.ItemID() && !existing.Acknowledged() {
			return existing.Clone(), false, nil
		}
	}
	t.notifications[n.ID()] = n.Clone()
	return n.Clone(), true, nil
}

func (t *notificationTx) Acknowledge(_ context.Context, n *notification.Notification) error {
	stored, ok := lookup(t.s, t.s.notifications, t.notifications, n.ID())
	if !ok {
		return notification.ErrNotificationNotFound
	}
	if stored.Version() != n.Version() || stored.Acknowledged() {
		return notification.ErrAcknowledgeConflicted
	}
	t.notifications[n.ID()] = bumped(n)
	return nil
}

func (t *notificationTx) SupersedeForItem(_ context.Context, itemID uuid.UUID, now time.Time) (int64, error) {
	var count int64
	for _, n := range merged(t.s, t.s.notifications, t.notifications) {
		if n.ItemID() != itemID || n.Acknowledged() {
			continue
		}
		c := n.Clone()
		c.Acknowledge(now)
		t.notifications[c.ID()] = bumped(c)
		count++
	}
	return count, nil
}

func (t *notificationTx) ExistsForItem(_ context.Context, itemID uuid.UUID, kind notification.Kind) (bool, error) {
	for _, n := range merged(t.s, t.s.notifications, t.notifications) {
		if n.ItemID() == itemID && n.Kind() == kind {
			return true, nil
		}
	}
	return false, nil
}

func bumped(n *notification.Notification) *notification.Notification {
	return notification.Reconstruct(
		n.ID(), n.ItemID(), n.OwnerID(), n.Kind(), n.Message(),
		n.TriggeredAt(), n.AcknowledgedAt(), n.Version()+1,
	)
}
