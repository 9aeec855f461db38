package queries

import (
	"context"

	"foodbridge/internal/domain/actor"
)

type NotificationQueries interface {
	// ListFor returns unacknowledged notifications only.
	ListFor(ctx context.Context, a actor.Actor) ([]*NotificationView, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) ListFor(ctx context.Context, a actor.Actor) ([]*NotificationView, error) {
	if err := a.Require(actor.RoleSupplier); err != nil {
		return nil, err
	}
	return q.store.ListUnacknowledgedByOwner(ctx, a.ID)
}
