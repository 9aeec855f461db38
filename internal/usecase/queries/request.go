package queries

import (
	"context"

	"foodbridge/internal/domain/actor"
	"foodbridge/internal/domain/request"
)

type RequestQueries interface {
	ListMine(ctx context.Context, a actor.Actor, cursor *Cursor, limit int) ([]*RequestView, *Cursor, error)
	ListIncoming(ctx context.Context, a actor.Actor, status *request.Status, cursor *Cursor, limit int) ([]*RequestView, *Cursor, error)
}

type requestQueriesImpl struct {
	store RequestReadStore
}

func NewRequestQueries(store RequestReadStore) RequestQueries {
	return &requestQueriesImpl{store: store}
}

func (q *requestQueriesImpl) ListMine(ctx context.Context, a actor.Actor, cursor *Cursor, limit int) ([]*RequestView, *Cursor, error) {
	if err := a.Require(actor.RoleDistributor); err != nil {
		return nil, nil, err
	}
	after, err := decodeCursor(cursor)
	if err != nil {
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	rows, err := q.store.ListByRequester(ctx, a.ID, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	rows, next := paginate(rows, limit)
	return rows, next, nil
}

// ListIncoming is scoped to requests on items the supplier owns.
func (q *requestQueriesImpl) ListIncoming(ctx context.Context, a actor.Actor, status *request.Status, cursor *Cursor, limit int) ([]*RequestView, *Cursor, error) {
	if err := a.Require(actor.RoleSupplier); err != nil {
		return nil, nil, err
	}
	after, err := decodeCursor(cursor)
	if err != nil {
		return nil, nil, err
	}

	var statusFilter *string
	if status != nil {
		s := status.String()
		statusFilter = &s
	}

	limit = ValidateLimit(limit)
	rows, err := q.store.ListBySupplier(ctx, a.ID, statusFilter, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	rows, next := paginate(rows, limit)
	return rows, next, nil
}

func decodeCursor(c *Cursor) (*PageKey, error) {
	if c == nil {
		return nil, nil
	}
	return DecodeAfterCursor(c.After)
}
