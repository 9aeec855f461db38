package memstore

import (
	"context"
	"time"

	"foodbridge/internal/domain/request"
	"foodbridge/internal/infra"

	"github.com/google/uuid"
)

type requestTx memTx

func (t *requestTx) Get(_ context.Context, id uuid.UUID) (*request.FoodRequest, error) {
	r, ok := lookup(t.s, t.s.requests, t.requests, id)
	if !ok {
		return nil, request.ErrRequestNotFound
	}
	return r.Clone(), nil
}

func (t *requestTx) Create(_ context.Context, req *request.FoodRequest) error {
	if _, exists := lookup(t.s, t.s.requests, t.requests, req.ID()); exists {
		return infra.WrapRepoErr("food request already exists", nil, infra.KindDuplicateKey)
	}
	t.requests[req.ID()] = req.Clone()
	return nil
}

func (t *requestTx) Resolve(_ context.Context, req *request.FoodRequest) error {
	stored, ok := lookup(t.s, t.s.requests, t.requests, req.ID())
	if !ok {
		return request.ErrRequestNotFound
	}
	if !stored.IsPending() {
		return request.ErrAlreadyResolved
	}
	t.requests[req.ID()] = req.Clone()
	return nil
}

func (t *requestTx) IgnorePendingForItem(_ context.Context, itemID uuid.UUID, now time.Time) (int64, error) {
	var n int64
	for _, r := range merged(t.s, t.s.requests, t.requests) {
		if r.ItemID() != itemID || !r.IsPending() {
			continue
		}
		c := r.Clone()
		if err := c.Ignore(now); err != nil {
			return n, err
		}
		t.requests[c.ID()] = c
		n++
	}
	return n, nil
}

func (t *requestTx) CountPendingForItem(_ context.Context, itemID uuid.UUID) (int64, error) {
	var n int64
	for _, r := range merged(t.s, t.s.requests, t.requests) {
		if r.ItemID() == itemID && r.IsPending() {
			n++
		}
	}
	return n, nil
}
