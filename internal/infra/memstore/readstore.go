package memstore

import (
	"context"
	"slices"
	"strings"
	"time"

	"foodbridge/internal/domain/forecast"
	"foodbridge/internal/domain/inventory"
	"foodbridge/internal/domain/location"
	"foodbridge/internal/domain/request"
	"foodbridge/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	_ queries.InventoryReadStore     = (*Store)(nil)
	_ queries.RequestReadStore       = (*Store)(nil)
	_ queries.NotificationReadStore  = (*Store)(nil)
	_ queries.DemandHistoryReadStore = (*Store)(nil)
)

func (s *Store) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*queries.ItemView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []*inventory.Item
	for _, it := range s.items {
		if it.OwnerID() == ownerID {
			items = append(items, it)
		}
	}
	slices.SortFunc(items, func(a, b *inventory.Item) int {
		return newestFirst(a.CreatedAt(), a.ID(), b.CreatedAt(), b.ID())
	})
	return toItemViews(items), nil
}

func (s *Store) ListAvailable(_ context.Context, filter location.Filter) ([]*queries.ItemView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []*inventory.Item
	for _, it := range s.items {
		if it.Status() != inventory.StatusListing || !it.Quantity().IsPositive() {
			continue
		}
		if !filter.Matches(it.Location()) {
			continue
		}
		items = append(items, it)
	}
	slices.SortFunc(items, func(a, b *inventory.Item) int {
		if c := compareNullsLast(a.BestBeforeAt(), b.BestBeforeAt()); c != 0 {
			return c
		}
		return b.CreatedAt().Compare(a.CreatedAt())
	})
	return toItemViews(items), nil
}

func (s *Store) ListByRequester(_ context.Context, requesterID uuid.UUID, after *queries.PageKey, limit int32) ([]*queries.RequestView, error) {
	return s.pageRequests(func(r *request.FoodRequest) bool {
		return r.RequesterID() == requesterID
	}, after, limit), nil
}

func (s *Store) ListBySupplier(_ context.Context, supplierID uuid.UUID, status *string, after *queries.PageKey, limit int32) ([]*queries.RequestView, error) {
	return s.pageRequests(func(r *request.FoodRequest) bool {
		if r.SupplierID() != supplierID {
			return false
		}
		return status == nil || r.Status().String() == *status
	}, after, limit), nil
}

func (s *Store) pageRequests(match func(*request.FoodRequest) bool, after *queries.PageKey, limit int32) []*queries.RequestView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var reqs []*request.FoodRequest
	for _, r := range s.requests {
		if match(r) && before(r.CreatedAt(), r.ID(), after) {
			reqs = append(reqs, r)
		}
	}
	slices.SortFunc(reqs, func(a, b *request.FoodRequest) int {
		return newestFirst(a.CreatedAt(), a.ID(), b.CreatedAt(), b.ID())
	})
	if limit > 0 && len(reqs) > int(limit) {
		reqs = reqs[:limit]
	}

	result := make([]*queries.RequestView, len(reqs))
	for i, r := range reqs {
		result[i] = &queries.RequestView{
			ID:          r.ID(),
			RequesterID: r.RequesterID(),
			SupplierID:  r.SupplierID(),
			ItemID:      r.ItemID(),
			ItemName:    r.ItemName(),
			Quantity:    r.Quantity(),
			PickupDate:  r.PickupDate(),
			Notes:       r.Notes(),
			Status:      r.Status().String(),
			City:        r.Location().City(),
			Pincode:     r.Location().Pincode(),
			CreatedAt:   r.CreatedAt(),
			ResolvedAt:  r.ResolvedAt(),
		}
	}
	return result
}

func (s *Store) ListUnacknowledgedByOwner(_ context.Context, ownerID uuid.UUID) ([]*queries.NotificationView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*queries.NotificationView
	for _, n := range s.notifications {
		if n.OwnerID() != ownerID || n.Acknowledged() {
			continue
		}
		var name string
		if it, ok := s.items[n.ItemID()]; ok {
			name = it.Name()
		}
		result = append(result, &queries.NotificationView{
			ID:          n.ID(),
			ItemID:      n.ItemID(),
			ItemName:    name,
			Kind:        string(n.Kind()),
			Message:     n.Message(),
			TriggeredAt: n.TriggeredAt(),
		})
	}
	slices.SortFunc(result, func(a, b *queries.NotificationView) int {
		if c := b.TriggeredAt.Compare(a.TriggeredAt); c != 0 {
			return c
		}
		return compareID(a.ID, b.ID)
	})
	return result, nil
}

func (s *Store) AggregateDemand(_ context.Context, since time.Time, filter location.Filter) ([]forecast.DemandSample, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byName := make(map[string]*forecast.DemandSample)
	for _, r := range s.requests {
		if r.CreatedAt().Before(since) {
			continue
		}
		if r.Status() != request.StatusPending && r.Status() != request.StatusApproved {
			continue
		}
		if !filter.Matches(r.Location()) {
			continue
		}
		sample, ok := byName[r.ItemName()]
		if !ok {
			sample = &forecast.DemandSample{ItemName: r.ItemName(), TotalRequestedQuantity: decimal.Zero}
			byName[r.ItemName()] = sample
		}
		sample.TotalRequestedQuantity = sample.TotalRequestedQuantity.Add(r.Quantity())
		sample.RequestCount++
	}

	result := make([]forecast.DemandSample, 0, len(byName))
	for _, sample := range byName {
		result = append(result, *sample)
	}
	slices.SortFunc(result, func(a, b forecast.DemandSample) int {
		if c := b.TotalRequestedQuantity.Cmp(a.TotalRequestedQuantity); c != 0 {
			return c
		}
		return strings.Compare(a.ItemName, b.ItemName)
	})
	return result, nil
}

func toItemViews(items []*inventory.Item) []*queries.ItemView {
	result := make([]*queries.ItemView, len(items))
	for i, it := range items {
		result[i] = &queries.ItemView{
			ID:           it.ID(),
			OwnerID:      it.OwnerID(),
			Name:         it.Name(),
			Quantity:     it.Quantity(),
			BestBeforeAt: it.BestBeforeAt(),
			ExpiresAt:    it.ExpiresAt(),
			Status:       it.Status().String(),
			City:         it.Location().City(),
			Pincode:      it.Location().Pincode(),
			Version:      it.Version(),
			CreatedAt:    it.CreatedAt(),
			UpdatedAt:    it.UpdatedAt(),
		}
	}
	return result
}
