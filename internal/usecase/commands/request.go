package commands

import (
	"context"
	"time"

	"foodbridge/internal/domain/actor"
	"foodbridge/internal/domain/inventory"
	"foodbridge/internal/domain/request"
	"foodbridge/internal/pkg/clock"
	"foodbridge/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateFoodRequest struct {
	ItemID     uuid.UUID
	Quantity   decimal.Decimal
	PickupDate *time.Time
	Notes      string
}

type RequestCreated struct {
	RequestID uuid.UUID
	ItemID    uuid.UUID
	Status    request.Status
	CreatedAt time.Time
}

type RequestResolution struct {
	RequestID         uuid.UUID
	ItemID            uuid.UUID
	Status            request.Status
	RemainingQuantity decimal.Decimal
	ItemStatus        inventory.Status
	ResolvedAt        time.Time
}

type RequestCommands interface {
	CreateRequest(ctx context.Context, a actor.Actor, req CreateFoodRequest) (*RequestCreated, error)
	Approve(ctx context.Context, a actor.Actor, requestID uuid.UUID) (*RequestResolution, error)
	Ignore(ctx context.Context, a actor.Actor, requestID uuid.UUID) (*RequestResolution, error)
	Cancel(ctx context.Context, a actor.Actor, requestID uuid.UUID) (*RequestResolution, error)
	AutoIgnorePendingFor(ctx context.Context, itemID uuid.UUID) (int64, error)
}

type requestCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRequestCommands(uow shared.UnitOfWork, clk clock.Clock) RequestCommands {
	return &requestCommandsImpl{uow: uow, clock: clk}
}

func (uc *requestCommandsImpl) CreateRequest(ctx context.Context, a actor.Actor, req CreateFoodRequest) (*RequestCreated, error) {
	if err := a.Require(actor.RoleDistributor); err != nil {
		return nil, err
	}
	qty, err := inventory.NewQuantity(req.Quantity)
	if err != nil {
		return nil, err
	}
	notes, err := request.NewNotes(req.Notes)
	if err != nil {
		return nil, err
	}

	var created *request.FoodRequest
	err = reevaluateOnConflict(ctx, "create request", func() error {
		return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			item, gerr := tx.Inventory().Get(ctx, req.ItemID)
			if gerr != nil {
				return gerr
			}

			now := uc.clock.Now()
			fr, nerr := request.NewFoodRequest(request.NewParams{
				RequesterID: a.ID,
				Item:        item,
				Quantity:    qty,
				PickupDate:  req.PickupDate,
				Notes:       notes,
			}, now)
			if nerr != nil {
				return nerr
			}

			// Touching the item serializes creation against concurrent approvals and retirement.
			if _, uerr := tx.Inventory().CompareAndUpdate(ctx, item.ID(), item.Version(), func(it *inventory.Item) error {
				return it.EnsureRequestable(qty)
			}); uerr != nil {
				return uerr
			}
			if cerr := tx.Requests().Create(ctx, fr); cerr != nil {
				return cerr
			}
			created = fr
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return &RequestCreated{
		RequestID: created.ID(),
		ItemID:    created.ItemID(),
		Status:    created.Status(),
		CreatedAt: created.CreatedAt(),
	}, nil
}

// Approve allocates the requested quantity and resolves the request in one transaction.
// Concurrent approvals on the same item are serialized by the item version, so the
// total allocated never exceeds what the item held.
func (uc *requestCommandsImpl) Approve(ctx context.Context, a actor.Actor, requestID uuid.UUID) (*RequestResolution, error) {
	if err := a.Require(actor.RoleSupplier); err != nil {
		return nil, err
	}

	var res *RequestResolution
	err := reevaluateOnConflict(ctx, "approve request", func() error {
		return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			fr, gerr := tx.Requests().Get(ctx, requestID)
			if gerr != nil {
				return gerr
			}
			if fr.SupplierID() != a.ID {
				return request.ErrNotItemOwner
			}
			if !fr.IsPending() {
				return request.ErrAlreadyResolved
			}

			item, ierr := tx.Inventory().Get(ctx, fr.ItemID())
			if ierr != nil {
				return ierr
			}
			updated, uerr := tx.Inventory().CompareAndUpdate(ctx, item.ID(), item.Version(), func(it *inventory.Item) error {
				return it.Allocate(fr.AllocationQuantity())
			})
			if uerr != nil {
				return uerr
			}

			now := uc.clock.Now()
			if aerr := fr.Approve(now); aerr != nil {
				return aerr
			}
			if rerr := tx.Requests().Resolve(ctx, fr); rerr != nil {
				return rerr
			}

			res = &RequestResolution{
				RequestID:         fr.ID(),
				ItemID:            updated.ID(),
				Status:            fr.Status(),
				RemainingQuantity: updated.Quantity(),
				ItemStatus:        updated.Status(),
				ResolvedAt:        now,
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Ignore declines a pending request. The item is left untouched.
func (uc *requestCommandsImpl) Ignore(ctx context.Context, a actor.Actor, requestID uuid.UUID) (*RequestResolution, error) {
	if err := a.Require(actor.RoleSupplier); err != nil {
		return nil, err
	}
	return uc.ignore(ctx, requestID, func(fr *request.FoodRequest) error {
		if fr.SupplierID() != a.ID {
			return request.ErrNotItemOwner
		}
		return nil
	})
}

// Cancel lets the distributor withdraw their own pending request.
func (uc *requestCommandsImpl) Cancel(ctx context.Context, a actor.Actor, requestID uuid.UUID) (*RequestResolution, error) {
	if err := a.Require(actor.RoleDistributor); err != nil {
		return nil, err
	}
	return uc.ignore(ctx, requestID, func(fr *request.FoodRequest) error {
		if fr.RequesterID() != a.ID {
			return request.ErrNotRequester
		}
		return nil
	})
}

func (uc *requestCommandsImpl) ignore(ctx context.Context, requestID uuid.UUID, authorize func(*request.FoodRequest) error) (*RequestResolution, error) {
	var res *RequestResolution
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		fr, gerr := tx.Requests().Get(ctx, requestID)
		if gerr != nil {
			return gerr
		}
		if aerr := authorize(fr); aerr != nil {
			return aerr
		}

		now := uc.clock.Now()
		if ierr := fr.Ignore(now); ierr != nil {
			return ierr
		}
		if rerr := tx.Requests().Resolve(ctx, fr); rerr != nil {
			return rerr
		}

		res = &RequestResolution{
			RequestID:  fr.ID(),
			ItemID:     fr.ItemID(),
			Status:     fr.Status(),
			ResolvedAt: now,
		}
		if item, ierr := tx.Inventory().Get(ctx, fr.ItemID()); ierr == nil {
			res.RemainingQuantity = item.Quantity()
			res.ItemStatus = item.Status()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (uc *requestCommandsImpl) AutoIgnorePendingFor(ctx context.Context, itemID uuid.UUID) (int64, error) {
	var ignored int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, ierr := autoIgnorePending(ctx, tx, itemID, uc.clock.Now())
		ignored = n
		return ierr
	})
	if err != nil {
		return 0, err
	}
	return ignored, nil
}
