package commands

import (
	"context"
	"time"

	"foodbridge/internal/domain/actor"
	"foodbridge/internal/domain/inventory"
	"foodbridge/internal/domain/location"
	"foodbridge/internal/pkg/clock"
	"foodbridge/internal/pkg/patch"
	"foodbridge/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AddItemRequest struct {
	Name         string
	Quantity     decimal.Decimal
	BestBeforeAt *time.Time
	ExpiresAt    *time.Time
	City         *string
	Pincode      *string
}

type InventoryCommands interface {
	AddItem(ctx context.Context, a actor.Actor, req AddItemRequest) (*ItemChange, error)
	SellItem(ctx context.Context, a actor.Actor, itemID uuid.UUID, qty decimal.Decimal) (*ItemChange, error)
	ListItem(ctx context.Context, a actor.Actor, itemID uuid.UUID) (*ItemChange, error)
	RemoveItem(ctx context.Context, a actor.Actor, itemID uuid.UUID) error
}

type inventoryCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewInventoryCommands(uow shared.UnitOfWork, clk clock.Clock) InventoryCommands {
	return &inventoryCommandsImpl{uow: uow, clock: clk}
}

func (uc *inventoryCommandsImpl) AddItem(ctx context.Context, a actor.Actor, req AddItemRequest) (*ItemChange, error) {
	if err := a.Require(actor.RoleSupplier); err != nil {
		return nil, err
	}
	name, err := inventory.NewName(req.Name)
	if err != nil {
		return nil, err
	}
	qty, err := inventory.NewQuantity(req.Quantity)
	if err != nil {
		return nil, err
	}
	loc, err := resolveLocation(a, req.City, req.Pincode)
	if err != nil {
		return nil, err
	}

	item, err := inventory.NewItem(inventory.NewItemParams{
		OwnerID:      a.ID,
		Name:         name,
		Quantity:     qty,
		BestBeforeAt: req.BestBeforeAt,
		ExpiresAt:    req.ExpiresAt,
		Location:     loc,
	}, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, cerr := tx.Inventory().Create(ctx, item)
		return cerr
	})
	if err != nil {
		return nil, err
	}
	return itemChangeFrom(item), nil
}

// resolveLocation falls back to the supplier's own region when the request names none.
func resolveLocation(a actor.Actor, city, pincode *string) (location.Location, error) {
	if city == nil && pincode == nil {
		return a.Region, nil
	}
	return location.NewLocation(patch.Coalesce(city, ""), patch.Coalesce(pincode, ""))
}

func (uc *inventoryCommandsImpl) SellItem(ctx context.Context, a actor.Actor, itemID uuid.UUID, qtyValue decimal.Decimal) (*ItemChange, error) {
	if err := a.Require(actor.RoleSupplier); err != nil {
		return nil, err
	}
	qty, err := inventory.NewQuantity(qtyValue)
	if err != nil {
		return nil, err
	}

	var change *ItemChange
	err = reevaluateOnConflict(ctx, "sell item", func() error {
		return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			item, gerr := ownedItem(ctx, tx, a, itemID)
			if gerr != nil {
				return gerr
			}

			updated, uerr := tx.Inventory().CompareAndUpdate(ctx, itemID, item.Version(), func(it *inventory.Item) error {
				return it.Sell(qty)
			})
			if uerr != nil {
				return uerr
			}
			change = itemChangeFrom(updated)

			if !updated.IsDepleted() {
				return nil
			}
			pending, cerr := tx.Requests().CountPendingForItem(ctx, itemID)
			if cerr != nil {
				return cerr
			}
			if pending > 0 {
				return nil
			}
			if rerr := tx.Inventory().Remove(ctx, itemID, updated.Version()); rerr != nil {
				return rerr
			}
			change.Removed = true
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return change, nil
}

func (uc *inventoryCommandsImpl) ListItem(ctx context.Context, a actor.Actor, itemID uuid.UUID) (*ItemChange, error) {
	if err := a.Require(actor.RoleSupplier); err != nil {
		return nil, err
	}

	var change *ItemChange
	err := reevaluateOnConflict(ctx, "list item", func() error {
		return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			item, gerr := ownedItem(ctx, tx, a, itemID)
			if gerr != nil {
				return gerr
			}

			updated, uerr := tx.Inventory().CompareAndUpdate(ctx, itemID, item.Version(), func(it *inventory.Item) error {
				return it.List()
			})
			if uerr != nil {
				return uerr
			}
			if _, serr := supersedeNotifications(ctx, tx, itemID, uc.clock.Now()); serr != nil {
				return serr
			}
			change = itemChangeFrom(updated)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return change, nil
}

func (uc *inventoryCommandsImpl) RemoveItem(ctx context.Context, a actor.Actor, itemID uuid.UUID) error {
	if err := a.Require(actor.RoleSupplier); err != nil {
		return err
	}

	return reevaluateOnConflict(ctx, "remove item", func() error {
		return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			item, gerr := ownedItem(ctx, tx, a, itemID)
			if gerr != nil {
				return gerr
			}

			pending, cerr := tx.Requests().CountPendingForItem(ctx, itemID)
			if cerr != nil {
				return cerr
			}
			if pending > 0 {
				return inventory.ErrPendingRequests
			}
			if _, serr := supersedeNotifications(ctx, tx, itemID, uc.clock.Now()); serr != nil {
				return serr
			}
			return tx.Inventory().Remove(ctx, itemID, item.Version())
		})
	})
}

func ownedItem(ctx context.Context, tx shared.Tx, a actor.Actor, itemID uuid.UUID) (*inventory.Item, error) {
	item, err := tx.Inventory().Get(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.IsOwnedBy(a.ID) {
		return nil, inventory.ErrNotOwner
	}
	return item, nil
}
