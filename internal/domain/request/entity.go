package request

import (
	"time"

	"foodbridge/internal/domain/inventory"
	"foodbridge/internal/domain/location"
	"foodbridge/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStatus   = errs.Sentinel(errs.ErrValidation, "invalid request status")
	ErrNotesTooLong    = errs.Sentinel(errs.ErrValidation, "notes exceed maximum length")
	ErrPickupInPast    = errs.Sentinel(errs.ErrValidation, "pickup date cannot be in the past")
	ErrRequestNotFound = errs.Sentinel(errs.ErrNotFound, "food request not found")
	ErrNotItemOwner    = errs.Sentinel(errs.ErrUnauthorized, "request does not target an item owned by actor")
	ErrNotRequester    = errs.Sentinel(errs.ErrUnauthorized, "request was not created by actor")
	ErrAlreadyResolved = errs.Sentinel(errs.ErrStateConflict, "request already resolved")
)

// FoodRequest is a distributor's claim on part of a listed item. The item's
// owner, name and location are captured at creation so history survives the item.
type FoodRequest struct {
	id          uuid.UUID
	requesterID uuid.UUID
	supplierID  uuid.UUID
	itemID      uuid.UUID
	itemName    string
	location    location.Location
	quantity    decimal.Decimal
	pickupDate  *time.Time
	notes       Notes
	status      Status
	version     int64
	createdAt   time.Time
	resolvedAt  *time.Time
}

type NewParams struct {
	RequesterID uuid.UUID
	Item        *inventory.Item
	Quantity    inventory.Quantity
	PickupDate  *time.Time
	Notes       Notes
}

func NewFoodRequest(p NewParams, now time.Time) (*FoodRequest, error) {
	if p.PickupDate != nil && p.PickupDate.Before(now) {
		return nil, ErrPickupInPast
	}
	if err := p.Item.EnsureRequestable(p.Quantity); err != nil {
		return nil, err
	}

	return &FoodRequest{
		id:          uuid.New(),
		requesterID: p.RequesterID,
		supplierID:  p.Item.OwnerID(),
		itemID:      p.Item.ID(),
		itemName:    p.Item.Name(),
		location:    p.Item.Location(),
		quantity:    p.Quantity.Decimal(),
		pickupDate:  p.PickupDate,
		notes:       p.Notes,
		status:      StatusPending,
		version:     1,
		createdAt:   now,
	}, nil
}

func ReconstructFoodRequest(
	id, requesterID, supplierID, itemID uuid.UUID,
	itemName string,
	loc location.Location,
	quantity decimal.Decimal,
	pickupDate *time.Time,
	notes string,
	status Status,
	version int64,
	createdAt time.Time,
	resolvedAt *time.Time,
) *FoodRequest {
	return &FoodRequest{
		id:          id,
		requesterID: requesterID,
		supplierID:  supplierID,
		itemID:      itemID,
		itemName:    itemName,
		location:    loc,
		quantity:    quantity,
		pickupDate:  pickupDate,
		notes:       Notes{text: notes},
		status:      status,
		version:     version,
		createdAt:   createdAt,
		resolvedAt:  resolvedAt,
	}
}

func (r *FoodRequest) Approve(now time.Time) error {
	return r.resolve(StatusApproved, now)
}

func (r *FoodRequest) Ignore(now time.Time) error {
	return r.resolve(StatusIgnored, now)
}

func (r *FoodRequest) resolve(next Status, now time.Time) error {
	if r.status.IsTerminal() {
		return ErrAlreadyResolved
	}
	r.status = next
	r.resolvedAt = &now
	return nil
}

// AllocationQuantity is the request quantity as an inventory amount.
func (r *FoodRequest) AllocationQuantity() inventory.Quantity {
	return inventory.ReconstructQuantity(r.quantity)
}

func (r *FoodRequest) IsPending() bool { return r.status == StatusPending }

func (r *FoodRequest) ID() uuid.UUID               { return r.id }
func (r *FoodRequest) RequesterID() uuid.UUID      { return r.requesterID }
func (r *FoodRequest) SupplierID() uuid.UUID       { return r.supplierID }
func (r *FoodRequest) ItemID() uuid.UUID           { return r.itemID }
func (r *FoodRequest) ItemName() string            { return r.itemName }
func (r *FoodRequest) Location() location.Location { return r.location }
func (r *FoodRequest) Quantity() decimal.Decimal   { return r.quantity }
func (r *FoodRequest) PickupDate() *time.Time      { return r.pickupDate }
func (r *FoodRequest) Notes() string               { return r.notes.String() }
func (r *FoodRequest) Status() Status              { return r.status }
func (r *FoodRequest) Version() int64              { return r.version }
func (r *FoodRequest) CreatedAt() time.Time        { return r.createdAt }
func (r *FoodRequest) ResolvedAt() *time.Time      { return r.resolvedAt }

func (r *FoodRequest) Clone() *FoodRequest {
	c := *r
	return &c
}
