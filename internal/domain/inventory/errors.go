package inventory

import "foodbridge/internal/pkg/errs"

var (
	ErrInvalidQuantity   = errs.Sentinel(errs.ErrValidation, "quantity must be greater than zero")
	ErrQuantityPrecision = errs.Sentinel(errs.ErrValidation, "quantity supports at most two decimal places")
	ErrEmptyName         = errs.Sentinel(errs.ErrValidation, "item name cannot be empty")
	ErrNameTooLong       = errs.Sentinel(errs.ErrValidation, "item name exceeds maximum length")
	ErrAlreadyExpired    = errs.Sentinel(errs.ErrValidation, "expiry must be in the future")
	ErrInvalidStatus     = errs.Sentinel(errs.ErrValidation, "invalid item status")

	ErrItemNotFound = errs.Sentinel(errs.ErrNotFound, "inventory item not found")
	ErrNotOwner     = errs.Sentinel(errs.ErrUnauthorized, "inventory item not owned by actor")

	ErrInvalidTransition    = errs.Sentinel(errs.ErrStateConflict, "invalid status transition")
	ErrInsufficientQuantity = errs.Sentinel(errs.ErrStateConflict, "insufficient quantity")
	ErrItemRetired          = errs.Sentinel(errs.ErrStateConflict, "inventory item is retired")
	ErrNotListing           = errs.Sentinel(errs.ErrStateConflict, "inventory item is not listed")
	ErrPendingRequests      = errs.Sentinel(errs.ErrStateConflict, "inventory item has pending requests")
	ErrVersionConflict      = errs.Sentinel(errs.ErrStateConflict, "inventory item was modified concurrently")
	ErrConcurrentUpdates    = errs.Sentinel(errs.ErrStateConflict, "change could not be applied due to concurrent updates")
)
