package commands

import (
	"context"
	"log/slog"
	"time"

	"foodbridge/internal/domain/inventory"
	"foodbridge/internal/pkg/errs"
	"foodbridge/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// maxReevaluations bounds how often a write is re-run against fresh state after
// losing a compare-and-update race.
const maxReevaluations = 3

// ItemChange is the write-side result of an inventory mutation.
type ItemChange struct {
	ItemID   uuid.UUID
	Status   inventory.Status
	Quantity decimal.Decimal
	Version  int64
	Removed  bool
}

func itemChangeFrom(item *inventory.Item) *ItemChange {
	return &ItemChange{
		ItemID:   item.ID(),
		Status:   item.Status(),
		Quantity: item.Quantity(),
		Version:  item.Version(),
	}
}

// reevaluateOnConflict re-runs fn while it reports a version conflict. fn must
// read everything it needs afresh on every call. Once attempts run out the
// last conflict is returned marked with inventory.ErrConcurrentUpdates.
func reevaluateOnConflict(ctx context.Context, op string, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxReevaluations; attempt++ {
		err = fn()
		if !errs.Is(err, inventory.ErrVersionConflict) {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		slog.Debug("version conflict, re-evaluating against fresh state",
			"operation", op,
			"attempt", attempt)
	}
	return errs.Mark(errs.Wrapf(err, "%s: gave up after %d attempts", op, maxReevaluations), inventory.ErrConcurrentUpdates)
}

// supersedeNotifications acknowledges outstanding alerts for an item that was listed or retired.
func supersedeNotifications(ctx context.Context, tx shared.Tx, itemID uuid.UUID, now time.Time) (int64, error) {
	return tx.Notifications().SupersedeForItem(ctx, itemID, now)
}

// autoIgnorePending moves every pending request on itemID to Ignored inside tx.
func autoIgnorePending(ctx context.Context, tx shared.Tx, itemID uuid.UUID, now time.Time) (int64, error) {
	return tx.Requests().IgnorePendingForItem(ctx, itemID, now)
}
