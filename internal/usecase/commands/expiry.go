package commands

import (
	"context"
	"log/slog"
	"time"

	"foodbridge/internal/domain/inventory"
	"foodbridge/internal/domain/notification"
	"foodbridge/internal/pkg/clock"
	"foodbridge/internal/pkg/errs"
	"foodbridge/internal/usecase/shared"

	"github.com/google/uuid"
)

type SweepReport struct {
	Scanned         int
	Retired         int
	Notified        int
	IgnoredRequests int64
	Conflicts       int
	Failed          int
}

// ExpiryWatcher applies time-driven transitions. It is the only writer of
// Retired transitions and of near-expiry notifications.
type ExpiryWatcher interface {
	Sweep(ctx context.Context) (SweepReport, error)
}

type expiryWatcherImpl struct {
	uow           shared.UnitOfWork
	clock         clock.Clock
	notifications NotificationCommands
	publisher     shared.AlertPublisher
	nearThreshold time.Duration
}

func NewExpiryWatcher(
	uow shared.UnitOfWork,
	clk clock.Clock,
	notifications NotificationCommands,
	publisher shared.AlertPublisher,
	nearThreshold time.Duration,
) ExpiryWatcher {
	return &expiryWatcherImpl{
		uow:           uow,
		clock:         clk,
		notifications: notifications,
		publisher:     publisher,
		nearThreshold: nearThreshold,
	}
}

// Sweep is idempotent. A failure on one item is logged and counted; the sweep continues.
func (w *expiryWatcherImpl) Sweep(ctx context.Context) (SweepReport, error) {
	var report SweepReport

	var items []*inventory.Item
	err := w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var lerr error
		items, lerr = tx.Inventory().ListSweepable(ctx)
		return lerr
	})
	if err != nil {
		return report, errs.Wrap(err, "failed to list sweepable items")
	}

	for _, item := range items {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		report.Scanned++

		now := w.clock.Now()
		switch {
		case item.IsExpired(now):
			w.retire(ctx, item.ID(), &report)
		case item.IsNearExpiry(now, w.nearThreshold):
			w.warn(ctx, item, now, &report)
		}
	}

	return report, nil
}

func (w *expiryWatcherImpl) retire(ctx context.Context, itemID uuid.UUID, report *SweepReport) {
	var (
		retired *inventory.Item
		ignored int64
	)
	err := reevaluateOnConflict(ctx, "retire item", func() error {
		retired, ignored = nil, 0
		return w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			item, gerr := tx.Inventory().Get(ctx, itemID)
			if gerr != nil {
				return gerr
			}
			if item.Status() == inventory.StatusRetired {
				return nil
			}

			now := w.clock.Now()
			updated, uerr := tx.Inventory().CompareAndUpdate(ctx, itemID, item.Version(), func(it *inventory.Item) error {
				return it.Retire()
			})
			if uerr != nil {
				return uerr
			}
			n, ierr := autoIgnorePending(ctx, tx, itemID, now)
			if ierr != nil {
				return ierr
			}
			if _, serr := supersedeNotifications(ctx, tx, itemID, now); serr != nil {
				return serr
			}
			retired, ignored = updated, n
			return nil
		})
	})

	switch {
	case err == nil:
	case errs.Is(err, inventory.ErrItemNotFound):
		// removed by its owner since the scan
		return
	case errs.Is(err, inventory.ErrVersionConflict):
		report.Conflicts++
		slog.Warn("expiry retirement lost to concurrent updates", "item_id", itemID, "error", err)
		return
	default:
		report.Failed++
		slog.Error("expiry retirement failed", "item_id", itemID, "error", err)
		return
	}
	if retired == nil {
		return
	}

	report.Retired++
	report.IgnoredRequests += ignored
	slog.Info("item retired by expiry sweep",
		"item_id", itemID,
		"ignored_requests", ignored)

	publishAlert(ctx, w.publisher, shared.SupplierAlert{
		Type:         shared.AlertItemRetired,
		ItemID:       retired.ID(),
		OwnerID:      retired.OwnerID(),
		ItemName:     retired.Name(),
		IgnoredCount: ignored,
		OccurredAt:   retired.UpdatedAt(),
	})
}

// warn raises at most one near-expiry notification per item; an alert the
// supplier already ignored is not raised again.
func (w *expiryWatcherImpl) warn(ctx context.Context, item *inventory.Item, now time.Time, report *SweepReport) {
	var exists bool
	err := w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var eerr error
		exists, eerr = tx.Notifications().ExistsForItem(ctx, item.ID(), notification.KindNearExpiry)
		return eerr
	})
	if err != nil {
		report.Failed++
		slog.Error("failed to check notifications", "item_id", item.ID(), "error", err)
		return
	}
	if exists {
		return
	}

	msg := notification.NearExpiryMessage(item.Name(), *item.BestBeforeAt(), now)
	n, err := w.notifications.Emit(ctx, item.ID(), msg)
	if err != nil {
		if errs.Is(err, inventory.ErrItemNotFound) {
			return
		}
		report.Failed++
		slog.Error("failed to emit near-expiry notification", "item_id", item.ID(), "error", err)
		return
	}
	if n != nil {
		report.Notified++
	}
}
