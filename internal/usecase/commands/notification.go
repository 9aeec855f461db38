package commands

import (
	"context"
	"log/slog"
	"time"

	"foodbridge/internal/domain/actor"
	"foodbridge/internal/domain/notification"
	"foodbridge/internal/pkg/clock"
	"foodbridge/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationCommands interface {
	// Emit is a no-op returning the existing notification when the item already has an unacknowledged one.
	// It returns nil without error when the item is no longer near expiry.
	Emit(ctx context.Context, itemID uuid.UUID, message string) (*notification.Notification, error)
	Acknowledge(ctx context.Context, a actor.Actor, notificationID uuid.UUID) error
	Supersede(ctx context.Context, itemID uuid.UUID) (int64, error)
}

type notificationCommandsImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	publisher shared.AlertPublisher
	threshold time.Duration
}

func NewNotificationCommands(
	uow shared.UnitOfWork,
	clk clock.Clock,
	publisher shared.AlertPublisher,
	nearThreshold time.Duration,
) NotificationCommands {
	return &notificationCommandsImpl{uow: uow, clock: clk, publisher: publisher, threshold: nearThreshold}
}

func (uc *notificationCommandsImpl) Emit(ctx context.Context, itemID uuid.UUID, message string) (*notification.Notification, error) {
	var (
		stored   *notification.Notification
		created  bool
		itemName string
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, gerr := tx.Inventory().Get(ctx, itemID)
		if gerr != nil {
			return gerr
		}
		itemName = item.Name()

		now := uc.clock.Now()
		// the item may have been allocated, listed or retired since it was scanned
		if !item.IsNearExpiry(now, uc.threshold) {
			return nil
		}

		n, nerr := notification.New(item.ID(), item.OwnerID(), notification.KindNearExpiry, message, now)
		if nerr != nil {
			return nerr
		}
		var cerr error
		stored, created, cerr = tx.Notifications().CreateIfAbsent(ctx, n)
		return cerr
	})
	if err != nil {
		return nil, err
	}

	if created {
		publishAlert(ctx, uc.publisher, nearExpiryAlert(stored, itemName))
	}
	return stored, nil
}

func (uc *notificationCommandsImpl) Acknowledge(ctx context.Context, a actor.Actor, notificationID uuid.UUID) error {
	if err := a.Require(actor.RoleSupplier); err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Notifications().Get(ctx, notificationID)
		if err != nil {
			return err
		}
		if n.OwnerID() != a.ID {
			return notification.ErrNotNotificationOwner
		}
		if n.Acknowledged() {
			return nil
		}
		n.Acknowledge(uc.clock.Now())
		return tx.Notifications().Acknowledge(ctx, n)
	})
}

func (uc *notificationCommandsImpl) Supersede(ctx context.Context, itemID uuid.UUID) (int64, error) {
	var superseded int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, serr := supersedeNotifications(ctx, tx, itemID, uc.clock.Now())
		superseded = n
		return serr
	})
	if err != nil {
		return 0, err
	}
	return superseded, nil
}

func nearExpiryAlert(n *notification.Notification, itemName string) shared.SupplierAlert {
	id := n.ID()
	return shared.SupplierAlert{
		Type:           shared.AlertNearExpiry,
		ItemID:         n.ItemID(),
		OwnerID:        n.OwnerID(),
		NotificationID: &id,
		ItemName:       itemName,
		Message:        n.Message(),
		OccurredAt:     n.TriggeredAt(),
	}
}

// publishAlert only logs publish failures.
func publishAlert(ctx context.Context, publisher shared.AlertPublisher, alert shared.SupplierAlert) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, alert); err != nil {
		slog.Warn("failed to publish supplier alert",
			"type", alert.Type,
			"item_id", alert.ItemID,
			"error", err)
	}
}
