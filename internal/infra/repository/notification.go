package repository

import (
	"context"
	"time"

	"foodbridge/internal/domain/notification"
	"foodbridge/internal/infra"
	"foodbridge/internal/infra/repository/converter"
	sqlc "foodbridge/internal/infra/sqlc/generated"
	"foodbridge/internal/pkg/pgconv"
	"foodbridge/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationWriteQueries interface {
	CreateNotification(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationParams) (sqlc.Notifications, error)
	GetNotificationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Notifications, error)
	GetUnacknowledgedNotificationByItem(ctx context.Context, db sqlc.DBTX, itemID uuid.UUID) (sqlc.Notifications, error)
	AcknowledgeNotification(ctx context.Context, db sqlc.DBTX, arg sqlc.AcknowledgeNotificationParams) (int64, error)
	SupersedeNotificationsForItem(ctx context.Context, db sqlc.DBTX, arg sqlc.SupersedeNotificationsForItemParams) (int64, error)
	CountNotificationsForItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CountNotificationsForItemParams) (int64, error)
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

var _ shared.NotificationRepository = (*NotificationRepository)(nil)

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) Get(ctx context.Context, id uuid.UUID) (*notification.Notification, error) {
	row, err := r.queries.GetNotificationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, notification.ErrNotificationNotFound
		}
		return nil, infra.WrapRepoErr("failed to get notification", err)
	}
	return converter.NotificationFromRow(row), nil
}

// CreateIfAbsent relies on the partial unique index over unacknowledged rows;
// a conflicting insert returns no row and the open notification is loaded instead.
func (r *NotificationRepository) CreateIfAbsent(ctx context.Context, n *notification.Notification) (*notification.Notification, bool, error) {
	row, err := r.queries.CreateNotification(ctx, r.db, converter.NotificationToCreateParams(n))
	if err == nil {
		return converter.NotificationFromRow(row), true, nil
	}
	if !pgconv.IsNoRows(err) {
		return nil, false, infra.WrapRepoErr("failed to create notification", err)
	}

	existing, err := r.queries.GetUnacknowledgedNotificationByItem(ctx, r.db, n.ItemID())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, false, notification.ErrAcknowledgeConflicted
		}
		return nil, false, infra.WrapRepoErr("failed to load open notification", err)
	}
	return converter.NotificationFromRow(existing), false, nil
}

func (r *NotificationRepository) Acknowledge(ctx context.Context, n *notification.Notification) error {
	affected, err := r.queries.AcknowledgeNotification(ctx, r.db, sqlc.AcknowledgeNotificationParams{
		ID:             n.ID(),
		Version:        n.Version(),
		AcknowledgedAt: pgconv.TimePtrToPgtype(n.AcknowledgedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to acknowledge notification", err)
	}
	if affected == 0 {
		return notification.ErrAcknowledgeConflicted
	}
	return nil
}

func (r *NotificationRepository) SupersedeForItem(ctx context.Context, itemID uuid.UUID, now time.Time) (int64, error) {
	affected, err := r.queries.SupersedeNotificationsForItem(ctx, r.db, sqlc.SupersedeNotificationsForItemParams{
		ItemID:         itemID,
		AcknowledgedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to supersede notifications", err)
	}
	return affected, nil
}

func (r *NotificationRepository) ExistsForItem(ctx context.Context, itemID uuid.UUID, kind notification.Kind) (bool, error) {
	count, err := r.queries.CountNotificationsForItem(ctx, r.db, sqlc.CountNotificationsForItemParams{
		ItemID: itemID,
		Kind:   string(kind),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to count notifications", err)
	}
	return count > 0, nil
}
