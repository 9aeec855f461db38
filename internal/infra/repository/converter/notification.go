package converter

import (
	"foodbridge/internal/domain/notification"
	sqlc "foodbridge/internal/infra/sqlc/generated"
	"foodbridge/internal/pkg/pgconv"
)

func NotificationToCreateParams(n *notification.Notification) sqlc.CreateNotificationParams {
	return sqlc.CreateNotificationParams{
		ID:          n.ID(),
		ItemID:      n.ItemID(),
		OwnerID:     n.OwnerID(),
		Kind:        string(n.Kind()),
		Message:     n.Message(),
		TriggeredAt: pgconv.TimeToPgtype(n.TriggeredAt()),
		Version:     n.Version(),
	}
}

func NotificationFromRow(row sqlc.Notifications) *notification.Notification {
	return notification.Reconstruct(
		row.ID,
		row.ItemID,
		row.OwnerID,
		notification.Kind(row.Kind),
		row.Message,
		pgconv.TimeFromPgtype(row.TriggeredAt),
		pgconv.TimePtrFromPgtype(row.AcknowledgedAt),
		row.Version,
	)
}
