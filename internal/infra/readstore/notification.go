package readstore

import (
	"context"

	"foodbridge/internal/infra"
	sqlc "foodbridge/internal/infra/sqlc/generated"
	"foodbridge/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationReadQueries interface {
	ListUnacknowledgedNotificationsByOwner(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) ([]sqlc.ListUnacknowledgedNotificationsByOwnerRow, error)
}

type NotificationReadStore struct {
	queries NotificationReadQueries
	db      sqlc.DBTX
}

var _ queries.NotificationReadStore = (*NotificationReadStore)(nil)

func NewNotificationReadStore(q NotificationReadQueries, db sqlc.DBTX) *NotificationReadStore {
	return &NotificationReadStore{
		queries: q,
		db:      db,
	}
}

func (s *NotificationReadStore) ListUnacknowledgedByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.NotificationView, error) {
	rows, err := s.queries.ListUnacknowledgedNotificationsByOwner(ctx, s.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}

	result := make([]*queries.NotificationView, len(rows))
	for i, row := range rows {
		result[i] = &queries.NotificationView{
			ID:          row.ID,
			ItemID:      row.ItemID,
			ItemName:    row.ItemName,
			Kind:        row.Kind,
			Message:     row.Message,
			TriggeredAt: row.TriggeredAt.Time,
		}
	}
	return result, nil
}
