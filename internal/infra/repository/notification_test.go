//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"foodbridge/internal/domain/notification"
	"foodbridge/internal/infra"
	"foodbridge/internal/infra/repository"
	sqlc "foodbridge/internal/infra/sqlc/generated"
	"foodbridge/tests/common/builder"
	repositorymock "foodbridge/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationRepository_CreateIfAbsent(t *testing.T) {
	ctx := context.Background()

	t.Run("success: inserted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewNotificationRepository(mockQueries, mockDB)

		b := builder.NewNotificationBuilder()
		mockQueries.EXPECT().CreateNotification(ctx, mockDB, gomock.Any()).Return(b.BuildInfra(), nil)

		stored, created, err := repo.CreateIfAbsent(ctx, b.BuildDomain())
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, b.ID, stored.ID())
	})

	t.Run("success: open notification returned instead", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewNotificationRepository(mockQueries, mockDB)

		existing := builder.NewNotificationBuilder()
		incoming := builder.NewNotificationBuilder().With(func(b *builder.NotificationBuilder) {
			b.ItemID = existing.ItemID
		})
		mockQueries.EXPECT().CreateNotification(ctx, mockDB, gomock.Any()).Return(sqlc.Notifications{}, pgx.ErrNoRows)
		mockQueries.EXPECT().GetUnacknowledgedNotificationByItem(ctx, mockDB, existing.ItemID).Return(existing.BuildInfra(), nil)

		stored, created, err := repo.CreateIfAbsent(ctx, incoming.BuildDomain())
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, existing.ID, stored.ID())
	})

	t.Run("error: open notification vanished between statements", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewNotificationRepository(mockQueries, mockDB)

		b := builder.NewNotificationBuilder()
		mockQueries.EXPECT().CreateNotification(ctx, mockDB, gomock.Any()).Return(sqlc.Notifications{}, pgx.ErrNoRows)
		mockQueries.EXPECT().GetUnacknowledgedNotificationByItem(ctx, mockDB, b.ItemID).Return(sqlc.Notifications{}, pgx.ErrNoRows)

		_, _, err := repo.CreateIfAbsent(ctx, b.BuildDomain())
		assert.ErrorIs(t, err, notification.ErrAcknowledgeConflicted)
	})

	t.Run("error: insert fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewNotificationRepository(mockQueries, mockDB)

		mockQueries.EXPECT().CreateNotification(ctx, mockDB, gomock.Any()).Return(sqlc.Notifications{}, errors.New("connection reset"))

		_, _, err := repo.CreateIfAbsent(ctx, builder.NewNotificationBuilder().BuildDomain())
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestNotificationRepository_Acknowledge(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		affected  int64
		dbErr     error
		expectErr error
	}{
		{name: "success: row acknowledged", affected: 1},
		{name: "error: version moved on", affected: 0, expectErr: notification.ErrAcknowledgeConflicted},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewNotificationRepository(mockQueries, mockDB)

			n := builder.NewNotificationBuilder().AsAcknowledged(fixedNow).BuildDomain()
			mockQueries.EXPECT().AcknowledgeNotification(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.AcknowledgeNotificationParams) (int64, error) {
					assert.Equal(t, n.ID(), arg.ID)
					assert.Equal(t, int64(1), arg.Version)
					assert.Equal(t, fixedNow, arg.AcknowledgedAt.Time)
					return tc.affected, tc.dbErr
				})

			err := repo.Acknowledge(ctx, n)
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
