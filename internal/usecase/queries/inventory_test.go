//go:build unit

package queries_test

import (
	"context"
	"testing"

	"foodbridge/internal/domain/actor"
	"foodbridge/internal/domain/location"
	"foodbridge/internal/usecase/queries"
	"foodbridge/tests/common/builder"
	queriesmock "foodbridge/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInventoryQueries(t *testing.T) {
	ctx := context.Background()
	supplier := actor.New(uuid.New(), []actor.Role{actor.RoleSupplier}, location.Location{})
	distributor := actor.New(uuid.New(), []actor.Role{actor.RoleDistributor}, location.Location{})

	t.Run("ListInventory is scoped to the caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockInventoryReadStore(ctrl)
		view := builder.NewItemBuilder().WithOwnerID(supplier.ID).BuildView()
		store.EXPECT().ListByOwner(ctx, supplier.ID).Return([]*queries.ItemView{view}, nil)

		got, err := queries.NewInventoryQueries(store).ListInventory(ctx, supplier)
		require.NoError(t, err)
		assert.Equal(t, []*queries.ItemView{view}, got)

		_, err = queries.NewInventoryQueries(store).ListInventory(ctx, distributor)
		assert.ErrorIs(t, err, actor.ErrRoleRequired)
	})

	t.Run("BrowseAvailable normalizes the region filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockInventoryReadStore(ctrl)
		store.EXPECT().ListAvailable(ctx, location.Filter{City: "pune", Pincode: "411001"}).Return(nil, nil)

		_, err := queries.NewInventoryQueries(store).BrowseAvailable(ctx, distributor, location.Filter{City: "Pune ", Pincode: "411001"})
		require.NoError(t, err)

		_, err = queries.NewInventoryQueries(store).BrowseAvailable(ctx, supplier, location.Filter{})
		assert.ErrorIs(t, err, actor.ErrRoleRequired)
	})
}

func TestNotificationQueries_ListFor(t *testing.T) {
	ctx := context.Background()
	supplier := actor.New(uuid.New(), []actor.Role{actor.RoleSupplier}, location.Location{})

	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockNotificationReadStore(ctrl)
	view := builder.NewNotificationBuilder().BuildView()
	store.EXPECT().ListUnacknowledgedByOwner(ctx, supplier.ID).Return([]*queries.NotificationView{view}, nil)

	got, err := queries.NewNotificationQueries(store).ListFor(ctx, supplier)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
