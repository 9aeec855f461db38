//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodbridge/internal/domain/location"
	"foodbridge/internal/infra"
	"foodbridge/internal/infra/readstore"
	sqlc "foodbridge/internal/infra/sqlc/generated"
	"foodbridge/internal/usecase/queries"
	"foodbridge/tests/common/builder"
	readstoremock "foodbridge/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
)

// =============================================================================
// Request List Tests
// =============================================================================

func TestRequestReadStore_ListBySupplier(t *testing.T) {
	ctx := context.Background()
	supplierID := uuid.New()
	cursorAt := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	cursorID := uuid.New()
	pending := "pending"

	testCases := []struct {
		name       string
		status     *string
		after      *queries.PageKey
		assertArgs func(*testing.T, sqlc.ListFoodRequestsBySupplierParams)
	}{
		{
			name: "first page without status filter",
			assertArgs: func(t *testing.T, arg sqlc.ListFoodRequestsBySupplierParams) {
				assert.False(t, arg.Status.Valid)
				assert.False(t, arg.AfterCreatedAt.Valid)
				assert.False(t, arg.AfterID.Valid)
			},
		},
		{
			name:   "later page filtered by status",
			status: &pending,
			after:  &queries.PageKey{CreatedAt: cursorAt, ID: cursorID},
			assertArgs: func(t *testing.T, arg sqlc.ListFoodRequestsBySupplierParams) {
				assert.Equal(t, "pending", arg.Status.String)
				assert.True(t, arg.Status.Valid)
				assert.Equal(t, cursorAt, arg.AfterCreatedAt.Time)
				assert.Equal(t, cursorID, uuid.UUID(arg.AfterID.Bytes))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockRequestReadQueries(ctrl)
			store := readstore.NewRequestReadStore(mockQueries, &mockDBTX{})

			row := builder.NewRequestBuilder().WithQuantity(7).BuildInfra()
			mockQueries.EXPECT().ListFoodRequestsBySupplier(ctx, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ListFoodRequestsBySupplierParams) ([]sqlc.FoodRequests, error) {
					assert.Equal(t, supplierID, arg.SupplierID)
					assert.Equal(t, int32(21), arg.PageLimit)
					tc.assertArgs(t, arg)
					return []sqlc.FoodRequests{row}, nil
				})

			views, err := store.ListBySupplier(ctx, supplierID, tc.status, tc.after, 21)
			require.NoError(t, err)
			require.Len(t, views, 1)
			assert.Equal(t, row.ID, views[0].ID)
			assert.Equal(t, "pending", views[0].Status)
			assert.True(t, decimal.NewFromInt(7).Equal(views[0].Quantity))
			assert.Nil(t, views[0].ResolvedAt)
		})
	}
}

func TestRequestReadStore_ListByRequester_DBError(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockRequestReadQueries(ctrl)
	store := readstore.NewRequestReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().ListFoodRequestsByRequester(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

	views, err := store.ListByRequester(ctx, uuid.New(), nil, 21)
	assert.Nil(t, views)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	assert.ErrorIs(t, err, errDBConnectionLost)
}

// =============================================================================
// Demand Aggregation Tests
// =============================================================================

func TestDemandReadStore_AggregateDemand(t *testing.T) {
	ctx := context.Background()
	since := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		filter        location.Filter
		expectCity    string
		expectPincode bool
	}{
		{name: "filter normalized", filter: location.Filter{City: "  Pune ", Pincode: "411001"}, expectCity: "pune", expectPincode: true},
		{name: "empty filter matches everywhere", filter: location.Filter{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockDemandReadQueries(ctrl)
			store := readstore.NewDemandReadStore(mockQueries, &mockDBTX{})

			mockQueries.EXPECT().AggregateDemandByItemName(ctx, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.AggregateDemandByItemNameParams) ([]sqlc.AggregateDemandByItemNameRow, error) {
					assert.Equal(t, since, arg.Since.Time)
					assert.Equal(t, tc.expectCity != "", arg.City.Valid)
					assert.Equal(t, tc.expectCity, arg.City.String)
					assert.Equal(t, tc.expectPincode, arg.Pincode.Valid)
					return []sqlc.AggregateDemandByItemNameRow{
						{ItemName: "Rice", TotalQuantity: decimal.NewFromInt(120), RequestCount: 9},
						{ItemName: "Dal", TotalQuantity: decimal.RequireFromString("42.5"), RequestCount: 4},
					}, nil
				})

			samples, err := store.AggregateDemand(ctx, since, tc.filter)
			require.NoError(t, err)
			require.Len(t, samples, 2)
			assert.Equal(t, "Rice", samples[0].ItemName)
			assert.Equal(t, 9, samples[0].RequestCount)
			assert.Equal(t, "42.5", samples[1].TotalRequestedQuantity.String())
		})
	}
}

func TestNotificationReadStore_ListUnacknowledgedByOwner(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockNotificationReadQueries(ctrl)
	store := readstore.NewNotificationReadStore(mockQueries, &mockDBTX{})

	owner := uuid.New()
	b := builder.NewNotificationBuilder().With(func(b *builder.NotificationBuilder) { b.OwnerID = owner })
	infraRow := b.BuildInfra()
	mockQueries.EXPECT().ListUnacknowledgedNotificationsByOwner(ctx, gomock.Any(), owner).Return([]sqlc.ListUnacknowledgedNotificationsByOwnerRow{
		{
			ID:          infraRow.ID,
			ItemID:      infraRow.ItemID,
			ItemName:    b.ItemName,
			Kind:        infraRow.Kind,
			Message:     infraRow.Message,
			TriggeredAt: infraRow.TriggeredAt,
		},
	}, nil)

	views, err := store.ListUnacknowledgedByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, b.BuildView(), views[0])
}

// Mock DBTX for testing
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
