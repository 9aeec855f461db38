//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"foodbridge/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func InsertItem(t *testing.T, db DBLike, b *builder.ItemBuilder) uuid.UUID {
	t.Helper()

	row := b.BuildInfra()
	_, err := db.Exec(context.Background(), `
		INSERT INTO inventory_items
		    (id, owner_id, name, quantity, best_before_at, expires_at, status, city, pincode, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		row.ID, row.OwnerID, row.Name, row.Quantity, row.BestBeforeAt, row.ExpiresAt,
		row.Status, row.City, row.Pincode, row.Version, row.CreatedAt, row.UpdatedAt)
	require.NoError(t, err)

	return row.ID
}

func InsertRequest(t *testing.T, db DBLike, b *builder.RequestBuilder) uuid.UUID {
	t.Helper()

	row := b.BuildInfra()
	_, err := db.Exec(context.Background(), `
		INSERT INTO food_requests
		    (id, requester_id, supplier_id, item_id, item_name, city, pincode, quantity, pickup_date, notes, status, version, created_at, resolved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		row.ID, row.RequesterID, row.SupplierID, row.ItemID, row.ItemName, row.City, row.Pincode,
		row.Quantity, row.PickupDate, row.Notes, row.Status, row.Version, row.CreatedAt, row.ResolvedAt)
	require.NoError(t, err)

	return row.ID
}

func InsertNotification(t *testing.T, db DBLike, b *builder.NotificationBuilder) uuid.UUID {
	t.Helper()

	row := b.BuildInfra()
	_, err := db.Exec(context.Background(), `
		INSERT INTO notifications (id, item_id, owner_id, kind, message, triggered_at, acknowledged_at, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		row.ID, row.ItemID, row.OwnerID, row.Kind, row.Message, row.TriggeredAt, row.AcknowledgedAt, row.Version)
	require.NoError(t, err)

	return row.ID
}

// ItemState returns the stored quantity and status, or ok=false when the row is gone.
func ItemState(t *testing.T, db DBLike, itemID uuid.UUID) (qty decimal.Decimal, status string, ok bool) {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM inventory_items WHERE id = $1", itemID).Scan(&count)
	require.NoError(t, err)
	if count == 0 {
		return decimal.Zero, "", false
	}

	err = db.QueryRow(context.Background(), "SELECT quantity, status FROM inventory_items WHERE id = $1", itemID).Scan(&qty, &status)
	require.NoError(t, err)
	return qty, status, true
}

func CountRequests(t *testing.T, db DBLike, itemID uuid.UUID, status string) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM food_requests WHERE item_id = $1 AND status = $2", itemID, status).Scan(&count)
	require.NoError(t, err)
	return count
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + ";")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
