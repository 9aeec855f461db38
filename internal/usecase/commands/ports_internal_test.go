//go:build unit

package commands

import (
	"context"
	"testing"

	"foodbridge/internal/domain/inventory"
	"foodbridge/internal/domain/request"
	"foodbridge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReevaluateOnConflict(t *testing.T) {
	t.Run("Normal case: gives up with a marked conflict", func(t *testing.T) {
		calls := 0
		err := reevaluateOnConflict(context.Background(), "approve request", func() error {
			calls++
			return inventory.ErrVersionConflict
		})

		require.Error(t, err)
		assert.Equal(t, maxReevaluations, calls)
		assert.True(t, errs.Is(err, inventory.ErrConcurrentUpdates))
		assert.True(t, errs.Is(err, inventory.ErrVersionConflict))
		assert.Equal(t, "state_conflict", errs.Kind(err))
		assert.Contains(t, err.Error(), "approve request: gave up after 3 attempts")
	})

	t.Run("Normal case: succeeds once the race is won", func(t *testing.T) {
		calls := 0
		err := reevaluateOnConflict(context.Background(), "sell item", func() error {
			calls++
			if calls < 2 {
				return inventory.ErrVersionConflict
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("Error case: other errors are returned unmarked", func(t *testing.T) {
		calls := 0
		err := reevaluateOnConflict(context.Background(), "approve request", func() error {
			calls++
			return request.ErrAlreadyResolved
		})

		assert.Equal(t, 1, calls)
		assert.ErrorIs(t, err, request.ErrAlreadyResolved)
		assert.False(t, errs.Is(err, inventory.ErrConcurrentUpdates))
	})

	t.Run("Error case: cancelled context stops re-evaluation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		calls := 0
		err := reevaluateOnConflict(ctx, "retire item", func() error {
			calls++
			return inventory.ErrVersionConflict
		})

		assert.Equal(t, 1, calls)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
