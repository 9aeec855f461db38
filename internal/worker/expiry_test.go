//go:build unit

package worker_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"foodbridge/internal/usecase/commands"
	"foodbridge/internal/worker"
	commandsmock "foodbridge/tests/mock/commands"
	sharedmock "foodbridge/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestExpirySweeper_RunOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("sweeps and releases when the lock is acquired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		watcher := commandsmock.NewMockExpiryWatcher(ctrl)
		lock := sharedmock.NewMockSweepLock(ctrl)

		released := false
		lock.EXPECT().TryAcquire(ctx).Return(func(context.Context) { released = true }, true, nil)
		watcher.EXPECT().Sweep(ctx).Return(commands.SweepReport{Scanned: 3, Retired: 1}, nil)

		worker.NewExpirySweeper(watcher, lock, time.Minute, discard).RunOnce(ctx)
		assert.True(t, released)
	})

	t.Run("skips when another instance holds the lock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		watcher := commandsmock.NewMockExpiryWatcher(ctrl)
		lock := sharedmock.NewMockSweepLock(ctrl)

		lock.EXPECT().TryAcquire(ctx).Return(nil, false, nil)
		watcher.EXPECT().Sweep(gomock.Any()).Times(0)

		worker.NewExpirySweeper(watcher, lock, time.Minute, discard).RunOnce(ctx)
	})

	t.Run("skips when the lock backend fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		watcher := commandsmock.NewMockExpiryWatcher(ctrl)
		lock := sharedmock.NewMockSweepLock(ctrl)

		lock.EXPECT().TryAcquire(ctx).Return(nil, false, errors.New("connection refused"))
		watcher.EXPECT().Sweep(gomock.Any()).Times(0)

		worker.NewExpirySweeper(watcher, lock, time.Minute, discard).RunOnce(ctx)
	})

	t.Run("releases even when the sweep fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		watcher := commandsmock.NewMockExpiryWatcher(ctrl)
		lock := sharedmock.NewMockSweepLock(ctrl)

		released := false
		lock.EXPECT().TryAcquire(ctx).Return(func(context.Context) { released = true }, true, nil)
		watcher.EXPECT().Sweep(ctx).Return(commands.SweepReport{}, errors.New("store unavailable"))

		worker.NewExpirySweeper(watcher, lock, time.Minute, discard).RunOnce(ctx)
		assert.True(t, released)
	})
}

func TestExpirySweeper_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	watcher := commandsmock.NewMockExpiryWatcher(ctrl)
	lock := sharedmock.NewMockSweepLock(ctrl)

	swept := make(chan struct{}, 1)
	lock.EXPECT().TryAcquire(gomock.Any()).Return(func(context.Context) {}, true, nil).MinTimes(1)
	watcher.EXPECT().Sweep(gomock.Any()).DoAndReturn(func(context.Context) (commands.SweepReport, error) {
		select {
		case swept <- struct{}{}:
		default:
		}
		return commands.SweepReport{}, nil
	}).MinTimes(1)

	s := worker.NewExpirySweeper(watcher, lock, 10*time.Millisecond, discard)
	s.Start()

	select {
	case <-swept:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper never ran")
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(stopCtx))
}
