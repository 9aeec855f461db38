// Package worker runs background jobs alongside the HTTP server.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"foodbridge/internal/usecase/commands"
	"foodbridge/internal/usecase/shared"
)

// ExpirySweeper runs the expiry sweep on a fixed interval. Only the instance
// holding the sweep lock does work on a given tick.
type ExpirySweeper struct {
	watcher  commands.ExpiryWatcher
	lock     shared.SweepLock
	interval time.Duration
	logger   *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewExpirySweeper(watcher commands.ExpiryWatcher, lock shared.SweepLock, interval time.Duration, logger *slog.Logger) *ExpirySweeper {
	return &ExpirySweeper{
		watcher:  watcher,
		lock:     lock,
		interval: interval,
		logger:   logger,
	}
}

func (s *ExpirySweeper) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.RunOnce(ctx)
			}
		}
	}()
}

// Stop cancels the loop and waits for an in-flight sweep to return.
func (s *ExpirySweeper) Stop(ctx context.Context) error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *ExpirySweeper) RunOnce(ctx context.Context) {
	release, acquired, err := s.lock.TryAcquire(ctx)
	if err != nil {
		s.logger.Warn("expiry sweep lock unavailable", "error", err)
		return
	}
	if !acquired {
		s.logger.Debug("expiry sweep held by another instance")
		return
	}
	defer release(context.WithoutCancel(ctx))

	report, err := s.watcher.Sweep(ctx)
	if err != nil {
		s.logger.Error("expiry sweep failed", "error", err)
		return
	}
	s.logger.Info("expiry sweep finished",
		"scanned", report.Scanned,
		"retired", report.Retired,
		"notified", report.Notified,
		"ignored_requests", report.IgnoredRequests,
		"conflicts", report.Conflicts,
		"failed", report.Failed,
	)
}
