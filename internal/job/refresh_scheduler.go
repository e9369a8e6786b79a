// Package job provides background job schedulers.
package job

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"intranet-portal/internal/app/service"
)

// RefreshScheduler periodically replaces the store snapshot from the remote
// seed source. The refresh is instance-local, so no cross-instance
// coordination is needed.
type RefreshScheduler struct {
	refreshService *service.RefreshService
	interval       time.Duration
	timeout        time.Duration
	logger         *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// RefreshConfig holds refresh scheduler configuration.
type RefreshConfig struct {
	Interval  time.Duration
	Timeout   time.Duration
	OnStartup bool
}

// NewRefreshScheduler creates a new RefreshScheduler.
func NewRefreshScheduler(refreshSvc *service.RefreshService, cfg RefreshConfig, logger *zap.Logger) *RefreshScheduler {
	return &RefreshScheduler{
		refreshService: refreshSvc,
		interval:       cfg.Interval,
		timeout:        cfg.Timeout,
		logger:         logger,
	}
}

// Start begins the background refresh job.
func (s *RefreshScheduler) Start(runOnStartup bool) {
	s.ctx, s.cancel = context.WithCancel(context.Background())

	s.logger.Info("starting refresh scheduler",
		zap.Duration("interval", s.interval),
		zap.Bool("run_on_startup", runOnStartup),
	)

	s.wg.Add(1)
	go s.run(runOnStartup)
}

// Stop gracefully stops the scheduler.
func (s *RefreshScheduler) Stop() {
	s.logger.Info("stopping refresh scheduler")
	s.cancel()
	s.wg.Wait()
	s.logger.Info("refresh scheduler stopped")
}

// run is the main loop of the scheduler.
func (s *RefreshScheduler) run(runOnStartup bool) {
	defer s.wg.Done()

	if runOnStartup {
		s.executeRefresh()
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.executeRefresh()
		}
	}
}

// executeRefresh performs one refresh with a timeout. A failed refresh keeps
// the previous snapshot and waits for the next tick.
func (s *RefreshScheduler) executeRefresh() {
	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	result := s.refreshService.Refresh(ctx)
	if result.Error != nil {
		s.logger.Warn("scheduled refresh failed",
			zap.String("source", result.Source),
			zap.Error(result.Error),
		)

		return
	}

	s.logger.Debug("scheduled refresh completed",
		zap.Int("users", result.Users),
		zap.Int("contents", result.Contents),
		zap.Duration("duration", result.Duration),
	)
}
