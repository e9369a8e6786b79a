package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"intranet-portal/internal/domain"
)

// RefreshService replaces the store snapshot with a fresh data set from the
// remote seed source.
type RefreshService struct {
	store  domain.SnapshotWriter
	source domain.SnapshotSource
	logger *zap.Logger
}

// NewRefreshService creates a new RefreshService.
func NewRefreshService(store domain.SnapshotWriter, source domain.SnapshotSource, logger *zap.Logger) *RefreshService {
	return &RefreshService{
		store:  store,
		source: source,
		logger: logger,
	}
}

// RefreshResult holds the result of a refresh operation.
type RefreshResult struct {
	Source   string
	Users    int
	Contents int
	Duration time.Duration
	Error    error
}

// Refresh fetches the full data set and atomically swaps the store snapshot.
// On fetch or parse failure the previous snapshot stays in place.
func (s *RefreshService) Refresh(ctx context.Context) RefreshResult {
	start := time.Now()
	result := RefreshResult{Source: s.source.Name()}

	users, contents, err := s.source.Fetch(ctx)
	if err != nil {
		result.Error = err
		result.Duration = time.Since(start)

		s.logger.Warn("snapshot refresh failed, keeping previous data",
			zap.String("source", result.Source),
			zap.Error(err),
		)

		return result
	}

	s.store.Replace(users, contents)

	result.Users = len(users)
	result.Contents = len(contents)
	result.Duration = time.Since(start)

	s.logger.Info("snapshot refreshed",
		zap.String("source", result.Source),
		zap.Int("users", result.Users),
		zap.Int("contents", result.Contents),
		zap.Duration("duration", result.Duration),
	)

	return result
}
