// Package store provides the in-memory entity store.
package store

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"intranet-portal/internal/domain"
)

// snapshot is an immutable view of the entity collections. Replacing the
// data set swaps the whole snapshot pointer, so a request that already
// started keeps reading the version it saw first.
type snapshot struct {
	users    []*domain.User
	contents []*domain.ContentItem
}

// Memory implements domain.Store and domain.SnapshotWriter over an atomic
// snapshot pointer. Reads never block and never see partial data.
type Memory struct {
	current atomic.Pointer[snapshot]
	logger  *zap.Logger
}

// NewMemory creates a store seeded with the given collections.
func NewMemory(users []*domain.User, contents []*domain.ContentItem, logger *zap.Logger) *Memory {
	m := &Memory{logger: logger}
	m.Replace(users, contents)
	return m
}

// Contents returns the content collection in original seed order.
func (m *Memory) Contents(_ context.Context) ([]*domain.ContentItem, error) {
	return m.current.Load().contents, nil
}

// Users returns the user collection in original seed order.
func (m *Memory) Users(_ context.Context) ([]*domain.User, error) {
	return m.current.Load().users, nil
}

// Replace atomically swaps in a new data set. The slices are owned by the
// store after the call; callers must not mutate them.
func (m *Memory) Replace(users []*domain.User, contents []*domain.ContentItem) {
	m.current.Store(&snapshot{users: users, contents: contents})

	if m.logger != nil {
		m.logger.Info("store snapshot replaced",
			zap.Int("users", len(users)),
			zap.Int("contents", len(contents)),
		)
	}
}
