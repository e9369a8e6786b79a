package domain

import (
	"context"
	"time"
)

// Store provides read access to the entity collections. Every call observes
// a consistent, immutable snapshot: concurrent requests never see a
// half-replaced data set. If persistence is ever added, this boundary is
// where a transaction discipline would go.
// Implementations: internal/infra/store
type Store interface {
	// Contents returns the content collection in original seed order.
	Contents(ctx context.Context) ([]*ContentItem, error)

	// Users returns the user collection in original seed order.
	Users(ctx context.Context) ([]*User, error)
}

// SnapshotWriter atomically replaces the store's data set. Only the refresh
// job writes; request handling is read-only.
type SnapshotWriter interface {
	Replace(users []*User, items []*ContentItem)
}

// SnapshotSource provides a full replacement data set, typically an intranet
// CMS export endpoint.
// Implementations: internal/infra/seed
type SnapshotSource interface {
	// Name returns the unique identifier for this source.
	Name() string

	// Fetch retrieves the complete user and content collections.
	Fetch(ctx context.Context) ([]*User, []*ContentItem, error)

	// HealthCheck verifies the source is accessible.
	HealthCheck(ctx context.Context) error
}

// Cache defines the interface for caching operations.
// Implementations: internal/infra/redis
type Cache interface {
	// Get retrieves a value by key. Returns nil if not found.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value by key.
	Delete(ctx context.Context, key string) error

	// Clear removes all cached values.
	Clear(ctx context.Context) error
}
