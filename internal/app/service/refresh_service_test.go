package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"intranet-portal/internal/domain"
)

// fakeSource implements domain.SnapshotSource.
type fakeSource struct {
	users    []*domain.User
	contents []*domain.ContentItem
	err      error
}

func (f *fakeSource) Name() string { return "fake-source" }

func (f *fakeSource) Fetch(context.Context) ([]*domain.User, []*domain.ContentItem, error) {
	return f.users, f.contents, f.err
}

func (f *fakeSource) HealthCheck(context.Context) error { return f.err }

// fakeWriter records Replace calls.
type fakeWriter struct {
	replaced bool
	users    []*domain.User
	contents []*domain.ContentItem
}

func (f *fakeWriter) Replace(users []*domain.User, contents []*domain.ContentItem) {
	f.replaced = true
	f.users = users
	f.contents = contents
}

func TestRefreshService_Refresh(t *testing.T) {
	source := &fakeSource{
		users:    []*domain.User{{ID: "1", Name: "John", Email: "j@c.com"}},
		contents: []*domain.ContentItem{{ID: "c1", Title: "New"}},
	}
	writer := &fakeWriter{}

	svc := NewRefreshService(writer, source, zap.NewNop())
	result := svc.Refresh(context.Background())

	require.NoError(t, result.Error)
	assert.True(t, writer.replaced)
	assert.Equal(t, 1, result.Users)
	assert.Equal(t, 1, result.Contents)
	assert.Equal(t, "fake-source", result.Source)
}

func TestRefreshService_Refresh_KeepsSnapshotOnFailure(t *testing.T) {
	source := &fakeSource{err: errors.New("unreachable")}
	writer := &fakeWriter{}

	svc := NewRefreshService(writer, source, zap.NewNop())
	result := svc.Refresh(context.Background())

	assert.Error(t, result.Error)
	assert.False(t, writer.replaced, "failed fetch must not touch the snapshot")
}
