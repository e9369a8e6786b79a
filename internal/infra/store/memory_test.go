package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"intranet-portal/internal/domain"
)

func TestMemory_ReadsSeedOrder(t *testing.T) {
	users := []*domain.User{
		{ID: "1", Name: "John", Email: "j@c.com"},
		{ID: "2", Name: "Jane", Email: "jn@c.com"},
	}
	contents := []*domain.ContentItem{
		{ID: "c1", Title: "First", Author: users[0]},
		{ID: "c2", Title: "Second", Author: users[1]},
	}

	m := NewMemory(users, contents, zap.NewNop())
	ctx := context.Background()

	gotUsers, err := m.Users(ctx)
	require.NoError(t, err)
	require.Len(t, gotUsers, 2)
	assert.Equal(t, "1", gotUsers[0].ID)

	gotContents, err := m.Contents(ctx)
	require.NoError(t, err)
	require.Len(t, gotContents, 2)
	assert.Equal(t, "c1", gotContents[0].ID)
}

func TestMemory_ReplaceSwapsSnapshot(t *testing.T) {
	m := NewMemory(nil, nil, zap.NewNop())
	ctx := context.Background()

	before, err := m.Contents(ctx)
	require.NoError(t, err)
	assert.Empty(t, before)

	m.Replace(
		[]*domain.User{{ID: "1", Name: "John", Email: "j@c.com"}},
		[]*domain.ContentItem{{ID: "c1", Title: "New"}},
	)

	after, err := m.Contents(ctx)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, "c1", after[0].ID)

	// The snapshot read before the swap is untouched.
	assert.Empty(t, before)
}
