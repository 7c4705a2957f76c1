package community

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hazemq/souschef/internal/domain"
)

func TestPublishAssignsIDAndTimestamp(t *testing.T) {
	f := NewMemoryFeed(zap.NewNop().Sugar())

	id, err := f.Publish(context.Background(), domain.Post{
		Author:   "nour",
		ImageURI: "file://pasta.jpg",
		Caption:  "Weeknight carbonara",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	posts, err := f.List(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, id, posts[0].ID)
	assert.False(t, posts[0].CreatedAt.IsZero())
}

func TestPublishRequiresAuthor(t *testing.T) {
	f := NewMemoryFeed(zap.NewNop().Sugar())

	_, err := f.Publish(context.Background(), domain.Post{Caption: "anon"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "author", verr.Field)
}

func TestListNewestFirst(t *testing.T) {
	ctx := context.Background()
	f := NewMemoryFeed(zap.NewNop().Sugar())

	old := time.Now().Add(-time.Hour)
	_, err := f.Publish(ctx, domain.Post{Author: "a", Caption: "first", CreatedAt: old})
	require.NoError(t, err)
	_, err = f.Publish(ctx, domain.Post{Author: "b", Caption: "second"})
	require.NoError(t, err)

	posts, err := f.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "second", posts[0].Caption)
	assert.Equal(t, "first", posts[1].Caption)
}

func TestLike(t *testing.T) {
	ctx := context.Background()
	f := NewMemoryFeed(zap.NewNop().Sugar())

	id, err := f.Publish(ctx, domain.Post{Author: "a", Caption: "soup"})
	require.NoError(t, err)

	require.NoError(t, f.Like(ctx, id))
	require.NoError(t, f.Like(ctx, id))

	posts, err := f.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, posts[0].Likes)

	assert.ErrorIs(t, f.Like(ctx, "missing"), domain.ErrNotFound)
}
