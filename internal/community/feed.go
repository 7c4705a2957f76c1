// Package community provides the photo-post feed.
package community

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hazemq/souschef/internal/domain"
)

// Compile-time interface check.
var _ domain.PostFeed = (*MemoryFeed)(nil)

// MemoryFeed keeps community posts in memory. Safe for concurrent use.
type MemoryFeed struct {
	mu    sync.RWMutex
	posts map[string]domain.Post
	log   *zap.SugaredLogger
}

// NewMemoryFeed creates an empty feed.
func NewMemoryFeed(log *zap.SugaredLogger) *MemoryFeed {
	return &MemoryFeed{
		posts: make(map[string]domain.Post),
		log:   log,
	}
}

// Publish stores a post and returns its ID. The caption usually comes from
// the caption endpoint, possibly edited by the user before publishing.
func (f *MemoryFeed) Publish(ctx context.Context, p domain.Post) (string, error) {
	if strings.TrimSpace(p.Author) == "" {
		return "", &domain.ValidationError{Field: "author", Reason: "missing"}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	f.posts[p.ID] = p
	f.log.Debugw("published post", "id", p.ID, "author", p.Author)
	return p.ID, nil
}

// List returns all posts, newest first.
func (f *MemoryFeed) List(ctx context.Context) ([]domain.Post, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]domain.Post, 0, len(f.posts))
	for _, p := range f.posts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Like increments a post's like count.
func (f *MemoryFeed) Like(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.posts[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Likes++
	f.posts[id] = p
	return nil
}
