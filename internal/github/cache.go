package github

import (
	"context"
	"sync"
	"time"

	"github.com/gujjar-pranav/portfolio/internal/domain"
)

// DefaultCacheTTL matches the site's 60-second revalidation window.
const DefaultCacheTTL = 60 * time.Second

// source is any upstream repository lister, normally *Client.
type source interface {
	List(ctx context.Context) ([]domain.RepoSummary, error)
}

// Cache memoizes the repository list for a fixed TTL. Concurrent callers
// during a refresh share one upstream request.
type Cache struct {
	upstream source
	ttl      time.Duration
	now      func() time.Time

	mu        sync.Mutex
	repos     []domain.RepoSummary
	fetchedAt time.Time
}

// NewCache wraps upstream with a TTL cache. A non-positive ttl falls back
// to DefaultCacheTTL.
func NewCache(upstream source, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		upstream: upstream,
		ttl:      ttl,
		now:      time.Now,
	}
}

// List returns the cached repositories, refreshing from upstream when the
// entry is missing or expired. A failed refresh serves the previous data
// if any exists; otherwise the error propagates.
func (c *Cache) List(ctx context.Context) ([]domain.RepoSummary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.fetchedAt.IsZero() && c.now().Sub(c.fetchedAt) < c.ttl {
		return c.snapshot(), nil
	}

	repos, err := c.upstream.List(ctx)
	if err != nil {
		if !c.fetchedAt.IsZero() {
			return c.snapshot(), nil
		}
		return nil, err
	}

	c.repos = repos
	c.fetchedAt = c.now()
	return c.snapshot(), nil
}

// Refresh forces a fetch regardless of TTL, used by the background
// refresher so interactive requests rarely pay for a cold fetch.
func (c *Cache) Refresh(ctx context.Context) error {
	repos, err := c.upstream.List(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.repos = repos
	c.fetchedAt = c.now()
	return nil
}

func (c *Cache) snapshot() []domain.RepoSummary {
	out := make([]domain.RepoSummary, len(c.repos))
	copy(out, c.repos)
	return out
}
