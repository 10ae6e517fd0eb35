package github

import (
	"context"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/wttj/ic-metrics/internal/app"
)

// CachedClient wraps a github client with a caching layer for repository
// detail lookups. The name-based discovery strategies resolve the same
// repositories over and over, so a short lived cache saves a request per hit.
type CachedClient struct {
	app.GithubClient
	repoCache *lru.Cache
	ttl       time.Duration
}

// NewCachedClient creates new CachedClient instance.
func NewCachedClient(client app.GithubClient, size int, ttl time.Duration) (*CachedClient, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}
	repoCache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for repositories: %w", err)
	}

	return &CachedClient{
		GithubClient: client,
		repoCache:    repoCache,
		ttl:          ttl,
	}, nil
}

// RepositoryByName returns the canonical repository object for a name,
// served from cache when a fresh entry exists.
func (c *CachedClient) RepositoryByName(ctx context.Context, name string) (app.Repository, error) {
	if val, ok := c.repoCache.Get(name); ok {
		entry := val.(repoCacheEntry)
		if entry.created.Add(c.ttl).After(time.Now()) {
			return entry.repo, nil
		}
	}

	repo, err := c.GithubClient.RepositoryByName(ctx, name)
	if err != nil {
		return repo, err
	}

	c.repoCache.Add(name, repoCacheEntry{
		created: time.Now(),
		repo:    repo,
	})

	return repo, nil
}

type repoCacheEntry struct {
	created time.Time
	repo    app.Repository
}
