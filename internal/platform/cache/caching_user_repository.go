// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"goldhouse_backend/internal/feature/users/domain/entity"
	"goldhouse_backend/internal/feature/users/usecase"
)

// CachingUserRepository decorates a UserRepository with Redis caching of
// username lookups, the hot path of per-request identity resolution.
// Mutations invalidate the affected entry so a deleted or updated account
// is observed immediately, not only after the cache TTL. The TTL must in
// any case stay well under the token lifetime.
type CachingUserRepository struct {
	inner     usecase.UserRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.UserRepository = (*CachingUserRepository)(nil)

// NewCachingUserRepository decorates a UserRepository with Redis caching.
// If ttl is 0, it defaults to 30 seconds. If namespace is empty, it uses
// "identity". A nil Redis client turns the decorator into a passthrough.
func NewCachingUserRepository(rdb *redis.Client, ttl time.Duration, inner usecase.UserRepository, namespace string) *CachingUserRepository {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	if namespace == "" {
		namespace = "identity"
	}
	return &CachingUserRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// FindByUsername retrieves a user, checking the cache first and falling
// back to the database. Only successful lookups are cached; not-found is
// always re-checked against the store.
func (c *CachingUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if c.rdb == nil {
		return c.inner.FindByUsername(ctx, username)
	}

	key := c.cacheKey(username)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var u entity.User
		if err := json.Unmarshal(b, &u); err == nil {
			return &u, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	u, err := c.inner.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(u); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return u, nil
}

// Create inserts the user and leaves the cache untouched; a fresh username
// cannot have a cached entry, and not-found results are never cached.
func (c *CachingUserRepository) Create(ctx context.Context, u *entity.User) error {
	return c.inner.Create(ctx, u)
}

// List always reads from the database.
func (c *CachingUserRepository) List(ctx context.Context) ([]entity.User, error) {
	return c.inner.List(ctx)
}

// FindByID always reads from the database.
func (c *CachingUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	return c.inner.FindByID(ctx, id)
}

// Save persists the change and invalidates the cached entry. The prior row
// is read first so that a username change also drops the entry under the
// old name; otherwise a token bearing the old subject would keep resolving
// until the TTL expires.
func (c *CachingUserRepository) Save(ctx context.Context, u *entity.User) error {
	var prevUsername string
	if c.rdb != nil {
		if prev, err := c.inner.FindByID(ctx, u.ID); err == nil {
			prevUsername = prev.Username
		}
	}
	if err := c.inner.Save(ctx, u); err != nil {
		return err
	}
	c.invalidate(ctx, u.Username)
	if prevUsername != "" && prevUsername != u.Username {
		c.invalidate(ctx, prevUsername)
	}
	return nil
}

// Delete looks up the username first so the cached identity can be dropped
// together with the row. A token for the deleted account then fails
// resolution on the very next request.
func (c *CachingUserRepository) Delete(ctx context.Context, id uint) error {
	var username string
	if c.rdb != nil {
		if u, err := c.inner.FindByID(ctx, id); err == nil {
			username = u.Username
		}
	}
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	if username != "" {
		c.invalidate(ctx, username)
	}
	return nil
}

// invalidate drops the cache entry for a username (best effort).
func (c *CachingUserRepository) invalidate(ctx context.Context, username string) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.cacheKey(username)).Err()
}

// cacheKey generates the Redis key for a username lookup.
func (c *CachingUserRepository) cacheKey(username string) string {
	return fmt.Sprintf("%s:%s", c.namespace, safe(username))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
