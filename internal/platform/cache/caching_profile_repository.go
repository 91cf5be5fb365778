// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"auth_backend/internal/feature/profile/domain/entity"
	"auth_backend/internal/feature/profile/usecase"
)

// CachingProfileRepository decorates a ProfileRepository with Redis caching.
// Profiles are immutable after registration, so entries are only ever
// refreshed by TTL expiry. Only the sanitized projection is cached; no
// credential material passes through here.
type CachingProfileRepository struct {
	inner     usecase.ProfileRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingProfileRepository decorates a ProfileRepository with Redis
// caching. If ttl is 0, it defaults to 5 minutes. If namespace is empty,
// it uses "profiles".
func NewCachingProfileRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ProfileRepository, namespace string) *CachingProfileRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "profiles"
	}
	return &CachingProfileRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// FindByID retrieves a profile, checking the cache first then falling back
// to the database.
func (c *CachingProfileRepository) FindByID(ctx context.Context, id string) (*entity.Profile, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.cacheKey(id)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Profile
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates the cache key for a user's profile.
func (c *CachingProfileRepository) cacheKey(id string) string {
	return fmt.Sprintf("%s:%s", c.namespace, id)
}
