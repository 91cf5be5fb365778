package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"auth_backend/internal/feature/profile/adapters"
	"auth_backend/internal/feature/profile/usecase"
	"auth_backend/internal/platform/cache"
)

// profileCacheTTL bounds how stale a cached profile read may be.
const profileCacheTTL = 5 * time.Minute

// NewProfileRepository creates a ProfileRepository implementation.
// If Redis is available, database reads are wrapped with the caching
// decorator; otherwise reads go straight to PostgreSQL.
func NewProfileRepository(rdb *redis.Client, db *gorm.DB) usecase.ProfileRepository {
	repo := adapters.NewProfilePostgres(db)
	if rdb != nil {
		return cache.NewCachingProfileRepository(rdb, profileCacheTTL, repo, "profiles")
	}
	return repo
}
