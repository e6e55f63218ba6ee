// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"remindly/config"

	"github.com/go-redis/redis/v8"
)

// AuthCachePrefix namespaces auth entries in the auth cache DB.
const AuthCachePrefix = "auth:"

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
)

// InitRedis initializes both Redis clients. A failed ping leaves the client
// nil; callers treat a nil client as "cache disabled" and go straight to the
// database.
func InitRedis() {
	CacheClient = newClient(config.AppConfig.RedisCacheDB, "cache")
	AuthCacheClient = newClient(config.AppConfig.RedisAuthDB, "auth cache")
}

func newClient(db int, name string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Printf("WARNING: Redis (%s) unavailable, continuing without it: %v", name, err)
		return nil
	}
	return client
}

// GetCacheClient returns the generic cache client, which may be nil.
func GetCacheClient() *redis.Client {
	return CacheClient
}

// GetAuthCacheClient returns the Redis client for authorization caching,
// which may be nil.
func GetAuthCacheClient() *redis.Client {
	return AuthCacheClient
}
