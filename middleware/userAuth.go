package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	userRepo "remindly/database/repository/user"
	"remindly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
)

// JWTAuthUserMiddleware resolves the bearer token to an existing user and
// stores the user ID in the request context. A missing, malformed or expired
// token, or a token for a user that no longer exists, aborts with 401.
func JWTAuthUserMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized, no token"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized, no token"})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized, token failed"})
			return
		}

		// Fast path: the auth cache remembers recently resolved users so the
		// gate doesn't hit Mongo on every request.
		cacheKey := utils.AuthCachePrefix + userID
		authCache := utils.GetAuthCacheClient()
		if authCache != nil {
			if _, err := authCache.Get(ctx, cacheKey).Result(); err == nil {
				_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
				c.Set("userID", userID)
				c.Next()
				return
			} else if err != redis.Nil {
				log.Printf("WARNING: Error retrieving auth cache key: %v. Falling back to DB lookup.", err)
			}
		}

		// Cache miss: confirm the user still exists.
		usr, err := users.GetByIDWithProjection(userID, bson.M{"id": 1})
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized, token failed"})
			return
		}

		if authCache != nil {
			_ = authCache.Set(ctx, cacheKey, "1", time.Hour).Err()
		}

		c.Set("userID", userID)
		c.Next()
	}
}
