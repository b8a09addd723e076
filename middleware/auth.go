package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"aurora-backend/auth"
	"aurora-backend/models"
	"aurora-backend/repositories"
	"aurora-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const principalKey = "principal"

// UserCache keeps principal lookups off the users table for the cache
// TTL. A nil cache is valid and falls through to the repository.
type UserCache interface {
	GetUser(ctx context.Context, id string) (*models.User, bool)
	SetUser(ctx context.Context, user *models.User)
}

type redisUserCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisUserCache(client *redis.Client, ttl time.Duration) UserCache {
	return &redisUserCache{client: client, ttl: ttl}
}

func (c *redisUserCache) key(id string) string { return "user:" + id }

func (c *redisUserCache) GetUser(ctx context.Context, id string) (*models.User, bool) {
	payload, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		return nil, false
	}
	var user models.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, false
	}
	return &user, true
}

func (c *redisUserCache) SetUser(ctx context.Context, user *models.User) {
	payload, err := json.Marshal(user)
	if err != nil {
		return
	}
	c.client.Set(ctx, c.key(user.ID), payload, c.ttl)
}

// RequireSession resolves the caller's principal from the bearer
// token and loads the backing user row. No session means 401; a
// disabled or deleted account is treated the same.
func RequireSession(issuer *auth.Issuer, users repositories.UserRepository, cache UserCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}
		if len(tokenString) > 7 && strings.EqualFold(tokenString[0:6], "BEARER") {
			tokenString = tokenString[7:]
		}

		claims, err := issuer.Parse(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		ctx := c.Request.Context()
		var user *models.User
		if cache != nil {
			if cached, ok := cache.GetUser(ctx, claims.Subject); ok {
				user = cached
			}
		}
		if user == nil {
			user, err = users.FindByID(ctx, claims.Subject)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
				return
			}
			if cache != nil {
				cache.SetUser(ctx, user)
			}
		}

		if !user.Enabled || user.Deleted {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account disabled"})
			return
		}

		SetPrincipal(c, auth.Principal{ID: user.ID, Email: user.Email, Role: user.Role})
		c.Next()
	}
}

// SetPrincipal attaches the principal to the request. RequireSession
// uses it on the live path; handler tests use it directly.
func SetPrincipal(c *gin.Context, principal auth.Principal) {
	c.Set(principalKey, principal)
}

// Principal returns the authenticated principal set by RequireSession.
func Principal(c *gin.Context) (auth.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return auth.Principal{}, false
	}
	principal, ok := value.(auth.Principal)
	return principal, ok
}

// Authorize evaluates the shared authorization predicate for the
// request's principal. Handlers behind it never re-check roles.
func Authorize(resource auth.Resource, action auth.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := Principal(c)
		if !ok {
			utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}
		if !auth.Authorize(principal.Role, resource, action) {
			utils.RespondWithError(c, http.StatusForbidden, "Forbidden")
			c.Abort()
			return
		}
		c.Next()
	}
}
