package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	providerRepo "pawhub/database/repository/provider"
	userRepo "pawhub/database/repository/user"
	"pawhub/models"
	"pawhub/utils"
)

// Auth cookie names per role.
const (
	UserTokenCookie   = "userToken"
	SellerTokenCookie = "sellerToken"
	AdminTokenCookie  = "adminToken"
)

// Context keys set by the auth middleware. Handlers read the resolved
// identity from the request context instead of touching cookies themselves.
const (
	CtxUserID = "userID"
	CtxRole   = "role"
)

type tokenHashLookup func(id string) (string, error)

// UserAuth authenticates pet-owner requests via the userToken cookie.
func UserAuth(repo userRepo.UserRepository) gin.HandlerFunc {
	return authRequired(UserTokenCookie, models.RoleUser, func(id string) (string, error) {
		u, err := repo.GetByID(id)
		if err != nil {
			return "", err
		}
		return u.Security.TokenHash, nil
	})
}

// ProviderAuth authenticates provider requests via the sellerToken cookie.
func ProviderAuth(repo providerRepo.ProviderRepository) gin.HandlerFunc {
	return authRequired(SellerTokenCookie, models.RoleSeller, func(id string) (string, error) {
		p, err := repo.GetByID(id)
		if err != nil {
			return "", err
		}
		return p.Security.TokenHash, nil
	})
}

// AdminAuth authenticates admin requests via the adminToken cookie.
func AdminAuth(repo userRepo.UserRepository) gin.HandlerFunc {
	return authRequired(AdminTokenCookie, models.RoleAdmin, func(id string) (string, error) {
		u, err := repo.GetByID(id)
		if err != nil {
			return "", err
		}
		return u.Security.TokenHash, nil
	})
}

func authRequired(cookieName, expectedRole string, lookup tokenHashLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(cookieName)
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Authentication required",
			})
			return
		}

		subject, role, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil || subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Invalid or expired token",
			})
			return
		}
		if role != expectedRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "Insufficient permissions",
			})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + subject
		ctx := context.Background()

		authCache := utils.GetAuthCacheClient()
		cachedHash, cacheErr := authCache.Get(ctx, cacheKey).Result()
		if cacheErr == nil {
			if cachedHash != computedHash {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"success": false,
					"error":   "Token has been revoked",
				})
				return
			}
			_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
			setIdentity(c, subject, role)
			return
		}
		if cacheErr != redis.Nil {
			utils.GetLogger().Warn("auth cache lookup failed, falling back to DB",
				zap.Error(cacheErr))
		}

		storedHash, err := lookup(subject)
		if err != nil || storedHash == "" || storedHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Token has been revoked",
			})
			return
		}
		_ = authCache.Set(ctx, cacheKey, computedHash, time.Hour).Err()
		setIdentity(c, subject, role)
	}
}

func setIdentity(c *gin.Context, subject, role string) {
	c.Set(CtxUserID, subject)
	c.Set(CtxRole, role)
	c.Next()
}
