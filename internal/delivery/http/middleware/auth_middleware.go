package middleware

import (
	"context"
	"net/http"
	"strings"

	"go-jobswipe-backend/internal/delivery/http/response"
	"go-jobswipe-backend/internal/domain"
	"go-jobswipe-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and loads the caller's profile
// from the database. The profile (not the token) is the source of truth for
// the role, so a stale or tampered role claim never grants access.
func AuthMiddleware(tokens *token.Manager, profileRepo domain.ProfileRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		profile, err := profileRepo.GetByUserID(c.Request.Context(), claims.Subject)
		if err != nil {
			// Valid token but no profile means the identity is gone; every
			// identity is created with its profile in one transaction.
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}

		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, claims.Subject)
		ctx = context.WithValue(ctx, domain.KeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, domain.KeyProfile, profile)
		c.Request = c.Request.WithContext(ctx)

		c.Set(string(domain.KeyUserID), claims.Subject)
		c.Set(string(domain.KeyUserEmail), claims.Email)

		c.Next()
	}
}
