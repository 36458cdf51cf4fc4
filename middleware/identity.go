// Package middleware carries the gin middleware for the API.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// userIDKey is the context key the resolved user id is stored under.
const userIDKey = "currentUserID"

// UserIDHeader is the header the upstream identity provider sets after
// authenticating the request. This service trusts it as a stable user id and
// performs no identity resolution of its own.
const UserIDHeader = "X-User-ID"

// RequireUser rejects requests without a resolved user id and stores the id
// in the request context for handlers.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(UserIDHeader)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user id set by RequireUser.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
