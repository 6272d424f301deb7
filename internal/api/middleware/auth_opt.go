package middleware

import (
	"context"

	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/pkg/consts"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/pkg/session"

	"github.com/gin-gonic/gin"
)

// AuthOptionalMiddleware resolves the session if present; anonymous
// requests pass through with no session user set.
func AuthOptionalMiddleware(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(consts.SessionCookieName)
		if err != nil || sessionID == "" {
			c.Next()
			return
		}

		user, err := store.Get(c.Request.Context(), sessionID)
		if err != nil || user == nil {
			c.Next()
			return
		}

		c.Set(consts.SessionUserKey, *user)
		c.Set(consts.SessionIDKey, sessionID)
		newCtx := context.WithValue(c.Request.Context(), consts.SessionUserKey, *user)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
