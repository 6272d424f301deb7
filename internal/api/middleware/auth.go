package middleware

import (
	"context"

	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/pkg/consts"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/pkg/response"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/pkg/session"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the session cookie and injects the session
// user into the gin and request contexts. Requests without a live
// session are rejected.
func AuthMiddleware(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(consts.SessionCookieName)
		if err != nil || sessionID == "" {
			response.Fail(c, response.Unauthorized, service.ErrUnauthenticated.Error())
			c.Abort()
			return
		}

		user, err := store.Get(c.Request.Context(), sessionID)
		if err != nil {
			response.Fail(c, response.InternalServerError, service.UnExpectedError.Error())
			c.Abort()
			return
		}
		if user == nil {
			response.Fail(c, response.Unauthorized, service.ErrUnauthenticated.Error())
			c.Abort()
			return
		}

		// Sliding expiration: any authenticated request extends the session.
		if err := store.Refresh(c.Request.Context(), sessionID); err != nil {
			response.Fail(c, response.InternalServerError, service.UnExpectedError.Error())
			c.Abort()
			return
		}

		c.Set(consts.SessionUserKey, *user)
		c.Set(consts.SessionIDKey, sessionID)

		newCtx := context.WithValue(c.Request.Context(), consts.SessionUserKey, *user)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
