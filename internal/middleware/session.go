package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/happify-app/backend/internal/apierror"
	"github.com/happify-app/backend/internal/logger"
	"github.com/happify-app/backend/pkg/happify"
)

// Session lifts the store's session cookie off the request and into the
// request context, so the happify client forwards it on every upstream call.
// When required is true, requests without a session are rejected with a 401
// problem; otherwise they proceed anonymously.
func Session(required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(happify.SessionCookieName)
		if err != nil || cookie == "" {
			if required {
				logger.FromContext(c.Request.Context()).Debug("request rejected: missing session cookie")
				apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
				c.Abort()
				return
			}
			c.Next()
			return
		}

		ctx := happify.WithSession(c.Request.Context(), cookie)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
