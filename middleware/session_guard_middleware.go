package middleware

import (
	"net/http"

	"frontend/session"

	"github.com/gin-gonic/gin"
)

// SessionGuard redirects unauthenticated requests to the signup screen before
// any upstream fetch can run. The identifier is resolved exactly once here and
// injected into the request context; handlers never read the cookie ad hoc.
func SessionGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := session.Get(c)
		if !ok {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Set(session.ContextKey, id)
		c.Next()
	}
}

// CurrentUser is a helper to extract the injected identifier safely.
func CurrentUser(c *gin.Context) (string, bool) {
	val, exists := c.Get(session.ContextKey)
	if !exists {
		return "", false
	}

	id, ok := val.(string)
	return id, ok
}
