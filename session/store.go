// Package session wraps the single persisted identifier that proves a
// registered user: one cookie per browser profile, written once at signup.
package session

import "github.com/gin-gonic/gin"

const (
	CookieName = "userID"

	// ContextKey is where the guard middleware injects the resolved
	// identifier for downstream handlers.
	ContextKey = "session"

	maxAge = 365 * 24 * 60 * 60
)

// Get reads the stored identifier. Any cookie failure reads as logged out; no
// error surfaces to the views.
func Get(c *gin.Context) (string, bool) {
	id, err := c.Cookie(CookieName)
	if err != nil || id == "" {
		return "", false
	}
	return id, true
}

// Set persists the identifier. No expiry within the app's lifetime, no format
// validation.
func Set(c *gin.Context, id string) {
	c.SetCookie(CookieName, id, maxAge, "/", "", false, true)
}
