package middleware

import "github.com/gin-gonic/gin"

// SessionKey is the gin context key the resolved session identifier is
// stored under.
const SessionKey = "session_id"

const (
	sessionCookie    = "session_id"
	sessionHeader    = "X-Session-Id"
	anonymousSession = "anonymous"
)

// Session resolves the opaque session identifier that scopes carts and order
// history: session cookie first, then the X-Session-Id header, then a fixed
// anonymous identifier. Cookie-less clients without the header all share the
// anonymous cart; that matches the demo scope and is deliberately not "fixed"
// here.
func Session(c *gin.Context) {
	if token, err := c.Cookie(sessionCookie); err == nil && token != "" {
		c.Set(SessionKey, token)
		c.Next()
		return
	}
	if token := c.GetHeader(sessionHeader); token != "" {
		c.Set(SessionKey, token)
		c.Next()
		return
	}
	c.Set(SessionKey, anonymousSession)
	c.Next()
}

// SessionID reads the identifier set by Session, falling back to the
// anonymous identifier when the middleware did not run.
func SessionID(c *gin.Context) string {
	if v, ok := c.Get(SessionKey); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return anonymousSession
}
