package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const sessionTokenKey = "session_token"

// SessionToken attaches a stable per-browser token to the request: an
// existing cookie is reused, anything absent or malformed is replaced by
// a fresh uuid. The cookie expiry slides on every request.
func SessionToken(cookieName string, ttl time.Duration, secure bool) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			token = uuid.New().String()
		} else if _, parseErr := uuid.Parse(token); parseErr != nil {
			token = uuid.New().String()
		}

		c.SetCookie(cookieName, token, int(ttl.Seconds()), "/", "", secure, true)
		c.Set(sessionTokenKey, token)

		c.Next()
	}
}

// Token returns the browser token attached by SessionToken, or "".
func Token(c *ginext.Context) string {
	return c.GetString(sessionTokenKey)
}
