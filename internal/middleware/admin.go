package middleware

import (
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"
)

const adminTokenKey = "admin_token"

// AdminAuth requires a bearer token on panel routes. The token itself is
// not validated here: it is forwarded to the upstream registry, which owns
// the credential check.
func AdminAuth() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "missing bearer token"},
			)
			return
		}

		c.Set(adminTokenKey, strings.TrimSpace(token))

		c.Next()
	}
}

// AdminToken returns the bearer token attached by AdminAuth, or "".
func AdminToken(c *ginext.Context) string {
	return c.GetString(adminTokenKey)
}
