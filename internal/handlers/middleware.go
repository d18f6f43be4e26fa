package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ndelacroix/meetings-api/pkg/auth"
)

// UsernameKey is the context key under which RequireToken stores the
// authenticated username.
const UsernameKey = "authUsername"

// RequireToken guards mutating routes. The token travels as a request
// parameter named "token" and is checked before any field validation; a
// missing, forged or expired token yields 403.
func RequireToken(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := lookupParam(c, "token")
		if !ok || strings.TrimSpace(token) == "" {
			respondError(c, http.StatusForbidden, "you must provide a valid identification token")
			c.Abort()
			return
		}
		username, err := tokens.Verify(token)
		if err != nil {
			msg := "invalid or expired token"
			if errors.Is(err, auth.ErrTokenExpired) {
				msg = "the token validity period has expired"
			}
			respondError(c, http.StatusForbidden, msg)
			c.Abort()
			return
		}
		c.Set(UsernameKey, username)
		c.Next()
	}
}
