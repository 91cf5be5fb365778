package token

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key under which AuthRequired stores the
// authenticated user's ID.
const ContextUserID = "userID"

// Cookie names the transport layer uses to carry the token pair. Defined
// here so the middleware and the auth handlers read and write the same
// cookies.
const (
	AccessCookieName  = "accessToken"
	RefreshCookieName = "refreshToken"
)

// AccessVerifier verifies an access token and returns the embedded user ID.
type AccessVerifier interface {
	VerifyAccess(tokenStr string) (string, error)
}

// AuthRequired returns a gin middleware that restricts access to requests
// carrying a valid access token. The token is read from the accessToken
// cookie first, then from an Authorization: Bearer header.
func AuthRequired(verifier AccessVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(AccessCookieName)
		if err != nil || tokenStr == "" {
			auth := c.GetHeader("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
				return
			}
			tokenStr = strings.TrimPrefix(auth, "Bearer ")
		}

		userID, err := verifier.VerifyAccess(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}
