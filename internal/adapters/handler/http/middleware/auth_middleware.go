package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lucapasini/tracely/internal/core/services"
)

// ContextUserIDKey is where the middleware stores the authenticated
// user's ID; handlers read it back through GetUserID.
const ContextUserIDKey = "userID"

const (
	headerAuthorization = "Authorization"
	schemeBearer        = "Bearer"
)

// AuthMiddleware guards a route group with bearer-token auth. Token
// validation includes a live user lookup, so revoking an account takes
// effect immediately.
func AuthMiddleware(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader(headerAuthorization))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or malformed bearer token"})
			return
		}

		userID, err := tokens.ValidateToken(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session token"})
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

// bearerToken extracts the credential from an "Authorization: Bearer x"
// header. Anything other than exactly scheme plus token is rejected.
func bearerToken(header string) (string, bool) {
	fields := strings.Fields(header)
	if len(fields) != 2 || fields[0] != schemeBearer {
		return "", false
	}
	return fields[1], true
}

// GetUserID reads the authenticated user's ID set by AuthMiddleware.
func GetUserID(c *gin.Context) (string, bool) {
	id, exists := c.Get(ContextUserIDKey)
	if !exists {
		return "", false
	}
	idStr, ok := id.(string)
	return idStr, ok
}
