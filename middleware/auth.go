package middleware

import (
	"net/http"
	"strings"

	"pulselink/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthUserMiddleware gates the search, booking and chat-thread
// surfaces: a valid bearer token whose hash matches the cached hash for
// its subject. Anything else redirects the client to the login surface.
func JWTAuthUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(c)
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			unauthorized(c)
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			unauthorized(c)
			return
		}

		cached, ok := utils.GetAuthCacheClient().Get(utils.AuthCachePrefix + userID)
		if !ok || cached.(string) != utils.HashToken(tokenString) {
			unauthorized(c)
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":      "Insufficient authorization",
		"redirectTo": "login",
	})
}
