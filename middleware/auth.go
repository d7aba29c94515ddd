package middleware

import (
	"net/http"
	"strings"

	"thinkscope-cms/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware gates the admin surface behind a bearer session token.
// Verification re-checks the user's current state, not just the token.
func AuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Bearer token required"})
			c.Abort()
			return
		}

		user, err := authService.VerifySession(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set("email", user.Email)
		c.Set("role", user.Role)

		c.Next()
	}
}
