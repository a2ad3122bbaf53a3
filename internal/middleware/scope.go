package middleware

import "github.com/gin-gonic/gin"

// RequireScope lets the request through when the token carries one of scopes.
func RequireScope(scopes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		scope, exists := c.Get("clientScope")
		if !exists {
			c.AbortWithStatusJSON(403, gin.H{"error": "scope missing"})
			return
		}

		for _, allowed := range scopes {
			if scope == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(403, gin.H{"error": "forbidden"})
	}
}
