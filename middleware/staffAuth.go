package middleware

import (
	"net/http"
	"strings"

	"firstlighthrm/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthStaffMiddleware guards routes that mutate agency data. Tokens are
// issued by the agency's identity layer; this middleware only verifies the
// signature and extracts the staff member ID.
func JWTAuthStaffMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		staffID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || staffID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		c.Set("staffID", staffID)
		c.Next()
	}
}
