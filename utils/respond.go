// utils/respond.go
package utils

import "github.com/gin-gonic/gin"

// RespondWithError writes the standard error body {"error": message}.
func RespondWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}
