// utils/respond.go
package utils

import "github.com/gin-gonic/gin"

// RespondWithError writes the standard error envelope.
func RespondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// RespondWithMessage writes a confirmation envelope for soft deletes
// and other operations that return no entity.
func RespondWithMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}
