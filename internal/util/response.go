package util

import "github.com/gin-gonic/gin"

// Error writes the API's error payload: {"error": msg}.
func Error(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, gin.H{"error": msg})
}

// Message writes a plain informational payload: {"message": msg}.
func Message(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, gin.H{"message": msg})
}
