package util

import "github.com/gin-gonic/gin"

// Respond writes the uniform response envelope. Every success and
// failure crosses the boundary in this shape; internal error detail is
// logged, never returned.
func Respond(c *gin.Context, status int, message string, body any) {
	c.JSON(status, gin.H{
		"message": message,
		"body":    body,
	})
}

// Message is Respond with an empty body.
func Message(c *gin.Context, status int, message string) {
	Respond(c, status, message, gin.H{})
}
