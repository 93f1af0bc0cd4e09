// Package response fixes the wire shapes: bare JSON payloads on success and
// a single-field {"detail": ...} body on failure.
package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, data interface{}) {
	c.JSON(200, data)
}

func Detail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"detail": message})
}
