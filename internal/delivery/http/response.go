package http

import "github.com/gin-gonic/gin"

// respondOK writes the success envelope every endpoint shares.
func respondOK(c *gin.Context, status int, message string, data any) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

// respondError writes the failure envelope.
func respondError(c *gin.Context, status int, err string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   err,
	})
}
