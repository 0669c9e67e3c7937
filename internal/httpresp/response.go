package httpresp

import "github.com/gin-gonic/gin"

// OK writes a success payload merged with the given fields.
func OK(c *gin.Context, fields gin.H) {
	body := gin.H{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(200, body)
}

// Msg writes the plain {success, message} shape used by the booking
// and contact endpoints.
func Msg(c *gin.Context, message string) {
	OK(c, gin.H{"message": message})
}
