package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// RequestID tags each request with an id, reusing the caller's X-Request-ID
// when one is supplied.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// RequestIDFrom returns the id assigned by RequestID, or "" if absent.
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
