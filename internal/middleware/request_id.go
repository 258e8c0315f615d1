package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is the response header carrying the per-request ID
const RequestIDHeader = "X-Request-ID"

// RequestID assigns each request a UUID, reusing the client's value when one
// is supplied, and echoes it in the response for log correlation.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set("requestId", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
