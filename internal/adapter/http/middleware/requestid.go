package middleware

import (
	"barcraft/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID echoes an inbound x-request-id (or mints one) and stores it on
// the request context so outbound calls can propagate it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(pkg.HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Request = c.Request.WithContext(pkg.WithRequestID(c.Request.Context(), rid))
		c.Writer.Header().Set(pkg.HeaderRequestID, rid)
		c.Next()
	}
}
