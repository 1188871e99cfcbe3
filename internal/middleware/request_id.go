package middleware

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yukikurage/taskboard-api/internal/constants"
)

// RequestID tags every request with a correlation id, reusing one sent by
// the caller. Requests that end in a server error are logged with it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.Must(uuid.NewV7()).String()
		}

		c.Set(constants.ContextKeyRequestID, requestID)
		c.Header(constants.RequestIDHeader, requestID)
		c.Next()

		if status := c.Writer.Status(); status >= 500 {
			log.Printf("request %s %s %s failed with %d: %v",
				requestID, c.Request.Method, c.Request.URL.Path, status, c.Errors.ByType(gin.ErrorTypePrivate))
		}
	}
}

// GetRequestID retrieves the correlation id for the current request
func GetRequestID(c *gin.Context) string {
	return c.GetString(constants.ContextKeyRequestID)
}
