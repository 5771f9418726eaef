package httpapi

import (
	"time"

	"github.com/dmitrijs2005/geoportal/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// requestLogger tags every request with an id, echoed in X-Request-ID, and
// logs method, path, status and latency once the handler chain returns.
// A well-formed id sent by the client is reused.
func (s *HTTPServer) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)

		c.Next()

		s.logger.Info(c.Request.Context(), "request",
			requestIDKey, id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}

func (s *HTTPServer) requestLog(c *gin.Context) logging.Logger {
	return s.logger.With(requestIDKey, c.GetString(requestIDKey))
}
