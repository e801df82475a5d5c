package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestLogger returns a Gin middleware that logs one structured line per
// request, tagged with the request id set by RequestID.
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		entry := log.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
			"request_id": GetRequestID(c),
		})

		if c.Writer.Status() >= 500 {
			entry.Error("request failed")
			return
		}
		entry.Info("request handled")
	}
}
