package server

import (
	"auction-registry/utils"
	"time"

	"github.com/gin-gonic/gin"
)

const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware assigns a unique id to each request, honoring one
// supplied by the caller
func RequestIDMiddleware(c *gin.Context) {
	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		requestID = utils.GenerateRequestID()
	}
	c.Set("request_id", requestID)
	c.Writer.Header().Set(requestIDHeader, requestID)

	c.Next()
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
		"request_id": c.GetString("request_id"),
	})
}
