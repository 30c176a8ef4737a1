package httpx

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"
	ctxRequestID    = "rid"
)

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(ctxRequestID, rid)
		c.Writer.Header().Set(HeaderRequestID, rid)
		c.Next()
	}
}

// RequestIDFrom returns the id stored by RequestID, or "-" outside of it.
func RequestIDFrom(c *gin.Context) string {
	if rid := c.GetString(ctxRequestID); rid != "" {
		return rid
	}
	return "-"
}

// Logger writes one access line per request to l, or to the standard logger
// when l is nil.
func Logger(l *log.Logger) gin.HandlerFunc {
	if l == nil {
		l = log.Default()
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		l.Printf("[http] rid=%s %s %s status=%d dur=%s",
			RequestIDFrom(c), c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
