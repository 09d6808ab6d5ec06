package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger writes an access line once the handler chain has finished, plus a
// second line carrying any errors handlers attached with c.Error.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		rid := GetRequestID(c)
		log.Printf("[HTTP] request_id=%s method=%s path=%s query=%q status=%d bytes=%d latency_ms=%.3f ip=%s",
			rid,
			c.Request.Method,
			c.Request.URL.Path,
			c.Request.URL.RawQuery,
			c.Writer.Status(),
			c.Writer.Size(),
			float64(time.Since(start).Microseconds())/1000.0,
			c.ClientIP(),
		)
		if len(c.Errors) > 0 {
			log.Printf("[HTTP] request_id=%s errors=%s", rid, c.Errors.String())
		}
	}
}
