package telemetry

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Middleware times each request from entry until the rest of the chain has written
// the response, then records it under the matched route template.
// Mount it before every other middleware so their time is included.
func Middleware(agg *Aggregator) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// FullPath is empty when no route matched; Observe maps that to UnknownRoute.
		agg.Observe(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start).Seconds())
	}
}
