package telemetry

import (
	"log/slog"
	"net/http"

	httperr "github.com/acquisitions-lab/acquisitions/internal/core/errors"
	"github.com/gin-gonic/gin"
)

// Renderer produces the text exposition served on /metrics.
type Renderer interface {
	Render() (string, error)
}

// Handler serves the aggregator exposition. The body is rendered fully before any
// header is written so a failure can still answer 503.
func Handler(r Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := r.Render()
		if err != nil {
			slog.Error("[Telemetry] Failed to render metrics", "error", err)
			c.JSON(http.StatusServiceUnavailable, httperr.ErrorResponse{Error: httperr.HttpMetricsUnavailable})
			return
		}

		c.Header("Cache-Control", "no-cache")
		c.Data(http.StatusOK, ContentType, []byte(body))
	}
}
