package security

import (
	"log/slog"
	"net/http"

	"github.com/acquisitions-lab/acquisitions/internal/auth"
	httperr "github.com/acquisitions-lab/acquisitions/internal/core/errors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const msgGuardFailed = "Something went wrong with security middleware"

var denialMessages = map[Reason]string{
	ReasonBot:       "Automated requests are not allowed",
	ReasonShield:    "Request blocked by security policy",
	ReasonRateLimit: "Too many requests",
}

// Metrics counts denied requests by reason and role.
type Metrics struct {
	denials *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	auto := promauto.With(reg)
	return &Metrics{
		denials: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "acquisitions",
			Subsystem: "security",
			Name:      "denials_total",
			Help:      "Requests denied by the security guard",
		}, []string{"reason", "role"}),
	}
}

// Middleware runs every request through d. Mount it after auth.OptionalAuth so
// the caller's role selects the rate limit. m may be nil.
func Middleware(d Decider, m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := Request{
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			RawQuery:  c.Request.URL.RawQuery,
			Role:      auth.RoleOf(c),
		}

		decision, err := d.Decide(c.Request.Context(), req)
		if err != nil {
			slog.Error("[Security] Guard failed", "error", err, "path", req.Path)
			httperr.Abort(c, http.StatusInternalServerError, httperr.ErrorResponse{
				Error:   httperr.HttpInternalError,
				Message: msgGuardFailed,
			})
			return
		}

		if !decision.Denied {
			c.Next()
			return
		}

		if m != nil {
			m.denials.WithLabelValues(string(decision.Reason), string(req.Role)).Inc()
		}
		slog.Warn("[Security] Request denied",
			"reason", decision.Reason,
			"ip", req.IP,
			"user_agent", req.UserAgent,
			"method", req.Method,
			"path", req.Path,
			"role", req.Role,
		)

		message, ok := denialMessages[decision.Reason]
		if !ok {
			message = denialMessages[ReasonShield]
		}
		httperr.Abort(c, http.StatusForbidden, httperr.ErrorResponse{
			Error:   httperr.HttpForbidden,
			Message: message,
		})
	}
}
