package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/acquisitions-lab/acquisitions/internal/catalog"
	httperr "github.com/acquisitions-lab/acquisitions/internal/core/errors"
	"github.com/gin-gonic/gin"
)

// boundary turns errors recorded with c.Error, and panics, into JSON responses.
// Handlers that already wrote a response are left alone.
func boundary(production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("[Server] Panic recovered",
					"panic", rec,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"request_id", c.GetString(requestIDKey),
				)
				if !c.Writer.Written() {
					writeError(c, production, http.StatusInternalServerError, fmt.Errorf("panic: %v", rec))
				}
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var notReady *catalog.NotReadyError
		if errors.As(err, &notReady) {
			slog.Warn("[Server] Catalog not ready", "path", c.Request.URL.Path, "error", notReady.Err)
			c.AbortWithStatusJSON(notReady.StatusCode(), httperr.ErrorResponse{
				Error:   httperr.HttpCatalogNotReady,
				Details: notReady.Hint,
			})
			return
		}

		status := http.StatusInternalServerError
		var coder httperr.Coder
		if errors.As(err, &coder) {
			status = coder.StatusCode()
		}

		slog.Error("[Server] Request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"request_id", c.GetString(requestIDKey),
			"error", err,
		)
		writeError(c, production, status, err)
	}
}

// The error text is echoed for client errors, and for server errors outside production.
func writeError(c *gin.Context, production bool, status int, err error) {
	resp := httperr.ErrorResponse{Error: httperr.HttpInternalError}
	if status < http.StatusInternalServerError {
		resp.Error = http.StatusText(status)
		resp.Message = err.Error()
	} else if !production {
		resp.Message = err.Error()
	}
	c.AbortWithStatusJSON(status, resp)
}
