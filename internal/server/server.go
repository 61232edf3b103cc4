package server

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	httperr "github.com/acquisitions-lab/acquisitions/internal/core/errors"
	"github.com/acquisitions-lab/acquisitions/internal/telemetry"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// StatusReporter reports the catalog bootstrap state for /health.
type StatusReporter interface {
	Status() string
}

type Options struct {
	Addr        string
	Mode        string // debug | release | test
	Production  bool
	CORSOrigins []string
	// MaxBodyBytes caps request bodies. Zero disables the cap.
	MaxBodyBytes int64

	// DB is pinged by /health. Nil skips the check.
	DB      *sql.DB
	Catalog StatusReporter

	Metrics  *telemetry.Aggregator
	Registry *prometheus.Registry

	// APIMiddleware runs in front of every route registered on Server.API.
	APIMiddleware []gin.HandlerFunc
}

type Server struct {
	Engine *gin.Engine
	// API is the router feature packages mount their /api routes on.
	API  gin.IRouter
	Addr string

	db      *sql.DB
	catalog StatusReporter
	started time.Time
}

func New(opts Options) (*Server, error) {
	switch opts.Mode {
	case gin.DebugMode:
		gin.SetMode(gin.DebugMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := opts.Metrics
	if metrics == nil {
		metrics = telemetry.NewAggregator()
	}

	r := gin.New()
	r.Use(
		requestID(),
		telemetry.Middleware(metrics),
		accessLog(),
		boundary(opts.Production),
		securityHeaders(opts.Production),
		corsPolicy(opts.CORSOrigins),
		bodyLimit(opts.MaxBodyBytes),
	)

	s := &Server{
		Engine:  r,
		Addr:    opts.Addr,
		db:      opts.DB,
		catalog: opts.Catalog,
		started: time.Now(),
	}

	if err := registerPages(r); err != nil {
		return nil, err
	}

	r.GET("/health", s.healthHandler)
	r.GET("/metrics", telemetry.Handler(metrics))
	if opts.Registry != nil {
		r.GET("/metrics/runtime", telemetry.RuntimeHandler(opts.Registry))
	}

	s.API = r.Group("/", opts.APIMiddleware...)
	s.API.GET("/api", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Acquisitions API is running!"})
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, httperr.ErrorResponse{Error: httperr.HttpRouteNotFound})
	})

	return s, nil
}

func (s *Server) healthHandler(c *gin.Context) {
	resp := gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(s.started).Seconds(),
		"database":  "connected",
	}
	if s.catalog != nil {
		resp["catalog"] = s.catalog.Status()
	}

	if s.db == nil {
		resp["database"] = "not_configured"
		c.JSON(http.StatusOK, resp)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		slog.Error("[Server] Health check failed: database unreachable", "error", err)
		resp["status"] = "unhealthy"
		resp["database"] = "unreachable"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Run serves until ctx is cancelled, then drains in-flight requests for up to 5s.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("[Server] Starting HTTP server", "address", s.Addr)

	go func() {
		<-ctx.Done()
		slog.Info("[Server] Stopping HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("[Server] HTTP server forced to shutdown", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
