package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	v1 "github.com/acquisitions-lab/acquisitions/internal/api/v1"
	"github.com/acquisitions-lab/acquisitions/internal/auth"
	"github.com/acquisitions-lab/acquisitions/internal/catalog"
	corecfg "github.com/acquisitions-lab/acquisitions/internal/core/config"
	"github.com/acquisitions-lab/acquisitions/internal/core/storage/postgres"
	"github.com/acquisitions-lab/acquisitions/internal/migrations"
	"github.com/acquisitions-lab/acquisitions/internal/security"
	"github.com/acquisitions-lab/acquisitions/internal/server"
	"github.com/acquisitions-lab/acquisitions/internal/telemetry"
	"github.com/gin-gonic/gin"
)

func main() {
	configPath := flag.String("config", "acquisitions.yaml", "Path to configuration file (optional)")
	flag.Parse()

	// 0. Bootstrap logger until the configured level is known
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.LogLevel()}
	if cfg.IsProduction() {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, handlerOpts)))
	} else {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, handlerOpts)))
	}
	slog.Info("Loaded config",
		"environment", cfg.Server.Environment,
		"addr", cfg.Addr(),
		"auto_bootstrap", cfg.Shop.AutoBootstrap,
		"security", cfg.SecurityActive(),
		"security_backend", cfg.Security.Backend,
	)
	if cfg.Auth.JWTSecret == corecfg.DefaultJWTSecret {
		slog.Warn("Using the default JWT secret; set JWT_SECRET before deploying")
	}

	// 2. Initialize Storage (PostgreSQL)
	db, err := postgres.Open(cfg.Database.DSN, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	// 2.1. Run Database Migrations
	if err := migrations.Run(db, cfg.Database.AutoMigrate); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}

	userStore, err := postgres.NewAdapter(db)
	if err != nil {
		slog.Error("Failed to initialize user store", "error", err)
		os.Exit(1)
	}
	// Closes the pool too.
	defer userStore.Close()

	// 3. Initialize Catalog (bootstraps lazily on first request)
	seeds, err := catalog.LoadSeedFile(cfg.Shop.SeedFile)
	if err != nil {
		slog.Error("Failed to load seed products", "path", cfg.Shop.SeedFile, "error", err)
		os.Exit(1)
	}
	catalogSvc := catalog.NewService(postgres.NewProductAdapter(db), cfg.Shop.AutoBootstrap, seeds)

	// 4. Initialize Auth
	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authn := auth.NewAuthenticator(tokens, cfg.Auth.CookieName)
	authHandler := auth.NewHandler(auth.NewService(userStore, tokens), authn, auth.CookieOptions{
		Name:   cfg.Auth.CookieName,
		Secure: cfg.SecureCookies(),
		MaxAge: tokens.TTL(),
	})

	// 5. Initialize Telemetry
	registry := telemetry.NewRegistry()
	metrics := telemetry.NewAggregator()

	// 6. Initialize Security Guard
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	apiMiddleware := []gin.HandlerFunc{authn.OptionalAuth()}
	if cfg.SecurityActive() {
		limiter, err := newLimiter(ctx, cfg)
		if err != nil {
			slog.Error("Failed to initialize rate limiter", "backend", cfg.Security.Backend, "error", err)
			os.Exit(1)
		}
		defer limiter.Close()

		decider := security.NewDecider(security.Policy{
			BlockedUserAgents: cfg.Security.BlockedUserAgents,
			Window:            cfg.Security.Window,
			Limits: map[v1.Role]int{
				v1.RoleAdmin: cfg.Security.Limits.Admin,
				v1.RoleUser:  cfg.Security.Limits.User,
				v1.RoleGuest: cfg.Security.Limits.Guest,
			},
		}, limiter)
		apiMiddleware = append(apiMiddleware, security.Middleware(decider, security.NewMetrics(registry)))
	} else {
		slog.Info("Security guard disabled", "environment", cfg.Server.Environment)
	}

	// 7. Initialize Server
	srv, err := server.New(server.Options{
		Addr:          cfg.Addr(),
		Mode:          cfg.Server.Mode,
		Production:    cfg.IsProduction(),
		CORSOrigins:   cfg.Server.CORSOrigins,
		MaxBodyBytes:  int64(cfg.Server.MaxBodySizeMB) << 20,
		DB:            db,
		Catalog:       catalogSvc,
		Metrics:       metrics,
		Registry:      registry,
		APIMiddleware: apiMiddleware,
	})
	if err != nil {
		slog.Error("Failed to initialize server", "error", err)
		os.Exit(1)
	}
	authHandler.RegisterRoutes(srv.API)
	catalogSvc.RegisterRoutes(srv.API, authn.Authenticate(), auth.RequireRole(v1.RoleAdmin))

	// 8. Start Services
	// Signal handler triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func newLimiter(ctx context.Context, cfg *corecfg.Config) (security.Limiter, error) {
	if cfg.Security.Backend != "redis" {
		return security.NewMemoryLimiter(), nil
	}
	client, err := security.DialRedis(ctx, cfg.Security.Redis.Addr, cfg.Security.Redis.Password, cfg.Security.Redis.DB)
	if err != nil {
		return nil, err
	}
	return security.NewRedisLimiter(client), nil
}
