package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apihttp "github.com/officegate/officegate/internal/api/http"
	"github.com/officegate/officegate/internal/api/middleware"
	"github.com/officegate/officegate/internal/config"
	"github.com/officegate/officegate/internal/logging"
	"github.com/officegate/officegate/internal/monitoring"
	"github.com/officegate/officegate/internal/office"
	"github.com/officegate/officegate/internal/providers"
	"github.com/officegate/officegate/internal/service"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg      *config.Config
	log      *logging.Logger
	registry *service.Registry
	httpSrv  *http.Server
}

// New builds a fully wired server from configuration.
func New(cfg *config.Config, log *logging.Logger) (*Server, error) {
	if err := os.MkdirAll(cfg.Docs.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create document dir %s: %w", cfg.Docs.Dir, err)
	}
	resolver := office.NewResolver(cfg.Docs.Dir)

	registry := service.NewRegistry()
	for _, p := range []service.Provider{
		providers.NewWord(resolver),
		providers.NewSpreadsheet(resolver),
		providers.NewPresentation(resolver),
		providers.NewLibrary(resolver),
	} {
		if err := registry.Register(p); err != nil {
			return nil, fmt.Errorf("register provider: %w", err)
		}
	}
	stats := registry.Stats()
	log.Info("providers registered",
		zap.Any("services", stats["total_services"]),
		zap.Any("tools", stats["total_tools"]),
		zap.String("docs_dir", resolver.Base()))

	metrics := monitoring.NewMetrics()
	metrics.WatchLibrary(resolver.Base(), 30*time.Second)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit))
	}
	router.Use(monitoring.Middleware(metrics))

	handlers := apihttp.NewHandlers(registry, resolver, metrics, log)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/services", handlers.ListServices)
	router.POST("/services/discover", handlers.DiscoverServices)
	router.POST("/services/execute", handlers.ExecuteService)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	return &Server{
		cfg:      cfg,
		log:      log,
		registry: registry,
		httpSrv: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Registry exposes the service registry, mainly for tests.
func (s *Server) Registry() *service.Registry {
	return s.registry
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// Run starts the HTTP server and blocks until it stops.
func (s *Server) Run() error {
	s.log.Info("starting server", zap.String("addr", s.httpSrv.Addr))
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down server")
	return s.httpSrv.Shutdown(ctx)
}
