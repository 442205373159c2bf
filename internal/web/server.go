// Package web serves the collected series over a JSON HTTP API.
package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/jorik41/entsoe-collector/internal/coordinator"
	middleware "github.com/jorik41/entsoe-collector/internal/web/middlewares"
)

// ServerConfig holds configuration options for the HTTP server.
type ServerConfig struct {
	Host           string
	Port           int
	CacheSize      int           // Size of the LRU response cache
	CacheTTL       time.Duration // Lifetime of a cached response
	RateLimit      float64       // Requests per second
	RateLimitBurst int           // Maximum burst size for rate limiting
}

// DefaultServerConfig returns a ServerConfig with sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host:           "0.0.0.0",
		Port:           8080,
		CacheSize:      1000,
		CacheTTL:       time.Minute,
		RateLimit:      5.0, // 5 requests per second
		RateLimitBurst: 10,  // Burst of 10 requests
	}
}

// Server exposes the registered targets over HTTP.
type Server struct {
	engine  *gin.Engine
	log     *logrus.Logger
	targets map[string]coordinator.Target
	keys    []string
	http    *http.Server
}

// NewServer wires the middleware chain and routes. Targets are listed in
// registration order.
func NewServer(cfg ServerConfig, log *logrus.Logger, registry *prometheus.Registry, targets []coordinator.Target) (*Server, error) {
	if err := middleware.InitializeCache(cfg.CacheSize, cfg.CacheTTL); err != nil {
		return nil, err
	}
	middleware.InitializeRateLimiter(cfg.RateLimit, cfg.RateLimitBurst)

	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests per route and status.",
	}, []string{"route", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency per route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
	registry.MustRegister(requests, latency)

	s := &Server{
		engine:  gin.New(),
		log:     log,
		targets: make(map[string]coordinator.Target, len(targets)),
	}
	for _, target := range targets {
		key := target.Key()
		if _, dup := s.targets[key]; dup {
			return nil, fmt.Errorf("duplicate target key %q", key)
		}
		s.targets[key] = target
		s.keys = append(s.keys, key)
	}

	s.engine.Use(gin.Recovery())
	s.engine.Use(middleware.RequestID())
	s.engine.Use(middleware.RateLimiting())
	s.engine.Use(middleware.Logging(log))
	s.engine.Use(middleware.NewMetrics(requests, latency))

	// Caching stays on the API group; health and metrics are always live.
	api := s.engine.Group("/api/v1", middleware.Caching())
	{
		api.GET("/targets", s.listTargets)
		api.GET("/targets/:key", s.getTarget)
		api.GET("/targets/:key/timeline", s.getTimeline)
		api.GET("/targets/:key/categories", s.getCategories)
	}

	s.engine.GET("/healthz", s.health)
	s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	s.http = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler: s.engine,
	}
	return s, nil
}

// Handler returns the routing tree, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until the listener fails or Shutdown is called.
func (s *Server) Run() error {
	s.log.WithField("addr", s.http.Addr).Info("HTTP server listening")
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
