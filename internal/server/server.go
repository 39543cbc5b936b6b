// Package server exposes the csslint core over HTTP.
package server

import (
	"fmt"

	"github.com/gin-gonic/gin"

	csslint "github.com/bearholmes/mongmung-csslint-server"
)

// Config holds the server settings resolved at startup.
type Config struct {
	Port        int
	Environment string
}

// Server wraps the gin router and its configuration.
type Server struct {
	router *gin.Engine
	cfg    Config
}

// New builds a fully wired server: middleware, routes and handlers.
func New(cfg Config, linter *csslint.Linter) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), AccessLog(), Metrics())

	handlers := NewHandlers(linter, cfg.Environment)
	RegisterRoutes(router, handlers)

	return &Server{router: router, cfg: cfg}
}

// Router returns the underlying gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run blocks serving HTTP on the configured port.
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%d", s.cfg.Port))
}

// RegisterRoutes registers the public surface with the router.
//
//	GET  /        - static banner
//	GET  /health  - liveness with uptime
//	GET  /metrics - Prometheus exposition
//	POST /lint    - lint request
func RegisterRoutes(router *gin.Engine, h *Handlers) {
	router.GET("/", h.HandleBanner)
	router.GET("/health", h.HandleHealth)
	router.GET("/metrics", MetricsHandler())
	router.POST("/lint", h.HandleLint)
	router.NoRoute(h.HandleNotFound)
}
