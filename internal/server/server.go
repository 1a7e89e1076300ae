package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ecomeal/ecomeal/config"
	"github.com/ecomeal/ecomeal/internal/api"
	"github.com/ecomeal/ecomeal/internal/middleware"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New creates a new server instance wired with the API routes. The limiter
// may be nil when Redis is unavailable.
func New(cfg *config.Config, handler *api.MealHandler, limiter *middleware.RateLimiter) *Server {
	if config.GetEnvironment() == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(middleware.CORS(fmt.Sprintf("http://localhost:%s", cfg.WebPort)))
	router.Use(middleware.ErrorHandler())

	handler.RegisterRoutes(router, limiter)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:    fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort),
			Handler: router,
		},
	}
}

// Start runs the server until Shutdown is called or the listener fails.
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}
