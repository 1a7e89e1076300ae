package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ecomeal/ecomeal/config"
	"github.com/ecomeal/ecomeal/internal/api"
	"github.com/ecomeal/ecomeal/internal/database"
	"github.com/ecomeal/ecomeal/internal/middleware"
	"github.com/ecomeal/ecomeal/internal/server"
	"github.com/ecomeal/ecomeal/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// The rate limiter needs Redis; without it the API still serves, just
	// unthrottled.
	var limiter *middleware.RateLimiter
	if redisClient, err := database.NewRedisClient(cfg); err != nil {
		log.Printf("Redis unavailable, rate limiting disabled: %v", err)
	} else {
		limiter = middleware.NewGenerationRateLimiter(redisClient)
	}

	llm, err := service.NewGeminiService()
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}

	meals := service.NewMealService(db, llm)

	var archive *service.ArchiveService
	if s3Config, err := config.NewS3Config(context.Background(), cfg); err != nil {
		log.Printf("S3 unavailable, history archival disabled: %v", err)
	} else {
		archive = service.NewArchiveService(meals, s3Config)
	}

	srv := server.New(cfg, api.NewMealHandler(meals, archive), limiter)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		log.Println("Starting server...")
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
