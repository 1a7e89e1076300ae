package main

import (
	"log"

	"github.com/ecomeal/ecomeal/config"
	"github.com/ecomeal/ecomeal/internal/database"
)

// Applies the schema migrations and exits. Useful for deployments where the
// API process should not run DDL itself.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, err := database.New(cfg); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations applied")
}
