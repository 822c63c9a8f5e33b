// Package main is the entry point for the greeting service HTTP server.
package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/sahanas/greet-service/internal/config"
	"github.com/sahanas/greet-service/internal/server"
)

func main() {
	// Load .env if present, otherwise rely on the environment
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create server dependencies
	deps := &server.Dependencies{
		Config: cfg,
	}

	// Create and start the server
	srv := server.New(deps)

	log.Printf("Starting server on port %s", cfg.Server.Port)
	if err := srv.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
