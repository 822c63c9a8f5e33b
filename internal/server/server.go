// Package server provides HTTP server setup and configuration.
package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sahanas/greet-service/internal/config"
	"github.com/sahanas/greet-service/internal/handlers"
)

// RequestIDMiddleware adds a unique request ID to each request
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Check if request ID already exists in header
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			// Generate new UUID for request ID
			requestID = uuid.New().String()
		}

		// Set request ID in context and response header
		c.Set("RequestID", requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()
	}
}

// Dependencies holds all dependencies needed to create a server
type Dependencies struct {
	Config *config.Config
}

// New creates a new Gin router with all routes configured
func New(deps *Dependencies) *gin.Engine {
	// Set Gin to release mode to disable ANSI colors in logs
	gin.SetMode(gin.ReleaseMode)

	// Use gin.New() instead of gin.Default() to have explicit control over middleware
	router := gin.New()

	// Add recovery middleware (without colored output)
	router.Use(gin.Recovery())

	// Add logger middleware without colored output, skipping the liveness probe
	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(_ gin.LogFormatterParams) string {
			// Custom log format without ANSI color codes
			return ""
		},
		Output:    nil,
		SkipPaths: []string{"/health"},
	}))

	// Add CORS middleware for web client support
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Encoding", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Add middlewares
	router.Use(RequestIDMiddleware())
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithDecompressFn(gzip.DefaultDecompressHandle)))

	// Initialize handlers
	greetHandler := handlers.NewGreetHandler(deps.Config.Greeting.DefaultLanguage)

	// Routes
	router.POST("/greet", greetHandler.Greet)
	router.GET("/health", handlers.HealthHandler)

	return router
}
