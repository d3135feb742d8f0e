package main

import (
	"io"
	"log"

	"github.com/labstack/echo/v4"

	"github.com/sajidul-dev/adboard/backend/internal/router"
	"github.com/sajidul-dev/adboard/backend/internal/store"
	"github.com/sajidul-dev/adboard/backend/pkg/config"
	"github.com/sajidul-dev/adboard/backend/pkg/validators"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize the collection store
	st, err := store.New(store.Config{
		Backend:         cfg.StoreBackend,
		DataDir:         cfg.DataDir,
		MongoURI:        cfg.MongoURI,
		MongoDatabase:   cfg.MongoDatabase,
		PostgresConnStr: cfg.PostgresConnStr,
	})
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	if closer, ok := st.(io.Closer); ok {
		defer closer.Close()
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, st)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
