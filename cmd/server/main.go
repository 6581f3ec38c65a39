package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/rosterdb/rosterdb/config"
	"github.com/rosterdb/rosterdb/internal/api"
	"github.com/rosterdb/rosterdb/internal/api/handlers"
	"github.com/rosterdb/rosterdb/internal/api/middleware"
	"github.com/rosterdb/rosterdb/internal/core/export"
	"github.com/rosterdb/rosterdb/internal/core/roster"
	"github.com/rosterdb/rosterdb/internal/core/validation"
	"github.com/rosterdb/rosterdb/internal/storage/postgres"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Validate critical configuration
	if cfg.Auth.Secret == "" && cfg.Auth.APIKeyHash == "" {
		log.Fatalf("AUTH_SECRET or API_KEY_HASH environment variable is required")
	}

	// Connect to database
	db, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Println("Connected to database")

	// Initialize core services
	rosterRepo := roster.NewRepository(db)
	validator := validation.NewValidator()
	rosterService := roster.NewService(rosterRepo, validator)
	exportService := export.NewService(rosterService, cfg.Export.Dir)

	// Initialize handlers
	playerHandler := handlers.NewPlayerHandler(rosterService)
	exportHandler := handlers.NewExportHandler(exportService)
	authMiddleware := middleware.NewAuthMiddleware(&cfg.Auth)

	// Setup router
	router := api.NewRouter(authMiddleware, playerHandler, exportHandler, &cfg.Export)
	engine := router.Setup(cfg.Server.Mode)

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		db.Close()
		os.Exit(0)
	}()

	// Start server
	log.Printf("Starting server on port %s", cfg.Server.Port)
	if err := engine.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
