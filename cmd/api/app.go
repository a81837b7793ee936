package main

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"vietspot/internal/config"
	"vietspot/internal/search"
)

// App encapsulates application dependencies
type App struct {
	router        *gin.Engine
	logger        *slog.Logger
	searchService search.Service
	tracker       *search.Tracker
	cfg           *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	app := &App{
		router:        router,
		logger:        logger,
		searchService: search.NewSearchService(cfg, logger),
		tracker:       &search.Tracker{},
		cfg:           cfg,
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
