package main

import (
	"log"

	"github.com/avoronin/pikcha/backend/internal/router"
	"github.com/avoronin/pikcha/backend/pkg/config"
	"github.com/avoronin/pikcha/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connections
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	// Application logger
	appLog := logrus.New()
	appLog.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Env == "development" {
		appLog.SetLevel(logrus.DebugLevel)
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, db.Mongo, appLog)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
