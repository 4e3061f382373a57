package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"profilecat/internal/config"
	"profilecat/internal/database"
	"profilecat/internal/logger"
	"profilecat/internal/router"
)

// @title           Profile Categories API
// @version         1.0
// @description     Bilingual (French/Arabic) categories attached to profiles, with per-language display fields and domain/item counts.

// @host      localhost:8080
// @BasePath  /api

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("failed to close database: %v", err)
		}
	}()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	engine := router.New(dbManager.DB(), router.Options{
		CORSOrigin: appConfig.CORSOrigin,
		Swagger:    appConfig.Env != "production",
	})

	log.Infof("Starting profile categories API on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return engine.Run(":" + appConfig.Port)
}
