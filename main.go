package main

import (
	"buggyapi/internal/config"
	"buggyapi/internal/controllers"
	"buggyapi/internal/repository"
	"buggyapi/internal/router"
	"buggyapi/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// Initialize the in-memory directory and its service
	userRepo := repository.NewUserRepository()
	directoryService := service.NewDirectoryService(userRepo)

	// Initialize controllers
	userController := controllers.NewUserController(directoryService)
	catalogController := controllers.NewCatalogController()

	r := router.New(cfg, logger, userController, catalogController)

	logger.WithField("port", cfg.Port).Info("fault oracle listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.WithError(err).Fatal("server exited")
	}
}
