package config

import (
	"log"
	"os"

	"go.uber.org/zap"
)

// InitLogger builds the process-wide structured logger. Development mode is
// selected with APP_ENV=development.
func InitLogger() *zap.Logger {
	var logger *zap.Logger
	var err error

	if os.Getenv("APP_ENV") == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	return logger
}
