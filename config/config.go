package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

var (
	Port          string
	DatabaseURL   string
	UploadDir     string
	JWTSecret     []byte
	JWTExpiration = 24 * time.Hour
)

// LoadEnv reads the .env file if present and populates the package
// variables from the environment.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	Port = getEnv("PORT", "8080")
	DatabaseURL = getEnv("DB_URL", "host=localhost port=5432 user=wiki password=wiki dbname=wiki_db sslmode=disable")
	UploadDir = getEnv("UPLOAD_DIR", "uploads")

	secret := getEnv("JWT_SECRET", "change-this-in-production")
	JWTSecret = []byte(secret)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
