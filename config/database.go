package config

import (
	"log"

	"wikicms/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB connects to Postgres and migrates the schema.
func InitDB() *gorm.DB {
	db, err := gorm.Open(postgres.Open(DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	return db
}

// Migrate creates or updates the schema for all entities. The test suite
// calls it against sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Article{},
		&models.Chapter{},
		&models.ArticleEdit{},
		&models.PendingArticleEdit{},
		&models.ArticleRating{},
		&models.Comment{},
		&models.ArticleImage{},
	)
}
