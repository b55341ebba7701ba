package repositories

import (
	"wikicms/models"

	"gorm.io/gorm"
)

type ImageRepository interface {
	Create(image *models.ArticleImage) error
	ListByArticle(articleID uint) ([]models.ArticleImage, error)
}

type imageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) Create(image *models.ArticleImage) error {
	return r.db.Create(image).Error
}

func (r *imageRepository) ListByArticle(articleID uint) ([]models.ArticleImage, error) {
	var images []models.ArticleImage
	err := r.db.Where("article_id = ?", articleID).Find(&images).Error
	return images, err
}
