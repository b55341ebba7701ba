package repositories

import (
	"errors"
	"time"

	"wikicms/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository interface {
	// Upsert writes the rating for (article, user) atomically. A second
	// rating from the same user updates the existing row instead of
	// creating a duplicate.
	Upsert(rating *models.ArticleRating) error
	GetByArticleAndUser(articleID, userID uint) (*models.ArticleRating, error)
	Aggregate(articleID uint) (average float64, count int64, err error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Upsert(rating *models.ArticleRating) error {
	rating.CreatedAt = time.Now().UTC()
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "article_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "created_at"}),
	}).Create(rating).Error
}

func (r *ratingRepository) GetByArticleAndUser(articleID, userID uint) (*models.ArticleRating, error) {
	var rating models.ArticleRating
	err := r.db.Where("article_id = ? AND user_id = ?", articleID, userID).First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "rating not found"}
		}
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) Aggregate(articleID uint) (float64, int64, error) {
	var result struct {
		Average float64
		Count   int64
	}
	err := r.db.Model(&models.ArticleRating{}).
		Select("COALESCE(AVG(rating), 0) as average, COUNT(*) as count").
		Where("article_id = ?", articleID).
		Scan(&result).Error
	return result.Average, result.Count, err
}
