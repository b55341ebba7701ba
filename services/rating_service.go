package services

import (
	"wikicms/models"
	"wikicms/repositories"
)

type RatingService interface {
	RateArticle(articleID, userID uint, rating int) error
	GetUserRating(articleID, userID uint) (*models.ArticleRating, error)
}

type ratingService struct {
	ratingRepo  repositories.RatingRepository
	articleRepo repositories.ArticleRepository
}

func NewRatingService(ratingRepo repositories.RatingRepository, articleRepo repositories.ArticleRepository) RatingService {
	return &ratingService{
		ratingRepo:  ratingRepo,
		articleRepo: articleRepo,
	}
}

func (s *ratingService) RateArticle(articleID, userID uint, rating int) error {
	if rating < 1 || rating > 5 {
		return models.ErrorValidation{Message: "rating must be between 1 and 5"}
	}

	exists, err := s.articleRepo.Exists(articleID)
	if err != nil {
		return err
	}
	if !exists {
		return models.ErrorNotFound{Message: "article not found"}
	}

	return s.ratingRepo.Upsert(&models.ArticleRating{
		ArticleID: articleID,
		UserID:    userID,
		Rating:    rating,
	})
}

// GetUserRating returns the caller's own rating so the client can show it
// pre-filled before re-rating.
func (s *ratingService) GetUserRating(articleID, userID uint) (*models.ArticleRating, error) {
	return s.ratingRepo.GetByArticleAndUser(articleID, userID)
}
