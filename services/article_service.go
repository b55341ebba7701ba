package services

import (
	"wikicms/models"
	"wikicms/repositories"

	"go.uber.org/zap"
)

type ArticleService interface {
	CreateArticle(req models.CreateArticleRequest, actor models.Actor) (*models.Article, error)
	GetArticle(id uint) (*models.Article, error)
	GetArticles(params models.ArticleListParams) ([]models.Article, int64, error)
	SearchArticles(params models.SearchParams) ([]models.Article, error)
	GetDomains() ([]string, error)
	DeleteArticle(id uint, actor models.Actor) error
}

type articleService struct {
	articleRepo repositories.ArticleRepository
	ratingRepo  repositories.RatingRepository
	commentRepo repositories.CommentRepository
	logger      *zap.Logger
}

func NewArticleService(articleRepo repositories.ArticleRepository, ratingRepo repositories.RatingRepository, commentRepo repositories.CommentRepository, logger *zap.Logger) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		ratingRepo:  ratingRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (s *articleService) CreateArticle(req models.CreateArticleRequest, actor models.Actor) (*models.Article, error) {
	chapters, err := ValidateChapters(req.Chapters)
	if err != nil {
		return nil, err
	}

	now := nowUTC()
	article := &models.Article{
		Title:          req.Title,
		Domain:         req.Domain,
		IsProtected:    req.IsProtected,
		AuthorID:       actor.AuthorID(), // nil for anonymous authors
		CreatedAt:      now,
		LastModifiedAt: now,
		Chapters:       chapters,
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	s.logger.Info("article created",
		zap.Uint("article_id", article.ID),
		zap.String("domain", article.Domain),
		zap.Bool("protected", article.IsProtected))

	return s.GetArticle(article.ID)
}

func (s *articleService) GetArticle(id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.fillDerivedStats(article); err != nil {
		return nil, err
	}

	return article, nil
}

func (s *articleService) GetArticles(params models.ArticleListParams) ([]models.Article, int64, error) {
	articles, total, err := s.articleRepo.GetList(params)
	if err != nil {
		return nil, 0, err
	}

	for i := range articles {
		if err := s.fillDerivedStats(&articles[i]); err != nil {
			return nil, 0, err
		}
	}

	return articles, total, nil
}

func (s *articleService) SearchArticles(params models.SearchParams) ([]models.Article, error) {
	if params.Query == "" {
		return []models.Article{}, nil
	}
	return s.articleRepo.Search(params)
}

func (s *articleService) GetDomains() ([]string, error) {
	return s.articleRepo.Domains()
}

func (s *articleService) DeleteArticle(id uint, actor models.Actor) error {
	if !actor.Authenticated || !actor.Role.Elevated() {
		return models.ErrorForbidden{Message: "only moderators can delete articles"}
	}

	if err := s.articleRepo.Delete(id); err != nil {
		return err
	}

	s.logger.Info("article deleted",
		zap.Uint("article_id", id),
		zap.Uint("moderator_id", actor.UserID))

	return nil
}

func (s *articleService) fillDerivedStats(article *models.Article) error {
	average, count, err := s.ratingRepo.Aggregate(article.ID)
	if err != nil {
		return err
	}
	article.AverageRating = average
	article.RatingCount = count

	comments, err := s.commentRepo.CountByArticle(article.ID)
	if err != nil {
		return err
	}
	article.CommentCount = comments

	return nil
}
