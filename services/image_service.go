package services

import (
	"io"
	"path/filepath"
	"strings"

	"wikicms/models"
	"wikicms/repositories"
	"wikicms/storage"

	"go.uber.org/zap"
)

type ImageService interface {
	UploadImage(articleID uint, filename string, reader io.Reader, caption, altText string) (*models.ArticleImage, error)
	ListImages(articleID uint) ([]models.ArticleImage, error)
}

type imageService struct {
	imageRepo   repositories.ImageRepository
	articleRepo repositories.ArticleRepository
	store       storage.BlobStore
	logger      *zap.Logger
}

func NewImageService(imageRepo repositories.ImageRepository, articleRepo repositories.ArticleRepository, store storage.BlobStore, logger *zap.Logger) ImageService {
	return &imageService{
		imageRepo:   imageRepo,
		articleRepo: articleRepo,
		store:       store,
		logger:      logger,
	}
}

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

func (s *imageService) UploadImage(articleID uint, filename string, reader io.Reader, caption, altText string) (*models.ArticleImage, error) {
	exists, err := s.articleRepo.Exists(articleID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.ErrorNotFound{Message: "article not found"}
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExts[ext] {
		return nil, models.ErrorValidation{Message: "unsupported image format"}
	}

	path, err := s.store.Save(reader, ext)
	if err != nil {
		return nil, err
	}

	image := &models.ArticleImage{
		ArticleID: articleID,
		ImagePath: path,
		Caption:   caption,
		AltText:   altText,
	}
	if err := s.imageRepo.Create(image); err != nil {
		// The written blob stays behind; orphaned files are not cleaned up.
		s.logger.Warn("image record not written, blob orphaned",
			zap.String("path", path),
			zap.Error(err))
		return nil, err
	}

	return image, nil
}

func (s *imageService) ListImages(articleID uint) ([]models.ArticleImage, error) {
	exists, err := s.articleRepo.Exists(articleID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.ErrorNotFound{Message: "article not found"}
	}
	return s.imageRepo.ListByArticle(articleID)
}
