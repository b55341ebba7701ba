package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"wikicms/config"
	"wikicms/models"
	"wikicms/repositories"
	"wikicms/storage"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

type testEnv struct {
	db          *gorm.DB
	articleRepo repositories.ArticleRepository
	pendingRepo repositories.PendingEditRepository
	ratingRepo  repositories.RatingRepository
	commentRepo repositories.CommentRepository

	articles   ArticleService
	edits      EditService
	moderation ModerationService
	ratings    RatingService
	comments   CommentService
	images     ImageService
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	db := setupTestDB(t)
	articleRepo := repositories.NewArticleRepository(db)
	pendingRepo := repositories.NewPendingEditRepository(db)
	ratingRepo := repositories.NewRatingRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	imageRepo := repositories.NewImageRepository(db)
	log := zap.NewNop()

	blobStore, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	return &testEnv{
		db:          db,
		articleRepo: articleRepo,
		pendingRepo: pendingRepo,
		ratingRepo:  ratingRepo,
		commentRepo: commentRepo,
		articles:    NewArticleService(articleRepo, ratingRepo, commentRepo, log),
		edits:       NewEditService(articleRepo, pendingRepo, log),
		moderation:  NewModerationService(pendingRepo, articleRepo, log),
		ratings:     NewRatingService(ratingRepo, articleRepo),
		comments:    NewCommentService(commentRepo, articleRepo),
		images:      NewImageService(imageRepo, articleRepo, blobStore, log),
	}
}

func (e *testEnv) createUser(t *testing.T, username string, role models.UserRole) *models.User {
	t.Helper()

	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
		Role:     role,
	}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *testEnv) actorFor(user *models.User) models.Actor {
	return models.Actor{
		UserID:        user.ID,
		Username:      user.Username,
		Role:          user.Role,
		Authenticated: true,
	}
}

func (e *testEnv) createArticle(t *testing.T, title string, protected bool, chapters ...models.ChapterInput) *models.Article {
	t.Helper()

	if len(chapters) == 0 {
		chapters = []models.ChapterInput{{Title: "C1", Content: "hello"}}
	}
	article, err := e.articles.CreateArticle(models.CreateArticleRequest{
		Title:       title,
		Domain:      "History",
		IsProtected: protected,
		Chapters:    chapters,
	}, models.Actor{})
	require.NoError(t, err)
	return article
}

func (e *testEnv) articleChapterContents(t *testing.T, articleID uint) []string {
	t.Helper()

	article, err := e.articles.GetArticle(articleID)
	require.NoError(t, err)
	contents := make([]string, 0, len(article.Chapters))
	for _, ch := range article.Chapters {
		contents = append(contents, ch.Content)
	}
	return contents
}

func (e *testEnv) countEdits(t *testing.T, articleID uint) int64 {
	t.Helper()

	var count int64
	require.NoError(t, e.db.Model(&models.ArticleEdit{}).Where("article_id = ?", articleID).Count(&count).Error)
	return count
}
