package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"wikicms/models"

	"gorm.io/gorm"
)

// ArticleFields are the scalar article columns an accepted edit replaces.
type ArticleFields struct {
	Title       string
	Domain      string
	IsProtected bool
}

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	Exists(id uint) (bool, error)
	GetList(params models.ArticleListParams) ([]models.Article, int64, error)
	Search(params models.SearchParams) ([]models.Article, error)
	Domains() ([]string, error)
	Delete(id uint) error

	// ReplaceContent atomically swaps the article's chapter set, updates its
	// scalar fields and bumps last_modified_at. The update is conditional on
	// last_modified_at still matching expectedModified; a lost race surfaces
	// as ErrorConflict (or ErrorNotFound if the article is gone). A non-nil
	// edit is appended to the audit trail in the same transaction.
	ReplaceContent(articleID uint, expectedModified time.Time, fields ArticleFields, chapters []models.Chapter, edit *models.ArticleEdit) error

	GetEditByID(editID uint) (*models.ArticleEdit, error)
	GetEdits(articleID uint) ([]models.ArticleEdit, error)

	Count() (int64, error)
	CountProtected() (int64, error)
	CountByDomain() (map[string]int64, error)
	CountByAuthor(authorID uint) (int64, error)
	CountEdits() (int64, error)
	CountEditsByEditor(editorID uint) (int64, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").
		Preload("Chapters", func(db *gorm.DB) *gorm.DB {
			return db.Order("chapters.order_index asc")
		}).
		Preload("Images").
		Preload("Edits", func(db *gorm.DB) *gorm.DB {
			return db.Order("article_edits.edit_date desc")
		}).
		Preload("Edits.Editor").
		First(&article, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "article not found"}
		}
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *articleRepository) GetList(params models.ArticleListParams) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	query := r.db.Model(&models.Article{}).Preload("Author").
		Preload("Chapters", func(db *gorm.DB) *gorm.DB {
			return db.Order("chapters.order_index asc")
		})

	if params.Domain != "" {
		query = query.Where("domain = ?", params.Domain)
	}

	query.Count(&total)

	avgRating := "(SELECT COALESCE(AVG(rating), 0) FROM article_ratings WHERE article_ratings.article_id = articles.id)"

	switch params.SortOrder {
	case "oldest":
		query = query.Order("created_at asc")
	case "title":
		query = query.Order("title asc")
	case "title_desc":
		query = query.Order("title desc")
	case "rating":
		query = query.Order(fmt.Sprintf("%s desc", avgRating))
	case "rating_asc":
		query = query.Order(fmt.Sprintf("%s asc", avgRating))
	default: // newest
		query = query.Order("last_modified_at desc")
	}

	offset := (params.Page - 1) * params.Limit
	err := query.Offset(offset).Limit(params.Limit).Find(&articles).Error

	return articles, total, err
}

func (r *articleRepository) Search(params models.SearchParams) ([]models.Article, error) {
	var articles []models.Article

	query := r.db.Model(&models.Article{}).Preload("Author").
		Preload("Chapters", func(db *gorm.DB) *gorm.DB {
			return db.Order("chapters.order_index asc")
		})

	if params.Domain != "" {
		query = query.Where("domain = ?", params.Domain)
	}

	// Terms are ANDed: every term must match the title, or a chapter when
	// content search is on.
	for _, term := range strings.Fields(strings.ToLower(params.Query)) {
		like := "%" + term + "%"
		if params.SearchInContent {
			query = query.Where(
				"(lower(articles.title) LIKE ? OR EXISTS (SELECT 1 FROM chapters WHERE chapters.article_id = articles.id AND (lower(chapters.title) LIKE ? OR lower(chapters.content) LIKE ?)))",
				like, like, like)
		} else {
			query = query.Where("lower(articles.title) LIKE ?", like)
		}
	}

	err := query.Order("last_modified_at desc").Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Domains() ([]string, error) {
	var domains []string
	err := r.db.Model(&models.Article{}).Distinct("domain").Order("domain asc").Pluck("domain", &domains).Error
	return domains, err
}

func (r *articleRepository) Delete(id uint) error {
	// Explicit cascade so behavior does not depend on the driver enforcing
	// foreign keys.
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Article{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.ErrorNotFound{Message: "article not found"}
		}

		for _, owned := range []interface{}{
			&models.Chapter{},
			&models.ArticleEdit{},
			&models.PendingArticleEdit{},
			&models.ArticleRating{},
			&models.Comment{},
			&models.ArticleImage{},
		} {
			if err := tx.Where("article_id = ?", id).Delete(owned).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *articleRepository) ReplaceContent(articleID uint, expectedModified time.Time, fields ArticleFields, chapters []models.Chapter, edit *models.ArticleEdit) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Article{}).
			Where("id = ? AND last_modified_at = ?", articleID, expectedModified).
			Updates(map[string]interface{}{
				"title":            fields.Title,
				"domain":           fields.Domain,
				"is_protected":     fields.IsProtected,
				"last_modified_at": time.Now().UTC(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.Article{}).Where("id = ?", articleID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return models.ErrorNotFound{Message: "article not found"}
			}
			return models.ErrorConflict{Message: "article was modified concurrently"}
		}

		if err := tx.Where("article_id = ?", articleID).Delete(&models.Chapter{}).Error; err != nil {
			return err
		}

		for i := range chapters {
			// Fresh identity on every replacement, never an in-place patch.
			chapters[i].ID = 0
			chapters[i].ArticleID = articleID
		}
		if len(chapters) > 0 {
			if err := tx.Create(&chapters).Error; err != nil {
				return err
			}
		}

		if edit != nil {
			edit.ID = 0
			edit.ArticleID = articleID
			if err := tx.Create(edit).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *articleRepository) GetEditByID(editID uint) (*models.ArticleEdit, error) {
	var edit models.ArticleEdit
	err := r.db.First(&edit, editID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "edit not found"}
		}
		return nil, err
	}
	return &edit, nil
}

func (r *articleRepository) GetEdits(articleID uint) ([]models.ArticleEdit, error) {
	var edits []models.ArticleEdit
	err := r.db.Where("article_id = ?", articleID).
		Preload("Editor").
		Order("edit_date desc").
		Find(&edits).Error
	return edits, err
}

func (r *articleRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Count(&count).Error
	return count, err
}

func (r *articleRepository) CountProtected() (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Where("is_protected = ?", true).Count(&count).Error
	return count, err
}

func (r *articleRepository) CountByDomain() (map[string]int64, error) {
	var results []struct {
		Domain string
		Count  int64
	}
	err := r.db.Model(&models.Article{}).
		Select("domain, COUNT(*) as count").
		Group("domain").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64)
	for _, result := range results {
		counts[result.Domain] = result.Count
	}
	return counts, nil
}

func (r *articleRepository) CountByAuthor(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

func (r *articleRepository) CountEdits() (int64, error) {
	var count int64
	err := r.db.Model(&models.ArticleEdit{}).Count(&count).Error
	return count, err
}

func (r *articleRepository) CountEditsByEditor(editorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.ArticleEdit{}).Where("editor_id = ?", editorID).Count(&count).Error
	return count, err
}
