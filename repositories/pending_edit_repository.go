package repositories

import (
	"errors"
	"time"

	"wikicms/models"

	"gorm.io/gorm"
)

type PendingEditRepository interface {
	Create(pending *models.PendingArticleEdit) error
	GetByID(id uint) (*models.PendingArticleEdit, error)
	ListPending() ([]models.PendingArticleEdit, error)
	HasOpenProposal(articleID, editorID uint) (bool, error)

	// Approve transitions the pending edit to approved and materializes the
	// proposal into the live article in one transaction: scalar fields,
	// chapter set replacement, and the audit record all commit together.
	Approve(pendingID, reviewerID uint, fields ArticleFields, chapters []models.Chapter, edit *models.ArticleEdit) error

	// Reject transitions the pending edit to rejected. The live article is
	// never touched.
	Reject(pendingID, reviewerID uint) error
}

type pendingEditRepository struct {
	db *gorm.DB
}

func NewPendingEditRepository(db *gorm.DB) PendingEditRepository {
	return &pendingEditRepository{db: db}
}

func (r *pendingEditRepository) Create(pending *models.PendingArticleEdit) error {
	return r.db.Create(pending).Error
}

func (r *pendingEditRepository) GetByID(id uint) (*models.PendingArticleEdit, error) {
	var pending models.PendingArticleEdit
	err := r.db.Preload("Editor").Preload("Article").First(&pending, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "pending edit not found"}
		}
		return nil, err
	}
	return &pending, nil
}

func (r *pendingEditRepository) ListPending() ([]models.PendingArticleEdit, error) {
	var pending []models.PendingArticleEdit
	err := r.db.Where("status = ?", models.EditStatusPending).
		Preload("Editor").
		Preload("Article").
		Order("submitted_at desc").
		Find(&pending).Error
	return pending, err
}

func (r *pendingEditRepository) HasOpenProposal(articleID, editorID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.PendingArticleEdit{}).
		Where("article_id = ? AND editor_id = ? AND status = ?", articleID, editorID, models.EditStatusPending).
		Count(&count).Error
	return count > 0, err
}

func (r *pendingEditRepository) Approve(pendingID, reviewerID uint, fields ArticleFields, chapters []models.Chapter, edit *models.ArticleEdit) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()

		res := tx.Model(&models.PendingArticleEdit{}).
			Where("id = ? AND status = ?", pendingID, models.EditStatusPending).
			Updates(map[string]interface{}{
				"status":      models.EditStatusApproved,
				"reviewer_id": reviewerID,
				"reviewed_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return r.reviewTransitionError(tx, pendingID)
		}

		var pending models.PendingArticleEdit
		if err := tx.First(&pending, pendingID).Error; err != nil {
			return err
		}

		articleRes := tx.Model(&models.Article{}).
			Where("id = ?", pending.ArticleID).
			Updates(map[string]interface{}{
				"title":            fields.Title,
				"domain":           fields.Domain,
				"is_protected":     fields.IsProtected,
				"last_modified_at": now,
			})
		if articleRes.Error != nil {
			return articleRes.Error
		}
		if articleRes.RowsAffected == 0 {
			return models.ErrorNotFound{Message: "article not found"}
		}

		if err := tx.Where("article_id = ?", pending.ArticleID).Delete(&models.Chapter{}).Error; err != nil {
			return err
		}

		for i := range chapters {
			chapters[i].ID = 0
			chapters[i].ArticleID = pending.ArticleID
		}
		if len(chapters) > 0 {
			if err := tx.Create(&chapters).Error; err != nil {
				return err
			}
		}

		if edit != nil {
			edit.ID = 0
			edit.ArticleID = pending.ArticleID
			if err := tx.Create(edit).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *pendingEditRepository) Reject(pendingID, reviewerID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.PendingArticleEdit{}).
			Where("id = ? AND status = ?", pendingID, models.EditStatusPending).
			Updates(map[string]interface{}{
				"status":      models.EditStatusRejected,
				"reviewer_id": reviewerID,
				"reviewed_at": time.Now().UTC(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return r.reviewTransitionError(tx, pendingID)
		}
		return nil
	})
}

// reviewTransitionError distinguishes a missing pending edit from one that
// already reached a terminal state.
func (r *pendingEditRepository) reviewTransitionError(tx *gorm.DB, pendingID uint) error {
	var count int64
	if err := tx.Model(&models.PendingArticleEdit{}).Where("id = ?", pendingID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return models.ErrorNotFound{Message: "pending edit not found"}
	}
	return models.ErrorInvalidState{Message: "pending edit has already been reviewed"}
}
