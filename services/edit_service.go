package services

import (
	"fmt"
	"strings"

	"wikicms/models"
	"wikicms/repositories"

	"go.uber.org/zap"
)

// EditService is the moderated-edit workflow engine. Every article mutation
// goes through SubmitEdit, which either applies it directly or queues it as
// a pending edit, per the edit authorization policy.
type EditService interface {
	SubmitEdit(articleID uint, req models.SubmitEditRequest, actor models.Actor) (*models.SubmitEditResult, error)
	RevertEdit(editID uint, actor models.Actor) (uint, error)
	GetEditHistory(articleID uint) ([]models.ArticleEdit, error)
}

type editService struct {
	articleRepo repositories.ArticleRepository
	pendingRepo repositories.PendingEditRepository
	logger      *zap.Logger
}

func NewEditService(articleRepo repositories.ArticleRepository, pendingRepo repositories.PendingEditRepository, logger *zap.Logger) EditService {
	return &editService{
		articleRepo: articleRepo,
		pendingRepo: pendingRepo,
		logger:      logger,
	}
}

func (s *editService) SubmitEdit(articleID uint, req models.SubmitEditRequest, actor models.Actor) (*models.SubmitEditResult, error) {
	article, err := s.articleRepo.GetByID(articleID)
	if err != nil {
		return nil, err
	}

	chapters, err := ValidateChapters(req.Chapters)
	if err != nil {
		return nil, err
	}

	// The policy runs against the persisted protection flag, not the
	// proposed one: unprotecting an article in the same request must not
	// bypass moderation.
	switch DecideEditRoute(article.IsProtected, actor) {
	case Deny:
		return nil, models.ErrorUnauthorized{Message: "sign in to edit protected articles"}

	case RequireModeration:
		return s.queuePendingEdit(article, req, chapters, actor)

	default:
		return s.applyDirectly(article, req, chapters, actor)
	}
}

func (s *editService) queuePendingEdit(article *models.Article, req models.SubmitEditRequest, chapters []models.Chapter, actor models.Actor) (*models.SubmitEditResult, error) {
	open, err := s.pendingRepo.HasOpenProposal(article.ID, actor.UserID)
	if err != nil {
		return nil, err
	}
	if open {
		return nil, models.ErrorConflict{Message: "you already have a proposal awaiting review for this article"}
	}

	proposal, err := models.EncodeChapterProposal(models.SnapshotChapters(chapters))
	if err != nil {
		return nil, err
	}

	pending := &models.PendingArticleEdit{
		ArticleID:    article.ID,
		EditorID:     actor.UserID,
		SubmittedAt:  nowUTC(),
		Status:       models.EditStatusPending,
		Title:        req.Title,
		Domain:       req.Domain,
		IsProtected:  req.IsProtected,
		ChaptersJSON: proposal,
	}
	if err := s.pendingRepo.Create(pending); err != nil {
		return nil, err
	}

	s.logger.Info("edit queued for moderation",
		zap.Uint("article_id", article.ID),
		zap.Uint("pending_id", pending.ID),
		zap.Uint("editor_id", actor.UserID))

	return &models.SubmitEditResult{Applied: false, PendingID: pending.ID}, nil
}

func (s *editService) applyDirectly(article *models.Article, req models.SubmitEditRequest, chapters []models.Chapter, actor models.Actor) (*models.SubmitEditResult, error) {
	// Anonymous edits of unprotected articles apply without an audit row;
	// history is only kept for registered editors.
	var edit *models.ArticleEdit
	if actor.Authenticated {
		edit = &models.ArticleEdit{
			EditorID:        actor.UserID,
			EditDate:        nowUTC(),
			PreviousContent: JoinChapterContent(article.Chapters),
			NewContent:      JoinChapterContent(chapters),
			EditSummary:     req.EditSummary,
		}
	}

	fields := repositories.ArticleFields{
		Title:       req.Title,
		Domain:      req.Domain,
		IsProtected: req.IsProtected,
	}
	if err := s.articleRepo.ReplaceContent(article.ID, article.LastModifiedAt, fields, chapters, edit); err != nil {
		return nil, err
	}

	s.logger.Info("edit applied",
		zap.Uint("article_id", article.ID),
		zap.Bool("authenticated", actor.Authenticated))

	return &models.SubmitEditResult{Applied: true}, nil
}

func (s *editService) RevertEdit(editID uint, actor models.Actor) (uint, error) {
	if !actor.Authenticated || !actor.Role.Elevated() {
		return 0, models.ErrorForbidden{Message: "only moderators can revert edits"}
	}

	edit, err := s.articleRepo.GetEditByID(editID)
	if err != nil {
		return 0, err
	}

	article, err := s.articleRepo.GetByID(edit.ArticleID)
	if err != nil {
		return 0, err
	}

	chapters := SplitChapterContent(edit.PreviousContent)

	// Reverting appends a new audit row with previous/new swapped; the
	// historical record itself is never mutated.
	revert := &models.ArticleEdit{
		EditorID:        actor.UserID,
		EditDate:        nowUTC(),
		PreviousContent: edit.NewContent,
		NewContent:      edit.PreviousContent,
		EditSummary:     fmt.Sprintf("Reverted to version from %s", edit.EditDate.Format("2006-01-02 15:04")),
	}

	fields := repositories.ArticleFields{
		Title:       article.Title,
		Domain:      article.Domain,
		IsProtected: article.IsProtected,
	}
	if err := s.articleRepo.ReplaceContent(article.ID, article.LastModifiedAt, fields, chapters, revert); err != nil {
		return 0, err
	}

	s.logger.Info("edit reverted",
		zap.Uint("edit_id", editID),
		zap.Uint("article_id", article.ID),
		zap.Uint("moderator_id", actor.UserID))

	return article.ID, nil
}

func (s *editService) GetEditHistory(articleID uint) ([]models.ArticleEdit, error) {
	exists, err := s.articleRepo.Exists(articleID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.ErrorNotFound{Message: "article not found"}
	}
	return s.articleRepo.GetEdits(articleID)
}

// ValidateChapters drops chapters missing a title or content and renumbers
// the survivors densely from zero. An edit with no surviving chapters is
// invalid and nothing is written.
func ValidateChapters(inputs []models.ChapterInput) ([]models.Chapter, error) {
	valid := make([]models.Chapter, 0, len(inputs))
	for _, in := range inputs {
		if in.Title == "" || in.Content == "" {
			continue
		}
		valid = append(valid, models.Chapter{
			Title:      in.Title,
			Content:    in.Content,
			OrderIndex: len(valid),
		})
	}
	if len(valid) == 0 {
		return nil, models.ErrorValidation{Message: "at least one chapter with title and content is required"}
	}
	return valid, nil
}

// JoinChapterContent flattens ordered chapters into the content stored on
// audit rows.
func JoinChapterContent(chapters []models.Chapter) string {
	parts := make([]string, 0, len(chapters))
	for _, ch := range chapters {
		parts = append(parts, ch.Content)
	}
	return strings.Join(parts, models.ChapterDelimiter)
}

// SplitChapterContent rebuilds chapters from flattened audit content.
// Chapter titles are not recoverable from the flat form, so they become
// "Chapter N". Empty content yields a single empty chapter: reverting an
// article's very first edit is valid, not an error.
func SplitChapterContent(content string) []models.Chapter {
	parts := strings.Split(content, models.ChapterDelimiter)
	chapters := make([]models.Chapter, 0, len(parts))
	for i, part := range parts {
		chapters = append(chapters, models.Chapter{
			Title:      fmt.Sprintf("Chapter %d", i+1),
			Content:    strings.TrimSpace(part),
			OrderIndex: i,
		})
	}
	return chapters
}
