package services

import (
	"wikicms/models"
	"wikicms/repositories"

	"go.uber.org/zap"
)

// ModerationService manages the queue of pending edits. A pending edit
// moves from pending to approved or rejected exactly once; both are
// terminal.
type ModerationService interface {
	ListPendingEdits() ([]models.PendingArticleEdit, error)
	ApproveEdit(pendingID, reviewerID uint) error
	RejectEdit(pendingID, reviewerID uint) error
}

type moderationService struct {
	pendingRepo repositories.PendingEditRepository
	articleRepo repositories.ArticleRepository
	logger      *zap.Logger
}

func NewModerationService(pendingRepo repositories.PendingEditRepository, articleRepo repositories.ArticleRepository, logger *zap.Logger) ModerationService {
	return &moderationService{
		pendingRepo: pendingRepo,
		articleRepo: articleRepo,
		logger:      logger,
	}
}

func (s *moderationService) ListPendingEdits() ([]models.PendingArticleEdit, error) {
	pending, err := s.pendingRepo.ListPending()
	if err != nil {
		return nil, err
	}

	// A corrupt snapshot still lists; its count just stays zero until a
	// review surfaces the parse error.
	for i := range pending {
		if count, err := pending[i].ChapterCount(); err == nil {
			pending[i].ProposedChapters = count
		}
	}

	return pending, nil
}

func (s *moderationService) ApproveEdit(pendingID, reviewerID uint) error {
	pending, err := s.pendingRepo.GetByID(pendingID)
	if err != nil {
		return err
	}
	if pending.Status.Terminal() {
		return models.ErrorInvalidState{Message: "pending edit has already been reviewed"}
	}

	// A snapshot that no longer parses must fail loudly here, before any
	// state changes. Degrading to an empty chapter list would silently
	// blank the article on approval.
	snapshots, err := models.DecodeChapterProposal(pending.ChaptersJSON)
	if err != nil {
		s.logger.Error("pending edit proposal is corrupt",
			zap.Uint("pending_id", pendingID),
			zap.Error(err))
		return err
	}

	article, err := s.articleRepo.GetByID(pending.ArticleID)
	if err != nil {
		return err
	}

	chapters := make([]models.Chapter, 0, len(snapshots))
	for _, snap := range snapshots {
		chapters = append(chapters, models.Chapter{
			Title:      snap.Title,
			Content:    snap.Content,
			OrderIndex: snap.OrderIndex,
		})
	}

	edit := &models.ArticleEdit{
		EditorID:        pending.EditorID,
		EditDate:        nowUTC(),
		PreviousContent: JoinChapterContent(article.Chapters),
		NewContent:      JoinChapterContent(chapters),
		EditSummary:     "Changes approved by moderator",
	}

	fields := repositories.ArticleFields{
		Title:       pending.Title,
		Domain:      pending.Domain,
		IsProtected: pending.IsProtected,
	}
	if err := s.pendingRepo.Approve(pendingID, reviewerID, fields, chapters, edit); err != nil {
		return err
	}

	s.logger.Info("pending edit approved",
		zap.Uint("pending_id", pendingID),
		zap.Uint("article_id", pending.ArticleID),
		zap.Uint("reviewer_id", reviewerID))

	return nil
}

func (s *moderationService) RejectEdit(pendingID, reviewerID uint) error {
	if err := s.pendingRepo.Reject(pendingID, reviewerID); err != nil {
		return err
	}

	s.logger.Info("pending edit rejected",
		zap.Uint("pending_id", pendingID),
		zap.Uint("reviewer_id", reviewerID))

	return nil
}
