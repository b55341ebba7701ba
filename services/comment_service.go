package services

import (
	"wikicms/models"
	"wikicms/repositories"

	"github.com/microcosm-cc/bluemonday"
)

type CommentService interface {
	PostComment(articleID uint, content string, actor models.Actor) (*models.Comment, error)
	ReplyToComment(articleID, parentID uint, content string, actor models.Actor) (*models.Comment, error)
	EditComment(commentID uint, content string, actor models.Actor) error
	DeleteComment(commentID uint, actor models.Actor) error
	ModerateComment(commentID uint, reason string, actor models.Actor) error
	GetComments(articleID uint) ([]models.Comment, error)
}

type commentService struct {
	commentRepo repositories.CommentRepository
	articleRepo repositories.ArticleRepository
	sanitizer   *bluemonday.Policy
}

func NewCommentService(commentRepo repositories.CommentRepository, articleRepo repositories.ArticleRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		sanitizer:   bluemonday.StrictPolicy(),
	}
}

func (s *commentService) PostComment(articleID uint, content string, actor models.Actor) (*models.Comment, error) {
	if !actor.Authenticated {
		return nil, models.ErrorUnauthorized{Message: "sign in to comment"}
	}

	exists, err := s.articleRepo.Exists(articleID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.ErrorNotFound{Message: "article not found"}
	}

	content = s.sanitizer.Sanitize(content)
	if content == "" {
		return nil, models.ErrorValidation{Message: "comment content is required"}
	}

	comment := &models.Comment{
		ArticleID: articleID,
		UserID:    actor.UserID,
		Content:   content,
		CreatedAt: nowUTC(),
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) ReplyToComment(articleID, parentID uint, content string, actor models.Actor) (*models.Comment, error) {
	if !actor.Authenticated {
		return nil, models.ErrorUnauthorized{Message: "sign in to comment"}
	}

	parent, err := s.commentRepo.GetByID(parentID)
	if err != nil {
		return nil, err
	}
	if parent.ArticleID != articleID {
		return nil, models.ErrorValidation{Message: "parent comment belongs to a different article"}
	}

	// Only one level of nesting: a reply to a reply attaches to the
	// top-level comment instead.
	topLevelID := parent.ID
	if parent.ParentCommentID != nil {
		topLevelID = *parent.ParentCommentID
	}

	content = s.sanitizer.Sanitize(content)
	if content == "" {
		return nil, models.ErrorValidation{Message: "comment content is required"}
	}

	reply := &models.Comment{
		ArticleID:       articleID,
		UserID:          actor.UserID,
		Content:         content,
		CreatedAt:       nowUTC(),
		ParentCommentID: &topLevelID,
	}
	if err := s.commentRepo.Create(reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func (s *commentService) EditComment(commentID uint, content string, actor models.Actor) error {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		return err
	}
	if err := s.requireOwnerOrModerator(comment, actor); err != nil {
		return err
	}

	content = s.sanitizer.Sanitize(content)
	if content == "" {
		return models.ErrorValidation{Message: "comment content is required"}
	}

	now := nowUTC()
	comment.Content = content
	comment.ModifiedAt = &now
	return s.commentRepo.Update(comment)
}

func (s *commentService) DeleteComment(commentID uint, actor models.Actor) error {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		return err
	}
	if err := s.requireOwnerOrModerator(comment, actor); err != nil {
		return err
	}
	return s.commentRepo.Delete(commentID)
}

func (s *commentService) ModerateComment(commentID uint, reason string, actor models.Actor) error {
	if !actor.Authenticated || !actor.Role.Elevated() {
		return models.ErrorForbidden{Message: "only moderators can moderate comments"}
	}

	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		return err
	}

	// Moderation marks the comment without deleting it.
	now := nowUTC()
	moderatorID := actor.UserID
	comment.IsModerated = true
	comment.ModeratorID = &moderatorID
	comment.ModerationReason = reason
	comment.ModeratedAt = &now
	return s.commentRepo.Update(comment)
}

func (s *commentService) GetComments(articleID uint) ([]models.Comment, error) {
	return s.commentRepo.ListTopLevel(articleID)
}

func (s *commentService) requireOwnerOrModerator(comment *models.Comment, actor models.Actor) error {
	if !actor.Authenticated {
		return models.ErrorUnauthorized{Message: "sign in required"}
	}
	if comment.UserID == actor.UserID || actor.Role.Elevated() {
		return nil
	}
	return models.ErrorForbidden{Message: "you may only change your own comments"}
}
