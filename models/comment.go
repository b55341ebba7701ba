package models

import "time"

// Comment supports a single level of reply nesting. Replies to replies are
// flattened under the top-level comment by the service layer. Moderation is
// recorded as metadata on the row, separate from deletion.
type Comment struct {
	ID         uint       `json:"id" gorm:"primarykey"`
	ArticleID  uint       `json:"article_id" gorm:"not null;index"`
	UserID     uint       `json:"user_id" gorm:"not null"`
	User       *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Content    string     `json:"content" gorm:"size:1000;not null"`
	CreatedAt  time.Time  `json:"created_at"`
	ModifiedAt *time.Time `json:"modified_at"`

	ParentCommentID *uint     `json:"parent_comment_id"`
	Replies         []Comment `json:"replies,omitempty" gorm:"foreignKey:ParentCommentID"`

	IsModerated      bool       `json:"is_moderated"`
	ModeratorID      *uint      `json:"moderator_id"`
	Moderator        *User      `json:"moderator,omitempty" gorm:"foreignKey:ModeratorID"`
	ModerationReason string     `json:"moderation_reason"`
	ModeratedAt      *time.Time `json:"moderated_at"`
}
