package models

import (
	"time"

	"gorm.io/datatypes"
)

type EditStatus string

const (
	EditStatusPending  EditStatus = "pending"
	EditStatusApproved EditStatus = "approved"
	EditStatusRejected EditStatus = "rejected"
)

// Terminal reports whether the status permits no further transitions.
func (s EditStatus) Terminal() bool {
	return s == EditStatusApproved || s == EditStatusRejected
}

// PendingArticleEdit holds a proposed full replacement of an article's
// editable fields, awaiting moderator review. The live article is untouched
// until the proposal is approved.
type PendingArticleEdit struct {
	ID            uint       `json:"id" gorm:"primarykey"`
	ArticleID     uint       `json:"article_id" gorm:"not null;index"`
	Article       *Article   `json:"article,omitempty" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
	EditorID      uint       `json:"editor_id" gorm:"not null"`
	Editor        *User      `json:"editor,omitempty" gorm:"foreignKey:EditorID"`
	SubmittedAt   time.Time  `json:"submitted_at" gorm:"index"`
	Status        EditStatus `json:"status" gorm:"default:'pending';index"`
	ReviewerID    *uint      `json:"reviewer_id"`
	Reviewer      *User      `json:"reviewer,omitempty" gorm:"foreignKey:ReviewerID"`
	ReviewedAt    *time.Time `json:"reviewed_at"`
	ReviewComment string     `json:"review_comment"`

	// Proposed replacement values.
	Title        string         `json:"title" gorm:"not null;size:200"`
	Domain       string         `json:"domain" gorm:"not null"`
	IsProtected  bool           `json:"is_protected"`
	ChaptersJSON datatypes.JSON `json:"chapters_json" gorm:"not null"`

	// Derived for queue listings, not stored.
	ProposedChapters int `json:"proposed_chapters" gorm:"-"`
}

// ChapterCount parses the stored proposal and reports how many chapters it
// carries. A snapshot that fails to parse is an error, never "zero
// chapters".
func (p *PendingArticleEdit) ChapterCount() (int, error) {
	chapters, err := DecodeChapterProposal(p.ChaptersJSON)
	if err != nil {
		return 0, err
	}
	return len(chapters), nil
}
