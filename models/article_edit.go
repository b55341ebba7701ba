package models

import "time"

// ChapterDelimiter joins chapter contents into the flat content stored on
// edit history rows. Reverts split on the same delimiter.
const ChapterDelimiter = "\n---\n"

// ArticleEdit is an append-only audit record of an accepted edit. Rows are
// immutable once created and only disappear when the owning article is
// deleted.
type ArticleEdit struct {
	ID              uint      `json:"id" gorm:"primarykey"`
	ArticleID       uint      `json:"article_id" gorm:"not null;index"`
	EditorID        uint      `json:"editor_id" gorm:"not null"`
	Editor          *User     `json:"editor,omitempty" gorm:"foreignKey:EditorID"`
	EditDate        time.Time `json:"edit_date"`
	PreviousContent string    `json:"previous_content" gorm:"type:text"`
	NewContent      string    `json:"new_content" gorm:"type:text"`
	EditSummary     string    `json:"edit_summary"`
}
