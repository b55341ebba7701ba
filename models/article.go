package models

import (
	"time"
)

type Article struct {
	ID             uint      `json:"id" gorm:"primarykey"`
	Title          string    `json:"title" gorm:"not null;size:200"`
	Domain         string    `json:"domain" gorm:"not null;index"`
	IsProtected    bool      `json:"is_protected" gorm:"default:false"`
	AuthorID       *uint     `json:"author_id"`
	Author         *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	CreatedAt      time.Time `json:"created_at"`
	LastModifiedAt time.Time `json:"last_modified_at"`

	Chapters []Chapter       `json:"chapters,omitempty" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
	Edits    []ArticleEdit   `json:"edits,omitempty" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
	Ratings  []ArticleRating `json:"-" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
	Comments []Comment       `json:"-" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
	Images   []ArticleImage  `json:"images,omitempty" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`

	// Derived, filled by the service layer from aggregate queries.
	AverageRating float64 `json:"average_rating" gorm:"-"`
	RatingCount   int64   `json:"rating_count" gorm:"-"`
	CommentCount  int64   `json:"comment_count" gorm:"-"`
}

type Chapter struct {
	ID         uint   `json:"id" gorm:"primarykey"`
	ArticleID  uint   `json:"article_id" gorm:"not null;index"`
	Title      string `json:"title" gorm:"not null;size:200"`
	Content    string `json:"content" gorm:"type:text;not null"`
	OrderIndex int    `json:"order_index" gorm:"not null"`
}

type ArticleImage struct {
	ID        uint   `json:"id" gorm:"primarykey"`
	ArticleID uint   `json:"article_id" gorm:"not null;index"`
	ImagePath string `json:"image_path" gorm:"not null"`
	Caption   string `json:"caption" gorm:"size:200"`
	AltText   string `json:"alt_text"`
}
