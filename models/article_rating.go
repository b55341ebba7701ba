package models

import "time"

// ArticleRating stores one rating per (article, user) pair, enforced by a
// unique index. Re-rating updates the row in place.
type ArticleRating struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ArticleID uint      `json:"article_id" gorm:"not null;uniqueIndex:idx_article_user_rating"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_article_user_rating"`
	Rating    int       `json:"rating" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
