package models

type RegisterRequest struct {
	Username string   `json:"username" binding:"required,min=3,max=50"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	Role     UserRole `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ChapterInput is one chapter as submitted by the editor. Entries missing a
// title or content are dropped during validation, not rejected.
type ChapterInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type CreateArticleRequest struct {
	Title       string         `json:"title" binding:"required,min=1,max=200"`
	Domain      string         `json:"domain" binding:"required"`
	IsProtected bool           `json:"is_protected"`
	Chapters    []ChapterInput `json:"chapters" binding:"required"`
}

type SubmitEditRequest struct {
	Title       string         `json:"title" binding:"required,min=1,max=200"`
	Domain      string         `json:"domain" binding:"required"`
	IsProtected bool           `json:"is_protected"`
	Chapters    []ChapterInput `json:"chapters" binding:"required"`
	EditSummary string         `json:"edit_summary"`
}

// SubmitEditResult reports whether the edit went live or was queued for
// moderation.
type SubmitEditResult struct {
	Applied   bool `json:"applied"`
	PendingID uint `json:"pending_id,omitempty"`
}

type RateArticleRequest struct {
	Rating int `json:"rating" binding:"required"`
}

type PostCommentRequest struct {
	Content string `json:"content" binding:"required,max=1000"`
}

type ReplyCommentRequest struct {
	ParentCommentID uint   `json:"parent_comment_id" binding:"required"`
	Content         string `json:"content" binding:"required,max=1000"`
}

type EditCommentRequest struct {
	Content string `json:"content" binding:"required,max=1000"`
}

type ModerateCommentRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type ArticleListParams struct {
	Domain    string `form:"domain"`
	SortOrder string `form:"sort,default=newest"`
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=10"`
}

type SearchParams struct {
	Query           string `form:"q"`
	Domain          string `form:"domain"`
	SearchInContent bool   `form:"in_content"`
}

type DomainStatistics struct {
	Domain     string  `json:"domain"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

type ContributorStatistics struct {
	Username     string `json:"username"`
	ArticleCount int64  `json:"article_count"`
	EditCount    int64  `json:"edit_count"`
}

type SiteStatistics struct {
	TotalArticles     int64                   `json:"total_articles"`
	TotalUsers        int64                   `json:"total_users"`
	TotalEdits        int64                   `json:"total_edits"`
	ProtectedArticles int64                   `json:"protected_articles"`
	DomainStats       []DomainStatistics      `json:"domain_stats"`
	TopContributors   []ContributorStatistics `json:"top_contributors"`
}
