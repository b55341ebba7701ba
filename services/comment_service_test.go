package services

import (
	"testing"

	"wikicms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostCommentRequiresAuthentication(t *testing.T) {
	env := setupEnv(t)
	article := env.createArticle(t, "Article A", false)

	_, err := env.comments.PostComment(article.ID, "hi", models.Actor{})
	assert.IsType(t, models.ErrorUnauthorized{}, err)
}

func TestPostCommentSanitizesContent(t *testing.T) {
	env := setupEnv(t)
	user := env.createUser(t, "alice", models.RoleUser)
	article := env.createArticle(t, "Article A", false)

	comment, err := env.comments.PostComment(article.ID, `nice <script>alert(1)</script>read`, env.actorFor(user))
	require.NoError(t, err)
	assert.NotContains(t, comment.Content, "<script>")
	assert.Contains(t, comment.Content, "nice")
}

func TestReplyToReplyFlattensToTopLevel(t *testing.T) {
	env := setupEnv(t)
	alice := env.createUser(t, "alice", models.RoleUser)
	bob := env.createUser(t, "bob", models.RoleUser)
	article := env.createArticle(t, "Article A", false)

	top, err := env.comments.PostComment(article.ID, "top", env.actorFor(alice))
	require.NoError(t, err)

	reply, err := env.comments.ReplyToComment(article.ID, top.ID, "reply", env.actorFor(bob))
	require.NoError(t, err)
	require.NotNil(t, reply.ParentCommentID)
	assert.Equal(t, top.ID, *reply.ParentCommentID)

	// Replying to the reply still attaches under the top-level comment.
	nested, err := env.comments.ReplyToComment(article.ID, reply.ID, "nested", env.actorFor(alice))
	require.NoError(t, err)
	require.NotNil(t, nested.ParentCommentID)
	assert.Equal(t, top.ID, *nested.ParentCommentID)

	comments, err := env.comments.GetComments(article.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Len(t, comments[0].Replies, 2)
}

func TestReplyToCommentOfAnotherArticle(t *testing.T) {
	env := setupEnv(t)
	alice := env.createUser(t, "alice", models.RoleUser)
	first := env.createArticle(t, "First", false)
	second := env.createArticle(t, "Second", false)

	top, err := env.comments.PostComment(first.ID, "top", env.actorFor(alice))
	require.NoError(t, err)

	_, err = env.comments.ReplyToComment(second.ID, top.ID, "misfiled", env.actorFor(alice))
	assert.IsType(t, models.ErrorValidation{}, err)
}

func TestEditCommentAuthorization(t *testing.T) {
	env := setupEnv(t)
	alice := env.createUser(t, "alice", models.RoleUser)
	bob := env.createUser(t, "bob", models.RoleUser)
	moderator := env.createUser(t, "mod", models.RoleModerator)
	article := env.createArticle(t, "Article A", false)

	comment, err := env.comments.PostComment(article.ID, "original", env.actorFor(alice))
	require.NoError(t, err)

	assert.IsType(t, models.ErrorForbidden{}, env.comments.EditComment(comment.ID, "hijacked", env.actorFor(bob)))
	require.NoError(t, env.comments.EditComment(comment.ID, "edited by author", env.actorFor(alice)))
	require.NoError(t, env.comments.EditComment(comment.ID, "edited by moderator", env.actorFor(moderator)))

	updated, err := env.commentRepo.GetByID(comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited by moderator", updated.Content)
	assert.NotNil(t, updated.ModifiedAt)
}

func TestDeleteCommentRemovesReplies(t *testing.T) {
	env := setupEnv(t)
	alice := env.createUser(t, "alice", models.RoleUser)
	bob := env.createUser(t, "bob", models.RoleUser)
	article := env.createArticle(t, "Article A", false)

	top, err := env.comments.PostComment(article.ID, "top", env.actorFor(alice))
	require.NoError(t, err)
	_, err = env.comments.ReplyToComment(article.ID, top.ID, "reply", env.actorFor(bob))
	require.NoError(t, err)

	require.NoError(t, env.comments.DeleteComment(top.ID, env.actorFor(alice)))

	var count int64
	require.NoError(t, env.db.Model(&models.Comment{}).Where("article_id = ?", article.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestModerateCommentRecordsMetadataWithoutDeleting(t *testing.T) {
	env := setupEnv(t)
	alice := env.createUser(t, "alice", models.RoleUser)
	moderator := env.createUser(t, "mod", models.RoleModerator)
	article := env.createArticle(t, "Article A", false)

	comment, err := env.comments.PostComment(article.ID, "spicy take", env.actorFor(alice))
	require.NoError(t, err)

	assert.IsType(t, models.ErrorForbidden{}, env.comments.ModerateComment(comment.ID, "spam", env.actorFor(alice)))

	require.NoError(t, env.comments.ModerateComment(comment.ID, "spam", env.actorFor(moderator)))

	moderated, err := env.commentRepo.GetByID(comment.ID)
	require.NoError(t, err)
	assert.True(t, moderated.IsModerated)
	assert.Equal(t, "spam", moderated.ModerationReason)
	require.NotNil(t, moderated.ModeratorID)
	assert.Equal(t, moderator.ID, *moderated.ModeratorID)
	assert.NotNil(t, moderated.ModeratedAt)
	assert.Equal(t, "spicy take", moderated.Content)
}
