package services

import (
	"testing"
	"time"

	"wikicms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) queueProposal(t *testing.T, articleID uint, editor *models.User, content string) uint {
	t.Helper()

	result, err := e.edits.SubmitEdit(articleID, models.SubmitEditRequest{
		Title:       "Article B",
		Domain:      "History",
		IsProtected: true,
		Chapters:    []models.ChapterInput{{Title: "C1", Content: content}},
	}, e.actorFor(editor))
	require.NoError(t, err)
	require.False(t, result.Applied)
	return result.PendingID
}

func TestApproveEditMaterializesProposal(t *testing.T) {
	env := setupEnv(t)
	editor := env.createUser(t, "bob", models.RoleUser)
	reviewer := env.createUser(t, "mod", models.RoleModerator)
	article := env.createArticle(t, "Article B", true, models.ChapterInput{Title: "C1", Content: "hello"})

	pendingID := env.queueProposal(t, article.ID, editor, "x")

	require.NoError(t, env.moderation.ApproveEdit(pendingID, reviewer.ID))

	assert.Equal(t, []string{"x"}, env.articleChapterContents(t, article.ID))

	pending, err := env.pendingRepo.GetByID(pendingID)
	require.NoError(t, err)
	assert.Equal(t, models.EditStatusApproved, pending.Status)
	require.NotNil(t, pending.ReviewerID)
	assert.Equal(t, reviewer.ID, *pending.ReviewerID)
	assert.NotNil(t, pending.ReviewedAt)

	edits, err := env.edits.GetEditHistory(article.ID)
	require.NoError(t, err)
	require.Len(t, edits, 1)
	assert.Equal(t, "hello", edits[0].PreviousContent)
	assert.Equal(t, "x", edits[0].NewContent)
	assert.Equal(t, "Changes approved by moderator", edits[0].EditSummary)
	assert.Equal(t, editor.ID, edits[0].EditorID)
}

func TestRejectEditLeavesArticleUntouched(t *testing.T) {
	env := setupEnv(t)
	editor := env.createUser(t, "bob", models.RoleUser)
	reviewer := env.createUser(t, "mod", models.RoleModerator)
	article := env.createArticle(t, "Article B", true, models.ChapterInput{Title: "C1", Content: "hello"})

	pendingID := env.queueProposal(t, article.ID, editor, "x")

	require.NoError(t, env.moderation.RejectEdit(pendingID, reviewer.ID))

	assert.Equal(t, []string{"hello"}, env.articleChapterContents(t, article.ID))
	assert.EqualValues(t, 0, env.countEdits(t, article.ID))

	pending, err := env.pendingRepo.GetByID(pendingID)
	require.NoError(t, err)
	assert.Equal(t, models.EditStatusRejected, pending.Status)
}

func TestReviewingTerminalPendingEditFails(t *testing.T) {
	env := setupEnv(t)
	editor := env.createUser(t, "bob", models.RoleUser)
	reviewer := env.createUser(t, "mod", models.RoleModerator)
	article := env.createArticle(t, "Article B", true)

	pendingID := env.queueProposal(t, article.ID, editor, "x")
	require.NoError(t, env.moderation.RejectEdit(pendingID, reviewer.ID))

	err := env.moderation.ApproveEdit(pendingID, reviewer.ID)
	assert.IsType(t, models.ErrorInvalidState{}, err)

	err = env.moderation.RejectEdit(pendingID, reviewer.ID)
	assert.IsType(t, models.ErrorInvalidState{}, err)
}

func TestReviewingMissingPendingEditFails(t *testing.T) {
	env := setupEnv(t)
	reviewer := env.createUser(t, "mod", models.RoleModerator)

	assert.IsType(t, models.ErrorNotFound{}, env.moderation.ApproveEdit(777, reviewer.ID))
	assert.IsType(t, models.ErrorNotFound{}, env.moderation.RejectEdit(777, reviewer.ID))
}

func TestApproveEditCorruptProposalFailsLoudly(t *testing.T) {
	env := setupEnv(t)
	editor := env.createUser(t, "bob", models.RoleUser)
	reviewer := env.createUser(t, "mod", models.RoleModerator)
	article := env.createArticle(t, "Article B", true, models.ChapterInput{Title: "C1", Content: "hello"})

	pendingID := env.queueProposal(t, article.ID, editor, "x")
	require.NoError(t, env.db.Model(&models.PendingArticleEdit{}).
		Where("id = ?", pendingID).
		Update("chapters_json", []byte("{broken")).Error)

	err := env.moderation.ApproveEdit(pendingID, reviewer.ID)
	assert.IsType(t, models.ErrorCorruptProposal{}, err)

	// Nothing moved: the article keeps its content and the pending edit
	// stays pending for an operator to resolve.
	assert.Equal(t, []string{"hello"}, env.articleChapterContents(t, article.ID))
	pending, err := env.pendingRepo.GetByID(pendingID)
	require.NoError(t, err)
	assert.Equal(t, models.EditStatusPending, pending.Status)
}

func TestListPendingEditsNewestFirst(t *testing.T) {
	env := setupEnv(t)
	editor := env.createUser(t, "bob", models.RoleUser)
	reviewer := env.createUser(t, "mod", models.RoleModerator)
	first := env.createArticle(t, "First", true)
	second := env.createArticle(t, "Second", true)

	firstID := env.queueProposal(t, first.ID, editor, "a")
	// Distinct submission times so ordering is observable.
	require.NoError(t, env.db.Model(&models.PendingArticleEdit{}).
		Where("id = ?", firstID).
		Update("submitted_at", time.Now().UTC().Add(-time.Hour)).Error)
	secondID := env.queueProposal(t, second.ID, editor, "b")

	// Terminal records never show up in the queue.
	thirdID := env.queueProposal(t, env.createArticle(t, "Third", true).ID, editor, "c")
	require.NoError(t, env.moderation.RejectEdit(thirdID, reviewer.ID))

	pending, err := env.moderation.ListPendingEdits()
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, secondID, pending[0].ID)
	assert.Equal(t, firstID, pending[1].ID)

	// Queue entries carry the proposal's chapter count for the listing.
	assert.Equal(t, 1, pending[0].ProposedChapters)
	assert.Equal(t, 1, pending[1].ProposedChapters)
}
