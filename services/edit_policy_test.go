package services

import (
	"testing"

	"wikicms/models"

	"github.com/stretchr/testify/assert"
)

func TestDecideEditRoute(t *testing.T) {
	tests := []struct {
		name        string
		isProtected bool
		actor       models.Actor
		want        EditDecision
	}{
		{
			name:        "unprotected article, anonymous actor",
			isProtected: false,
			actor:       models.Actor{},
			want:        ApplyDirectly,
		},
		{
			name:        "unprotected article, regular user",
			isProtected: false,
			actor:       models.Actor{UserID: 1, Role: models.RoleUser, Authenticated: true},
			want:        ApplyDirectly,
		},
		{
			name:        "protected article, anonymous actor",
			isProtected: true,
			actor:       models.Actor{},
			want:        Deny,
		},
		{
			name:        "protected article, regular user",
			isProtected: true,
			actor:       models.Actor{UserID: 1, Role: models.RoleUser, Authenticated: true},
			want:        RequireModeration,
		},
		{
			name:        "protected article, moderator",
			isProtected: true,
			actor:       models.Actor{UserID: 1, Role: models.RoleModerator, Authenticated: true},
			want:        ApplyDirectly,
		},
		{
			name:        "protected article, admin",
			isProtected: true,
			actor:       models.Actor{UserID: 1, Role: models.RoleAdmin, Authenticated: true},
			want:        ApplyDirectly,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecideEditRoute(tt.isProtected, tt.actor))
		})
	}
}

func TestValidateChapters(t *testing.T) {
	t.Run("drops incomplete chapters and renumbers densely", func(t *testing.T) {
		chapters, err := ValidateChapters([]models.ChapterInput{
			{Title: "", Content: "orphan content"},
			{Title: "One", Content: "first"},
			{Title: "orphan title", Content: ""},
			{Title: "Two", Content: "second"},
		})
		assert.NoError(t, err)
		assert.Len(t, chapters, 2)
		assert.Equal(t, "One", chapters[0].Title)
		assert.Equal(t, 0, chapters[0].OrderIndex)
		assert.Equal(t, "Two", chapters[1].Title)
		assert.Equal(t, 1, chapters[1].OrderIndex)
	})

	t.Run("fails when nothing survives", func(t *testing.T) {
		_, err := ValidateChapters([]models.ChapterInput{
			{Title: "", Content: ""},
			{Title: "only title", Content: ""},
		})
		assert.IsType(t, models.ErrorValidation{}, err)
	})
}

func TestSplitChapterContent(t *testing.T) {
	t.Run("splits on delimiter with generated titles", func(t *testing.T) {
		chapters := SplitChapterContent("first" + models.ChapterDelimiter + "second")
		assert.Len(t, chapters, 2)
		assert.Equal(t, "Chapter 1", chapters[0].Title)
		assert.Equal(t, "first", chapters[0].Content)
		assert.Equal(t, "Chapter 2", chapters[1].Title)
		assert.Equal(t, 1, chapters[1].OrderIndex)
	})

	t.Run("empty content yields a single empty chapter", func(t *testing.T) {
		chapters := SplitChapterContent("")
		assert.Len(t, chapters, 1)
		assert.Equal(t, "", chapters[0].Content)
		assert.Equal(t, 0, chapters[0].OrderIndex)
	})
}
