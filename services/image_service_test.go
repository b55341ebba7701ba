package services

import (
	"strings"
	"testing"

	"wikicms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadAndListImages(t *testing.T) {
	env := setupEnv(t)
	article := env.createArticle(t, "Illustrated", false)

	image, err := env.images.UploadImage(article.ID, "diagram.PNG", strings.NewReader("png bytes"), "The diagram", "flow diagram")
	require.NoError(t, err)
	assert.NotEmpty(t, image.ImagePath)
	assert.True(t, strings.HasSuffix(image.ImagePath, ".png"))

	images, err := env.images.ListImages(article.ID)
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "The diagram", images[0].Caption)
	assert.Equal(t, "flow diagram", images[0].AltText)
}

func TestUploadImageRejectsUnsupportedExtension(t *testing.T) {
	env := setupEnv(t)
	article := env.createArticle(t, "Illustrated", false)

	_, err := env.images.UploadImage(article.ID, "payload.exe", strings.NewReader("bytes"), "", "")
	assert.IsType(t, models.ErrorValidation{}, err)

	images, err := env.images.ListImages(article.ID)
	require.NoError(t, err)
	assert.Empty(t, images)
}

func TestImageOperationsOnMissingArticle(t *testing.T) {
	env := setupEnv(t)

	_, err := env.images.UploadImage(4242, "a.png", strings.NewReader("bytes"), "", "")
	assert.IsType(t, models.ErrorNotFound{}, err)

	_, err = env.images.ListImages(4242)
	assert.IsType(t, models.ErrorNotFound{}, err)
}
