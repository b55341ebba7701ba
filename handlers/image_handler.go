package handlers

import (
	"net/http"
	"strconv"

	"wikicms/helper"
	"wikicms/services"

	"github.com/gin-gonic/gin"
)

type ImageHandler struct {
	imageService services.ImageService
	helper       *helper.HTTPHelper
}

func NewImageHandler(imageService services.ImageService) *ImageHandler {
	return &ImageHandler{imageService: imageService, helper: &helper.HTTPHelper{}}
}

func (h *ImageHandler) UploadImage(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}
	defer file.Close()

	caption := c.PostForm("caption")
	altText := c.PostForm("alt_text")

	image, err := h.imageService.UploadImage(uint(articleID), header.Filename, file, caption, altText)
	if err != nil {
		c.JSON(h.helper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, image)
}

func (h *ImageHandler) ListImages(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	images, err := h.imageService.ListImages(uint(articleID))
	if err != nil {
		c.JSON(h.helper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"images": images})
}
