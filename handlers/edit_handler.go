package handlers

import (
	"net/http"
	"strconv"

	"wikicms/helper"
	"wikicms/middleware"
	"wikicms/models"
	"wikicms/services"

	"github.com/gin-gonic/gin"
)

type EditHandler struct {
	editService services.EditService
	helper      *helper.HTTPHelper
}

func NewEditHandler(editService services.EditService) *EditHandler {
	return &EditHandler{editService: editService, helper: &helper.HTTPHelper{}}
}

// SubmitEdit routes an article mutation through the moderated-edit
// workflow. The response tells the caller whether the edit went live or
// was queued.
func (h *EditHandler) SubmitEdit(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	var req models.SubmitEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.editService.SubmitEdit(uint(id), req, actor)
	if err != nil {
		c.JSON(h.helper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *EditHandler) GetEditHistory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	edits, err := h.editService.GetEditHistory(uint(id))
	if err != nil {
		c.JSON(h.helper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, edits)
}

func (h *EditHandler) RevertEdit(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	editID, err := strconv.ParseUint(c.Param("edit_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid edit ID"})
		return
	}

	articleID, err := h.editService.RevertEdit(uint(editID), actor)
	if err != nil {
		c.JSON(h.helper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Edit reverted successfully",
		"article_id": articleID,
	})
}
