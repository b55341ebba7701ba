package handlers

import (
	"strconv"

	"wikicms/helper"
	"wikicms/services"

	"github.com/gin-gonic/gin"
)

type ModerationHandler struct {
	moderationService services.ModerationService
	Helper            *helper.HTTPHelper
}

func NewModerationHandler(moderationService services.ModerationService) *ModerationHandler {
	return &ModerationHandler{moderationService: moderationService, Helper: &helper.HTTPHelper{}}
}

func (h *ModerationHandler) ListPendingEdits(c *gin.Context) {
	pending, err := h.moderationService.ListPendingEdits()
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.Helper.SendSuccess(c, "Success", pending)
}

func (h *ModerationHandler) ApproveEdit(c *gin.Context) {
	reviewerID, _ := c.Get("user_id")
	pendingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid pending edit ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.moderationService.ApproveEdit(uint(pendingID), reviewerID.(uint)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Pending edit approved", h.Helper.EmptyJsonMap())
}

func (h *ModerationHandler) RejectEdit(c *gin.Context) {
	reviewerID, _ := c.Get("user_id")
	pendingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid pending edit ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.moderationService.RejectEdit(uint(pendingID), reviewerID.(uint)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Pending edit rejected", h.Helper.EmptyJsonMap())
}
