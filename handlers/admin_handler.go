package handlers

import (
	"wikicms/helper"
	"wikicms/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	statsService services.StatsService
	Helper       *helper.HTTPHelper
}

func NewAdminHandler(statsService services.StatsService) *AdminHandler {
	return &AdminHandler{statsService: statsService, Helper: &helper.HTTPHelper{}}
}

func (h *AdminHandler) GetStatistics(c *gin.Context) {
	stats, err := h.statsService.GetSiteStatistics()
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.Helper.SendSuccess(c, "Success", stats)
}
