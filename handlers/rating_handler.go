package handlers

import (
	"net/http"
	"strconv"

	"wikicms/helper"
	"wikicms/models"
	"wikicms/services"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService services.RatingService
	helper        *helper.HTTPHelper
}

func NewRatingHandler(ratingService services.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService, helper: &helper.HTTPHelper{}}
}

func (h *RatingHandler) RateArticle(c *gin.Context) {
	userID, _ := c.Get("user_id")
	articleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	var req models.RateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.ratingService.RateArticle(uint(articleID), userID.(uint), req.Rating); err != nil {
		c.JSON(h.helper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rating saved"})
}

func (h *RatingHandler) GetRating(c *gin.Context) {
	userID, _ := c.Get("user_id")
	articleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	rating, err := h.ratingService.GetUserRating(uint(articleID), userID.(uint))
	if err != nil {
		c.JSON(h.helper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rating)
}
