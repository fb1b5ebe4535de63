package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ironfit-labs/gym-platform/internal/middleware"
	"github.com/ironfit-labs/gym-platform/internal/models"
)

type FeedbackHandler struct {
	db *gorm.DB
}

func NewFeedbackHandler(db *gorm.DB) *FeedbackHandler {
	return &FeedbackHandler{db: db}
}

// --------- Requests ---------

type CreateFeedbackRequest struct {
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Category string `json:"category"`
	Comment  string `json:"comment"`
}

// --------- Handlers ---------

func (h *FeedbackHandler) Create(c *gin.Context) {
	var req CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := ""
	if v, ok := c.Get(middleware.ContextUserEmail); ok {
		email = v.(string)
	}

	fb := models.Feedback{
		MemberEmail: email,
		Rating:      req.Rating,
		Category:    strings.ToLower(req.Category),
		Comment:     req.Comment,
	}

	if err := h.db.Create(&fb).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_feedback"})
		return
	}

	c.JSON(http.StatusCreated, fb)
}

func (h *FeedbackHandler) List(c *gin.Context) {
	category := strings.ToLower(strings.TrimSpace(c.Query("category")))

	q := h.db.Model(&models.Feedback{})
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var items []models.Feedback
	if err := q.Order("created_at DESC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_feedback"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// Stats aggregates ratings per category for the admin dashboard.
func (h *FeedbackHandler) Stats(c *gin.Context) {
	type row struct {
		Category  string  `json:"category"`
		Count     int64   `json:"count"`
		AvgRating float64 `json:"avg_rating"`
	}

	var rows []row
	if err := h.db.
		Model(&models.Feedback{}).
		Select("category, COUNT(*) AS count, AVG(rating) AS avg_rating").
		Group("category").
		Order("count DESC").
		Scan(&rows).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_build_stats"})
		return
	}

	var total int64
	h.db.Model(&models.Feedback{}).Count(&total)

	c.JSON(http.StatusOK, gin.H{
		"total":      total,
		"categories": rows,
	})
}
