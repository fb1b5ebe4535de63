package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ironfit-labs/gym-platform/internal/models"
)

type TrainerHandler struct {
	db *gorm.DB
}

func NewTrainerHandler(db *gorm.DB) *TrainerHandler {
	return &TrainerHandler{db: db}
}

// --------- Requests ---------

type CreateTrainerRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email"`
	Specialty string `json:"specialty"`
	Bio       string `json:"bio"`
	PhotoURL  string `json:"photo_url"`
}

type UpdateTrainerRequest struct {
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Specialty *string `json:"specialty,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	PhotoURL  *string `json:"photo_url,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *TrainerHandler) List(c *gin.Context) {
	specialty := strings.ToLower(strings.TrimSpace(c.Query("specialty")))

	q := h.db.Model(&models.Trainer{}).Where("active = ?", true)

	if specialty != "" {
		q = q.Where("LOWER(specialty) = ?", specialty)
	}

	var trainers []models.Trainer
	if err := q.Order("name ASC").Find(&trainers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_trainers"})
		return
	}

	c.JSON(http.StatusOK, trainers)
}

func (h *TrainerHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var trainer models.Trainer
	if err := h.db.First(&trainer, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "trainer_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_trainer"})
		return
	}

	c.JSON(http.StatusOK, trainer)
}

func (h *TrainerHandler) Create(c *gin.Context) {
	var req CreateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	trainer := models.Trainer{
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Specialty: req.Specialty,
		Bio:       req.Bio,
		PhotoURL:  req.PhotoURL,
		Active:    true,
	}

	if err := h.db.Create(&trainer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_trainer"})
		return
	}

	c.JSON(http.StatusCreated, trainer)
}

func (h *TrainerHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var trainer models.Trainer
	if err := h.db.First(&trainer, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "trainer_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_trainer"})
		return
	}

	var req UpdateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		trainer.Name = *req.Name
	}
	if req.Email != nil {
		trainer.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Specialty != nil {
		trainer.Specialty = *req.Specialty
	}
	if req.Bio != nil {
		trainer.Bio = *req.Bio
	}
	if req.PhotoURL != nil {
		trainer.PhotoURL = *req.PhotoURL
	}
	if req.Active != nil {
		trainer.Active = *req.Active
	}

	if err := h.db.Save(&trainer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_trainer"})
		return
	}

	c.JSON(http.StatusOK, trainer)
}

func (h *TrainerHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Delete(&models.Trainer{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_trainer"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "trainer_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
