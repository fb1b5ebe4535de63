package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ironfit-labs/gym-platform/internal/middleware"
	"github.com/ironfit-labs/gym-platform/internal/models"
	"github.com/ironfit-labs/gym-platform/internal/timezone"
)

// TrackerHandler owns the personal workout/meal/progress logs. Everything
// here is scoped to the authenticated member.
type TrackerHandler struct {
	db *gorm.DB
}

func NewTrackerHandler(db *gorm.DB) *TrackerHandler {
	return &TrackerHandler{db: db}
}

// --------- Requests ---------

type CreateWorkoutLogRequest struct {
	Date        string  `json:"date"` // YYYY-MM-DD, defaults to today
	Exercise    string  `json:"exercise" binding:"required"`
	Sets        int     `json:"sets"`
	Reps        int     `json:"reps"`
	WeightKg    float64 `json:"weight_kg"`
	DurationMin int     `json:"duration_min"`
	Notes       string  `json:"notes"`
}

type CreateMealLogRequest struct {
	Date     string  `json:"date"`
	Meal     string  `json:"meal" binding:"required"`
	Food     string  `json:"food" binding:"required"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type CreateProgressEntryRequest struct {
	Date       string  `json:"date"`
	WeightKg   float64 `json:"weight_kg"`
	BodyFatPct float64 `json:"body_fat_pct"`
	MuscleKg   float64 `json:"muscle_kg"`
	WaistCm    float64 `json:"waist_cm"`
	Notes      string  `json:"notes"`
}

func memberID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextUserID).(uint)
}

func parseEntryDate(dateStr string) time.Time {
	if dateStr != "" {
		if d, err := time.ParseInLocation("2006-01-02", dateStr, timezone.Location("")); err == nil {
			return d
		}
	}
	return timezone.Now()
}

// --------- Workouts ---------

func (h *TrackerHandler) CreateWorkout(c *gin.Context) {
	var req CreateWorkoutLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	entry := models.WorkoutLog{
		MemberID:    memberID(c),
		Date:        parseEntryDate(req.Date),
		Exercise:    req.Exercise,
		Sets:        req.Sets,
		Reps:        req.Reps,
		WeightKg:    req.WeightKg,
		DurationMin: req.DurationMin,
		Notes:       req.Notes,
	}

	if err := h.db.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_workout_log"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *TrackerHandler) ListWorkouts(c *gin.Context) {
	var entries []models.WorkoutLog
	if err := h.db.
		Where("member_id = ?", memberID(c)).
		Order("date DESC").
		Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_workout_logs"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *TrackerHandler) DeleteWorkout(c *gin.Context) {
	res := h.db.Delete(&models.WorkoutLog{}, "id = ? AND member_id = ?", c.Param("id"), memberID(c))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_workout_log"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "workout_log_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --------- Meals ---------

func (h *TrackerHandler) CreateMeal(c *gin.Context) {
	var req CreateMealLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	entry := models.MealLog{
		MemberID: memberID(c),
		Date:     parseEntryDate(req.Date),
		Meal:     req.Meal,
		Food:     req.Food,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
	}

	if err := h.db.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_meal_log"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *TrackerHandler) ListMeals(c *gin.Context) {
	var entries []models.MealLog
	if err := h.db.
		Where("member_id = ?", memberID(c)).
		Order("date DESC").
		Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_meal_logs"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *TrackerHandler) DeleteMeal(c *gin.Context) {
	res := h.db.Delete(&models.MealLog{}, "id = ? AND member_id = ?", c.Param("id"), memberID(c))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_meal_log"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal_log_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --------- Progress ---------

func (h *TrackerHandler) CreateProgress(c *gin.Context) {
	var req CreateProgressEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	entry := models.ProgressEntry{
		MemberID:   memberID(c),
		Date:       parseEntryDate(req.Date),
		WeightKg:   req.WeightKg,
		BodyFatPct: req.BodyFatPct,
		MuscleKg:   req.MuscleKg,
		WaistCm:    req.WaistCm,
		Notes:      req.Notes,
	}

	if err := h.db.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_progress_entry"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *TrackerHandler) ListProgress(c *gin.Context) {
	var entries []models.ProgressEntry
	if err := h.db.
		Where("member_id = ?", memberID(c)).
		Order("date DESC").
		Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_progress_entries"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *TrackerHandler) DeleteProgress(c *gin.Context) {
	res := h.db.Delete(&models.ProgressEntry{}, "id = ? AND member_id = ?", c.Param("id"), memberID(c))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_progress_entry"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "progress_entry_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
