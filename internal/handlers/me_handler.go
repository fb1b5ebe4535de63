package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ironfit-labs/gym-platform/internal/middleware"
	"github.com/ironfit-labs/gym-platform/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userIDVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	userID, ok := userIDVal.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_user_id_type"})
		return
	}

	var member models.Member
	if err := h.db.First(&member, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "member_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"member": gin.H{
			"id":                member.ID,
			"name":              member.Name,
			"email":             member.Email,
			"phone":             member.Phone,
			"role":              member.Role,
			"plan":              member.Plan,
			"membership_status": member.MembershipStatus,
		},
	})
}
