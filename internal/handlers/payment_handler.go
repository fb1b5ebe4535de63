package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"

	"github.com/ironfit-labs/gym-platform/internal/config"
	"github.com/ironfit-labs/gym-platform/internal/middleware"
	"github.com/ironfit-labs/gym-platform/internal/models"
)

// Membership plans and their monthly-equivalent prices.
var planPrices = map[string]float64{
	"monthly":   49.90,
	"quarterly": 129.90,
	"annual":    449.90,
}

type PaymentHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewPaymentHandler(db *gorm.DB, cfg *config.Config) *PaymentHandler {
	return &PaymentHandler{db: db, cfg: cfg}
}

// --------- Requests ---------

type CheckoutRequest struct {
	Plan string `json:"plan" binding:"required"`
}

// --------- Handlers ---------

// Checkout creates a payment intent for a membership plan and records it.
// Membership activation follows the provider's status.
func (h *PaymentHandler) Checkout(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	amount, ok := planPrices[req.Plan]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown_plan"})
		return
	}

	var member models.Member
	if err := h.db.First(&member, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "member_not_found"})
		return
	}

	mpCfg, err := mpconfig.New(h.cfg.MercadoPagoToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "payment_provider_unavailable"})
		return
	}

	client := payment.NewClient(mpCfg)

	res, err := client.Create(c.Request.Context(), payment.Request{
		TransactionAmount: amount,
		Description:       "IronFit membership: " + req.Plan,
		PaymentMethodID:   "pix",
		Payer: &payment.PayerRequest{
			Email: member.Email,
		},
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "payment_creation_failed"})
		return
	}

	record := models.Payment{
		MemberID:    member.ID,
		Plan:        req.Plan,
		Amount:      amount,
		Currency:    "BRL",
		ProviderRef: fmt.Sprintf("%d", res.ID),
		Status:      res.Status,
	}

	if err := h.db.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_record_payment"})
		return
	}

	if res.Status == "approved" {
		member.Plan = req.Plan
		member.MembershipStatus = "active"
		h.db.Save(&member)
	}

	c.JSON(http.StatusCreated, gin.H{
		"payment": record,
		"status":  res.Status,
	})
}

// History lists the caller's own payments, newest first.
func (h *PaymentHandler) History(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var payments []models.Payment
	if err := h.db.
		Where("member_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}
