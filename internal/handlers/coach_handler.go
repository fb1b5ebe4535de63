package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ironfit-labs/gym-platform/internal/config"
	"github.com/ironfit-labs/gym-platform/internal/logger"
)

// Canned answers used whenever the chat completion API is unconfigured or
// unreachable. The endpoint must always answer something useful.
var fallbackTips = []string{
	"Aim for at least 3 strength sessions per week and keep rest days between them.",
	"Protein target: roughly 1.6-2.2g per kg of body weight per day.",
	"Progressive overload beats program hopping: add a little weight or a rep each week.",
	"Sleep 7-9 hours. Recovery is where the adaptation happens.",
	"Hydrate before training: even mild dehydration costs you strength.",
}

type CoachHandler struct {
	cfg    *config.Config
	client *http.Client
}

func NewCoachHandler(cfg *config.Config) *CoachHandler {
	return &CoachHandler{
		cfg: cfg,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// --------- Requests ---------

type CoachChatRequest struct {
	Message string `json:"message" binding:"required"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// --------- Handlers ---------

func (h *CoachHandler) Chat(c *gin.Context) {
	var req CoachChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	reply, ok := h.askModel(c, req.Message)
	if !ok {
		reply = fallbackTips[int(time.Now().UnixNano())%len(fallbackTips)]
		c.JSON(http.StatusOK, gin.H{"reply": reply, "source": "fallback"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply, "source": "model"})
}

func (h *CoachHandler) askModel(c *gin.Context, message string) (string, bool) {
	if h.cfg.CoachAPIURL == "" || h.cfg.CoachAPIKey == "" {
		return "", false
	}

	body, err := json.Marshal(chatCompletionRequest{
		Model: h.cfg.CoachModel,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a concise fitness coach for a gym's members."},
			{Role: "user", Content: message},
		},
	})
	if err != nil {
		return "", false
	}

	httpReq, err := http.NewRequestWithContext(
		c.Request.Context(),
		http.MethodPost,
		h.cfg.CoachAPIURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return "", false
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+h.cfg.CoachAPIKey)

	res, err := h.client.Do(httpReq)
	if err != nil {
		logger.Errorf("coach api call failed: %v", err)
		return "", false
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		logger.Errorf("coach api returned %d", res.StatusCode)
		return "", false
	}

	var parsed chatCompletionResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return "", false
	}

	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", false
	}

	return parsed.Choices[0].Message.Content, true
}
