package handlers

import (
	"errors"
	"net/http"

	"pulselink/models"
	"pulselink/services/chat"
	"pulselink/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChatHandler exposes the assistant conversations.
type ChatHandler struct {
	Service chat.ChatService
}

func NewChatHandler(svc chat.ChatService) *ChatHandler {
	return &ChatHandler{Service: svc}
}

// ListThreads handles GET /api/chat/threads.
func (h *ChatHandler) ListThreads(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"threads": h.Service.Threads(c.GetString("userID"))})
}

// CreateThread handles POST /api/chat/threads.
func (h *ChatHandler) CreateThread(c *gin.Context) {
	thread := h.Service.CreateThread(c.GetString("userID"))
	c.JSON(http.StatusOK, gin.H{"thread": thread})
}

// AddMessage handles POST /api/chat/threads/:threadID/messages. The
// assistant's reply lands in the thread after the configured delay.
func (h *ChatHandler) AddMessage(c *gin.Context) {
	var req struct {
		Content        string                 `json:"content" binding:"required"`
		FileAttachment *models.FileAttachment `json:"fileAttachment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	message, err := h.Service.AddMessage(c.GetString("userID"), c.Param("threadID"), req.Content, req.FileAttachment)
	if err != nil {
		if errors.Is(err, chat.ErrThreadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to add message", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// AddGuestMessage handles POST /api/chat/guest: the unauthenticated
// quick-chat. A missing guestId starts a fresh guest feed.
func (h *ChatHandler) AddGuestMessage(c *gin.Context) {
	var req struct {
		GuestID string `json:"guestId"`
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	guestID := req.GuestID
	if guestID == "" {
		guestID = "guest-" + uuid.New().String()
	}

	message, err := h.Service.AddGuestMessage(guestID, req.Content)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to add message", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"guestId": guestID, "message": message})
}

// GetGuestMessages handles GET /api/chat/guest/:guestID.
func (h *ChatHandler) GetGuestMessages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"messages": h.Service.GuestMessages(c.Param("guestID"))})
}

// ClearGuestMessages handles DELETE /api/chat/guest/:guestID.
func (h *ChatHandler) ClearGuestMessages(c *gin.Context) {
	h.Service.ClearGuestMessages(c.Param("guestID"))
	c.JSON(http.StatusOK, gin.H{"message": "guest messages cleared"})
}
