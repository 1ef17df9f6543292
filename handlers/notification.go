package handlers

import (
	"net/http"

	"pulselink/models"
	"pulselink/services/notification"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the toast feed.
type NotificationHandler struct {
	Service notification.NotificationService
}

func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: svc}
}

// DrainHandler handles GET /api/notifications: returns and clears
// everything pending for the user, including any navigation intent.
func (h *NotificationHandler) DrainHandler(c *gin.Context) {
	notifications, redirect := h.Service.Drain(c.GetString("userID"))
	if notifications == nil {
		notifications = []models.Notification{}
	}
	resp := gin.H{"notifications": notifications}
	if redirect != nil {
		resp["redirectTo"] = redirect.Target
	}
	c.JSON(http.StatusOK, resp)
}
