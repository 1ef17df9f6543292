package chat

import (
	"errors"

	"pulselink/models"
)

// ErrThreadNotFound is returned when a thread id is unknown for the user.
var ErrThreadNotFound = errors.New("chat thread not found")

// ChatService manages assistant conversations: per-user threads for
// signed-in users and an ephemeral guest feed for the quick-chat
// surface. Replies are canned and delivered after a fixed delay; the
// assistant itself is a simulation.
type ChatService interface {
	Threads(userID string) []models.Thread
	CreateThread(userID string) *models.Thread
	AddMessage(userID, threadID, content string, attachment *models.FileAttachment) (*models.Message, error)
	GuestMessages(guestID string) []models.Message
	AddGuestMessage(guestID, content string) (*models.Message, error)
	ClearGuestMessages(guestID string)
}
