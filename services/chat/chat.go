package chat

import (
	"sync"
	"time"

	"pulselink/config"
	"pulselink/models"
	"pulselink/utils"

	"github.com/google/uuid"
)

// Canned assistant replies. The signed-in reply ends with the shared
// "find a doctor" call-to-action that hands off to the booking flow.
const (
	AssistantReply = "I understand your concern. I'm here to help you with your health queries. " +
		"Based on what you've shared, I'd recommend consulting with a healthcare professional for a proper diagnosis. " +
		"Would you like me to help you find a doctor or book an appointment?"
	GuestAssistantReply = "Thank you for reaching out! I can help you with general health information. " +
		"For personalized care and to book appointments, I'd recommend creating an account. " +
		"In the meantime, how can I assist you today?"
)

// DefaultChatService keeps threads and guest feeds in memory for the
// lifetime of the process.
type DefaultChatService struct {
	Scheduler utils.Scheduler

	mu      sync.Mutex
	threads map[string][]models.Thread
	guest   map[string][]models.Message
}

func NewDefaultChatService(scheduler utils.Scheduler) *DefaultChatService {
	return &DefaultChatService{
		Scheduler: scheduler,
		threads:   make(map[string][]models.Thread),
		guest:     make(map[string][]models.Message),
	}
}

// Threads returns the user's conversations, newest first. A first-time
// caller is seeded with the mock history the portal ships with. The
// result is a snapshot: the delayed reply timer mutates the live
// threads, so callers never see the internal slices.
func (s *DefaultChatService) Threads(userID string) []models.Thread {
	s.mu.Lock()
	defer s.mu.Unlock()

	threads := s.userThreads(userID)
	out := make([]models.Thread, len(threads))
	for i, thread := range threads {
		out[i] = thread
		out[i].Messages = append([]models.Message(nil), thread.Messages...)
	}
	return out
}

// CreateThread opens a new empty conversation at the head of the list.
func (s *DefaultChatService) CreateThread(userID string) *models.Thread {
	s.mu.Lock()
	defer s.mu.Unlock()

	thread := models.Thread{
		ID:       "thread-" + uuid.New().String(),
		Title:    "New conversation",
		Date:     time.Now().Format(utils.DateLayout),
		Messages: []models.Message{},
	}
	s.threads[userID] = append([]models.Thread{thread}, s.userThreads(userID)...)
	return &thread
}

// AddMessage appends a user message to the thread and schedules the
// assistant's reply after the configured delay. The timer is single-shot
// and non-cancelable.
func (s *DefaultChatService) AddMessage(userID, threadID, content string, attachment *models.FileAttachment) (*models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	threads := s.userThreads(userID)
	for i := range threads {
		if threads[i].ID == threadID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrThreadNotFound
	}

	message := models.Message{
		ID:             "msg-" + uuid.New().String(),
		Role:           models.RoleUser,
		Content:        content,
		Timestamp:      time.Now(),
		FileAttachment: attachment,
	}
	threads[idx].Messages = append(threads[idx].Messages, message)

	s.Scheduler.After(replyDelay(), func() {
		s.appendAssistantReply(userID, threadID, AssistantReply)
	})

	return &message, nil
}

// GuestMessages returns a snapshot of the unauthenticated quick-chat
// feed.
func (s *DefaultChatService) GuestMessages(guestID string) []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Message(nil), s.guest[guestID]...)
}

// AddGuestMessage appends to the guest feed and schedules the guest
// variant of the canned reply.
func (s *DefaultChatService) AddGuestMessage(guestID, content string) (*models.Message, error) {
	s.mu.Lock()
	message := models.Message{
		ID:        "guest-msg-" + uuid.New().String(),
		Role:      models.RoleUser,
		Content:   content,
		Timestamp: time.Now(),
	}
	s.guest[guestID] = append(s.guest[guestID], message)
	s.mu.Unlock()

	s.Scheduler.After(replyDelay(), func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.guest[guestID] = append(s.guest[guestID], models.Message{
			ID:        "guest-msg-" + uuid.New().String(),
			Role:      models.RoleAssistant,
			Content:   GuestAssistantReply,
			Timestamp: time.Now(),
		})
	})

	return &message, nil
}

// ClearGuestMessages discards the guest feed.
func (s *DefaultChatService) ClearGuestMessages(guestID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.guest, guestID)
}

func (s *DefaultChatService) appendAssistantReply(userID, threadID, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	threads := s.userThreads(userID)
	for i := range threads {
		if threads[i].ID == threadID {
			threads[i].Messages = append(threads[i].Messages, models.Message{
				ID:        "msg-" + uuid.New().String(),
				Role:      models.RoleAssistant,
				Content:   content,
				Timestamp: time.Now(),
			})
			return
		}
	}
}

// userThreads must be called with the lock held.
func (s *DefaultChatService) userThreads(userID string) []models.Thread {
	if _, ok := s.threads[userID]; !ok {
		s.threads[userID] = seedThreads()
	}
	return s.threads[userID]
}

func replyDelay() time.Duration {
	ms := config.AppConfig.AssistantReplyDelayMs
	if ms <= 0 {
		ms = 1000
	}
	return time.Duration(ms) * time.Millisecond
}
