package notification

import (
	"sync"
	"time"

	"pulselink/config"
	"pulselink/models"
	"pulselink/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultNotificationService keeps a bounded per-user feed in memory and
// mirrors every message to the log. Delivery channels (SMS, email, push)
// are outside the portal's scope.
type DefaultNotificationService struct {
	mu    sync.Mutex
	feeds map[string]*userFeed
}

type userFeed struct {
	notifications []models.Notification
	redirect      *models.NavigationIntent
}

func NewDefaultNotificationService() *DefaultNotificationService {
	return &DefaultNotificationService{feeds: make(map[string]*userFeed)}
}

// Push appends a notification to the user's feed.
func (s *DefaultNotificationService) Push(userID, severity, message string) models.Notification {
	n := models.Notification{
		ID:        uuid.New().String(),
		Severity:  severity,
		Message:   message,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	feed := s.feed(userID)
	feed.notifications = append(feed.notifications, n)
	if limit := config.AppConfig.NotificationFeedLength; limit > 0 && len(feed.notifications) > limit {
		feed.notifications = feed.notifications[len(feed.notifications)-limit:]
	}
	s.mu.Unlock()

	utils.GetLogger().Info("notification",
		zap.String("userID", userID),
		zap.String("severity", severity),
		zap.String("message", message))
	return n
}

// PushNavigation records a navigation intent for the user; the client
// picks it up on its next drain and routes accordingly.
func (s *DefaultNotificationService) PushNavigation(userID, target string) {
	s.mu.Lock()
	s.feed(userID).redirect = &models.NavigationIntent{Target: target}
	s.mu.Unlock()

	utils.GetLogger().Info("navigation intent",
		zap.String("userID", userID),
		zap.String("target", target))
}

// Drain returns and clears everything pending for the user.
func (s *DefaultNotificationService) Drain(userID string) ([]models.Notification, *models.NavigationIntent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	feed, ok := s.feeds[userID]
	if !ok {
		return nil, nil
	}
	notifications := feed.notifications
	redirect := feed.redirect
	delete(s.feeds, userID)
	return notifications, redirect
}

func (s *DefaultNotificationService) feed(userID string) *userFeed {
	feed, ok := s.feeds[userID]
	if !ok {
		feed = &userFeed{}
		s.feeds[userID] = feed
	}
	return feed
}
