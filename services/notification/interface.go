package notification

import "pulselink/models"

// NotificationService is the toast channel of the portal. Messages are
// discrete, timestamped and non-blocking; the client drains its feed and
// renders whatever arrived since the last poll.
type NotificationService interface {
	Push(userID, severity, message string) models.Notification
	PushNavigation(userID, target string)
	Drain(userID string) ([]models.Notification, *models.NavigationIntent)
}
