package booking

import (
	"time"

	"pulselink/directory"
	"pulselink/models"
	"pulselink/services/notification"
	"pulselink/utils"
)

// BookingSessionService drives one booking attempt against a single
// doctor: date and slot resolution plus the confirm-then-book sequence.
type BookingSessionService interface {
	InitiateSession(userID, doctorID string) (*models.BookingSession, *models.Doctor, error)
	AvailableDates(sessionID string) ([]string, error)
	SlotsForDate(sessionID, date string) (map[string][]string, error)
	SelectDate(sessionID, date string) (*models.BookingSession, map[string][]string, error)
	SelectSlot(sessionID, slot string) (*models.BookingSession, error)
	ConfirmAndPay(sessionID string) (*models.BookingSession, error)
	DismissConfirmation(sessionID string) (*models.BookingSession, error)
	FinalConfirm(sessionID string) (*models.Booking, error)
	CancelSession(sessionID string) error
}

// DefaultBookingSessionService implements BookingSessionService. Now is
// an injectable clock so tests can pin the date-selection cutoff.
type DefaultBookingSessionService struct {
	Directory directory.Repository
	Notifier  notification.NotificationService
	Scheduler utils.Scheduler
	Cache     *utils.Cache
	Now       func() time.Time
}

func (s *DefaultBookingSessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
