package booking

import (
	"fmt"
	"sort"
	"time"

	"pulselink/config"
	"pulselink/models"
	"pulselink/utils"

	"github.com/google/uuid"
)

// InitiateSession opens a booking attempt for the given doctor. An
// unknown doctor id is terminal for the booking view only: the caller
// gets directory.ErrDoctorNotFound and offers the dashboard as recovery.
func (s *DefaultBookingSessionService) InitiateSession(userID, doctorID string) (*models.BookingSession, *models.Doctor, error) {
	doctor, err := s.Directory.GetByID(doctorID)
	if err != nil {
		return nil, nil, err
	}

	session := models.BookingSession{
		SessionID: uuid.New().String(),
		UserID:    userID,
		DoctorID:  doctor.ID,
		State:     models.BookingStateIdle,
	}
	s.save(session)
	return &session, doctor, nil
}

// AvailableDates returns the dates that carry at least one slot, sorted
// ascending. Every key of the doctor's slots mapping qualifies; dates
// with no slots are absent from the mapping by invariant.
func (s *DefaultBookingSessionService) AvailableDates(sessionID string) ([]string, error) {
	session, err := s.load(sessionID)
	if err != nil {
		return nil, err
	}
	doctor, err := s.Directory.GetByID(session.DoctorID)
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(doctor.Slots))
	for date := range doctor.Slots {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates, nil
}

// SlotsForDate returns the session→slot-list mapping for the exact date
// key, or nil when the date has no entry.
func (s *DefaultBookingSessionService) SlotsForDate(sessionID, date string) (map[string][]string, error) {
	session, err := s.load(sessionID)
	if err != nil {
		return nil, err
	}
	doctor, err := s.Directory.GetByID(session.DoctorID)
	if err != nil {
		return nil, err
	}
	return doctor.Slots[date], nil
}

// SelectDate picks a calendar date. The date must be a key of the
// doctor's slots mapping and must not be earlier than the current date;
// both are preconditions, so failing them rejects the call without
// touching the session. Re-selecting a date always resets the slot.
func (s *DefaultBookingSessionService) SelectDate(sessionID, date string) (*models.BookingSession, map[string][]string, error) {
	session, err := s.load(sessionID)
	if err != nil {
		return nil, nil, err
	}
	if !canTransition(session.State, models.BookingStateDateChosen) {
		return nil, nil, NewValidationError(fmt.Sprintf("cannot change date in state %q", session.State))
	}

	doctor, err := s.Directory.GetByID(session.DoctorID)
	if err != nil {
		return nil, nil, err
	}

	parsed, err := time.Parse(utils.DateLayout, date)
	if err != nil {
		return nil, nil, NewValidationError("date must be formatted yyyy-MM-dd")
	}
	if date < s.now().Format(utils.DateLayout) {
		return nil, nil, NewValidationError("date is in the past")
	}
	sessions, ok := doctor.Slots[parsed.Format(utils.DateLayout)]
	if !ok {
		return nil, nil, NewValidationError("no availability on " + date)
	}

	session.SelectedDate = date
	session.SelectedSlot = ""
	session.State = models.BookingStateDateChosen
	s.save(session)
	return &session, sessions, nil
}

// SelectSlot picks a slot label under the chosen date's sessions.
func (s *DefaultBookingSessionService) SelectSlot(sessionID, slot string) (*models.BookingSession, error) {
	session, err := s.load(sessionID)
	if err != nil {
		return nil, err
	}
	if !canTransition(session.State, models.BookingStateSlotChosen) || session.SelectedDate == "" {
		return nil, NewValidationError(ConfirmValidationMessage)
	}

	doctor, err := s.Directory.GetByID(session.DoctorID)
	if err != nil {
		return nil, err
	}

	found := false
	for _, slots := range doctor.Slots[session.SelectedDate] {
		for _, label := range slots {
			if label == slot {
				found = true
				break
			}
		}
	}
	if !found {
		return nil, NewValidationError("slot " + slot + " is not available on " + session.SelectedDate)
	}

	session.SelectedSlot = slot
	session.State = models.BookingStateSlotChosen
	s.save(session)
	return &session, nil
}

// ConfirmAndPay opens the confirmation dialog. Pressing it without both
// a date and a slot reports a validation failure and leaves the state
// machine unchanged.
func (s *DefaultBookingSessionService) ConfirmAndPay(sessionID string) (*models.BookingSession, error) {
	session, err := s.load(sessionID)
	if err != nil {
		return nil, err
	}
	if session.SelectedDate == "" || session.SelectedSlot == "" ||
		!canTransition(session.State, models.BookingStateConfirmPending) {
		s.Notifier.Push(session.UserID, models.SeverityError, ConfirmValidationMessage)
		return nil, NewValidationError(ConfirmValidationMessage)
	}

	session.State = models.BookingStateConfirmPending
	s.save(session)
	return &session, nil
}

// DismissConfirmation closes the confirmation dialog without booking.
func (s *DefaultBookingSessionService) DismissConfirmation(sessionID string) (*models.BookingSession, error) {
	session, err := s.load(sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != models.BookingStateConfirmPending {
		return nil, NewValidationError("no confirmation is pending")
	}

	session.State = models.BookingStateSlotChosen
	s.save(session)
	return &session, nil
}

// FinalConfirm completes the booking: the terminal Booked state, a
// success toast, and a dashboard navigation intent after a short fixed
// delay. No payment or persistence happens; that is the simulation
// boundary. The session is destroyed once booked.
func (s *DefaultBookingSessionService) FinalConfirm(sessionID string) (*models.Booking, error) {
	session, err := s.load(sessionID)
	if err != nil {
		return nil, err
	}
	if !canTransition(session.State, models.BookingStateBooked) {
		return nil, NewValidationError("no confirmation is pending")
	}

	doctor, err := s.Directory.GetByID(session.DoctorID)
	if err != nil {
		return nil, err
	}

	record := models.Booking{
		ID:         uuid.New().String(),
		DoctorID:   doctor.ID,
		DoctorName: doctor.Name,
		UserID:     session.UserID,
		Date:       session.SelectedDate,
		Slot:       session.SelectedSlot,
		Fee:        doctor.Fee,
		CreatedAt:  s.now(),
	}

	s.Cache.Del(sessionID)
	s.Notifier.Push(session.UserID, models.SeveritySuccess, "Appointment booked successfully!")

	userID := session.UserID
	s.Scheduler.After(redirectDelay(), func() {
		s.Notifier.PushNavigation(userID, models.NavDashboard)
	})

	return &record, nil
}

// CancelSession discards the booking attempt (navigation away).
func (s *DefaultBookingSessionService) CancelSession(sessionID string) error {
	s.Cache.Del(sessionID)
	return nil
}

func redirectDelay() time.Duration {
	ms := config.AppConfig.PostBookingRedirectMs
	if ms <= 0 {
		ms = 1500
	}
	return time.Duration(ms) * time.Millisecond
}

func (s *DefaultBookingSessionService) load(sessionID string) (models.BookingSession, error) {
	value, ok := s.Cache.Get(sessionID)
	if !ok {
		return models.BookingSession{}, ErrSessionNotFound
	}
	return value.(models.BookingSession), nil
}

func (s *DefaultBookingSessionService) save(session models.BookingSession) {
	s.Cache.Set(session.SessionID, session, utils.SessionCacheTTL())
}
