package booking

import (
	"testing"
	"time"

	"pulselink/directory"
	"pulselink/models"
	"pulselink/services/notification"
	"pulselink/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	svc       *DefaultBookingSessionService
	notifier  *notification.DefaultNotificationService
	scheduler *utils.ManualScheduler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	repo, err := directory.NewInMemoryRepository([]models.Doctor{
		{
			ID:             "d1",
			Name:           "Dr. Asha Verma",
			Specialization: "General Physician",
			Rating:         4.5,
			Reviews:        12,
			Fee:            600,
			City:           "Mumbai",
			Pincode:        "400001",
			Slots: map[string]map[string][]string{
				"2025-06-10": {"morning": {"09:00 AM", "09:30 AM"}},
				"2025-06-01": {"evening": {"06:00 PM"}},
				"2025-05-20": {"morning": {"08:00 AM"}},
			},
		},
	})
	require.NoError(t, err)

	notifier := notification.NewDefaultNotificationService()
	scheduler := &utils.ManualScheduler{}
	return &testEnv{
		svc: &DefaultBookingSessionService{
			Directory: repo,
			Notifier:  notifier,
			Scheduler: scheduler,
			Cache:     utils.NewCache(),
			Now: func() time.Time {
				return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
			},
		},
		notifier:  notifier,
		scheduler: scheduler,
	}
}

func (e *testEnv) start(t *testing.T) string {
	t.Helper()
	session, doctor, err := e.svc.InitiateSession("user-1", "d1")
	require.NoError(t, err)
	require.Equal(t, "d1", doctor.ID)
	require.Equal(t, models.BookingStateIdle, session.State)
	return session.SessionID
}

func TestInitiateSessionUnknownDoctor(t *testing.T) {
	env := newTestEnv(t)
	_, _, err := env.svc.InitiateSession("user-1", "ghost")
	assert.ErrorIs(t, err, directory.ErrDoctorNotFound)
}

func TestAvailableDatesSorted(t *testing.T) {
	env := newTestEnv(t)
	id := env.start(t)

	dates, err := env.svc.AvailableDates(id)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-05-20", "2025-06-01", "2025-06-10"}, dates)
}

func TestSelectDateRejectsPastAndUnavailable(t *testing.T) {
	env := newTestEnv(t)
	id := env.start(t)

	var validation *ValidationError

	// Past date, even though it has slots.
	_, _, err := env.svc.SelectDate(id, "2025-05-20")
	require.ErrorAs(t, err, &validation)

	// Future date with no slots entry.
	_, _, err = env.svc.SelectDate(id, "2025-06-11")
	require.ErrorAs(t, err, &validation)

	// Malformed date.
	_, _, err = env.svc.SelectDate(id, "10-06-2025")
	require.ErrorAs(t, err, &validation)

	// Rejections leave the machine in Idle.
	_, err = env.svc.SelectSlot(id, "09:00 AM")
	require.ErrorAs(t, err, &validation)
}

func TestSelectDateTodayAllowed(t *testing.T) {
	env := newTestEnv(t)
	id := env.start(t)

	session, slots, err := env.svc.SelectDate(id, "2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStateDateChosen, session.State)
	assert.Equal(t, map[string][]string{"evening": {"06:00 PM"}}, slots)
}

func TestSlotsForDate(t *testing.T) {
	env := newTestEnv(t)
	id := env.start(t)

	slots, err := env.svc.SlotsForDate(id, "2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"morning": {"09:00 AM", "09:30 AM"}}, slots)

	slots, err = env.svc.SlotsForDate(id, "2025-06-12")
	require.NoError(t, err)
	assert.Nil(t, slots)
}

func TestDateChangeResetsSlot(t *testing.T) {
	env := newTestEnv(t)
	id := env.start(t)

	_, _, err := env.svc.SelectDate(id, "2025-06-10")
	require.NoError(t, err)
	session, err := env.svc.SelectSlot(id, "09:30 AM")
	require.NoError(t, err)
	require.Equal(t, models.BookingStateSlotChosen, session.State)

	session, _, err = env.svc.SelectDate(id, "2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStateDateChosen, session.State)
	assert.Equal(t, "2025-06-01", session.SelectedDate)
	assert.Empty(t, session.SelectedSlot, "slot selections never carry across a date change")
}

func TestSelectSlotMustExistUnderChosenDate(t *testing.T) {
	env := newTestEnv(t)
	id := env.start(t)

	_, _, err := env.svc.SelectDate(id, "2025-06-10")
	require.NoError(t, err)

	var validation *ValidationError
	_, err = env.svc.SelectSlot(id, "06:00 PM")
	require.ErrorAs(t, err, &validation)
}

func TestConfirmWithoutDateAndSlotRejected(t *testing.T) {
	env := newTestEnv(t)
	id := env.start(t)

	var validation *ValidationError
	_, err := env.svc.ConfirmAndPay(id)
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, ConfirmValidationMessage, validation.Message)

	// Date only is still not enough.
	_, _, err = env.svc.SelectDate(id, "2025-06-10")
	require.NoError(t, err)
	_, err = env.svc.ConfirmAndPay(id)
	require.ErrorAs(t, err, &validation)

	// The rejection is a toast, and the state machine did not move.
	notifications, _ := env.notifier.Drain("user-1")
	require.NotEmpty(t, notifications)
	assert.Equal(t, models.SeverityError, notifications[0].Severity)
	assert.Equal(t, ConfirmValidationMessage, notifications[0].Message)

	session, err := env.svc.SelectSlot(id, "09:00 AM")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStateSlotChosen, session.State)
}

func TestDismissConfirmationReturnsToSlotChosen(t *testing.T) {
	env := newTestEnv(t)
	id := env.start(t)

	_, _, err := env.svc.SelectDate(id, "2025-06-10")
	require.NoError(t, err)
	_, err = env.svc.SelectSlot(id, "09:00 AM")
	require.NoError(t, err)
	session, err := env.svc.ConfirmAndPay(id)
	require.NoError(t, err)
	require.Equal(t, models.BookingStateConfirmPending, session.State)

	session, err = env.svc.DismissConfirmation(id)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStateSlotChosen, session.State)
	assert.Equal(t, "09:00 AM", session.SelectedSlot, "dismiss keeps the selection")
}

func TestFinalConfirmRequiresPendingConfirmation(t *testing.T) {
	env := newTestEnv(t)
	id := env.start(t)

	var validation *ValidationError
	_, err := env.svc.FinalConfirm(id)
	require.ErrorAs(t, err, &validation)
}

func TestEndToEndBookingFlow(t *testing.T) {
	env := newTestEnv(t)
	id := env.start(t)

	session, slots, err := env.svc.SelectDate(id, "2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStateDateChosen, session.State)
	require.Equal(t, map[string][]string{"morning": {"09:00 AM", "09:30 AM"}}, slots)

	session, err = env.svc.SelectSlot(id, "09:30 AM")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStateSlotChosen, session.State)

	session, err = env.svc.ConfirmAndPay(id)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStateConfirmPending, session.State)

	record, err := env.svc.FinalConfirm(id)
	require.NoError(t, err)
	assert.Equal(t, "d1", record.DoctorID)
	assert.Equal(t, "Dr. Asha Verma", record.DoctorName)
	assert.Equal(t, "2025-06-10", record.Date)
	assert.Equal(t, "09:30 AM", record.Slot)
	assert.Equal(t, 600, record.Fee)

	// Success toast is immediate; the dashboard redirect waits for the
	// fixed post-booking delay.
	notifications, redirect := env.notifier.Drain("user-1")
	require.Len(t, notifications, 1)
	assert.Equal(t, models.SeveritySuccess, notifications[0].Severity)
	assert.Equal(t, "Appointment booked successfully!", notifications[0].Message)
	assert.Nil(t, redirect)

	require.Equal(t, 1, env.scheduler.Pending())
	env.scheduler.Fire()
	_, redirect = env.notifier.Drain("user-1")
	require.NotNil(t, redirect)
	assert.Equal(t, models.NavDashboard, redirect.Target)

	// The session is destroyed after a successful booking.
	_, err = env.svc.ConfirmAndPay(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCancelSessionDiscardsAttempt(t *testing.T) {
	env := newTestEnv(t)
	id := env.start(t)

	require.NoError(t, env.svc.CancelSession(id))
	_, err := env.svc.AvailableDates(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
