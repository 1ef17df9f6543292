package models

import "time"

// BookingState enumerates the booking sequencer's states. The reachable
// set is closed: Idle → DateChosen → SlotChosen → ConfirmPending →
// Booked, with ConfirmPending dismissible back to SlotChosen.
type BookingState string

const (
	BookingStateIdle           BookingState = "idle"
	BookingStateDateChosen     BookingState = "dateChosen"
	BookingStateSlotChosen     BookingState = "slotChosen"
	BookingStateConfirmPending BookingState = "confirmPending"
	BookingStateBooked         BookingState = "booked"
)

// BookingSession is one booking attempt against a single doctor.
// SelectedSlot never survives a date change; the sequencer enforces it.
type BookingSession struct {
	SessionID    string       `json:"sessionId"`
	UserID       string       `json:"userId"`
	DoctorID     string       `json:"doctorId"`
	SelectedDate string       `json:"selectedDate,omitempty"`
	SelectedSlot string       `json:"selectedSlot,omitempty"`
	State        BookingState `json:"state"`
}

// Booking is the client-visible result of a completed booking attempt.
// Nothing is persisted beyond the process; payment is simulated.
type Booking struct {
	ID         string    `json:"id"`
	DoctorID   string    `json:"doctorId"`
	DoctorName string    `json:"doctorName"`
	UserID     string    `json:"userId"`
	Date       string    `json:"date"`
	Slot       string    `json:"slot"`
	Fee        int       `json:"fee"`
	CreatedAt  time.Time `json:"createdAt"`
}
