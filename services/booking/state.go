package booking

import "pulselink/models"

// Legal transitions of the booking sequencer. Date selection re-enters
// DateChosen from any pre-confirmation state; everything past
// ConfirmPending is reachable only through the confirmation dialog.
var transitions = map[models.BookingState][]models.BookingState{
	models.BookingStateIdle:           {models.BookingStateDateChosen},
	models.BookingStateDateChosen:     {models.BookingStateDateChosen, models.BookingStateSlotChosen},
	models.BookingStateSlotChosen:     {models.BookingStateDateChosen, models.BookingStateSlotChosen, models.BookingStateConfirmPending},
	models.BookingStateConfirmPending: {models.BookingStateSlotChosen, models.BookingStateBooked},
	models.BookingStateBooked:         {},
}

// canTransition reports whether moving from one state to another is
// allowed by the transition table.
func canTransition(from, to models.BookingState) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
