package handlers

import (
	"errors"
	"net/http"

	"pulselink/directory"
	"pulselink/models"
	"pulselink/services/booking"
	"pulselink/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler drives a booking attempt: date and slot resolution and
// the confirm-then-book sequence.
type BookingHandler struct {
	Service booking.BookingSessionService
}

func NewBookingHandler(svc booking.BookingSessionService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// InitiateSession handles POST /api/booking/session.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	var req struct {
		DoctorID string `json:"doctorId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, doctor, err := h.Service.InitiateSession(c.GetString("userID"), req.DoctorID)
	if err != nil {
		if errors.Is(err, directory.ErrDoctorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found", "redirectTo": models.NavDashboard})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to start booking session", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session, "doctor": doctor})
}

// GetAvailableDates handles GET /api/booking/session/:sessionID/dates.
func (h *BookingHandler) GetAvailableDates(c *gin.Context) {
	dates, err := h.Service.AvailableDates(c.Param("sessionID"))
	if err != nil {
		h.bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dates": dates})
}

// SelectDate handles PUT /api/booking/session/:sessionID/date. A date
// change always resets the slot; the response carries the chosen date's
// session→slots mapping.
func (h *BookingHandler) SelectDate(c *gin.Context) {
	var req struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, slots, err := h.Service.SelectDate(c.Param("sessionID"), req.Date)
	if err != nil {
		h.bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session, "slots": slots})
}

// SelectSlot handles PUT /api/booking/session/:sessionID/slot.
func (h *BookingHandler) SelectSlot(c *gin.Context) {
	var req struct {
		Slot string `json:"slot" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.SelectSlot(c.Param("sessionID"), req.Slot)
	if err != nil {
		h.bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// ConfirmAndPay handles POST /api/booking/session/:sessionID/confirm:
// opening the confirmation dialog.
func (h *BookingHandler) ConfirmAndPay(c *gin.Context) {
	session, err := h.Service.ConfirmAndPay(c.Param("sessionID"))
	if err != nil {
		h.bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// DismissConfirmation handles POST /api/booking/session/:sessionID/dismiss:
// closing the dialog without booking.
func (h *BookingHandler) DismissConfirmation(c *gin.Context) {
	session, err := h.Service.DismissConfirmation(c.Param("sessionID"))
	if err != nil {
		h.bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// FinalConfirm handles POST /api/booking/session/:sessionID/finalize:
// the terminal booking step. The dashboard redirect follows via the
// notification feed after a short fixed delay.
func (h *BookingHandler) FinalConfirm(c *gin.Context) {
	record, err := h.Service.FinalConfirm(c.Param("sessionID"))
	if err != nil {
		h.bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"booking": record,
		"message": "Appointment booked successfully!",
	})
}

// CancelSession handles DELETE /api/booking/session/:sessionID.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Service.CancelSession(c.Param("sessionID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking session cancelled"})
}

func (h *BookingHandler) bookingError(c *gin.Context, err error) {
	var validation *booking.ValidationError
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message})
	case errors.Is(err, booking.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, directory.ErrDoctorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found", "redirectTo": models.NavDashboard})
	default:
		utils.JSONError(c, http.StatusInternalServerError, "booking failed", err.Error())
	}
}
