package handlers

import (
	"errors"
	"net/http"

	"pulselink/services/search"
	"pulselink/utils"

	"github.com/gin-gonic/gin"
)

// SearchHandler exposes the doctor search session: pincode input and
// apply, the fallback dialog, specialization toggles and results.
type SearchHandler struct {
	Service search.SearchService
}

func NewSearchHandler(svc search.SearchService) *SearchHandler {
	return &SearchHandler{Service: svc}
}

// StartSession handles POST /api/search/session.
func (h *SearchHandler) StartSession(c *gin.Context) {
	session, err := h.Service.StartSession(c.GetString("userID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to start search session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session, "specializations": search.Specializations})
}

// SetPincodeInput handles PUT /api/search/session/:sessionID/pincode.
// The validation message is advisory: interim invalid input is stored,
// not rejected.
func (h *SearchHandler) SetPincodeInput(c *gin.Context) {
	var req struct {
		Pincode string `json:"pincode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, validationMsg, err := h.Service.SetPincodeInput(c.Param("sessionID"), req.Pincode)
	if err != nil {
		h.searchError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session, "pincodeError": validationMsg})
}

// ApplyPincode handles POST /api/search/session/:sessionID/apply.
func (h *SearchHandler) ApplyPincode(c *gin.Context) {
	session, err := h.Service.ApplyPincode(c.Param("sessionID"))
	if err != nil {
		h.searchError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// ResolveFallback handles POST /api/search/session/:sessionID/fallback.
func (h *SearchHandler) ResolveFallback(c *gin.Context) {
	var req struct {
		Choice string `json:"choice" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.ResolveFallback(c.Param("sessionID"), req.Choice)
	if err != nil {
		h.searchError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// ToggleSpecialization handles PUT /api/search/session/:sessionID/specializations.
func (h *SearchHandler) ToggleSpecialization(c *gin.Context) {
	var req struct {
		Specialization string `json:"specialization" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.ToggleSpecialization(c.Param("sessionID"), req.Specialization)
	if err != nil {
		h.searchError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// ClearFilters handles DELETE /api/search/session/:sessionID/filters.
func (h *SearchHandler) ClearFilters(c *gin.Context) {
	session, err := h.Service.ClearAllFilters(c.Param("sessionID"))
	if err != nil {
		h.searchError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// GetResults handles GET /api/search/session/:sessionID/results. An
// empty list is the empty state, not an error.
func (h *SearchHandler) GetResults(c *gin.Context) {
	doctors, err := h.Service.FilteredDoctors(c.Param("sessionID"))
	if err != nil {
		h.searchError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors, "count": len(doctors)})
}

func (h *SearchHandler) searchError(c *gin.Context, err error) {
	var validation *search.ValidationError
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message})
	case errors.Is(err, search.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		utils.JSONError(c, http.StatusInternalServerError, "search failed", err.Error())
	}
}
