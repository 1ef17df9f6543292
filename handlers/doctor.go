package handlers

import (
	"net/http"

	"pulselink/directory"
	"pulselink/models"
	"pulselink/utils"

	"github.com/gin-gonic/gin"
)

// DoctorHandler exposes read-only directory lookups.
type DoctorHandler struct {
	Directory directory.Repository
}

func NewDoctorHandler(repo directory.Repository) *DoctorHandler {
	return &DoctorHandler{Directory: repo}
}

// ListDoctorsHandler handles GET /api/doctors: the full catalog in
// directory order, without slot data.
func (h *DoctorHandler) ListDoctorsHandler(c *gin.Context) {
	records := h.Directory.ListDoctors()
	dtos := make([]models.DoctorDTO, 0, len(records))
	for _, d := range records {
		dtos = append(dtos, d.ToDTO())
	}
	c.JSON(http.StatusOK, gin.H{"doctors": dtos})
}

// GetDoctorByIDHandler handles GET /api/doctors/:id, including slots. An
// unknown id is terminal for the booking view only; the response offers
// the dashboard as the recovery path.
func (h *DoctorHandler) GetDoctorByIDHandler(c *gin.Context) {
	doctor, err := h.Directory.GetByID(c.Param("id"))
	if err != nil {
		utils.GetLogger().Warn("doctor lookup failed: " + c.Param("id"))
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found", "redirectTo": models.NavDashboard})
		return
	}
	c.JSON(http.StatusOK, doctor)
}
