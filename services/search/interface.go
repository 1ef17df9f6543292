package search

import (
	"pulselink/directory"
	"pulselink/models"
	"pulselink/utils"
)

// SearchService drives one user's doctor search: pincode input with the
// city-fallback policy, specialization toggles, and the resulting
// filtered directory view.
type SearchService interface {
	StartSession(userID string) (*models.SearchSession, error)
	SetPincodeInput(sessionID, raw string) (*models.SearchSession, string, error)
	ApplyPincode(sessionID string) (*models.SearchSession, error)
	ResolveFallback(sessionID, choice string) (*models.SearchSession, error)
	ToggleSpecialization(sessionID, label string) (*models.SearchSession, error)
	ClearAllFilters(sessionID string) (*models.SearchSession, error)
	FilteredDoctors(sessionID string) ([]models.DoctorDTO, error)
}

// DefaultSearchService implements SearchService on top of the static
// directory and the in-process session cache.
type DefaultSearchService struct {
	Directory directory.Repository
	Cache     *utils.Cache
}
