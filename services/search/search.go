package search

import (
	"regexp"
	"strings"

	"pulselink/models"
	"pulselink/utils"

	"github.com/google/uuid"
)

// PincodeErrorMessage is the advisory validation message shown while the
// pincode input is non-empty and not yet six digits.
const PincodeErrorMessage = "Pincode must be exactly 6 digits"

// DefaultFallbackCity is suggested when neither the exact pincode nor
// its 3-digit prefix matches any directory record.
const DefaultFallbackCity = "Mumbai"

// Fallback prompt resolutions.
const (
	FallbackContinue  = "continue"
	FallbackChangePIN = "change"
)

// Specializations is the fixed set of filterable specialty labels.
var Specializations = []string{
	"Cardiology",
	"Dermatology",
	"Pediatrics",
	"General Physician",
	"Psychiatry",
}

var (
	pincodePattern = regexp.MustCompile(`^\d{6}$`)
	nonDigits      = regexp.MustCompile(`\D`)
)

// ValidatePincode returns the advisory message for a pincode value, or
// an empty string when the value is acceptable. An empty value is valid:
// no location filter is simply applied.
func ValidatePincode(value string) string {
	if value == "" {
		return ""
	}
	if !pincodePattern.MatchString(value) {
		return PincodeErrorMessage
	}
	return ""
}

// StartSession creates an empty search session for the user.
func (s *DefaultSearchService) StartSession(userID string) (*models.SearchSession, error) {
	session := models.SearchSession{
		SessionID: uuid.New().String(),
		UserID:    userID,
	}
	s.save(session)
	return &session, nil
}

// SetPincodeInput stores the raw pincode input, stripped to digits and
// truncated to six characters. Interim invalid input never fails the
// call; the advisory validation message is returned alongside the
// session so it can be re-rendered on every keystroke.
func (s *DefaultSearchService) SetPincodeInput(sessionID, raw string) (*models.SearchSession, string, error) {
	session, err := s.load(sessionID)
	if err != nil {
		return nil, "", err
	}

	digitsOnly := nonDigits.ReplaceAllString(raw, "")
	if len(digitsOnly) > 6 {
		digitsOnly = digitsOnly[:6]
	}
	session.Query.RawPincodeInput = digitsOnly
	s.save(session)

	return &session, ValidatePincode(digitsOnly), nil
}

// ApplyPincode commits the raw input as the active location filter. The
// call refuses (with no state change) unless the input is exactly six
// digits. When no directory record matches the pincode exactly, the
// fallback prompt opens with a city derived from the 3-digit prefix and
// the applied filter stays untouched until the user resolves it.
func (s *DefaultSearchService) ApplyPincode(sessionID string) (*models.SearchSession, error) {
	session, err := s.load(sessionID)
	if err != nil {
		return nil, err
	}

	pin := session.Query.RawPincodeInput
	if len(pin) != 6 || ValidatePincode(pin) != "" {
		return nil, NewValidationError(PincodeErrorMessage)
	}

	exactMatches := false
	for _, d := range s.Directory.ListDoctors() {
		if d.Pincode == pin {
			exactMatches = true
			break
		}
	}

	if exactMatches {
		session.Query.AppliedPincode = pin
		session.Fallback = nil
		s.save(session)
		return &session, nil
	}

	// First record whose pincode shares the 3-digit prefix decides the
	// suggested city; directory order is stable, so this is reproducible.
	prefix := pin[:3]
	city := DefaultFallbackCity
	for _, d := range s.Directory.ListDoctors() {
		if strings.HasPrefix(d.Pincode, prefix) {
			city = d.City
			break
		}
	}

	session.Fallback = &models.FallbackPrompt{Pincode: pin, City: city}
	s.save(session)
	return &session, nil
}

// ResolveFallback closes the fallback prompt. "continue" clears the
// applied pincode so results degrade to the remaining filters — the
// suggested city is shown to the user but never applied as a filter
// (see the quirk note in DESIGN.md). "change" additionally clears the
// raw input, returning the location filter to its initial state.
func (s *DefaultSearchService) ResolveFallback(sessionID, choice string) (*models.SearchSession, error) {
	session, err := s.load(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Fallback == nil {
		return nil, NewValidationError("no fallback prompt is open")
	}

	switch choice {
	case FallbackContinue:
		session.Query.AppliedPincode = ""
	case FallbackChangePIN:
		session.Query.RawPincodeInput = ""
		session.Query.AppliedPincode = ""
	default:
		return nil, NewValidationError("unknown fallback choice: " + choice)
	}

	session.Fallback = nil
	s.save(session)
	return &session, nil
}

// ToggleSpecialization flips membership of the label in the selected
// specialization set.
func (s *DefaultSearchService) ToggleSpecialization(sessionID, label string) (*models.SearchSession, error) {
	session, err := s.load(sessionID)
	if err != nil {
		return nil, err
	}

	selected := session.Query.SelectedSpecializations
	kept := selected[:0:0]
	removed := false
	for _, l := range selected {
		if l == label {
			removed = true
			continue
		}
		kept = append(kept, l)
	}
	if !removed {
		kept = append(kept, label)
	}
	session.Query.SelectedSpecializations = kept
	s.save(session)
	return &session, nil
}

// ClearAllFilters resets the session to its initial unfiltered state.
func (s *DefaultSearchService) ClearAllFilters(sessionID string) (*models.SearchSession, error) {
	session, err := s.load(sessionID)
	if err != nil {
		return nil, err
	}
	session.Query = models.SearchQuery{}
	session.Fallback = nil
	s.save(session)
	return &session, nil
}

// FilteredDoctors applies the session's filters over the directory in
// order: exact pincode match when a pincode is applied, then the
// specialization set. An empty result is an empty state, not an error.
func (s *DefaultSearchService) FilteredDoctors(sessionID string) ([]models.DoctorDTO, error) {
	session, err := s.load(sessionID)
	if err != nil {
		return nil, err
	}

	selected := make(map[string]bool, len(session.Query.SelectedSpecializations))
	for _, l := range session.Query.SelectedSpecializations {
		selected[l] = true
	}

	results := []models.DoctorDTO{}
	for _, d := range s.Directory.ListDoctors() {
		if session.Query.AppliedPincode != "" && d.Pincode != session.Query.AppliedPincode {
			continue
		}
		if len(selected) > 0 && !selected[d.Specialization] {
			continue
		}
		results = append(results, d.ToDTO())
	}
	return results, nil
}

func (s *DefaultSearchService) load(sessionID string) (models.SearchSession, error) {
	value, ok := s.Cache.Get(sessionID)
	if !ok {
		return models.SearchSession{}, ErrSessionNotFound
	}
	return value.(models.SearchSession), nil
}

func (s *DefaultSearchService) save(session models.SearchSession) {
	s.Cache.Set(session.SessionID, session, utils.SessionCacheTTL())
}
