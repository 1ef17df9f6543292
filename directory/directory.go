// Package directory holds the static, read-only doctor catalog. The
// catalog is embedded mock content loaded once at startup and shared by
// every session; nothing in the portal mutates it after load.
package directory

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	"pulselink/models"
)

//go:embed data/doctors.json
var seedData []byte

// ErrDoctorNotFound is returned when a doctor id has no directory entry.
var ErrDoctorNotFound = errors.New("doctor not found")

var pincodePattern = regexp.MustCompile(`^\d{6}$`)

// Repository exposes the directory to the search and booking cores.
// ListDoctors returns records in stable directory order; fallback-city
// resolution depends on that order being reproducible.
type Repository interface {
	ListDoctors() []models.Doctor
	GetByID(id string) (*models.Doctor, error)
}

// InMemoryRepository is the only implementation: a pre-loaded, fully
// in-memory catalog with no paging and no network fetch.
type InMemoryRepository struct {
	doctors []models.Doctor
	byID    map[string]int
}

// NewInMemoryRepository builds a repository from the given records,
// validating every one of them. Record order is preserved.
func NewInMemoryRepository(doctors []models.Doctor) (*InMemoryRepository, error) {
	byID := make(map[string]int, len(doctors))
	for i, d := range doctors {
		if err := validateDoctor(d); err != nil {
			return nil, fmt.Errorf("invalid doctor record %q: %w", d.ID, err)
		}
		if _, dup := byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate doctor id %q", d.ID)
		}
		byID[d.ID] = i
	}
	return &InMemoryRepository{doctors: doctors, byID: byID}, nil
}

// LoadSeed decodes the embedded catalog.
func LoadSeed() (*InMemoryRepository, error) {
	var doctors []models.Doctor
	if err := json.Unmarshal(seedData, &doctors); err != nil {
		return nil, fmt.Errorf("failed to decode doctor seed data: %w", err)
	}
	return NewInMemoryRepository(doctors)
}

// ListDoctors returns the catalog in directory order. The returned
// slice is shared; callers must treat it as read-only.
func (r *InMemoryRepository) ListDoctors() []models.Doctor {
	return r.doctors
}

// GetByID looks up a doctor by id.
func (r *InMemoryRepository) GetByID(id string) (*models.Doctor, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, ErrDoctorNotFound
	}
	return &r.doctors[i], nil
}

func validateDoctor(d models.Doctor) error {
	if d.ID == "" {
		return errors.New("missing id")
	}
	if d.Name == "" {
		return errors.New("missing name")
	}
	if !pincodePattern.MatchString(d.Pincode) {
		return fmt.Errorf("pincode %q is not exactly 6 digits", d.Pincode)
	}
	if d.Experience < 0 {
		return errors.New("experience must be non-negative")
	}
	if d.Rating < 0 || d.Rating > 5 {
		return fmt.Errorf("rating %v out of range", d.Rating)
	}
	if d.Reviews < 0 {
		return errors.New("reviews must be non-negative")
	}
	if d.Fee <= 0 {
		return errors.New("fee must be positive")
	}
	for date, sessions := range d.Slots {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return fmt.Errorf("bad slots date key %q: %w", date, err)
		}
		if len(sessions) == 0 {
			return fmt.Errorf("slots date %q has no sessions", date)
		}
		for session, slots := range sessions {
			if len(slots) == 0 {
				return fmt.Errorf("slots date %q session %q is empty", date, session)
			}
		}
	}
	return nil
}
