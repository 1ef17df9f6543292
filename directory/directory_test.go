package directory

import (
	"testing"

	"pulselink/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDoctor(id, pincode string) models.Doctor {
	return models.Doctor{
		ID:      id,
		Name:    "Dr. Test",
		Rating:  4.0,
		Reviews: 5,
		Fee:     300,
		City:    "Mumbai",
		Pincode: pincode,
		Slots: map[string]map[string][]string{
			"2026-09-02": {"morning": {"09:00 AM"}},
		},
	}
}

func TestLoadSeed(t *testing.T) {
	repo, err := LoadSeed()
	require.NoError(t, err)
	require.NotEmpty(t, repo.ListDoctors())

	for _, d := range repo.ListDoctors() {
		assert.Regexp(t, `^\d{6}$`, d.Pincode)
		for date, sessions := range d.Slots {
			require.NotEmpty(t, sessions, "doctor %s date %s", d.ID, date)
			for session, slots := range sessions {
				assert.NotEmpty(t, slots, "doctor %s date %s session %s", d.ID, date, session)
			}
		}
	}
}

func TestListDoctorsPreservesOrder(t *testing.T) {
	records := []models.Doctor{
		validDoctor("a", "400001"),
		validDoctor("b", "400002"),
		validDoctor("c", "400003"),
	}
	repo, err := NewInMemoryRepository(records)
	require.NoError(t, err)

	// Fallback-city resolution depends on this order being stable.
	for i := 0; i < 3; i++ {
		listed := repo.ListDoctors()
		require.Len(t, listed, 3)
		assert.Equal(t, "a", listed[0].ID)
		assert.Equal(t, "b", listed[1].ID)
		assert.Equal(t, "c", listed[2].ID)
	}
}

func TestGetByID(t *testing.T) {
	repo, err := NewInMemoryRepository([]models.Doctor{validDoctor("a", "400001")})
	require.NoError(t, err)

	doctor, err := repo.GetByID("a")
	require.NoError(t, err)
	assert.Equal(t, "a", doctor.ID)

	_, err = repo.GetByID("missing")
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestValidationRejectsBadRecords(t *testing.T) {
	bad := func(mutate func(*models.Doctor)) models.Doctor {
		d := validDoctor("x", "400001")
		mutate(&d)
		return d
	}

	tests := []struct {
		name   string
		doctor models.Doctor
	}{
		{"short pincode", bad(func(d *models.Doctor) { d.Pincode = "4001" })},
		{"alpha pincode", bad(func(d *models.Doctor) { d.Pincode = "40001a" })},
		{"negative experience", bad(func(d *models.Doctor) { d.Experience = -1 })},
		{"rating out of range", bad(func(d *models.Doctor) { d.Rating = 5.5 })},
		{"zero fee", bad(func(d *models.Doctor) { d.Fee = 0 })},
		{"bad date key", bad(func(d *models.Doctor) {
			d.Slots = map[string]map[string][]string{"06/10/2026": {"morning": {"09:00 AM"}}}
		})},
		{"empty session list", bad(func(d *models.Doctor) {
			d.Slots = map[string]map[string][]string{"2026-09-02": {}}
		})},
		{"empty slot list", bad(func(d *models.Doctor) {
			d.Slots = map[string]map[string][]string{"2026-09-02": {"morning": {}}}
		})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInMemoryRepository([]models.Doctor{tt.doctor})
			assert.Error(t, err)
		})
	}
}

func TestDuplicateIDRejected(t *testing.T) {
	_, err := NewInMemoryRepository([]models.Doctor{
		validDoctor("a", "400001"),
		validDoctor("a", "400002"),
	})
	assert.Error(t, err)
}
