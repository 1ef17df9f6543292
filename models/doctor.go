package models

// Doctor is a single record in the static doctor directory.
//
// Slots maps a calendar date (formatted "2006-01-02") to session labels
// ("morning", "afternoon", "evening"), each holding an ordered list of
// bookable time labels such as "10:00 AM". Dates with no availability
// are simply absent from the map.
type Doctor struct {
	ID             string                         `json:"id"`
	Name           string                         `json:"name"`
	Specialization string                         `json:"specialization"`
	Description    string                         `json:"description"`
	Languages      []string                       `json:"languages"`
	Experience     int                            `json:"experience"`
	Rating         float64                        `json:"rating"`
	Reviews        int                            `json:"reviews"`
	Fee            int                            `json:"fee"`
	Address        string                         `json:"address"`
	City           string                         `json:"city"`
	Pincode        string                         `json:"pincode"`
	Availability   string                         `json:"availability,omitempty"`
	Slots          map[string]map[string][]string `json:"slots"`
}

// DoctorDTO is the trimmed directory view returned by search results;
// slot data is only exposed on the booking surface.
type DoctorDTO struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Specialization string   `json:"specialization"`
	Description    string   `json:"description"`
	Languages      []string `json:"languages"`
	Experience     int      `json:"experience"`
	Rating         float64  `json:"rating"`
	Reviews        int      `json:"reviews"`
	Fee            int      `json:"fee"`
	Address        string   `json:"address"`
	City           string   `json:"city"`
	Pincode        string   `json:"pincode"`
	Availability   string   `json:"availability,omitempty"`
}

// ToDTO strips scheduling data from a directory record.
func (d Doctor) ToDTO() DoctorDTO {
	return DoctorDTO{
		ID:             d.ID,
		Name:           d.Name,
		Specialization: d.Specialization,
		Description:    d.Description,
		Languages:      d.Languages,
		Experience:     d.Experience,
		Rating:         d.Rating,
		Reviews:        d.Reviews,
		Fee:            d.Fee,
		Address:        d.Address,
		City:           d.City,
		Pincode:        d.Pincode,
		Availability:   d.Availability,
	}
}
