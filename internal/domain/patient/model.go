package patient

import (
	"strings"
	"time"
)

// Patient is an administrative patient record. Referential integrity toward
// other entities is not enforced anywhere in this layer.
type Patient struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	DateOfBirth    string     `json:"dateOfBirth,omitempty"`
	Gender         string     `json:"gender,omitempty"`
	Email          string     `json:"email,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	Address        string     `json:"address,omitempty"`
	BloodGroup     string     `json:"bloodGroup,omitempty"`
	MedicalHistory []string   `json:"medicalHistory"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}

// Clone returns a copy safe to hand to callers: the stored record and the
// returned one never share mutable state.
func (p *Patient) Clone() *Patient {
	cp := *p
	if p.MedicalHistory != nil {
		cp.MedicalHistory = append([]string(nil), p.MedicalHistory...)
	}
	return &cp
}

// Update carries a partial modification; nil fields are left untouched.
type Update struct {
	Name           *string   `json:"name"`
	DateOfBirth    *string   `json:"dateOfBirth"`
	Gender         *string   `json:"gender"`
	Email          *string   `json:"email"`
	Phone          *string   `json:"phone"`
	Address        *string   `json:"address"`
	BloodGroup     *string   `json:"bloodGroup"`
	MedicalHistory *[]string `json:"medicalHistory"`
}

func (p *Patient) apply(u Update) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.DateOfBirth != nil {
		p.DateOfBirth = *u.DateOfBirth
	}
	if u.Gender != nil {
		p.Gender = *u.Gender
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
	if u.Phone != nil {
		p.Phone = *u.Phone
	}
	if u.Address != nil {
		p.Address = *u.Address
	}
	if u.BloodGroup != nil {
		p.BloodGroup = *u.BloodGroup
	}
	if u.MedicalHistory != nil {
		p.MedicalHistory = append([]string(nil), (*u.MedicalHistory)...)
	}
}

// matchesQuery reports whether the patient matches a free-text search:
// case-insensitive substring over name and email, raw substring over phone.
func (p *Patient) matchesQuery(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Email), q) ||
		strings.Contains(p.Phone, query)
}
