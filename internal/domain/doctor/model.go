package doctor

import (
	"strings"
	"time"
)

// Availability is one weekday's bookable time slots.
type Availability struct {
	Day   string   `json:"day"`
	Slots []string `json:"slots"`
}

type Doctor struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Specialization string         `json:"specialization"`
	Email          string         `json:"email,omitempty"`
	Phone          string         `json:"phone,omitempty"`
	Department     string         `json:"department,omitempty"`
	Availability   []Availability `json:"availability"`
	Status         string         `json:"status"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      *time.Time     `json:"updatedAt,omitempty"`
}

func (d *Doctor) Clone() *Doctor {
	cp := *d
	if d.Availability != nil {
		cp.Availability = make([]Availability, len(d.Availability))
		for i, a := range d.Availability {
			cp.Availability[i] = Availability{Day: a.Day, Slots: append([]string(nil), a.Slots...)}
		}
	}
	return &cp
}

// Update carries a partial modification; nil fields are left untouched.
type Update struct {
	Name           *string         `json:"name"`
	Specialization *string         `json:"specialization"`
	Email          *string         `json:"email"`
	Phone          *string         `json:"phone"`
	Department     *string         `json:"department"`
	Availability   *[]Availability `json:"availability"`
	Status         *string         `json:"status"`
}

func (d *Doctor) apply(u Update) {
	if u.Name != nil {
		d.Name = *u.Name
	}
	if u.Specialization != nil {
		d.Specialization = *u.Specialization
	}
	if u.Email != nil {
		d.Email = *u.Email
	}
	if u.Phone != nil {
		d.Phone = *u.Phone
	}
	if u.Department != nil {
		d.Department = *u.Department
	}
	if u.Availability != nil {
		d.Availability = make([]Availability, len(*u.Availability))
		for i, a := range *u.Availability {
			d.Availability[i] = Availability{Day: a.Day, Slots: append([]string(nil), a.Slots...)}
		}
	}
	if u.Status != nil {
		d.Status = *u.Status
	}
}

// matchesQuery is the free-text search: case-insensitive substring over
// name, specialization and department.
func (d *Doctor) matchesQuery(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(d.Name), q) ||
		strings.Contains(strings.ToLower(d.Specialization), q) ||
		strings.Contains(strings.ToLower(d.Department), q)
}
