package appointment

import "time"

// Appointment links a patient and a doctor at a date/time. The patient and
// doctor ids are untyped references; the repository never checks that they
// resolve, and consumers must tolerate dangling ones.
type Appointment struct {
	ID        string     `json:"id"`
	PatientID string     `json:"patientId"`
	DoctorID  string     `json:"doctorId"`
	Date      string     `json:"date"` // ISO date, 2006-01-02
	Time      string     `json:"time"` // HH:MM
	Type      string     `json:"type,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	Status    string     `json:"status"`
	Duration  int        `json:"duration,omitempty"` // minutes
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func (a *Appointment) Clone() *Appointment {
	cp := *a
	return &cp
}

// Update carries a partial modification; nil fields are left untouched.
type Update struct {
	PatientID *string `json:"patientId"`
	DoctorID  *string `json:"doctorId"`
	Date      *string `json:"date"`
	Time      *string `json:"time"`
	Type      *string `json:"type"`
	Notes     *string `json:"notes"`
	Status    *string `json:"status"`
	Duration  *int    `json:"duration"`
}

func (a *Appointment) apply(u Update) {
	if u.PatientID != nil {
		a.PatientID = *u.PatientID
	}
	if u.DoctorID != nil {
		a.DoctorID = *u.DoctorID
	}
	if u.Date != nil {
		a.Date = *u.Date
	}
	if u.Time != nil {
		a.Time = *u.Time
	}
	if u.Type != nil {
		a.Type = *u.Type
	}
	if u.Notes != nil {
		a.Notes = *u.Notes
	}
	if u.Status != nil {
		a.Status = *u.Status
	}
	if u.Duration != nil {
		a.Duration = *u.Duration
	}
}
