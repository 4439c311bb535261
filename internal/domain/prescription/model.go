package prescription

import (
	"strings"
	"time"
)

// Medication is one drug on a prescription.
type Medication struct {
	Name     string `json:"name"`
	Dosage   string `json:"dosage"`
	Duration string `json:"duration"`
}

// Prescription records what a doctor prescribed for a patient, optionally
// pinned to the appointment it came out of.
type Prescription struct {
	ID            string       `json:"id"`
	PatientID     string       `json:"patientId"`
	DoctorID      string       `json:"doctorId"`
	AppointmentID string       `json:"appointmentId,omitempty"`
	Date          string       `json:"date"` // ISO date, stamped on create
	Diagnosis     string       `json:"diagnosis"`
	Medications   []Medication `json:"medications"`
	Notes         string       `json:"notes,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     *time.Time   `json:"updatedAt,omitempty"`
}

func (p *Prescription) Clone() *Prescription {
	cp := *p
	if p.Medications != nil {
		cp.Medications = make([]Medication, len(p.Medications))
		copy(cp.Medications, p.Medications)
	}
	return &cp
}

// matchesQuery reports whether the lowercased query appears in the diagnosis
// or in any medication name. Callers lowercase the query once.
func (p *Prescription) matchesQuery(q string) bool {
	if strings.Contains(strings.ToLower(p.Diagnosis), q) {
		return true
	}
	for _, m := range p.Medications {
		if strings.Contains(strings.ToLower(m.Name), q) {
			return true
		}
	}
	return false
}

// Update carries a partial modification; nil fields are left untouched.
type Update struct {
	PatientID     *string       `json:"patientId"`
	DoctorID      *string       `json:"doctorId"`
	AppointmentID *string       `json:"appointmentId"`
	Diagnosis     *string       `json:"diagnosis"`
	Medications   *[]Medication `json:"medications"`
	Notes         *string       `json:"notes"`
}

func (p *Prescription) apply(u Update) {
	if u.PatientID != nil {
		p.PatientID = *u.PatientID
	}
	if u.DoctorID != nil {
		p.DoctorID = *u.DoctorID
	}
	if u.AppointmentID != nil {
		p.AppointmentID = *u.AppointmentID
	}
	if u.Diagnosis != nil {
		p.Diagnosis = *u.Diagnosis
	}
	if u.Medications != nil {
		p.Medications = make([]Medication, len(*u.Medications))
		copy(p.Medications, *u.Medications)
	}
	if u.Notes != nil {
		p.Notes = *u.Notes
	}
}
