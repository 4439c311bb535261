package fixtures

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/hms/hms/internal/domain/appointment"
	"github.com/hms/hms/internal/domain/billing"
	"github.com/hms/hms/internal/domain/doctor"
	"github.com/hms/hms/internal/domain/patient"
	"github.com/hms/hms/internal/domain/prescription"
	"github.com/hms/hms/internal/platform/memstore"
)

// Config sizes a generated seed set.
type Config struct {
	Patients      int
	Doctors       int
	Appointments  int
	Bills         int
	Prescriptions int
}

// DefaultConfig is enough data to make the dashboard interesting.
func DefaultConfig() Config {
	return Config{
		Patients:      25,
		Doctors:       8,
		Appointments:  40,
		Bills:         30,
		Prescriptions: 20,
	}
}

var (
	firstNames = []string{
		"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
		"Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan",
		"Joseph", "Jessica", "Thomas", "Sarah", "Carlos", "Priya", "Wei", "Amara",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
		"Davis", "Rodriguez", "Martinez", "Chen", "Patel", "Okafor", "Kim",
	}
	specializations = []string{
		"Cardiology", "Orthopedics", "Pediatrics", "Neurology", "Dermatology",
		"Oncology", "General Medicine", "Psychiatry",
	}
	bloodGroups      = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}
	genders          = []string{"male", "female", "other"}
	appointmentTypes = []string{"consultation", "follow-up", "check-up", "emergency"}
	conditions       = []string{
		"Hypertension", "Type 2 Diabetes", "Asthma", "Migraine", "Arthritis",
		"Acute Sinusitis", "Lower Back Pain", "Anxiety",
	}
	drugs = []struct {
		name   string
		dosage string
	}{
		{"Amoxicillin", "500mg"}, {"Lisinopril", "10mg"}, {"Metformin", "850mg"},
		{"Atorvastatin", "20mg"}, {"Albuterol", "90mcg"}, {"Ibuprofen", "400mg"},
		{"Sertraline", "50mg"}, {"Omeprazole", "20mg"},
	}
	billItems = []struct {
		desc   string
		amount float64
	}{
		{"Consultation", 150}, {"X-ray", 120}, {"Blood panel", 85},
		{"MRI scan", 650}, {"Physical therapy session", 95}, {"Vaccination", 40},
		{"ECG", 110}, {"Ultrasound", 180},
	}
	weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
)

// Generate builds a deterministic seed set: the same seed always yields the
// same data. Records reference each other by the generated sequential ids.
func Generate(cfg Config, seed int64) *Data {
	rng := rand.New(rand.NewSource(seed))
	base := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	d := &Data{}

	for i := 0; i < cfg.Patients; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		dob := base.AddDate(-20-rng.Intn(60), rng.Intn(12), rng.Intn(28))
		created := base.Add(time.Duration(i) * time.Hour)
		p := &patient.Patient{
			ID:          fmt.Sprintf("pat-%03d", i+1),
			Name:        first + " " + last,
			DateOfBirth: memstore.DateOnly(dob),
			Gender:      genders[rng.Intn(len(genders))],
			Email:       fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), i+1),
			Phone:       fmt.Sprintf("555-%04d", rng.Intn(10000)),
			BloodGroup:  bloodGroups[rng.Intn(len(bloodGroups))],
			CreatedAt:   created,
		}
		history := []string{}
		for _, c := range conditions {
			if rng.Intn(5) == 0 {
				history = append(history, c)
			}
		}
		p.MedicalHistory = history
		d.Patients = append(d.Patients, p)
	}

	for i := 0; i < cfg.Doctors; i++ {
		last := lastNames[rng.Intn(len(lastNames))]
		spec := specializations[i%len(specializations)]
		doc := &doctor.Doctor{
			ID:             fmt.Sprintf("doc-%03d", i+1),
			Name:           "Dr. " + firstNames[rng.Intn(len(firstNames))] + " " + last,
			Specialization: spec,
			Email:          fmt.Sprintf("dr.%s%d@example.com", strings.ToLower(last), i+1),
			Phone:          fmt.Sprintf("555-%04d", rng.Intn(10000)),
			Department:     spec,
			Status:         doctor.StatusActive,
			CreatedAt:      base,
		}
		for _, day := range weekdays {
			if rng.Intn(3) == 0 {
				continue
			}
			doc.Availability = append(doc.Availability, doctor.Availability{
				Day:   day,
				Slots: []string{"09:00", "11:00", "14:00"},
			})
		}
		d.Doctors = append(d.Doctors, doc)
	}

	// The remaining sections pick referenced records at random, so they need
	// non-empty patient and doctor pools.
	if len(d.Patients) == 0 || len(d.Doctors) == 0 {
		cfg.Appointments = 0
		cfg.Prescriptions = 0
	}
	if len(d.Patients) == 0 {
		cfg.Bills = 0
	}

	for i := 0; i < cfg.Appointments; i++ {
		date := base.AddDate(0, 0, rng.Intn(120))
		status := appointment.StatusScheduled
		switch rng.Intn(4) {
		case 0:
			status = appointment.StatusCompleted
		case 1:
			status = appointment.StatusCancelled
		}
		d.Appointments = append(d.Appointments, &appointment.Appointment{
			ID:        fmt.Sprintf("apt-%03d", i+1),
			PatientID: d.Patients[rng.Intn(len(d.Patients))].ID,
			DoctorID:  d.Doctors[rng.Intn(len(d.Doctors))].ID,
			Date:      memstore.DateOnly(date),
			Time:      fmt.Sprintf("%02d:%02d", 9+rng.Intn(8), 30*rng.Intn(2)),
			Type:      appointmentTypes[rng.Intn(len(appointmentTypes))],
			Status:    status,
			Duration:  30,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}

	for i := 0; i < cfg.Bills; i++ {
		items := []billing.Item{}
		for n := 1 + rng.Intn(3); n > 0; n-- {
			it := billItems[rng.Intn(len(billItems))]
			items = append(items, billing.Item{Description: it.desc, Amount: it.amount})
		}
		date := base.AddDate(0, 0, rng.Intn(120))
		b := &billing.Bill{
			ID:        fmt.Sprintf("bill-%03d", i+1),
			PatientID: d.Patients[rng.Intn(len(d.Patients))].ID,
			Date:      memstore.DateOnly(date),
			Items:     items,
			Total:     billing.TotalOf(items),
			Status:    billing.StatusPending,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		switch rng.Intn(3) {
		case 0:
			b.Status = billing.StatusPaid
			b.PaidAt = memstore.DateOnly(date.AddDate(0, 0, rng.Intn(14)))
		case 1:
			b.Status = billing.StatusOverdue
		}
		d.Bills = append(d.Bills, b)
	}

	for i := 0; i < cfg.Prescriptions; i++ {
		meds := []prescription.Medication{}
		for n := 1 + rng.Intn(2); n > 0; n-- {
			drug := drugs[rng.Intn(len(drugs))]
			meds = append(meds, prescription.Medication{
				Name:     drug.name,
				Dosage:   drug.dosage,
				Duration: fmt.Sprintf("%d days", 7*(1+rng.Intn(4))),
			})
		}
		rx := &prescription.Prescription{
			ID:          fmt.Sprintf("rx-%03d", i+1),
			PatientID:   d.Patients[rng.Intn(len(d.Patients))].ID,
			DoctorID:    d.Doctors[rng.Intn(len(d.Doctors))].ID,
			Date:        memstore.DateOnly(base.AddDate(0, 0, rng.Intn(120))),
			Diagnosis:   conditions[rng.Intn(len(conditions))],
			Medications: meds,
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
		}
		if len(d.Appointments) > 0 && rng.Intn(2) == 0 {
			rx.AppointmentID = d.Appointments[rng.Intn(len(d.Appointments))].ID
		}
		d.Prescriptions = append(d.Prescriptions, rx)
	}

	return d
}

