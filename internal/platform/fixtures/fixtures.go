// Package fixtures loads and generates the JSON data sets the server seeds
// its in-memory stores from.
package fixtures

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hms/hms/internal/domain/appointment"
	"github.com/hms/hms/internal/domain/billing"
	"github.com/hms/hms/internal/domain/doctor"
	"github.com/hms/hms/internal/domain/patient"
	"github.com/hms/hms/internal/domain/prescription"
)

// Data is a full seed set, one slice per store.
type Data struct {
	Patients      []*patient.Patient
	Doctors       []*doctor.Doctor
	Appointments  []*appointment.Appointment
	Bills         []*billing.Bill
	Prescriptions []*prescription.Prescription
}

const (
	patientsFile      = "patients.json"
	doctorsFile       = "doctors.json"
	appointmentsFile  = "appointments.json"
	billsFile         = "bills.json"
	prescriptionsFile = "prescriptions.json"
)

// Load reads the seed files from dir. A missing file yields an empty slice
// for that entity; a file that exists but does not parse is an error.
func Load(dir string) (*Data, error) {
	d := &Data{}
	if err := loadFile(filepath.Join(dir, patientsFile), &d.Patients); err != nil {
		return nil, err
	}
	if err := loadFile(filepath.Join(dir, doctorsFile), &d.Doctors); err != nil {
		return nil, err
	}
	if err := loadFile(filepath.Join(dir, appointmentsFile), &d.Appointments); err != nil {
		return nil, err
	}
	if err := loadFile(filepath.Join(dir, billsFile), &d.Bills); err != nil {
		return nil, err
	}
	if err := loadFile(filepath.Join(dir, prescriptionsFile), &d.Prescriptions); err != nil {
		return nil, err
	}
	return d, nil
}

func loadFile(path string, out interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// WriteDir writes the seed set to dir, creating it if needed. Files are
// indented so they can be hand-edited.
func WriteDir(dir string, d *Data) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	files := map[string]interface{}{
		patientsFile:      d.Patients,
		doctorsFile:       d.Doctors,
		appointmentsFile:  d.Appointments,
		billsFile:         d.Bills,
		prescriptionsFile: d.Prescriptions,
	}
	for name, v := range files {
		raw, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encode %s: %w", name, err)
		}
		raw = append(raw, '\n')
		if err := os.WriteFile(filepath.Join(dir, name), raw, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}
