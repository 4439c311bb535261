package dashboard

import (
	"context"
	"math"
	"time"

	"github.com/hms/hms/internal/domain/appointment"
	"github.com/hms/hms/internal/domain/billing"
	"github.com/hms/hms/internal/domain/doctor"
	"github.com/hms/hms/internal/domain/patient"
	"github.com/hms/hms/internal/domain/prescription"
	"github.com/hms/hms/internal/platform/memstore"
)

// Overview is the landing-page summary block.
type Overview struct {
	TotalPatients         int     `json:"totalPatients"`
	TotalDoctors          int     `json:"totalDoctors"`
	TodayAppointments     int     `json:"todayAppointments"`
	CompletedAppointments int     `json:"completedAppointments"` // completed today
	PendingBills          int     `json:"pendingBills"`
	TotalRevenue          float64 `json:"totalRevenue"`
}

// Metrics are the derived ratios shown next to the overview.
type Metrics struct {
	AppointmentCompletionRate int     `json:"appointmentCompletionRate"` // whole percent
	AverageBillAmount         float64 `json:"averageBillAmount"`
	ActiveDoctorCount         int     `json:"activeDoctorCount"`
}

// BillingStats summarizes the billing ledger.
type BillingStats struct {
	PaidCount        int     `json:"paidCount"`
	PendingCount     int     `json:"pendingCount"`
	OverdueCount     int     `json:"overdueCount"`
	CollectedRevenue float64 `json:"collectedRevenue"`
	OutstandingTotal float64 `json:"outstandingTotal"`
}

// RecentActivity lists the latest records across the system, newest first.
type RecentActivity struct {
	Patients      []*patient.Patient           `json:"patients"`
	Appointments  []*appointment.Appointment   `json:"appointments"`
	Prescriptions []*prescription.Prescription `json:"prescriptions"`
}

const recentLimit = 5

type Service struct {
	patients      patient.Repository
	doctors       doctor.Repository
	appointments  appointment.Repository
	bills         billing.Repository
	prescriptions prescription.Repository
	now           memstore.Clock
}

func NewService(
	patients patient.Repository,
	doctors doctor.Repository,
	appointments appointment.Repository,
	bills billing.Repository,
	prescriptions prescription.Repository,
	now memstore.Clock,
) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		patients:      patients,
		doctors:       doctors,
		appointments:  appointments,
		bills:         bills,
		prescriptions: prescriptions,
		now:           now,
	}
}

func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	pts, err := s.patients.List(ctx)
	if err != nil {
		return nil, err
	}
	docs, err := s.doctors.List(ctx)
	if err != nil {
		return nil, err
	}
	apts, err := s.appointments.List(ctx)
	if err != nil {
		return nil, err
	}
	bills, err := s.bills.List(ctx)
	if err != nil {
		return nil, err
	}

	today := memstore.DateOnly(s.now())
	ov := &Overview{
		TotalPatients: len(pts),
		TotalDoctors:  len(docs),
	}
	for _, a := range apts {
		if a.Date != today {
			continue
		}
		ov.TodayAppointments++
		if a.Status == appointment.StatusCompleted {
			ov.CompletedAppointments++
		}
	}
	for _, b := range bills {
		switch b.Status {
		case billing.StatusPending:
			ov.PendingBills++
		case billing.StatusPaid:
			ov.TotalRevenue += b.Total
		}
	}
	return ov, nil
}

func (s *Service) Metrics(ctx context.Context) (*Metrics, error) {
	apts, err := s.appointments.List(ctx)
	if err != nil {
		return nil, err
	}
	bills, err := s.bills.List(ctx)
	if err != nil {
		return nil, err
	}
	docs, err := s.doctors.List(ctx)
	if err != nil {
		return nil, err
	}

	m := &Metrics{}
	// Completion rate only considers today's schedule.
	today := memstore.DateOnly(s.now())
	todayTotal, completedToday := 0, 0
	for _, a := range apts {
		if a.Date != today {
			continue
		}
		todayTotal++
		if a.Status == appointment.StatusCompleted {
			completedToday++
		}
	}
	if todayTotal > 0 {
		m.AppointmentCompletionRate = int(math.Round(float64(completedToday) / float64(todayTotal) * 100))
	}
	if len(bills) > 0 {
		var sum float64
		for _, b := range bills {
			sum += b.Total
		}
		m.AverageBillAmount = math.Round(sum / float64(len(bills)))
	}
	for _, d := range docs {
		if d.Status == doctor.StatusActive {
			m.ActiveDoctorCount++
		}
	}
	return m, nil
}

func (s *Service) BillingStats(ctx context.Context) (*BillingStats, error) {
	bills, err := s.bills.List(ctx)
	if err != nil {
		return nil, err
	}
	st := &BillingStats{}
	for _, b := range bills {
		switch b.Status {
		case billing.StatusPaid:
			st.PaidCount++
			st.CollectedRevenue += b.Total
		case billing.StatusPending:
			st.PendingCount++
			st.OutstandingTotal += b.Total
		case billing.StatusOverdue:
			st.OverdueCount++
			st.OutstandingTotal += b.Total
		}
	}
	return st, nil
}

func (s *Service) RecentActivity(ctx context.Context) (*RecentActivity, error) {
	pts, err := s.patients.List(ctx)
	if err != nil {
		return nil, err
	}
	apts, err := s.appointments.List(ctx)
	if err != nil {
		return nil, err
	}
	rxs, err := s.prescriptions.List(ctx)
	if err != nil {
		return nil, err
	}
	return &RecentActivity{
		Patients:      lastN(pts, recentLimit),
		Appointments:  lastN(apts, recentLimit),
		Prescriptions: lastN(rxs, recentLimit),
	}, nil
}

// lastN returns the last n items newest first. Lists come back in insertion
// order, so the tail holds the most recent records.
func lastN[T any](items []T, n int) []T {
	if len(items) < n {
		n = len(items)
	}
	out := make([]T, 0, n)
	for i := len(items) - 1; i >= len(items)-n; i-- {
		out = append(out, items[i])
	}
	return out
}
