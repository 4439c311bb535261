package appointment

import (
	"context"
	"fmt"
	"strings"
)

const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

var validStatuses = map[string]bool{
	StatusScheduled: true,
	StatusCompleted: true,
	StatusCancelled: true,
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListAppointments(ctx context.Context) ([]*Appointment, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetAppointment(ctx context.Context, id string) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) CreateAppointment(ctx context.Context, a *Appointment) (*Appointment, error) {
	if strings.TrimSpace(a.PatientID) == "" {
		return nil, fmt.Errorf("patientId is required")
	}
	if strings.TrimSpace(a.DoctorID) == "" {
		return nil, fmt.Errorf("doctorId is required")
	}
	if strings.TrimSpace(a.Date) == "" {
		return nil, fmt.Errorf("date is required")
	}
	if a.Status != "" && !validStatuses[a.Status] {
		return nil, fmt.Errorf("invalid status %q", a.Status)
	}
	return s.repo.Create(ctx, a)
}

func (s *Service) UpdateAppointment(ctx context.Context, id string, u Update) (*Appointment, error) {
	if u.Status != nil && !validStatuses[*u.Status] {
		return nil, fmt.Errorf("invalid status %q", *u.Status)
	}
	return s.repo.Update(ctx, id, u)
}

func (s *Service) DeleteAppointment(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Complete marks the appointment done. Fails with ErrInvalidTransition
// unless the appointment is currently scheduled (or already completed).
func (s *Service) Complete(ctx context.Context, id string) (*Appointment, error) {
	st := StatusCompleted
	return s.repo.Update(ctx, id, Update{Status: &st})
}

// Cancel voids a scheduled appointment.
func (s *Service) Cancel(ctx context.Context, id string) (*Appointment, error) {
	st := StatusCancelled
	return s.repo.Update(ctx, id, Update{Status: &st})
}

func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]*Appointment, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID string) ([]*Appointment, error) {
	return s.repo.ListByDoctor(ctx, doctorID)
}

func (s *Service) ListByStatus(ctx context.Context, status string) ([]*Appointment, error) {
	if !validStatuses[status] {
		return nil, fmt.Errorf("invalid status %q", status)
	}
	return s.repo.ListByStatus(ctx, status)
}

func (s *Service) ListByDateRange(ctx context.Context, from, to string) ([]*Appointment, error) {
	return s.repo.ListByDateRange(ctx, from, to)
}
