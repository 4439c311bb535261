package prescription

import (
	"context"
	"fmt"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListPrescriptions(ctx context.Context) ([]*Prescription, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetPrescription(ctx context.Context, id string) (*Prescription, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) CreatePrescription(ctx context.Context, p *Prescription) (*Prescription, error) {
	if strings.TrimSpace(p.PatientID) == "" {
		return nil, fmt.Errorf("patientId is required")
	}
	if strings.TrimSpace(p.DoctorID) == "" {
		return nil, fmt.Errorf("doctorId is required")
	}
	for i, m := range p.Medications {
		if strings.TrimSpace(m.Name) == "" {
			return nil, fmt.Errorf("medication %d: name is required", i)
		}
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) UpdatePrescription(ctx context.Context, id string, u Update) (*Prescription, error) {
	if u.Medications != nil {
		for i, m := range *u.Medications {
			if strings.TrimSpace(m.Name) == "" {
				return nil, fmt.Errorf("medication %d: name is required", i)
			}
		}
	}
	return s.repo.Update(ctx, id, u)
}

func (s *Service) DeletePrescription(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]*Prescription, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID string) ([]*Prescription, error) {
	return s.repo.ListByDoctor(ctx, doctorID)
}

func (s *Service) ListByAppointment(ctx context.Context, appointmentID string) ([]*Prescription, error) {
	return s.repo.ListByAppointment(ctx, appointmentID)
}

func (s *Service) SearchPrescriptions(ctx context.Context, query string) ([]*Prescription, error) {
	return s.repo.Search(ctx, query)
}
