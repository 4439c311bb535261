package patient

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

func (s *Service) CreatePatient(ctx context.Context, p *Patient) (*Patient, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) GetPatient(ctx context.Context, id string) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context) ([]*Patient, error) {
	return s.repo.List(ctx)
}

func (s *Service) UpdatePatient(ctx context.Context, id string, u Update) (*Patient, error) {
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return nil, fmt.Errorf("name must not be empty")
	}
	return s.repo.Update(ctx, id, u)
}

func (s *Service) DeletePatient(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// SearchPatients returns patients matching the free-text query; an empty
// query returns the full collection.
func (s *Service) SearchPatients(ctx context.Context, query string) ([]*Patient, error) {
	if query == "" {
		return s.repo.List(ctx)
	}
	return s.repo.Search(ctx, query)
}
