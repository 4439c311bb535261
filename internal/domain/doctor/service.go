package doctor

import (
	"context"
	"fmt"
	"strings"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

var validStatuses = map[string]bool{
	StatusActive: true, StatusInactive: true,
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateDoctor(ctx context.Context, d *Doctor) (*Doctor, error) {
	if strings.TrimSpace(d.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if strings.TrimSpace(d.Specialization) == "" {
		return nil, fmt.Errorf("specialization is required")
	}
	if d.Status != "" && !validStatuses[d.Status] {
		return nil, fmt.Errorf("invalid doctor status: %s", d.Status)
	}
	return s.repo.Create(ctx, d)
}

func (s *Service) GetDoctor(ctx context.Context, id string) (*Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListDoctors(ctx context.Context) ([]*Doctor, error) {
	return s.repo.List(ctx)
}

func (s *Service) UpdateDoctor(ctx context.Context, id string, u Update) (*Doctor, error) {
	if u.Status != nil && !validStatuses[*u.Status] {
		return nil, fmt.Errorf("invalid doctor status: %s", *u.Status)
	}
	return s.repo.Update(ctx, id, u)
}

func (s *Service) DeleteDoctor(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListBySpecialization(ctx context.Context, specialization string) ([]*Doctor, error) {
	return s.repo.ListBySpecialization(ctx, specialization)
}

func (s *Service) SearchDoctors(ctx context.Context, query string) ([]*Doctor, error) {
	return s.repo.Search(ctx, query)
}

// FilterDoctors combines the free-text search with the specialization facet:
// text match ORs across name/specialization/department, the facet is a
// case-insensitive substring match on specialization, and the two are ANDed.
// A facet of "" or "all" means no facet.
func (s *Service) FilterDoctors(ctx context.Context, query, facet string) ([]*Doctor, error) {
	if facet == "all" {
		facet = ""
	}
	if query == "" {
		if facet == "" {
			return s.repo.List(ctx)
		}
		return s.repo.ListBySpecialization(ctx, facet)
	}
	items, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if facet == "" {
		return items, nil
	}
	f := strings.ToLower(facet)
	filtered := make([]*Doctor, 0, len(items))
	for _, d := range items {
		if strings.Contains(strings.ToLower(d.Specialization), f) {
			filtered = append(filtered, d)
		}
	}
	return filtered, nil
}
