package billing

import (
	"context"
	"fmt"
	"strings"
)

const (
	StatusPending = "pending"
	StatusPaid    = "paid"
	StatusOverdue = "overdue"
)

var validStatuses = map[string]bool{
	StatusPending: true,
	StatusPaid:    true,
	StatusOverdue: true,
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListBills(ctx context.Context) ([]*Bill, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetBill(ctx context.Context, id string) (*Bill, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) CreateBill(ctx context.Context, b *Bill) (*Bill, error) {
	if strings.TrimSpace(b.PatientID) == "" {
		return nil, fmt.Errorf("patientId is required")
	}
	if b.Status != "" && !validStatuses[b.Status] {
		return nil, fmt.Errorf("invalid status %q", b.Status)
	}
	for i, it := range b.Items {
		if it.Amount < 0 {
			return nil, fmt.Errorf("item %d: amount must not be negative", i)
		}
	}
	return s.repo.Create(ctx, b)
}

func (s *Service) UpdateBill(ctx context.Context, id string, u Update) (*Bill, error) {
	if u.Status != nil && !validStatuses[*u.Status] {
		return nil, fmt.Errorf("invalid status %q", *u.Status)
	}
	if u.Items != nil {
		for i, it := range *u.Items {
			if it.Amount < 0 {
				return nil, fmt.Errorf("item %d: amount must not be negative", i)
			}
		}
	}
	return s.repo.Update(ctx, id, u)
}

func (s *Service) DeleteBill(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// MarkAsPaid settles a pending or overdue bill. Already-paid bills are
// returned unchanged.
func (s *Service) MarkAsPaid(ctx context.Context, id string) (*Bill, error) {
	return s.repo.MarkPaid(ctx, id)
}

// MarkAsOverdue flags an unpaid bill as overdue.
func (s *Service) MarkAsOverdue(ctx context.Context, id string) (*Bill, error) {
	st := StatusOverdue
	return s.repo.Update(ctx, id, Update{Status: &st})
}

func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]*Bill, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) ListByStatus(ctx context.Context, status string) ([]*Bill, error) {
	if !validStatuses[status] {
		return nil, fmt.Errorf("invalid status %q", status)
	}
	return s.repo.ListByStatus(ctx, status)
}
