package billing

import (
	"context"
	"fmt"
	"sync"

	"github.com/hms/hms/internal/platform/memstore"
)

var transitions = map[string]map[string]bool{
	StatusPending: {StatusPaid: true, StatusOverdue: true},
	StatusOverdue: {StatusPaid: true},
	StatusPaid:    {},
}

type memRepo struct {
	mu      sync.RWMutex
	byID    map[string]*Bill
	order   []string
	latency memstore.Latency
	newID   memstore.IDFunc
	now     memstore.Clock
}

// NewMemRepo builds an in-memory repository, optionally seeded. Seed records
// keep their ids and relative order; their totals are not recomputed.
func NewMemRepo(opts memstore.Options, seed []*Bill) Repository {
	opts = opts.Defaults()
	r := &memRepo{
		byID:    make(map[string]*Bill, len(seed)),
		latency: memstore.Latency{D: opts.Latency},
		newID:   opts.NewID,
		now:     opts.Now,
	}
	for _, b := range seed {
		r.byID[b.ID] = b.Clone()
		r.order = append(r.order, b.ID)
	}
	return r
}

func (r *memRepo) List(ctx context.Context) ([]*Bill, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Bill, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out, nil
}

func (r *memRepo) GetByID(ctx context.Context, id string) (*Bill, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("bill %s: %w", id, memstore.ErrNotFound)
	}
	return b.Clone(), nil
}

func (r *memRepo) Create(ctx context.Context, b *Bill) (*Bill, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return nil, err
	}
	rec := b.Clone()
	rec.ID = r.newID()
	now := r.now()
	rec.CreatedAt = now
	rec.UpdatedAt = nil
	rec.Date = memstore.DateOnly(now)
	if rec.Status == "" {
		rec.Status = StatusPending
	}
	if rec.Items == nil {
		rec.Items = []Item{}
	}
	rec.Total = TotalOf(rec.Items)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[rec.ID] = rec
	r.order = append(r.order, rec.ID)
	return rec.Clone(), nil
}

func (r *memRepo) Update(ctx context.Context, id string, u Update) (*Bill, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("bill %s: %w", id, memstore.ErrNotFound)
	}
	if u.Status != nil && *u.Status != b.Status {
		if !transitions[b.Status][*u.Status] {
			return nil, fmt.Errorf("bill %s: %s -> %s: %w", id, b.Status, *u.Status, memstore.ErrInvalidTransition)
		}
	}
	b.apply(u)
	if u.Status != nil && *u.Status == StatusPaid && b.PaidAt == "" {
		b.PaidAt = memstore.DateOnly(r.now())
	}
	ts := r.now()
	b.UpdatedAt = &ts
	return b.Clone(), nil
}

func (r *memRepo) Delete(ctx context.Context, id string) error {
	if err := r.latency.Wait(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return fmt.Errorf("bill %s: %w", id, memstore.ErrNotFound)
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memRepo) ListByPatient(ctx context.Context, patientID string) ([]*Bill, error) {
	return r.filter(ctx, func(b *Bill) bool { return b.PatientID == patientID })
}

func (r *memRepo) ListByStatus(ctx context.Context, status string) ([]*Bill, error) {
	return r.filter(ctx, func(b *Bill) bool { return b.Status == status })
}

// MarkPaid settles the bill, stamping paidAt. Calling it on an already-paid
// bill returns the bill unchanged.
func (r *memRepo) MarkPaid(ctx context.Context, id string) (*Bill, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("bill %s: %w", id, memstore.ErrNotFound)
	}
	if b.Status == StatusPaid {
		return b.Clone(), nil
	}
	b.Status = StatusPaid
	b.PaidAt = memstore.DateOnly(r.now())
	ts := r.now()
	b.UpdatedAt = &ts
	return b.Clone(), nil
}

func (r *memRepo) filter(ctx context.Context, keep func(*Bill) bool) ([]*Bill, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*Bill{}
	for _, id := range r.order {
		if b := r.byID[id]; keep(b) {
			out = append(out, b.Clone())
		}
	}
	return out, nil
}
