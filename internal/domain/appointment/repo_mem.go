package appointment

import (
	"context"
	"fmt"
	"sync"

	"github.com/hms/hms/internal/platform/memstore"
)

// Allowed status moves. Writing the current status back is always a no-op.
var transitions = map[string]map[string]bool{
	StatusScheduled: {StatusCompleted: true, StatusCancelled: true},
	StatusCompleted: {},
	StatusCancelled: {},
}

type memRepo struct {
	mu      sync.RWMutex
	byID    map[string]*Appointment
	order   []string
	latency memstore.Latency
	newID   memstore.IDFunc
	now     memstore.Clock
}

// NewMemRepo builds an in-memory repository, optionally seeded. Seed records
// keep their ids and relative order.
func NewMemRepo(opts memstore.Options, seed []*Appointment) Repository {
	opts = opts.Defaults()
	r := &memRepo{
		byID:    make(map[string]*Appointment, len(seed)),
		latency: memstore.Latency{D: opts.Latency},
		newID:   opts.NewID,
		now:     opts.Now,
	}
	for _, a := range seed {
		r.byID[a.ID] = a.Clone()
		r.order = append(r.order, a.ID)
	}
	return r
}

func (r *memRepo) List(ctx context.Context) ([]*Appointment, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Appointment, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out, nil
}

func (r *memRepo) GetByID(ctx context.Context, id string) (*Appointment, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("appointment %s: %w", id, memstore.ErrNotFound)
	}
	return a.Clone(), nil
}

func (r *memRepo) Create(ctx context.Context, a *Appointment) (*Appointment, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return nil, err
	}
	rec := a.Clone()
	rec.ID = r.newID()
	rec.CreatedAt = r.now()
	rec.UpdatedAt = nil
	if rec.Status == "" {
		rec.Status = StatusScheduled
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[rec.ID] = rec
	r.order = append(r.order, rec.ID)
	return rec.Clone(), nil
}

func (r *memRepo) Update(ctx context.Context, id string, u Update) (*Appointment, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("appointment %s: %w", id, memstore.ErrNotFound)
	}
	if u.Status != nil && *u.Status != a.Status {
		if !transitions[a.Status][*u.Status] {
			return nil, fmt.Errorf("appointment %s: %s -> %s: %w", id, a.Status, *u.Status, memstore.ErrInvalidTransition)
		}
	}
	a.apply(u)
	ts := r.now()
	a.UpdatedAt = &ts
	return a.Clone(), nil
}

func (r *memRepo) Delete(ctx context.Context, id string) error {
	if err := r.latency.Wait(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return fmt.Errorf("appointment %s: %w", id, memstore.ErrNotFound)
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

func (r *memRepo) ListByPatient(ctx context.Context, patientID string) ([]*Appointment, error) {
	return r.filter(ctx, func(a *Appointment) bool { return a.PatientID == patientID })
}

func (r *memRepo) ListByDoctor(ctx context.Context, doctorID string) ([]*Appointment, error) {
	return r.filter(ctx, func(a *Appointment) bool { return a.DoctorID == doctorID })
}

func (r *memRepo) ListByStatus(ctx context.Context, status string) ([]*Appointment, error) {
	return r.filter(ctx, func(a *Appointment) bool { return a.Status == status })
}

// ListByDateRange compares ISO dates lexically; empty bounds are open.
func (r *memRepo) ListByDateRange(ctx context.Context, from, to string) ([]*Appointment, error) {
	return r.filter(ctx, func(a *Appointment) bool {
		if from != "" && a.Date < from {
			return false
		}
		if to != "" && a.Date > to {
			return false
		}
		return true
	})
}

func (r *memRepo) filter(ctx context.Context, keep func(*Appointment) bool) ([]*Appointment, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*Appointment{}
	for _, id := range r.order {
		if a := r.byID[id]; keep(a) {
			out = append(out, a.Clone())
		}
	}
	return out, nil
}
