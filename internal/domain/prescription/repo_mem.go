package prescription

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/hms/hms/internal/platform/memstore"
)

type memRepo struct {
	mu      sync.RWMutex
	byID    map[string]*Prescription
	order   []string
	latency memstore.Latency
	newID   memstore.IDFunc
	now     memstore.Clock
}

// NewMemRepo builds an in-memory repository, optionally seeded. Seed records
// keep their ids and relative order.
func NewMemRepo(opts memstore.Options, seed []*Prescription) Repository {
	opts = opts.Defaults()
	r := &memRepo{
		byID:    make(map[string]*Prescription, len(seed)),
		latency: memstore.Latency{D: opts.Latency},
		newID:   opts.NewID,
		now:     opts.Now,
	}
	for _, p := range seed {
		r.byID[p.ID] = p.Clone()
		r.order = append(r.order, p.ID)
	}
	return r
}

func (r *memRepo) List(ctx context.Context) ([]*Prescription, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Prescription, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out, nil
}

func (r *memRepo) GetByID(ctx context.Context, id string) (*Prescription, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("prescription %s: %w", id, memstore.ErrNotFound)
	}
	return p.Clone(), nil
}

func (r *memRepo) Create(ctx context.Context, p *Prescription) (*Prescription, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return nil, err
	}
	rec := p.Clone()
	rec.ID = r.newID()
	now := r.now()
	rec.CreatedAt = now
	rec.UpdatedAt = nil
	rec.Date = memstore.DateOnly(now)
	if rec.Medications == nil {
		rec.Medications = []Medication{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[rec.ID] = rec
	r.order = append(r.order, rec.ID)
	return rec.Clone(), nil
}

func (r *memRepo) Update(ctx context.Context, id string, u Update) (*Prescription, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("prescription %s: %w", id, memstore.ErrNotFound)
	}
	p.apply(u)
	ts := r.now()
	p.UpdatedAt = &ts
	return p.Clone(), nil
}

func (r *memRepo) Delete(ctx context.Context, id string) error {
	if err := r.latency.Wait(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return fmt.Errorf("prescription %s: %w", id, memstore.ErrNotFound)
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

func (r *memRepo) ListByPatient(ctx context.Context, patientID string) ([]*Prescription, error) {
	return r.filter(ctx, func(p *Prescription) bool { return p.PatientID == patientID })
}

func (r *memRepo) ListByDoctor(ctx context.Context, doctorID string) ([]*Prescription, error) {
	return r.filter(ctx, func(p *Prescription) bool { return p.DoctorID == doctorID })
}

func (r *memRepo) ListByAppointment(ctx context.Context, appointmentID string) ([]*Prescription, error) {
	return r.filter(ctx, func(p *Prescription) bool { return p.AppointmentID == appointmentID })
}

// Search matches the query case-insensitively against the diagnosis and
// medication names. An empty query matches everything.
func (r *memRepo) Search(ctx context.Context, query string) ([]*Prescription, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return r.List(ctx)
	}
	return r.filter(ctx, func(p *Prescription) bool { return p.matchesQuery(q) })
}

func (r *memRepo) filter(ctx context.Context, keep func(*Prescription) bool) ([]*Prescription, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*Prescription{}
	for _, id := range r.order {
		if p := r.byID[id]; keep(p) {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}
