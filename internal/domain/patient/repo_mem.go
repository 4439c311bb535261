package patient

import (
	"context"
	"fmt"
	"sync"

	"github.com/hms/hms/internal/platform/memstore"
)

type memRepo struct {
	mu      sync.RWMutex
	byID    map[string]*Patient
	order   []string
	latency memstore.Latency
	newID   memstore.IDFunc
	now     memstore.Clock
}

// NewMemRepo builds an in-memory repository over the seed records. Seed
// records keep their ids and define the initial insertion order.
func NewMemRepo(opts memstore.Options, seed []*Patient) Repository {
	opts = opts.Defaults()
	r := &memRepo{
		byID:    make(map[string]*Patient, len(seed)),
		latency: memstore.Latency{D: opts.Latency},
		newID:   opts.NewID,
		now:     opts.Now,
	}
	for _, p := range seed {
		cp := p.Clone()
		r.byID[cp.ID] = cp
		r.order = append(r.order, cp.ID)
	}
	return r
}

func (r *memRepo) List(ctx context.Context) ([]*Patient, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Patient, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out, nil
}

func (r *memRepo) GetByID(ctx context.Context, id string) (*Patient, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("patient %s: %w", id, memstore.ErrNotFound)
	}
	return p.Clone(), nil
}

func (r *memRepo) Create(ctx context.Context, p *Patient) (*Patient, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := p.Clone()
	cp.ID = r.newID()
	cp.CreatedAt = r.now()
	cp.UpdatedAt = nil
	if cp.MedicalHistory == nil {
		cp.MedicalHistory = []string{}
	}
	r.byID[cp.ID] = cp
	r.order = append(r.order, cp.ID)
	return cp.Clone(), nil
}

func (r *memRepo) Update(ctx context.Context, id string, u Update) (*Patient, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("patient %s: %w", id, memstore.ErrNotFound)
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
		return fmt.Errorf("patient %s: %w", id, memstore.ErrNotFound)
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

func (r *memRepo) Search(ctx context.Context, query string) ([]*Patient, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Patient
	for _, id := range r.order {
		if p := r.byID[id]; p.matchesQuery(query) {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}
