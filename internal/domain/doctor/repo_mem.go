package doctor

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/hms/hms/internal/platform/memstore"
)

type memRepo struct {
	mu      sync.RWMutex
	byID    map[string]*Doctor
	order   []string
	latency memstore.Latency
	newID   memstore.IDFunc
	now     memstore.Clock
}

// NewMemRepo builds an in-memory repository over the seed records. Seed
// records keep their ids and define the initial insertion order.
func NewMemRepo(opts memstore.Options, seed []*Doctor) Repository {
	opts = opts.Defaults()
	r := &memRepo{
		byID:    make(map[string]*Doctor, len(seed)),
		latency: memstore.Latency{D: opts.Latency},
		newID:   opts.NewID,
		now:     opts.Now,
	}
	for _, d := range seed {
		cp := d.Clone()
		r.byID[cp.ID] = cp
		r.order = append(r.order, cp.ID)
	}
	return r
}

func (r *memRepo) List(ctx context.Context) ([]*Doctor, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Doctor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out, nil
}

func (r *memRepo) GetByID(ctx context.Context, id string) (*Doctor, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("doctor %s: %w", id, memstore.ErrNotFound)
	}
	return d.Clone(), nil
}

func (r *memRepo) Create(ctx context.Context, d *Doctor) (*Doctor, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := d.Clone()
	cp.ID = r.newID()
	cp.CreatedAt = r.now()
	cp.UpdatedAt = nil
	if cp.Status == "" {
		cp.Status = StatusActive
	}
	if cp.Availability == nil {
		cp.Availability = []Availability{}
	}
	r.byID[cp.ID] = cp
	r.order = append(r.order, cp.ID)
	return cp.Clone(), nil
}

func (r *memRepo) Update(ctx context.Context, id string, u Update) (*Doctor, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("doctor %s: %w", id, memstore.ErrNotFound)
	}
	d.apply(u)
	ts := r.now()
	d.UpdatedAt = &ts
	return d.Clone(), nil
}

func (r *memRepo) Delete(ctx context.Context, id string) error {
	if err := r.latency.Wait(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return fmt.Errorf("doctor %s: %w", id, memstore.ErrNotFound)
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

func (r *memRepo) ListBySpecialization(ctx context.Context, specialization string) ([]*Doctor, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	q := strings.ToLower(specialization)
	var out []*Doctor
	for _, id := range r.order {
		if d := r.byID[id]; strings.Contains(strings.ToLower(d.Specialization), q) {
			out = append(out, d.Clone())
		}
	}
	return out, nil
}

func (r *memRepo) Search(ctx context.Context, query string) ([]*Doctor, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Doctor
	for _, id := range r.order {
		if d := r.byID[id]; d.matchesQuery(query) {
			out = append(out, d.Clone())
		}
	}
	return out, nil
}
