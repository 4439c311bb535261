package patient

import "context"

type Repository interface {
	List(ctx context.Context) ([]*Patient, error)
	GetByID(ctx context.Context, id string) (*Patient, error)
	Create(ctx context.Context, p *Patient) (*Patient, error)
	Update(ctx context.Context, id string, u Update) (*Patient, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string) ([]*Patient, error)
}
