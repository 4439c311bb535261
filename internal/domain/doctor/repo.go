package doctor

import "context"

type Repository interface {
	List(ctx context.Context) ([]*Doctor, error)
	GetByID(ctx context.Context, id string) (*Doctor, error)
	Create(ctx context.Context, d *Doctor) (*Doctor, error)
	Update(ctx context.Context, id string, u Update) (*Doctor, error)
	Delete(ctx context.Context, id string) error
	ListBySpecialization(ctx context.Context, specialization string) ([]*Doctor, error)
	Search(ctx context.Context, query string) ([]*Doctor, error)
}
