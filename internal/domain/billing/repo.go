package billing

import "context"

// Repository is the bill store. Status moves are validated on write:
// pending may become paid or overdue, overdue may still be paid, and paid
// is terminal. MarkPaid is idempotent on an already-paid bill.
type Repository interface {
	List(ctx context.Context) ([]*Bill, error)
	GetByID(ctx context.Context, id string) (*Bill, error)
	Create(ctx context.Context, b *Bill) (*Bill, error)
	Update(ctx context.Context, id string, u Update) (*Bill, error)
	Delete(ctx context.Context, id string) error

	ListByPatient(ctx context.Context, patientID string) ([]*Bill, error)
	ListByStatus(ctx context.Context, status string) ([]*Bill, error)
	MarkPaid(ctx context.Context, id string) (*Bill, error)
}
