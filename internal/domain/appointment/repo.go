package appointment

import "context"

// Repository is the appointment store. Update enforces the status
// transition rules; an illegal move fails with memstore.ErrInvalidTransition
// and leaves the record untouched.
type Repository interface {
	List(ctx context.Context) ([]*Appointment, error)
	GetByID(ctx context.Context, id string) (*Appointment, error)
	Create(ctx context.Context, a *Appointment) (*Appointment, error)
	Update(ctx context.Context, id string, u Update) (*Appointment, error)
	Delete(ctx context.Context, id string) error

	ListByPatient(ctx context.Context, patientID string) ([]*Appointment, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]*Appointment, error)
	ListByStatus(ctx context.Context, status string) ([]*Appointment, error)
	ListByDateRange(ctx context.Context, from, to string) ([]*Appointment, error)
}
