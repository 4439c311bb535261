package prescription

import "context"

// Repository is the prescription store.
type Repository interface {
	List(ctx context.Context) ([]*Prescription, error)
	GetByID(ctx context.Context, id string) (*Prescription, error)
	Create(ctx context.Context, p *Prescription) (*Prescription, error)
	Update(ctx context.Context, id string, u Update) (*Prescription, error)
	Delete(ctx context.Context, id string) error

	ListByPatient(ctx context.Context, patientID string) ([]*Prescription, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]*Prescription, error)
	ListByAppointment(ctx context.Context, appointmentID string) ([]*Prescription, error)
	Search(ctx context.Context, query string) ([]*Prescription, error)
}
