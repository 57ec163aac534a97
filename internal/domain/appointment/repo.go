package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	Update(ctx context.Context, a *Appointment) error
	// ListByDentistRange returns the dentist's non-cancelled appointments
	// touching [from, to).
	ListByDentistRange(ctx context.Context, dentist string, from, to time.Time) ([]*Appointment, error)
	ListRange(ctx context.Context, from, to time.Time) ([]*Appointment, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Appointment, int, error)
}
