package labcase

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, lc *LabCase) error
	GetByID(ctx context.Context, id uuid.UUID) (*LabCase, error)
	Update(ctx context.Context, lc *LabCase) error
	List(ctx context.Context, status Status, limit, offset int) ([]*LabCase, int, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*LabCase, int, error)
	// ListOverdue returns sent cases whose due date has passed.
	ListOverdue(ctx context.Context) ([]*LabCase, error)
}
