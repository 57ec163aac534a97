package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, inv *Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	Update(ctx context.Context, inv *Invoice) error
	List(ctx context.Context, status Status, limit, offset int) ([]*Invoice, int, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Invoice, int, error)
	ListOutstanding(ctx context.Context) ([]*Invoice, error)
	// NextNumber returns the next invoice sequence for the month containing t.
	NextNumber(ctx context.Context, t time.Time) (int, error)

	AddPayment(ctx context.Context, p *Payment) error
	GetPayments(ctx context.Context, invoiceID uuid.UUID) ([]*Payment, error)
}
