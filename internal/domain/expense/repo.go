package expense

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, e *Expense) error
	GetByID(ctx context.Context, id uuid.UUID) (*Expense, error)
	Update(ctx context.Context, e *Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, category Category, from, to time.Time, limit, offset int) ([]*Expense, int, error)
	// TotalsByCategory sums amounts per category over [from, to).
	TotalsByCategory(ctx context.Context, from, to time.Time) (map[Category]int, error)
}
