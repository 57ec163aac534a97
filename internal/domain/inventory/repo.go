package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, item *Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*Item, error)
	Update(ctx context.Context, item *Item) error
	List(ctx context.Context, category string, limit, offset int) ([]*Item, int, error)
	ListLowStock(ctx context.Context) ([]*Item, error)
	ListExpiring(ctx context.Context, before time.Time) ([]*Item, error)

	AddMovement(ctx context.Context, m *Movement) error
	GetMovements(ctx context.Context, itemID uuid.UUID, limit, offset int) ([]*Movement, int, error)
}
