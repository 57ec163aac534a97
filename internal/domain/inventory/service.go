package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dentaldesk/dentaldesk/pkg/apperror"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, item *Item) error {
	if item.Name == "" {
		return apperror.Validation("item name is required")
	}
	if item.Unit == "" {
		return apperror.Validation("item unit is required")
	}
	if item.Stock < 0 {
		return apperror.Validation("stock cannot be negative")
	}
	if item.ReorderLevel < 0 {
		return apperror.Validation("reorder level cannot be negative")
	}
	if item.UnitCost < 0 {
		return apperror.Validation("unit cost cannot be negative")
	}
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	return s.repo.Create(ctx, item)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("inventory item", id.String())
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, item *Item) error {
	current, err := s.Get(ctx, item.ID)
	if err != nil {
		return err
	}
	if item.Name == "" {
		return apperror.Validation("item name is required")
	}
	// Stock only moves through AdjustStock so the movement trail stays
	// complete.
	item.Stock = current.Stock
	item.UpdatedAt = time.Now()
	return s.repo.Update(ctx, item)
}

func (s *Service) List(ctx context.Context, category string, limit, offset int) ([]*Item, int, error) {
	return s.repo.List(ctx, category, limit, offset)
}

func (s *Service) ListLowStock(ctx context.Context) ([]*Item, error) {
	return s.repo.ListLowStock(ctx)
}

// ListExpiring returns items expiring within the given number of days.
func (s *Service) ListExpiring(ctx context.Context, withinDays int) ([]*Item, error) {
	if withinDays <= 0 {
		withinDays = 30
	}
	return s.repo.ListExpiring(ctx, time.Now().AddDate(0, 0, withinDays))
}

// AdjustStock applies a signed delta to an item's stock. Stock can never go
// negative; every accepted adjustment is recorded as a movement.
func (s *Service) AdjustStock(ctx context.Context, id uuid.UUID, delta int, reason, recordedBy string) (*Item, error) {
	if delta == 0 {
		return nil, apperror.Validation("adjustment delta cannot be zero")
	}
	if reason == "" {
		return nil, apperror.Validation("adjustment reason is required")
	}
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.Stock+delta < 0 {
		return nil, apperror.Validation("adjustment would make stock negative (%d%+d)", item.Stock, delta)
	}

	item.Stock += delta
	item.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	movement := &Movement{
		ItemID:     item.ID,
		Delta:      delta,
		Reason:     reason,
		StockAfter: item.Stock,
		RecordedBy: recordedBy,
		RecordedAt: item.UpdatedAt,
	}
	if err := s.repo.AddMovement(ctx, movement); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) Movements(ctx context.Context, itemID uuid.UUID, limit, offset int) ([]*Movement, int, error) {
	return s.repo.GetMovements(ctx, itemID, limit, offset)
}
