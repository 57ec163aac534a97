package expense

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

func validate(e *Expense) error {
	if e.Amount <= 0 {
		return apperror.Validation("expense amount must be positive")
	}
	if e.Description == "" {
		return apperror.Validation("expense description is required")
	}
	if !ValidCategory(e.Category) {
		return apperror.Validation("invalid expense category: %s", e.Category)
	}
	if e.Recurrence != "" && !ValidRecurrence(e.Recurrence) {
		return apperror.Validation("invalid recurrence: %s", e.Recurrence)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, e *Expense) error {
	if err := validate(e); err != nil {
		return err
	}
	if e.Date.IsZero() {
		e.Date = time.Now()
	}
	if e.Status == "" {
		e.Status = StatusPaid
	}
	if e.Recurrence == "" {
		e.Recurrence = RecurNone
	}
	e.CreatedAt = time.Now()
	return s.repo.Create(ctx, e)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Expense, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("expense", id.String())
	}
	return e, nil
}

func (s *Service) Update(ctx context.Context, e *Expense) error {
	if _, err := s.Get(ctx, e.ID); err != nil {
		return err
	}
	if err := validate(e); err != nil {
		return err
	}
	return s.repo.Update(ctx, e)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, category Category, from, to time.Time, limit, offset int) ([]*Expense, int, error) {
	if category != "" && !ValidCategory(category) {
		return nil, 0, apperror.Validation("invalid expense category: %s", category)
	}
	return s.repo.List(ctx, category, from, to, limit, offset)
}

func (s *Service) TotalsByCategory(ctx context.Context, from, to time.Time) (map[Category]int, error) {
	return s.repo.TotalsByCategory(ctx, from, to)
}
