package expense

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dentaldesk/dentaldesk/pkg/apperror"
)

type mockRepo struct {
	expenses map[uuid.UUID]*Expense
}

func newMockRepo() *mockRepo {
	return &mockRepo{expenses: make(map[uuid.UUID]*Expense)}
}

func (m *mockRepo) Create(_ context.Context, e *Expense) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	stored := *e
	m.expenses[e.ID] = &stored
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Expense, error) {
	e, ok := m.expenses[id]
	if !ok {
		return nil, fmt.Errorf("no rows")
	}
	copied := *e
	return &copied, nil
}

func (m *mockRepo) Update(_ context.Context, e *Expense) error {
	stored := *e
	m.expenses[e.ID] = &stored
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.expenses, id)
	return nil
}

func (m *mockRepo) List(_ context.Context, category Category, from, to time.Time, limit, offset int) ([]*Expense, int, error) {
	var out []*Expense
	for _, e := range m.expenses {
		if category != "" && e.Category != category {
			continue
		}
		if e.Date.Before(from) || !e.Date.Before(to) {
			continue
		}
		out = append(out, e)
	}
	return out, len(out), nil
}

func (m *mockRepo) TotalsByCategory(_ context.Context, from, to time.Time) (map[Category]int, error) {
	totals := make(map[Category]int)
	for _, e := range m.expenses {
		if e.Date.Before(from) || !e.Date.Before(to) {
			continue
		}
		totals[e.Category] += e.Amount
	}
	return totals, nil
}

func TestCreate(t *testing.T) {
	svc := NewService(newMockRepo())

	e := &Expense{Category: CategoryLabFees, Description: "Crown, case #114", Amount: 2500}
	if err := svc.Create(context.Background(), e); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if e.Status != StatusPaid {
		t.Errorf("status = %s, want paid default", e.Status)
	}
	if e.Recurrence != RecurNone {
		t.Errorf("recurrence = %s, want none default", e.Recurrence)
	}
	if e.Date.IsZero() {
		t.Error("date not defaulted")
	}
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(newMockRepo())
	ctx := context.Background()

	tests := []struct {
		name string
		e    Expense
	}{
		{"zero amount", Expense{Category: CategoryRent, Description: "x", Amount: 0}},
		{"negative amount", Expense{Category: CategoryRent, Description: "x", Amount: -100}},
		{"no description", Expense{Category: CategoryRent, Amount: 100}},
		{"bad category", Expense{Category: "snacks", Description: "x", Amount: 100}},
		{"bad recurrence", Expense{Category: CategoryRent, Description: "x", Amount: 100, Recurrence: "weekly"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := tt.e
			if err := svc.Create(ctx, &e); !apperror.IsValidation(err) {
				t.Errorf("got %v, want validation error", err)
			}
		})
	}
}

func TestNextOccurrence(t *testing.T) {
	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		recurrence Recurrence
		want       time.Time
	}{
		{RecurNone, time.Time{}},
		{RecurMonthly, time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)},
		{RecurQuarterly, time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)},
		{RecurYearly, time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		e := Expense{Date: date, Recurrence: tt.recurrence}
		if got := e.NextOccurrence(); !got.Equal(tt.want) {
			t.Errorf("%s: got %v, want %v", tt.recurrence, got, tt.want)
		}
	}
}

func TestTotalsByCategory(t *testing.T) {
	svc := NewService(newMockRepo())
	ctx := context.Background()

	jan := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	seed := []Expense{
		{Category: CategoryRent, Description: "January rent", Amount: 40000, Date: jan},
		{Category: CategoryLabFees, Description: "Crown", Amount: 2500, Date: jan},
		{Category: CategoryLabFees, Description: "Bridge", Amount: 6000, Date: jan},
		{Category: CategoryRent, Description: "February rent", Amount: 40000, Date: feb},
	}
	for i := range seed {
		if err := svc.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	totals, err := svc.TotalsByCategory(ctx,
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("TotalsByCategory: %v", err)
	}
	if totals[CategoryRent] != 40000 {
		t.Errorf("rent = %d, want 40000 (February excluded)", totals[CategoryRent])
	}
	if totals[CategoryLabFees] != 8500 {
		t.Errorf("lab fees = %d, want 8500", totals[CategoryLabFees])
	}
}

func TestUpdateAndDelete(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	ctx := context.Background()

	e := &Expense{Category: CategoryUtilities, Description: "Electricity", Amount: 3000}
	if err := svc.Create(ctx, e); err != nil {
		t.Fatalf("Create: %v", err)
	}

	e.Amount = 3200
	if err := svc.Update(ctx, e); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if repo.expenses[e.ID].Amount != 3200 {
		t.Errorf("amount = %d", repo.expenses[e.ID].Amount)
	}

	e.Amount = -1
	if err := svc.Update(ctx, e); !apperror.IsValidation(err) {
		t.Errorf("invalid update: got %v", err)
	}

	if err := svc.Delete(ctx, e.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, e.ID); !apperror.IsNotFound(err) {
		t.Errorf("double delete: got %v, want not-found", err)
	}
}
