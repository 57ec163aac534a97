// Package treatment holds the clinic's priced procedure catalog and
// per-patient treatment plans. Completed plan items become invoice lines.
package treatment

import (
	"time"

	"github.com/google/uuid"
)

// Procedure is one entry in the clinic's price list.
type Procedure struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Code        string    `db:"code" json:"code"`
	Name        string    `db:"name" json:"name"`
	Category    string    `db:"category" json:"category"`
	Description string    `db:"description" json:"description,omitempty"`
	Price       int       `db:"price" json:"price"`
	Active      bool      `db:"active" json:"active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type PlanStatus string

const (
	PlanProposed  PlanStatus = "proposed"
	PlanAccepted  PlanStatus = "accepted"
	PlanCompleted PlanStatus = "completed"
	PlanCancelled PlanStatus = "cancelled"
)

type ItemStatus string

const (
	ItemPlanned   ItemStatus = "planned"
	ItemDone      ItemStatus = "done"
	ItemCancelled ItemStatus = "cancelled"
)

// PlanItem is one planned procedure, priced at plan time so later price-list
// edits do not change an agreed plan.
type PlanItem struct {
	ProcedureID     uuid.UUID  `json:"procedure_id"`
	ProcedureName   string     `json:"procedure_name"`
	ToothNumbers    []string   `json:"tooth_numbers,omitempty"`
	Quantity        int        `json:"quantity"`
	UnitPrice       int        `json:"unit_price"`
	DiscountPercent float64    `json:"discount_percent,omitempty"`
	Status          ItemStatus `json:"status"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	Notes           string     `json:"notes,omitempty"`
}

// Plan maps to the treatment_plans table.
type Plan struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	PatientID uuid.UUID  `db:"patient_id" json:"patient_id"`
	Title     string     `db:"title" json:"title"`
	Dentist   string     `db:"dentist" json:"dentist"`
	Items     []PlanItem `db:"items" json:"items"`
	Status    PlanStatus `db:"status" json:"status"`
	Notes     string     `db:"notes" json:"notes,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

// EstimatedTotal sums the plan's non-cancelled items after per-item discounts.
func (p *Plan) EstimatedTotal() int {
	total := 0
	for _, item := range p.Items {
		if item.Status == ItemCancelled {
			continue
		}
		total += itemTotal(item)
	}
	return total
}

func itemTotal(item PlanItem) int {
	gross := float64(item.UnitPrice) * float64(item.Quantity) * (1 - item.DiscountPercent/100)
	if gross < 0 {
		return 0
	}
	return int(gross + 0.5)
}
