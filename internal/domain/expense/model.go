// Package expense records clinic outgoings for the profit reports.
package expense

import (
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategorySalaries  Category = "salaries"
	CategoryRent      Category = "rent"
	CategoryMaterials Category = "materials"
	CategoryLabFees   Category = "lab_fees"
	CategoryEquipment Category = "equipment"
	CategoryUtilities Category = "utilities"
	CategoryMarketing Category = "marketing"
	CategoryOther     Category = "other"
)

var Categories = []Category{
	CategorySalaries, CategoryRent, CategoryMaterials, CategoryLabFees,
	CategoryEquipment, CategoryUtilities, CategoryMarketing, CategoryOther,
}

func ValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Status string

const (
	StatusPaid    Status = "paid"
	StatusPending Status = "pending"
	StatusOverdue Status = "overdue"
)

type Recurrence string

const (
	RecurNone      Recurrence = "none"
	RecurMonthly   Recurrence = "monthly"
	RecurQuarterly Recurrence = "quarterly"
	RecurYearly    Recurrence = "yearly"
)

func ValidRecurrence(r Recurrence) bool {
	switch r {
	case RecurNone, RecurMonthly, RecurQuarterly, RecurYearly:
		return true
	}
	return false
}

// Expense maps to the expenses table.
type Expense struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	Date          time.Time  `db:"date" json:"date"`
	Category      Category   `db:"category" json:"category"`
	Description   string     `db:"description" json:"description"`
	Amount        int        `db:"amount" json:"amount"`
	Vendor        string     `db:"vendor" json:"vendor,omitempty"`
	ReceiptRef    string     `db:"receipt_ref" json:"receipt_ref,omitempty"`
	PaymentMethod string     `db:"payment_method" json:"payment_method,omitempty"`
	Status        Status     `db:"status" json:"status"`
	Recurrence    Recurrence `db:"recurrence" json:"recurrence"`
	CreatedBy     string     `db:"created_by" json:"created_by"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}

// NextOccurrence returns when a recurring expense falls due again, or zero
// time for one-off expenses.
func (e *Expense) NextOccurrence() time.Time {
	switch e.Recurrence {
	case RecurMonthly:
		return e.Date.AddDate(0, 1, 0)
	case RecurQuarterly:
		return e.Date.AddDate(0, 3, 0)
	case RecurYearly:
		return e.Date.AddDate(1, 0, 0)
	}
	return time.Time{}
}
