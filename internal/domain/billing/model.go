package billing

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusPartial   Status = "partial"
	StatusPaid      Status = "paid"
	StatusOverdue   Status = "overdue"
	StatusCancelled Status = "cancelled"
)

type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodCard     PaymentMethod = "card"
	MethodUPI      PaymentMethod = "upi"
	MethodTransfer PaymentMethod = "bank_transfer"
)

func ValidMethod(m PaymentMethod) bool {
	switch m {
	case MethodCash, MethodCard, MethodUPI, MethodTransfer:
		return true
	}
	return false
}

// InvoiceItem is one billed line. TreatmentID links back to the treatment
// record when the line was raised from a completed procedure.
type InvoiceItem struct {
	Description     string     `json:"description"`
	TreatmentID     *uuid.UUID `json:"treatment_id,omitempty"`
	Quantity        int        `json:"quantity"`
	UnitPrice       int        `json:"unit_price"`
	DiscountPercent float64    `json:"discount_percent,omitempty"`
}

// PaymentSplit is one {method, amount} pair. Every payment carries a split
// list even when it is a single-method payment, so mixed cash+card receipts
// need no separate code path.
type PaymentSplit struct {
	Method PaymentMethod `json:"method"`
	Amount int           `json:"amount"`
}

// Payment is append-only: once recorded against an invoice it is never
// altered.
type Payment struct {
	ID         uuid.UUID      `db:"id" json:"id"`
	InvoiceID  uuid.UUID      `db:"invoice_id" json:"invoice_id"`
	Amount     int            `db:"amount" json:"amount"`
	Splits     []PaymentSplit `db:"splits" json:"splits"`
	Reference  string         `db:"reference" json:"reference,omitempty"`
	ReceivedBy string         `db:"received_by" json:"received_by"`
	ReceivedAt time.Time      `db:"received_at" json:"received_at"`
}

// Invoice maps to the invoices table. Totals are stored denormalized so the
// printed document shows the figures as they were at issue time.
type Invoice struct {
	ID             uuid.UUID     `db:"id" json:"id"`
	Number         string        `db:"number" json:"number"`
	PatientID      uuid.UUID     `db:"patient_id" json:"patient_id"`
	PatientName    string        `db:"patient_name" json:"patient_name"`
	Items          []InvoiceItem `db:"items" json:"items"`
	Discount       float64       `db:"discount" json:"discount"`
	DiscountType   DiscountType  `db:"discount_type" json:"discount_type"`
	TaxRatePercent float64       `db:"tax_rate_percent" json:"tax_rate_percent"`
	TaxEnabled     bool          `db:"tax_enabled" json:"tax_enabled"`
	Subtotal       int           `db:"subtotal" json:"subtotal"`
	DiscountAmount int           `db:"discount_amount" json:"discount_amount"`
	TaxAmount      int           `db:"tax_amount" json:"tax_amount"`
	Total          int           `db:"total" json:"total"`
	AmountPaid     int           `db:"amount_paid" json:"amount_paid"`
	AmountDue      int           `db:"amount_due" json:"amount_due"`
	Status         Status        `db:"status" json:"status"`
	Notes          string        `db:"notes" json:"notes,omitempty"`
	IssuedAt       time.Time     `db:"issued_at" json:"issued_at"`
	DueDate        *time.Time    `db:"due_date" json:"due_date,omitempty"`
	PaidAt         *time.Time    `db:"paid_at" json:"paid_at,omitempty"`
	CancelledAt    *time.Time    `db:"cancelled_at" json:"cancelled_at,omitempty"`
	Payments       []Payment     `db:"-" json:"payments,omitempty"`
	CreatedBy      string        `db:"created_by" json:"created_by"`
}

// deriveStatus is the single place invoice status is computed from its
// amounts. Cancellation and the overdue sweep are handled by their callers;
// everything else must go through here instead of assigning Status directly.
func deriveStatus(inv *Invoice) Status {
	if inv.Status == StatusCancelled {
		return StatusCancelled
	}
	if inv.AmountDue <= 0 {
		return StatusPaid
	}
	if inv.AmountPaid > 0 {
		return StatusPartial
	}
	return StatusPending
}
