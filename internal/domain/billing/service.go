package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dentaldesk/dentaldesk/internal/domain/patient"
	"github.com/dentaldesk/dentaldesk/pkg/apperror"
)

// PatientLookup is the slice of the patient domain billing needs.
type PatientLookup interface {
	Get(ctx context.Context, id uuid.UUID) (*patient.Patient, error)
}

// TaxConfig carries the clinic's invoice-level tax and overdue settings.
type TaxConfig struct {
	RatePercent float64
	Enabled     bool
	OverdueDays int
}

type Service struct {
	repo     Repository
	patients PatientLookup
	tax      TaxConfig
	now      func() time.Time
}

func NewService(repo Repository, patients PatientLookup, tax TaxConfig) *Service {
	if tax.OverdueDays <= 0 {
		tax.OverdueDays = 30
	}
	return &Service{repo: repo, patients: patients, tax: tax, now: time.Now}
}

// CreateRequest carries the fields for a new invoice. Tax settings come from
// the clinic configuration, not the request.
type CreateRequest struct {
	PatientID    uuid.UUID     `json:"patient_id"`
	Items        []InvoiceItem `json:"items"`
	Discount     float64       `json:"discount"`
	DiscountType DiscountType  `json:"discount_type"`
	DueDate      *time.Time    `json:"due_date,omitempty"`
	Notes        string        `json:"notes,omitempty"`
	CreatedBy    string        `json:"-"`
}

func validateItems(items []InvoiceItem) error {
	if len(items) == 0 {
		return apperror.Validation("invoice requires at least one item")
	}
	for i, item := range items {
		if item.Description == "" {
			return apperror.Validation("item %d: description is required", i+1)
		}
		if item.Quantity <= 0 {
			return apperror.Validation("item %d: quantity must be positive", i+1)
		}
		if item.UnitPrice < 0 {
			return apperror.Validation("item %d: unit price cannot be negative", i+1)
		}
		if item.DiscountPercent < 0 || item.DiscountPercent > 100 {
			return apperror.Validation("item %d: discount percent must be between 0 and 100", i+1)
		}
	}
	return nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*Invoice, error) {
	if err := validateItems(req.Items); err != nil {
		return nil, err
	}
	if req.Discount < 0 {
		return nil, apperror.Validation("discount cannot be negative")
	}
	if req.DiscountType == "" {
		req.DiscountType = DiscountPercentage
	}
	if req.DiscountType != DiscountPercentage && req.DiscountType != DiscountFixed {
		return nil, apperror.Validation("invalid discount type: %s", req.DiscountType)
	}
	if req.DiscountType == DiscountPercentage && req.Discount > 100 {
		return nil, apperror.Validation("percentage discount cannot exceed 100")
	}

	pat, err := s.patients.Get(ctx, req.PatientID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	seq, err := s.repo.NextNumber(ctx, now)
	if err != nil {
		return nil, err
	}

	totals := ComputeTotals(req.Items, req.Discount, req.DiscountType, s.tax.RatePercent, s.tax.Enabled)

	inv := &Invoice{
		Number:         fmt.Sprintf("INV-%s-%04d", now.Format("200601"), seq),
		PatientID:      pat.ID,
		PatientName:    pat.Name,
		Items:          req.Items,
		Discount:       req.Discount,
		DiscountType:   req.DiscountType,
		TaxRatePercent: s.tax.RatePercent,
		TaxEnabled:     s.tax.Enabled,
		Subtotal:       totals.Subtotal,
		DiscountAmount: totals.DiscountAmount,
		TaxAmount:      totals.TaxAmount,
		Total:          totals.Total,
		AmountPaid:     0,
		AmountDue:      totals.Total,
		Notes:          req.Notes,
		IssuedAt:       now,
		DueDate:        req.DueDate,
		CreatedBy:      req.CreatedBy,
	}
	inv.Status = deriveStatus(inv)
	if inv.Status == StatusPaid {
		paidAt := now
		inv.PaidAt = &paidAt
	}

	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("invoice", id.String())
	}
	payments, err := s.repo.GetPayments(ctx, id)
	if err != nil {
		return nil, err
	}
	inv.Payments = make([]Payment, 0, len(payments))
	for _, p := range payments {
		inv.Payments = append(inv.Payments, *p)
	}
	return inv, nil
}

func (s *Service) List(ctx context.Context, status Status, limit, offset int) ([]*Invoice, int, error) {
	// Refresh overdue flags first so list views never show a stale invoice.
	if _, err := s.SweepOverdue(ctx); err != nil {
		return nil, 0, err
	}
	return s.repo.List(ctx, status, limit, offset)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Invoice, int, error) {
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}

// PaymentRequest records money received against an invoice. A plain
// single-method payment sets Method; mixed payments set Splits instead.
type PaymentRequest struct {
	Amount     int            `json:"amount"`
	Method     PaymentMethod  `json:"method,omitempty"`
	Splits     []PaymentSplit `json:"splits,omitempty"`
	Reference  string         `json:"reference,omitempty"`
	ReceivedBy string         `json:"-"`
}

// normalizeSplits turns the request into the canonical breakdown list:
// always non-empty, each split a valid method with a positive amount, and
// the split amounts summing to the payment amount.
func normalizeSplits(req PaymentRequest) ([]PaymentSplit, error) {
	splits := req.Splits
	if len(splits) == 0 {
		if req.Method == "" {
			return nil, apperror.Validation("payment method is required")
		}
		splits = []PaymentSplit{{Method: req.Method, Amount: req.Amount}}
	}
	sum := 0
	for _, sp := range splits {
		if !ValidMethod(sp.Method) {
			return nil, apperror.Validation("invalid payment method: %s", sp.Method)
		}
		if sp.Amount <= 0 {
			return nil, apperror.Validation("split amounts must be positive")
		}
		sum += sp.Amount
	}
	if sum != req.Amount {
		return nil, apperror.Validation("split amounts sum to %d, payment amount is %d", sum, req.Amount)
	}
	return splits, nil
}

// RecordPayment applies a payment to an invoice and re-derives its status.
// Existing payments are never altered; overpayment is rejected rather than
// carried as credit.
func (s *Service) RecordPayment(ctx context.Context, invoiceID uuid.UUID, req PaymentRequest) (*Invoice, error) {
	inv, err := s.Get(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	switch inv.Status {
	case StatusCancelled:
		return nil, apperror.InvalidState("invoice %s is cancelled", inv.Number)
	case StatusPaid:
		return nil, apperror.InvalidState("invoice %s is already fully paid", inv.Number)
	}
	if req.Amount <= 0 {
		return nil, apperror.Validation("payment amount must be positive")
	}
	if req.Amount > inv.AmountDue {
		return nil, apperror.Validation("payment %d exceeds amount due %d", req.Amount, inv.AmountDue)
	}
	splits, err := normalizeSplits(req)
	if err != nil {
		return nil, err
	}

	payment := &Payment{
		InvoiceID:  inv.ID,
		Amount:     req.Amount,
		Splits:     splits,
		Reference:  req.Reference,
		ReceivedBy: req.ReceivedBy,
		ReceivedAt: s.now(),
	}
	if err := s.repo.AddPayment(ctx, payment); err != nil {
		return nil, err
	}

	inv.AmountPaid += req.Amount
	inv.AmountDue = inv.Total - inv.AmountPaid
	inv.Status = deriveStatus(inv)
	if inv.Status == StatusPaid && inv.PaidAt == nil {
		paidAt := payment.ReceivedAt
		inv.PaidAt = &paidAt
	}
	if err := s.repo.Update(ctx, inv); err != nil {
		return nil, err
	}

	inv.Payments = append(inv.Payments, *payment)
	return inv, nil
}

// Cancel voids an unpaid or partially paid invoice. Paid invoices cannot be
// cancelled.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	inv, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	switch inv.Status {
	case StatusPaid:
		return nil, apperror.InvalidState("invoice %s is paid and cannot be cancelled", inv.Number)
	case StatusCancelled:
		return nil, apperror.InvalidState("invoice %s is already cancelled", inv.Number)
	}
	now := time.Now()
	inv.Status = StatusCancelled
	inv.CancelledAt = &now
	if err := s.repo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// isOverdue reports whether an outstanding invoice has crossed its due date,
// or its issue date plus the default grace period when no due date was set.
func isOverdue(inv *Invoice, today time.Time, graceDays int) bool {
	if inv.Status != StatusPending && inv.Status != StatusPartial {
		return false
	}
	if inv.DueDate != nil {
		return inv.DueDate.Before(today)
	}
	return inv.IssuedAt.AddDate(0, 0, graceDays).Before(today)
}

// SweepOverdue marks every outstanding invoice past its due date as overdue.
// The sweep is idempotent and never touches paid or cancelled invoices.
func (s *Service) SweepOverdue(ctx context.Context) (int, error) {
	invoices, err := s.repo.ListOutstanding(ctx)
	if err != nil {
		return 0, err
	}
	today := s.now()
	marked := 0
	for _, inv := range invoices {
		if !isOverdue(inv, today, s.tax.OverdueDays) {
			continue
		}
		inv.Status = StatusOverdue
		if err := s.repo.Update(ctx, inv); err != nil {
			return marked, err
		}
		marked++
	}
	return marked, nil
}
