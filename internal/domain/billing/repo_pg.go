package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const invoiceCols = `id, number, patient_id, patient_name, items, discount, discount_type,
	tax_rate_percent, tax_enabled, subtotal, discount_amount, tax_amount, total,
	amount_paid, amount_due, status, notes, issued_at, due_date, paid_at, cancelled_at, created_by`

func scanInvoice(row pgx.Row) (*Invoice, error) {
	var inv Invoice
	var itemsJSON []byte
	err := row.Scan(&inv.ID, &inv.Number, &inv.PatientID, &inv.PatientName, &itemsJSON,
		&inv.Discount, &inv.DiscountType, &inv.TaxRatePercent, &inv.TaxEnabled,
		&inv.Subtotal, &inv.DiscountAmount, &inv.TaxAmount, &inv.Total,
		&inv.AmountPaid, &inv.AmountDue, &inv.Status, &inv.Notes,
		&inv.IssuedAt, &inv.DueDate, &inv.PaidAt, &inv.CancelledAt, &inv.CreatedBy)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(itemsJSON, &inv.Items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	return &inv, nil
}

func (r *repoPG) Create(ctx context.Context, inv *Invoice) error {
	inv.ID = uuid.New()

	itemsJSON, err := json.Marshal(inv.Items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO invoices (id, number, patient_id, patient_name, items, discount,
			discount_type, tax_rate_percent, tax_enabled, subtotal, discount_amount,
			tax_amount, total, amount_paid, amount_due, status, notes, issued_at,
			due_date, paid_at, cancelled_at, created_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)`,
		inv.ID, inv.Number, inv.PatientID, inv.PatientName, itemsJSON, inv.Discount,
		inv.DiscountType, inv.TaxRatePercent, inv.TaxEnabled, inv.Subtotal, inv.DiscountAmount,
		inv.TaxAmount, inv.Total, inv.AmountPaid, inv.AmountDue, inv.Status, inv.Notes,
		inv.IssuedAt, inv.DueDate, inv.PaidAt, inv.CancelledAt, inv.CreatedBy)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	return scanInvoice(r.pool.QueryRow(ctx,
		`SELECT `+invoiceCols+` FROM invoices WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, inv *Invoice) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE invoices
		SET amount_paid = $2, amount_due = $3, status = $4, paid_at = $5, cancelled_at = $6, notes = $7
		WHERE id = $1`,
		inv.ID, inv.AmountPaid, inv.AmountDue, inv.Status, inv.PaidAt, inv.CancelledAt, inv.Notes)
	return err
}

func (r *repoPG) List(ctx context.Context, status Status, limit, offset int) ([]*Invoice, int, error) {
	where, args := "", []any{}
	if status != "" {
		where = " WHERE status = $1"
		args = append(args, status)
	}
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM invoices`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	args = append(args, limit, offset)
	rows, err := r.pool.Query(ctx, fmt.Sprintf(
		`SELECT %s FROM invoices%s ORDER BY issued_at DESC LIMIT $%d OFFSET $%d`,
		invoiceCols, where, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectInvoices(rows, total)
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Invoice, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM invoices WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+invoiceCols+` FROM invoices
		WHERE patient_id = $1
		ORDER BY issued_at DESC LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectInvoices(rows, total)
}

func (r *repoPG) ListOutstanding(ctx context.Context) ([]*Invoice, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+invoiceCols+` FROM invoices
		WHERE status IN ('pending', 'partial')
		ORDER BY issued_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	invoices, _, err := collectInvoices(rows, 0)
	return invoices, err
}

func (r *repoPG) NextNumber(ctx context.Context, t time.Time) (int, error) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM invoices
		WHERE issued_at >= $1 AND issued_at < $2`,
		start, start.AddDate(0, 1, 0)).Scan(&count)
	return count + 1, err
}

func (r *repoPG) AddPayment(ctx context.Context, p *Payment) error {
	p.ID = uuid.New()

	splitsJSON, err := json.Marshal(p.Splits)
	if err != nil {
		return fmt.Errorf("encode splits: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO payments (id, invoice_id, amount, splits, reference, received_by, received_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		p.ID, p.InvoiceID, p.Amount, splitsJSON, p.Reference, p.ReceivedBy, p.ReceivedAt)
	return err
}

func (r *repoPG) GetPayments(ctx context.Context, invoiceID uuid.UUID) ([]*Payment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, invoice_id, amount, splits, reference, received_by, received_at
		FROM payments WHERE invoice_id = $1 ORDER BY received_at`, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*Payment
	for rows.Next() {
		var p Payment
		var splitsJSON []byte
		if err := rows.Scan(&p.ID, &p.InvoiceID, &p.Amount, &splitsJSON,
			&p.Reference, &p.ReceivedBy, &p.ReceivedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(splitsJSON, &p.Splits); err != nil {
			return nil, fmt.Errorf("decode splits: %w", err)
		}
		payments = append(payments, &p)
	}
	return payments, rows.Err()
}

func collectInvoices(rows pgx.Rows, total int) ([]*Invoice, int, error) {
	var invoices []*Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, 0, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, total, rows.Err()
}
