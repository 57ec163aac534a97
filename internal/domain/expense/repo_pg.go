package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const expenseCols = `id, date, category, description, amount, vendor, receipt_ref,
	payment_method, status, recurrence, created_by, created_at`

func scanExpense(row pgx.Row) (*Expense, error) {
	var e Expense
	err := row.Scan(&e.ID, &e.Date, &e.Category, &e.Description, &e.Amount, &e.Vendor,
		&e.ReceiptRef, &e.PaymentMethod, &e.Status, &e.Recurrence, &e.CreatedBy, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repoPG) Create(ctx context.Context, e *Expense) error {
	e.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO expenses (id, date, category, description, amount, vendor,
			receipt_ref, payment_method, status, recurrence, created_by, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		e.ID, e.Date, e.Category, e.Description, e.Amount, e.Vendor,
		e.ReceiptRef, e.PaymentMethod, e.Status, e.Recurrence, e.CreatedBy, e.CreatedAt)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Expense, error) {
	return scanExpense(r.pool.QueryRow(ctx,
		`SELECT `+expenseCols+` FROM expenses WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, e *Expense) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE expenses
		SET date = $2, category = $3, description = $4, amount = $5, vendor = $6,
			receipt_ref = $7, payment_method = $8, status = $9, recurrence = $10
		WHERE id = $1`,
		e.ID, e.Date, e.Category, e.Description, e.Amount, e.Vendor,
		e.ReceiptRef, e.PaymentMethod, e.Status, e.Recurrence)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, category Category, from, to time.Time, limit, offset int) ([]*Expense, int, error) {
	where := " WHERE date >= $1 AND date < $2"
	args := []any{from, to}
	if category != "" {
		where += " AND category = $3"
		args = append(args, category)
	}
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM expenses`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	args = append(args, limit, offset)
	rows, err := r.pool.Query(ctx, fmt.Sprintf(
		`SELECT %s FROM expenses%s ORDER BY date DESC LIMIT $%d OFFSET $%d`,
		expenseCols, where, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var expenses []*Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, 0, err
		}
		expenses = append(expenses, e)
	}
	return expenses, total, rows.Err()
}

func (r *repoPG) TotalsByCategory(ctx context.Context, from, to time.Time) (map[Category]int, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT category, COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE date >= $1 AND date < $2
		GROUP BY category`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[Category]int)
	for rows.Next() {
		var c Category
		var sum int
		if err := rows.Scan(&c, &sum); err != nil {
			return nil, err
		}
		totals[c] = sum
	}
	return totals, rows.Err()
}
