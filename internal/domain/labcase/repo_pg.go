package labcase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const caseCols = `id, patient_id, patient_name, lab_name, case_type, tooth_numbers, shade,
	sent_at, due_date, received_at, status, fee, notes, created_at, updated_at`

func scanCase(row pgx.Row) (*LabCase, error) {
	var lc LabCase
	err := row.Scan(&lc.ID, &lc.PatientID, &lc.PatientName, &lc.LabName, &lc.CaseType,
		&lc.ToothNumbers, &lc.Shade, &lc.SentAt, &lc.DueDate, &lc.ReceivedAt,
		&lc.Status, &lc.Fee, &lc.Notes, &lc.CreatedAt, &lc.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &lc, nil
}

func (r *repoPG) Create(ctx context.Context, lc *LabCase) error {
	lc.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO lab_cases (id, patient_id, patient_name, lab_name, case_type,
			tooth_numbers, shade, sent_at, due_date, received_at, status, fee, notes,
			created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
		lc.ID, lc.PatientID, lc.PatientName, lc.LabName, lc.CaseType,
		lc.ToothNumbers, lc.Shade, lc.SentAt, lc.DueDate, lc.ReceivedAt,
		lc.Status, lc.Fee, lc.Notes, lc.CreatedAt, lc.UpdatedAt)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*LabCase, error) {
	return scanCase(r.pool.QueryRow(ctx,
		`SELECT `+caseCols+` FROM lab_cases WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, lc *LabCase) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE lab_cases
		SET lab_name = $2, shade = $3, sent_at = $4, due_date = $5, received_at = $6,
			status = $7, fee = $8, notes = $9, updated_at = $10
		WHERE id = $1`,
		lc.ID, lc.LabName, lc.Shade, lc.SentAt, lc.DueDate, lc.ReceivedAt,
		lc.Status, lc.Fee, lc.Notes, lc.UpdatedAt)
	return err
}

func (r *repoPG) List(ctx context.Context, status Status, limit, offset int) ([]*LabCase, int, error) {
	where, args := "", []any{}
	if status != "" {
		where = " WHERE status = $1"
		args = append(args, status)
	}
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM lab_cases`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	args = append(args, limit, offset)
	rows, err := r.pool.Query(ctx, fmt.Sprintf(
		`SELECT %s FROM lab_cases%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		caseCols, where, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	cases, err := collect(rows)
	return cases, total, err
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*LabCase, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM lab_cases WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+caseCols+` FROM lab_cases
		WHERE patient_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	cases, err := collect(rows)
	return cases, total, err
}

func (r *repoPG) ListOverdue(ctx context.Context) ([]*LabCase, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+caseCols+` FROM lab_cases
		WHERE status = 'sent' AND due_date IS NOT NULL AND due_date < NOW()
		ORDER BY due_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func collect(rows pgx.Rows) ([]*LabCase, error) {
	var cases []*LabCase
	for rows.Next() {
		lc, err := scanCase(rows)
		if err != nil {
			return nil, err
		}
		cases = append(cases, lc)
	}
	return cases, rows.Err()
}
