package prescription

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const rxCols = `id, patient, condition_id, condition_name, diagnosis, tooth_numbers, tier,
	items, instructions, warnings, dietary_restrictions, alerts,
	follow_up_date, clinician, issued_at, status`

func scanPrescription(row pgx.Row) (*Prescription, error) {
	var p Prescription
	var patientJSON, itemsJSON, alertsJSON []byte
	err := row.Scan(&p.ID, &patientJSON, &p.ConditionID, &p.ConditionName, &p.Diagnosis,
		&p.ToothNumbers, &p.Tier, &itemsJSON, &p.Instructions, &p.Warnings,
		&p.DietaryRestrictions, &alertsJSON, &p.FollowUpDate, &p.Clinician, &p.IssuedAt, &p.Status)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(patientJSON, &p.Patient); err != nil {
		return nil, fmt.Errorf("decode patient snapshot: %w", err)
	}
	if err := json.Unmarshal(itemsJSON, &p.Items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	if err := json.Unmarshal(alertsJSON, &p.Alerts); err != nil {
		return nil, fmt.Errorf("decode alerts: %w", err)
	}
	return &p, nil
}

func (r *repoPG) Create(ctx context.Context, p *Prescription) error {
	p.ID = uuid.New()

	patientJSON, err := json.Marshal(p.Patient)
	if err != nil {
		return fmt.Errorf("encode patient snapshot: %w", err)
	}
	itemsJSON, err := json.Marshal(p.Items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}
	alertsJSON, err := json.Marshal(p.Alerts)
	if err != nil {
		return fmt.Errorf("encode alerts: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO prescriptions (id, patient, condition_id, condition_name, diagnosis,
			tooth_numbers, tier, items, instructions, warnings, dietary_restrictions,
			alerts, follow_up_date, clinician, issued_at, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)`,
		p.ID, patientJSON, p.ConditionID, p.ConditionName, p.Diagnosis,
		p.ToothNumbers, p.Tier, itemsJSON, p.Instructions, p.Warnings,
		p.DietaryRestrictions, alertsJSON, p.FollowUpDate, p.Clinician, p.IssuedAt, p.Status)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Prescription, error) {
	return scanPrescription(r.pool.QueryRow(ctx,
		`SELECT `+rxCols+` FROM prescriptions WHERE id = $1`, id))
}

func (r *repoPG) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	_, err := r.pool.Exec(ctx, `UPDATE prescriptions SET status = $2 WHERE id = $1`, id, status)
	return err
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Prescription, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM prescriptions WHERE patient->>'id' = $1`, patientID.String()).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+rxCols+` FROM prescriptions
		WHERE patient->>'id' = $1
		ORDER BY issued_at DESC LIMIT $2 OFFSET $3`, patientID.String(), limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collect(rows, total)
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Prescription, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM prescriptions`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+rxCols+` FROM prescriptions ORDER BY issued_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collect(rows, total)
}

func collect(rows pgx.Rows, total int) ([]*Prescription, int, error) {
	var items []*Prescription
	for rows.Next() {
		p, err := scanPrescription(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, rows.Err()
}
