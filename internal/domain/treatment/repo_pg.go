package treatment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type procedureRepoPG struct{ pool *pgxpool.Pool }

func NewProcedureRepoPG(pool *pgxpool.Pool) ProcedureRepository { return &procedureRepoPG{pool: pool} }

const procedureCols = `id, code, name, category, description, price, active, created_at`

func scanProcedure(row pgx.Row) (*Procedure, error) {
	var p Procedure
	err := row.Scan(&p.ID, &p.Code, &p.Name, &p.Category, &p.Description,
		&p.Price, &p.Active, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *procedureRepoPG) Create(ctx context.Context, p *Procedure) error {
	p.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO procedures (id, code, name, category, description, price, active, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		p.ID, p.Code, p.Name, p.Category, p.Description, p.Price, p.Active, p.CreatedAt)
	return err
}

func (r *procedureRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Procedure, error) {
	return scanProcedure(r.pool.QueryRow(ctx,
		`SELECT `+procedureCols+` FROM procedures WHERE id = $1`, id))
}

func (r *procedureRepoPG) Update(ctx context.Context, p *Procedure) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE procedures
		SET code = $2, name = $3, category = $4, description = $5, price = $6, active = $7
		WHERE id = $1`,
		p.ID, p.Code, p.Name, p.Category, p.Description, p.Price, p.Active)
	return err
}

func (r *procedureRepoPG) List(ctx context.Context, activeOnly bool, limit, offset int) ([]*Procedure, int, error) {
	where := ""
	if activeOnly {
		where = " WHERE active"
	}
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM procedures`+where).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, fmt.Sprintf(
		`SELECT %s FROM procedures%s ORDER BY category, name LIMIT $1 OFFSET $2`,
		procedureCols, where), limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var procedures []*Procedure
	for rows.Next() {
		p, err := scanProcedure(rows)
		if err != nil {
			return nil, 0, err
		}
		procedures = append(procedures, p)
	}
	return procedures, total, rows.Err()
}

type planRepoPG struct{ pool *pgxpool.Pool }

func NewPlanRepoPG(pool *pgxpool.Pool) PlanRepository { return &planRepoPG{pool: pool} }

const planCols = `id, patient_id, title, dentist, items, status, notes, created_at, updated_at`

func scanPlan(row pgx.Row) (*Plan, error) {
	var p Plan
	var itemsJSON []byte
	err := row.Scan(&p.ID, &p.PatientID, &p.Title, &p.Dentist, &itemsJSON,
		&p.Status, &p.Notes, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(itemsJSON, &p.Items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	return &p, nil
}

func (r *planRepoPG) Create(ctx context.Context, p *Plan) error {
	p.ID = uuid.New()
	itemsJSON, err := json.Marshal(p.Items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO treatment_plans (id, patient_id, title, dentist, items, status, notes, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		p.ID, p.PatientID, p.Title, p.Dentist, itemsJSON, p.Status, p.Notes, p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *planRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Plan, error) {
	return scanPlan(r.pool.QueryRow(ctx,
		`SELECT `+planCols+` FROM treatment_plans WHERE id = $1`, id))
}

func (r *planRepoPG) Update(ctx context.Context, p *Plan) error {
	itemsJSON, err := json.Marshal(p.Items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		UPDATE treatment_plans
		SET title = $2, items = $3, status = $4, notes = $5, updated_at = $6
		WHERE id = $1`,
		p.ID, p.Title, itemsJSON, p.Status, p.Notes, p.UpdatedAt)
	return err
}

func (r *planRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Plan, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM treatment_plans WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+planCols+` FROM treatment_plans
		WHERE patient_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var plans []*Plan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, 0, err
		}
		plans = append(plans, p)
	}
	return plans, total, rows.Err()
}
