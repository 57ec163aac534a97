package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dentaldesk/dentaldesk/pkg/apperror"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const patientCols = `id, name, age, gender, phone, email, address, notes, created_at, updated_at`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.Name, &p.Age, &p.Gender, &p.Phone, &p.Email, &p.Address, &p.Notes,
		&p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO patients (id, name, age, gender, phone, email, address, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		p.ID, p.Name, p.Age, p.Gender, p.Phone, p.Email, p.Address, p.Notes)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return scanPatient(r.pool.QueryRow(ctx, `SELECT `+patientCols+` FROM patients WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, p *Patient) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE patients SET name=$2, age=$3, gender=$4, phone=$5, email=$6, address=$7, notes=$8,
			updated_at=NOW()
		WHERE id = $1`,
		p.ID, p.Name, p.Age, p.Gender, p.Phone, p.Email, p.Address, p.Notes)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM patients WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM patients`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+patientCols+` FROM patients ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, rows.Err()
}

func (r *repoPG) Search(ctx context.Context, query string, limit, offset int) ([]*Patient, int, error) {
	pattern := "%" + query + "%"
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM patients WHERE name ILIKE $1 OR phone ILIKE $1`, pattern).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+patientCols+` FROM patients
		WHERE name ILIKE $1 OR phone ILIKE $1
		ORDER BY name LIMIT $2 OFFSET $3`, pattern, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, rows.Err()
}

type historyRepoPG struct{ pool *pgxpool.Pool }

func NewMedicalHistoryRepoPG(pool *pgxpool.Pool) MedicalHistoryRepository {
	return &historyRepoPG{pool: pool}
}

func (r *historyRepoPG) Get(ctx context.Context, patientID uuid.UUID) (*MedicalHistory, error) {
	var h MedicalHistory
	err := r.pool.QueryRow(ctx, `
		SELECT patient_id, allergies, chronic_conditions, current_medications,
			is_pregnant, is_breastfeeding, blood_thinners, diabetic, hypertensive,
			asthmatic, liver_disease, kidney_disease, last_updated
		FROM medical_histories WHERE patient_id = $1`, patientID).
		Scan(&h.PatientID, &h.Allergies, &h.ChronicConditions, &h.CurrentMedications,
			&h.IsPregnant, &h.IsBreastfeeding, &h.BloodThinners, &h.Diabetic, &h.Hypertensive,
			&h.Asthmatic, &h.LiverDisease, &h.KidneyDisease, &h.LastUpdated)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.NotFound("medical history", patientID.String())
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *historyRepoPG) Upsert(ctx context.Context, h *MedicalHistory) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO medical_histories (patient_id, allergies, chronic_conditions, current_medications,
			is_pregnant, is_breastfeeding, blood_thinners, diabetic, hypertensive,
			asthmatic, liver_disease, kidney_disease, last_updated)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		ON CONFLICT (patient_id) DO UPDATE SET
			allergies=EXCLUDED.allergies,
			chronic_conditions=EXCLUDED.chronic_conditions,
			current_medications=EXCLUDED.current_medications,
			is_pregnant=EXCLUDED.is_pregnant,
			is_breastfeeding=EXCLUDED.is_breastfeeding,
			blood_thinners=EXCLUDED.blood_thinners,
			diabetic=EXCLUDED.diabetic,
			hypertensive=EXCLUDED.hypertensive,
			asthmatic=EXCLUDED.asthmatic,
			liver_disease=EXCLUDED.liver_disease,
			kidney_disease=EXCLUDED.kidney_disease,
			last_updated=EXCLUDED.last_updated`,
		h.PatientID, h.Allergies, h.ChronicConditions, h.CurrentMedications,
		h.IsPregnant, h.IsBreastfeeding, h.BloodThinners, h.Diabetic, h.Hypertensive,
		h.Asthmatic, h.LiverDisease, h.KidneyDisease, h.LastUpdated)
	return err
}
