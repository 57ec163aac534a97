package patient

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dentaldesk/dentaldesk/pkg/apperror"
)

type Service struct {
	patients  Repository
	histories MedicalHistoryRepository
}

func NewService(patients Repository, histories MedicalHistoryRepository) *Service {
	return &Service{patients: patients, histories: histories}
}

var validGenders = map[string]bool{
	"male": true, "female": true, "other": true,
}

func (s *Service) validate(p *Patient) error {
	if p.Name == "" {
		return apperror.Validation("name is required")
	}
	if p.Age < 0 || p.Age > 150 {
		return apperror.Validation("age must be between 0 and 150, got %d", p.Age)
	}
	if !validGenders[p.Gender] {
		return apperror.Validation("invalid gender: %s", p.Gender)
	}
	if p.Phone == "" {
		return apperror.Validation("phone is required")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, p *Patient) error {
	if err := s.validate(p); err != nil {
		return err
	}
	return s.patients.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	p, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("patient", id.String())
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, p *Patient) error {
	if err := s.validate(p); err != nil {
		return err
	}
	if _, err := s.patients.GetByID(ctx, p.ID); err != nil {
		return apperror.NotFound("patient", p.ID.String())
	}
	return s.patients.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.patients.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.patients.List(ctx, limit, offset)
}

func (s *Service) Search(ctx context.Context, query string, limit, offset int) ([]*Patient, int, error) {
	return s.patients.Search(ctx, query, limit, offset)
}

// History returns the patient's medical history. A patient with no recorded
// history gets an empty one; screening treats the absence of flags as a
// healthy baseline rather than an error. Any other repository failure is
// returned as-is so callers never screen against a history they could not
// actually read.
func (s *Service) History(ctx context.Context, patientID uuid.UUID) (*MedicalHistory, error) {
	if _, err := s.patients.GetByID(ctx, patientID); err != nil {
		return nil, apperror.NotFound("patient", patientID.String())
	}
	h, err := s.histories.Get(ctx, patientID)
	if apperror.IsNotFound(err) {
		return &MedicalHistory{PatientID: patientID}, nil
	}
	if err != nil {
		return nil, err
	}
	return h, nil
}

// SaveHistory overwrites the patient's medical history in full.
func (s *Service) SaveHistory(ctx context.Context, h *MedicalHistory) error {
	if h.PatientID == uuid.Nil {
		return apperror.Validation("patient_id is required")
	}
	if _, err := s.patients.GetByID(ctx, h.PatientID); err != nil {
		return apperror.NotFound("patient", h.PatientID.String())
	}
	h.LastUpdated = time.Now()
	return s.histories.Upsert(ctx, h)
}
