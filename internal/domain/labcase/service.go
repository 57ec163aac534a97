package labcase

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/dentaldesk/dentaldesk/internal/domain/patient"
	"github.com/dentaldesk/dentaldesk/pkg/apperror"
)

var fdiPattern = regexp.MustCompile(`^([1-4][1-8]|[5-8][1-5])$`)

type PatientLookup interface {
	Get(ctx context.Context, id uuid.UUID) (*patient.Patient, error)
}

type Service struct {
	repo     Repository
	patients PatientLookup
}

func NewService(repo Repository, patients PatientLookup) *Service {
	return &Service{repo: repo, patients: patients}
}

type CreateRequest struct {
	PatientID    uuid.UUID  `json:"patient_id"`
	LabName      string     `json:"lab_name"`
	CaseType     CaseType   `json:"case_type"`
	ToothNumbers []string   `json:"tooth_numbers,omitempty"`
	Shade        string     `json:"shade,omitempty"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	Fee          int        `json:"fee"`
	Notes        string     `json:"notes,omitempty"`
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*LabCase, error) {
	if req.LabName == "" {
		return nil, apperror.Validation("lab name is required")
	}
	if !ValidCaseType(req.CaseType) {
		return nil, apperror.Validation("invalid case type: %s", req.CaseType)
	}
	if req.Fee < 0 {
		return nil, apperror.Validation("fee cannot be negative")
	}
	for _, tooth := range req.ToothNumbers {
		if !fdiPattern.MatchString(tooth) {
			return nil, apperror.Validation("invalid FDI tooth number: %s", tooth)
		}
	}

	pat, err := s.patients.Get(ctx, req.PatientID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	lc := &LabCase{
		PatientID:    pat.ID,
		PatientName:  pat.Name,
		LabName:      req.LabName,
		CaseType:     req.CaseType,
		ToothNumbers: req.ToothNumbers,
		Shade:        req.Shade,
		DueDate:      req.DueDate,
		Status:       StatusDraft,
		Fee:          req.Fee,
		Notes:        req.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, lc); err != nil {
		return nil, err
	}
	return lc, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*LabCase, error) {
	lc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("lab case", id.String())
	}
	return lc, nil
}

func (s *Service) List(ctx context.Context, status Status, limit, offset int) ([]*LabCase, int, error) {
	return s.repo.List(ctx, status, limit, offset)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*LabCase, int, error) {
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}

// ListOverdue returns sent cases past their due date and not yet received.
func (s *Service) ListOverdue(ctx context.Context) ([]*LabCase, error) {
	return s.repo.ListOverdue(ctx)
}

// Send dispatches a draft case to the lab.
func (s *Service) Send(ctx context.Context, id uuid.UUID) (*LabCase, error) {
	return s.transition(ctx, id, StatusDraft, StatusSent, func(lc *LabCase, now time.Time) {
		lc.SentAt = &now
	})
}

// Receive records the work arriving back from the lab.
func (s *Service) Receive(ctx context.Context, id uuid.UUID) (*LabCase, error) {
	return s.transition(ctx, id, StatusSent, StatusReceived, func(lc *LabCase, now time.Time) {
		lc.ReceivedAt = &now
	})
}

// Fit marks the received work as fitted on the patient.
func (s *Service) Fit(ctx context.Context, id uuid.UUID) (*LabCase, error) {
	return s.transition(ctx, id, StatusReceived, StatusFitted, nil)
}

// Cancel voids a case that has not been fitted.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*LabCase, error) {
	lc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if lc.Status == StatusFitted || lc.Status == StatusCancelled {
		return nil, apperror.InvalidState("lab case is %s and cannot be cancelled", lc.Status)
	}
	lc.Status = StatusCancelled
	lc.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, lc); err != nil {
		return nil, err
	}
	return lc, nil
}

func (s *Service) transition(ctx context.Context, id uuid.UUID, from, to Status, apply func(*LabCase, time.Time)) (*LabCase, error) {
	lc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if lc.Status != from {
		return nil, apperror.InvalidState("lab case is %s, expected %s", lc.Status, from)
	}
	now := time.Now()
	lc.Status = to
	lc.UpdatedAt = now
	if apply != nil {
		apply(lc, now)
	}
	if err := s.repo.Update(ctx, lc); err != nil {
		return nil, err
	}
	return lc, nil
}
