package prescription

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/dentaldesk/dentaldesk/internal/domain/catalog"
	"github.com/dentaldesk/dentaldesk/internal/domain/patient"
	"github.com/dentaldesk/dentaldesk/pkg/apperror"
)

// PatientDirectory is the slice of the patient domain the prescription
// service needs: identity plus screening history.
type PatientDirectory interface {
	Get(ctx context.Context, id uuid.UUID) (*patient.Patient, error)
	History(ctx context.Context, patientID uuid.UUID) (*patient.MedicalHistory, error)
}

type Service struct {
	reg      *catalog.Registry
	patients PatientDirectory
	repo     Repository
}

func NewService(reg *catalog.Registry, patients PatientDirectory, repo Repository) *Service {
	return &Service{reg: reg, patients: patients, repo: repo}
}

// GenerateRequest carries the clinician's selections for one prescription.
type GenerateRequest struct {
	PatientID    uuid.UUID    `json:"patient_id"`
	ConditionID  string       `json:"condition_id"`
	Tier         catalog.Tier `json:"tier"`
	Diagnosis    string       `json:"diagnosis"`
	ToothNumbers []string     `json:"tooth_numbers,omitempty"`
	Clinician    string       `json:"clinician"`
	Draft        bool         `json:"draft,omitempty"`
}

// fdiPattern matches FDI two-digit tooth notation: permanent quadrants 1-4
// positions 1-8, deciduous quadrants 5-8 positions 1-5.
var fdiPattern = regexp.MustCompile(`^([1-4][1-8]|[5-8][1-5])$`)

func validateToothNumbers(teeth []string) error {
	for _, t := range teeth {
		if !fdiPattern.MatchString(t) {
			return apperror.Validation("invalid FDI tooth number: %s", t)
		}
	}
	return nil
}

// screen resolves the request to a protocol, the patient, and the safety
// result. Shared by Preview and Generate.
func (s *Service) screen(ctx context.Context, req GenerateRequest) (*patient.Patient, catalog.DentalCondition, catalog.TreatmentProtocol, SafetyResult, error) {
	var zeroCond catalog.DentalCondition
	var zeroProto catalog.TreatmentProtocol

	if !catalog.ValidTier(req.Tier) {
		return nil, zeroCond, zeroProto, SafetyResult{}, apperror.Validation("invalid tier: %s", req.Tier)
	}
	if err := validateToothNumbers(req.ToothNumbers); err != nil {
		return nil, zeroCond, zeroProto, SafetyResult{}, err
	}

	cond, ok := s.reg.Condition(req.ConditionID)
	if !ok {
		return nil, zeroCond, zeroProto, SafetyResult{}, apperror.NotFound("condition", req.ConditionID)
	}
	protocol, ok := cond.Protocols[req.Tier]
	if !ok {
		return nil, zeroCond, zeroProto, SafetyResult{}, apperror.NotFound("protocol", req.ConditionID+"/"+string(req.Tier))
	}

	pat, err := s.patients.Get(ctx, req.PatientID)
	if err != nil {
		return nil, zeroCond, zeroProto, SafetyResult{}, err
	}
	history, err := s.patients.History(ctx, req.PatientID)
	if err != nil {
		return nil, zeroCond, zeroProto, SafetyResult{}, err
	}

	result := CheckProtocol(s.reg, protocol, *history)
	return pat, cond, protocol, result, nil
}

// Preview runs the safety screening without persisting anything, so the UI
// can show alerts before the clinician confirms.
func (s *Service) Preview(ctx context.Context, req GenerateRequest) (*SafetyResult, error) {
	_, _, _, result, err := s.screen(ctx, req)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Generate screens the selected protocol and persists the resulting
// prescription. The document assembles what the safety checker already
// decided; no substitution logic lives here.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (*Prescription, error) {
	if req.Clinician == "" {
		return nil, apperror.Validation("clinician is required")
	}

	pat, cond, _, result, err := s.screen(ctx, req)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(result.SafeProtocol.Medications))
	for _, dose := range result.SafeProtocol.Medications {
		med, _ := s.reg.Medication(dose.MedicationID)
		items = append(items, Item{
			MedicationID:        dose.MedicationID,
			Name:                med.DisplayName(),
			Dose:                dose.Dose,
			Frequency:           dose.Frequency,
			Timing:              dose.Timing,
			Duration:            dose.Duration,
			SpecialInstructions: dose.SpecialInstructions,
		})
	}

	now := time.Now()
	status := StatusIssued
	if req.Draft {
		status = StatusDraft
	}

	p := &Prescription{
		Patient: PatientSnapshot{
			ID:     pat.ID,
			Name:   pat.Name,
			Age:    pat.Age,
			Gender: pat.Gender,
			Phone:  pat.Phone,
		},
		ConditionID:         cond.ID,
		ConditionName:       cond.Name,
		Diagnosis:           req.Diagnosis,
		ToothNumbers:        req.ToothNumbers,
		Tier:                req.Tier,
		Items:               items,
		Instructions:        result.SafeProtocol.Instructions,
		Warnings:            result.SafeProtocol.Warnings,
		DietaryRestrictions: result.SafeProtocol.DietaryRestrictions,
		Alerts:              result.Alerts,
		FollowUpDate:        now.AddDate(0, 0, result.SafeProtocol.FollowUpDays),
		Clinician:           req.Clinician,
		IssuedAt:            now,
		Status:              status,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Prescription, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("prescription", id.String())
	}
	return p, nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Prescription, int, error) {
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Prescription, int, error) {
	return s.repo.List(ctx, limit, offset)
}

// Issue promotes a draft prescription to issued.
func (s *Service) Issue(ctx context.Context, id uuid.UUID) (*Prescription, error) {
	return s.transition(ctx, id, StatusDraft, StatusIssued)
}

// Dispense marks an issued prescription as dispensed.
func (s *Service) Dispense(ctx context.Context, id uuid.UUID) (*Prescription, error) {
	return s.transition(ctx, id, StatusIssued, StatusDispensed)
}

func (s *Service) transition(ctx context.Context, id uuid.UUID, from, to Status) (*Prescription, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status != from {
		return nil, apperror.InvalidState("prescription is %s, expected %s", p.Status, from)
	}
	if err := s.repo.UpdateStatus(ctx, id, to); err != nil {
		return nil, err
	}
	p.Status = to
	return p, nil
}
