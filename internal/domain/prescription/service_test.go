package prescription

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dentaldesk/dentaldesk/internal/domain/catalog"
	"github.com/dentaldesk/dentaldesk/internal/domain/patient"
	"github.com/dentaldesk/dentaldesk/pkg/apperror"
)

type mockDirectory struct {
	patients  map[uuid.UUID]*patient.Patient
	histories map[uuid.UUID]*patient.MedicalHistory
}

func (m *mockDirectory) Get(_ context.Context, id uuid.UUID) (*patient.Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, apperror.NotFound("patient", id.String())
	}
	return p, nil
}

func (m *mockDirectory) History(_ context.Context, patientID uuid.UUID) (*patient.MedicalHistory, error) {
	if h, ok := m.histories[patientID]; ok {
		return h, nil
	}
	return &patient.MedicalHistory{PatientID: patientID}, nil
}

type mockRepo struct {
	prescriptions map[uuid.UUID]*Prescription
}

func newMockRepo() *mockRepo {
	return &mockRepo{prescriptions: make(map[uuid.UUID]*Prescription)}
}

func (m *mockRepo) Create(_ context.Context, p *Prescription) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	m.prescriptions[p.ID] = p
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Prescription, error) {
	p, ok := m.prescriptions[id]
	if !ok {
		return nil, apperror.NotFound("prescription", id.String())
	}
	return p, nil
}

func (m *mockRepo) UpdateStatus(_ context.Context, id uuid.UUID, status Status) error {
	p, ok := m.prescriptions[id]
	if !ok {
		return apperror.NotFound("prescription", id.String())
	}
	p.Status = status
	return nil
}

func (m *mockRepo) ListByPatient(_ context.Context, patientID uuid.UUID, limit, offset int) ([]*Prescription, int, error) {
	var out []*Prescription
	for _, p := range m.prescriptions {
		if p.Patient.ID == patientID {
			out = append(out, p)
		}
	}
	return out, len(out), nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Prescription, int, error) {
	var out []*Prescription
	for _, p := range m.prescriptions {
		out = append(out, p)
	}
	return out, len(out), nil
}

func newTestService(history *patient.MedicalHistory) (*Service, *mockRepo, uuid.UUID) {
	patientID := uuid.New()
	dir := &mockDirectory{
		patients: map[uuid.UUID]*patient.Patient{
			patientID: {ID: patientID, Name: "Asha Verma", Age: 34, Gender: "female", Phone: "9876543210"},
		},
		histories: map[uuid.UUID]*patient.MedicalHistory{},
	}
	if history != nil {
		history.PatientID = patientID
		dir.histories[patientID] = history
	}
	repo := newMockRepo()
	return NewService(catalog.Default(), dir, repo), repo, patientID
}

func TestGenerateHealthyPatient(t *testing.T) {
	svc, repo, patientID := newTestService(nil)

	req := GenerateRequest{
		PatientID:    patientID,
		ConditionID:  "periapical-abscess",
		Tier:         catalog.TierStandard,
		Diagnosis:    "Acute periapical abscess 46",
		ToothNumbers: []string{"46"},
		Clinician:    "Dr. Rao",
	}
	p, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if p.Status != StatusIssued {
		t.Errorf("status = %s, want issued", p.Status)
	}
	if p.Patient.Name != "Asha Verma" {
		t.Errorf("patient snapshot = %+v", p.Patient)
	}
	if len(p.Items) != 3 {
		t.Errorf("got %d items, want the full standard protocol (3)", len(p.Items))
	}
	for _, item := range p.Items {
		if item.Name == "" || item.Dose == "" {
			t.Errorf("item missing display fields: %+v", item)
		}
	}
	if len(p.Alerts) != 0 {
		t.Errorf("healthy patient got alerts: %+v", p.Alerts)
	}

	reg := catalog.Default()
	cond, _ := reg.Condition("periapical-abscess")
	wantFollowUp := time.Now().AddDate(0, 0, cond.Protocols[catalog.TierStandard].FollowUpDays)
	if diff := p.FollowUpDate.Sub(wantFollowUp); diff < -time.Minute || diff > time.Minute {
		t.Errorf("follow-up date = %v, want about %v", p.FollowUpDate, wantFollowUp)
	}

	if _, ok := repo.prescriptions[p.ID]; !ok {
		t.Error("prescription was not persisted")
	}
}

func TestGenerateFiltersUnsafeMedications(t *testing.T) {
	svc, _, patientID := newTestService(&patient.MedicalHistory{
		IsPregnant: true,
		Allergies:  []string{"Penicillin"},
	})

	p, err := svc.Generate(context.Background(), GenerateRequest{
		PatientID:   patientID,
		ConditionID: "periapical-abscess",
		Tier:        catalog.TierStandard,
		Diagnosis:   "Abscess",
		Clinician:   "Dr. Rao",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	reg := catalog.Default()
	for _, item := range p.Items {
		med, _ := reg.Medication(item.MedicationID)
		if med.HasTag("penicillin") {
			t.Errorf("penicillin-class %s in prescription for allergic patient", item.Name)
		}
		if med.Pregnancy == catalog.SafetyAvoid {
			t.Errorf("pregnancy-avoid %s in prescription for pregnant patient", item.Name)
		}
	}
	if len(p.Alerts) == 0 {
		t.Error("expected screening alerts on the prescription document")
	}
}

func TestGenerateValidation(t *testing.T) {
	svc, _, patientID := newTestService(nil)
	ctx := context.Background()

	base := GenerateRequest{
		PatientID:   patientID,
		ConditionID: "periapical-abscess",
		Tier:        catalog.TierStandard,
		Clinician:   "Dr. Rao",
	}

	tests := []struct {
		name    string
		mutate  func(*GenerateRequest)
		wantVal bool
		wantNF  bool
	}{
		{"missing clinician", func(r *GenerateRequest) { r.Clinician = "" }, true, false},
		{"bad tier", func(r *GenerateRequest) { r.Tier = "platinum" }, true, false},
		{"bad tooth number", func(r *GenerateRequest) { r.ToothNumbers = []string{"49"} }, true, false},
		{"deciduous position out of range", func(r *GenerateRequest) { r.ToothNumbers = []string{"56"} }, true, false},
		{"unknown condition", func(r *GenerateRequest) { r.ConditionID = "no-such" }, false, true},
		{"unknown patient", func(r *GenerateRequest) { r.PatientID = uuid.New() }, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)
			_, err := svc.Generate(ctx, req)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantVal && !apperror.IsValidation(err) {
				t.Errorf("got %v, want validation error", err)
			}
			if tt.wantNF && !apperror.IsNotFound(err) {
				t.Errorf("got %v, want not-found error", err)
			}
		})
	}
}

func TestValidToothNumbers(t *testing.T) {
	valid := []string{"11", "18", "41", "48", "51", "55", "85"}
	for _, n := range valid {
		if err := validateToothNumbers([]string{n}); err != nil {
			t.Errorf("%s rejected: %v", n, err)
		}
	}
	invalid := []string{"10", "19", "49", "56", "86", "90", "1", "111", "ab"}
	for _, n := range invalid {
		if err := validateToothNumbers([]string{n}); err == nil {
			t.Errorf("%s accepted", n)
		}
	}
}

func TestPreviewDoesNotPersist(t *testing.T) {
	svc, repo, patientID := newTestService(&patient.MedicalHistory{IsPregnant: true})

	result, err := svc.Preview(context.Background(), GenerateRequest{
		PatientID:   patientID,
		ConditionID: "periapical-abscess",
		Tier:        catalog.TierStandard,
	})
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if len(result.Alerts) == 0 {
		t.Error("expected alerts for pregnant patient")
	}
	if len(repo.prescriptions) != 0 {
		t.Error("preview persisted a prescription")
	}
}

func TestDraftIssueDispenseLifecycle(t *testing.T) {
	svc, _, patientID := newTestService(nil)
	ctx := context.Background()

	p, err := svc.Generate(ctx, GenerateRequest{
		PatientID:   patientID,
		ConditionID: "pericoronitis",
		Tier:        catalog.TierBasic,
		Clinician:   "Dr. Rao",
		Draft:       true,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if p.Status != StatusDraft {
		t.Fatalf("status = %s, want draft", p.Status)
	}

	// Dispensing a draft is not allowed.
	if _, err := svc.Dispense(ctx, p.ID); !apperror.IsInvalidState(err) {
		t.Errorf("Dispense on draft: got %v, want invalid-state", err)
	}

	issued, err := svc.Issue(ctx, p.ID)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if issued.Status != StatusIssued {
		t.Errorf("status = %s, want issued", issued.Status)
	}

	// Issuing twice is not allowed.
	if _, err := svc.Issue(ctx, p.ID); !apperror.IsInvalidState(err) {
		t.Errorf("second Issue: got %v, want invalid-state", err)
	}

	dispensed, err := svc.Dispense(ctx, p.ID)
	if err != nil {
		t.Fatalf("Dispense: %v", err)
	}
	if dispensed.Status != StatusDispensed {
		t.Errorf("status = %s, want dispensed", dispensed.Status)
	}

	if _, err := svc.Issue(ctx, uuid.New()); !apperror.IsNotFound(err) {
		t.Errorf("Issue on missing id: got %v, want not-found", err)
	}
}
