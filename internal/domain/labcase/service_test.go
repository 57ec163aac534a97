package labcase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dentaldesk/dentaldesk/internal/domain/patient"
	"github.com/dentaldesk/dentaldesk/pkg/apperror"
)

type mockPatients struct {
	patients map[uuid.UUID]*patient.Patient
}

func (m *mockPatients) Get(_ context.Context, id uuid.UUID) (*patient.Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, apperror.NotFound("patient", id.String())
	}
	return p, nil
}

type mockRepo struct {
	cases map[uuid.UUID]*LabCase
}

func (m *mockRepo) Create(_ context.Context, lc *LabCase) error {
	if lc.ID == uuid.Nil {
		lc.ID = uuid.New()
	}
	stored := *lc
	m.cases[lc.ID] = &stored
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*LabCase, error) {
	lc, ok := m.cases[id]
	if !ok {
		return nil, fmt.Errorf("no rows")
	}
	copied := *lc
	return &copied, nil
}

func (m *mockRepo) Update(_ context.Context, lc *LabCase) error {
	stored := *lc
	m.cases[lc.ID] = &stored
	return nil
}

func (m *mockRepo) List(_ context.Context, status Status, limit, offset int) ([]*LabCase, int, error) {
	var out []*LabCase
	for _, lc := range m.cases {
		if status == "" || lc.Status == status {
			out = append(out, lc)
		}
	}
	return out, len(out), nil
}

func (m *mockRepo) ListByPatient(_ context.Context, patientID uuid.UUID, limit, offset int) ([]*LabCase, int, error) {
	var out []*LabCase
	for _, lc := range m.cases {
		if lc.PatientID == patientID {
			out = append(out, lc)
		}
	}
	return out, len(out), nil
}

func (m *mockRepo) ListOverdue(_ context.Context) ([]*LabCase, error) {
	var out []*LabCase
	now := time.Now()
	for _, lc := range m.cases {
		if lc.Status == StatusSent && lc.DueDate != nil && lc.DueDate.Before(now) {
			out = append(out, lc)
		}
	}
	return out, nil
}

func newTestService() (*Service, uuid.UUID) {
	patientID := uuid.New()
	patients := &mockPatients{patients: map[uuid.UUID]*patient.Patient{
		patientID: {ID: patientID, Name: "Sunil Nair", Age: 52, Gender: "male"},
	}}
	return NewService(&mockRepo{cases: make(map[uuid.UUID]*LabCase)}, patients), patientID
}

func TestCreate(t *testing.T) {
	svc, patientID := newTestService()

	lc, err := svc.Create(context.Background(), CreateRequest{
		PatientID:    patientID,
		LabName:      "Precision Dental Lab",
		CaseType:     CaseCrown,
		ToothNumbers: []string{"16"},
		Shade:        "A2",
		Fee:          2500,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if lc.Status != StatusDraft {
		t.Errorf("status = %s, want draft", lc.Status)
	}
	if lc.PatientName != "Sunil Nair" {
		t.Errorf("patient name = %q", lc.PatientName)
	}
}

func TestCreateValidation(t *testing.T) {
	svc, patientID := newTestService()
	ctx := context.Background()

	tests := []struct {
		name string
		req  CreateRequest
	}{
		{"no lab name", CreateRequest{PatientID: patientID, CaseType: CaseCrown}},
		{"bad case type", CreateRequest{PatientID: patientID, LabName: "x", CaseType: "veneer"}},
		{"negative fee", CreateRequest{PatientID: patientID, LabName: "x", CaseType: CaseCrown, Fee: -1}},
		{"bad tooth", CreateRequest{PatientID: patientID, LabName: "x", CaseType: CaseCrown, ToothNumbers: []string{"90"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tt.req); !apperror.IsValidation(err) {
				t.Errorf("got %v, want validation error", err)
			}
		})
	}
}

func TestLifecycle(t *testing.T) {
	svc, patientID := newTestService()
	ctx := context.Background()

	lc, err := svc.Create(ctx, CreateRequest{
		PatientID: patientID, LabName: "Precision Dental Lab", CaseType: CaseBridge, Fee: 6000,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Skipping straight to receive fails.
	if _, err := svc.Receive(ctx, lc.ID); !apperror.IsInvalidState(err) {
		t.Errorf("receive draft: got %v, want invalid-state", err)
	}

	sent, err := svc.Send(ctx, lc.ID)
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if sent.Status != StatusSent || sent.SentAt == nil {
		t.Errorf("sent = %+v", sent)
	}

	received, err := svc.Receive(ctx, lc.ID)
	if err != nil {
		t.Fatalf("Receive: %v", err)
	}
	if received.Status != StatusReceived || received.ReceivedAt == nil {
		t.Errorf("received = %+v", received)
	}

	fitted, err := svc.Fit(ctx, lc.ID)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if fitted.Status != StatusFitted {
		t.Errorf("status = %s", fitted.Status)
	}

	// Fitted cases cannot be cancelled.
	if _, err := svc.Cancel(ctx, lc.ID); !apperror.IsInvalidState(err) {
		t.Errorf("cancel fitted: got %v, want invalid-state", err)
	}
}

func TestCancel(t *testing.T) {
	svc, patientID := newTestService()
	ctx := context.Background()

	lc, err := svc.Create(ctx, CreateRequest{
		PatientID: patientID, LabName: "Precision Dental Lab", CaseType: CaseDenture,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	cancelled, err := svc.Cancel(ctx, lc.ID)
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if cancelled.Status != StatusCancelled {
		t.Errorf("status = %s", cancelled.Status)
	}
	if _, err := svc.Cancel(ctx, lc.ID); !apperror.IsInvalidState(err) {
		t.Errorf("double cancel: got %v, want invalid-state", err)
	}
	if _, err := svc.Send(ctx, lc.ID); !apperror.IsInvalidState(err) {
		t.Errorf("send cancelled: got %v, want invalid-state", err)
	}
}

func TestListOverdue(t *testing.T) {
	svc, patientID := newTestService()
	ctx := context.Background()

	past := time.Now().AddDate(0, 0, -3)
	future := time.Now().AddDate(0, 0, 3)

	late, err := svc.Create(ctx, CreateRequest{
		PatientID: patientID, LabName: "Lab A", CaseType: CaseCrown, DueDate: &past,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Send(ctx, late.ID); err != nil {
		t.Fatalf("Send: %v", err)
	}

	onTime, err := svc.Create(ctx, CreateRequest{
		PatientID: patientID, LabName: "Lab B", CaseType: CaseCrown, DueDate: &future,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Send(ctx, onTime.ID); err != nil {
		t.Fatalf("Send: %v", err)
	}

	overdue, err := svc.ListOverdue(ctx)
	if err != nil {
		t.Fatalf("ListOverdue: %v", err)
	}
	if len(overdue) != 1 || overdue[0].ID != late.ID {
		t.Errorf("overdue = %+v, want only the late case", overdue)
	}
}
