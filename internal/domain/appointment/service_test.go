package appointment

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
	appointments map[uuid.UUID]*Appointment
}

func (m *mockRepo) Create(_ context.Context, a *Appointment) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	stored := *a
	m.appointments[a.ID] = &stored
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Appointment, error) {
	a, ok := m.appointments[id]
	if !ok {
		return nil, fmt.Errorf("no rows")
	}
	copied := *a
	return &copied, nil
}

func (m *mockRepo) Update(_ context.Context, a *Appointment) error {
	stored := *a
	m.appointments[a.ID] = &stored
	return nil
}

func (m *mockRepo) ListByDentistRange(_ context.Context, dentist string, from, to time.Time) ([]*Appointment, error) {
	var out []*Appointment
	for _, a := range m.appointments {
		if a.Dentist != dentist || terminal(a.Status) {
			continue
		}
		if a.StartTime.Before(to) && from.Before(a.EndTime()) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockRepo) ListRange(_ context.Context, from, to time.Time) ([]*Appointment, error) {
	var out []*Appointment
	for _, a := range m.appointments {
		if !a.StartTime.Before(from) && a.StartTime.Before(to) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockRepo) ListByPatient(_ context.Context, patientID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	var out []*Appointment
	for _, a := range m.appointments {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	return out, len(out), nil
}

func newTestService() (*Service, uuid.UUID) {
	patientID := uuid.New()
	patients := &mockPatients{patients: map[uuid.UUID]*patient.Patient{
		patientID: {ID: patientID, Name: "Meera Shah", Age: 28, Gender: "female"},
	}}
	return NewService(&mockRepo{appointments: make(map[uuid.UUID]*Appointment)}, patients), patientID
}

func at(hour, min int) time.Time {
	return time.Date(2026, 9, 14, hour, min, 0, 0, time.UTC)
}

func TestBook(t *testing.T) {
	svc, patientID := newTestService()

	appt, err := svc.Book(context.Background(), BookRequest{
		PatientID:       patientID,
		Dentist:         "Dr. Rao",
		StartTime:       at(10, 0),
		DurationMinutes: 30,
		Reason:          "Root canal, sitting 2",
	})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if appt.Status != StatusScheduled {
		t.Errorf("status = %s, want scheduled", appt.Status)
	}
	if appt.PatientName != "Meera Shah" {
		t.Errorf("patient name = %q", appt.PatientName)
	}
	if got := appt.EndTime(); !got.Equal(at(10, 30)) {
		t.Errorf("EndTime = %v, want 10:30", got)
	}
}

func TestBookValidation(t *testing.T) {
	svc, patientID := newTestService()
	ctx := context.Background()

	tests := []struct {
		name string
		req  BookRequest
	}{
		{"no dentist", BookRequest{PatientID: patientID, StartTime: at(9, 0), DurationMinutes: 30}},
		{"zero duration", BookRequest{PatientID: patientID, Dentist: "Dr. Rao", StartTime: at(9, 0)}},
		{"negative duration", BookRequest{PatientID: patientID, Dentist: "Dr. Rao", StartTime: at(9, 0), DurationMinutes: -15}},
		{"no start", BookRequest{PatientID: patientID, Dentist: "Dr. Rao", DurationMinutes: 30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Book(ctx, tt.req); !apperror.IsValidation(err) {
				t.Errorf("got %v, want validation error", err)
			}
		})
	}

	if _, err := svc.Book(ctx, BookRequest{
		PatientID: uuid.New(), Dentist: "Dr. Rao", StartTime: at(9, 0), DurationMinutes: 30,
	}); !apperror.IsNotFound(err) {
		t.Errorf("unknown patient: got %v, want not-found", err)
	}
}

func TestBookRejectsOverlap(t *testing.T) {
	svc, patientID := newTestService()
	ctx := context.Background()

	if _, err := svc.Book(ctx, BookRequest{
		PatientID: patientID, Dentist: "Dr. Rao", StartTime: at(10, 0), DurationMinutes: 60,
	}); err != nil {
		t.Fatalf("Book: %v", err)
	}

	// Overlapping slot for the same dentist.
	if _, err := svc.Book(ctx, BookRequest{
		PatientID: patientID, Dentist: "Dr. Rao", StartTime: at(10, 30), DurationMinutes: 30,
	}); !apperror.IsValidation(err) {
		t.Errorf("overlap: got %v, want validation error", err)
	}

	// Same slot, different dentist: fine.
	if _, err := svc.Book(ctx, BookRequest{
		PatientID: patientID, Dentist: "Dr. Iyer", StartTime: at(10, 30), DurationMinutes: 30,
	}); err != nil {
		t.Errorf("different dentist: %v", err)
	}

	// Back-to-back with the first: intervals are half-open, no overlap.
	if _, err := svc.Book(ctx, BookRequest{
		PatientID: patientID, Dentist: "Dr. Rao", StartTime: at(11, 0), DurationMinutes: 30,
	}); err != nil {
		t.Errorf("back-to-back: %v", err)
	}
}

func TestBookIgnoresCancelledSlot(t *testing.T) {
	svc, patientID := newTestService()
	ctx := context.Background()

	first, err := svc.Book(ctx, BookRequest{
		PatientID: patientID, Dentist: "Dr. Rao", StartTime: at(10, 0), DurationMinutes: 30,
	})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if _, err := svc.Transition(ctx, first.ID, StatusCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	if _, err := svc.Book(ctx, BookRequest{
		PatientID: patientID, Dentist: "Dr. Rao", StartTime: at(10, 0), DurationMinutes: 30,
	}); err != nil {
		t.Errorf("booking over a cancelled slot: %v", err)
	}
}

func TestTransitions(t *testing.T) {
	svc, patientID := newTestService()
	ctx := context.Background()

	appt, err := svc.Book(ctx, BookRequest{
		PatientID: patientID, Dentist: "Dr. Rao", StartTime: at(10, 0), DurationMinutes: 30,
	})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}

	confirmed, err := svc.Transition(ctx, appt.ID, StatusConfirmed)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if confirmed.Status != StatusConfirmed {
		t.Errorf("status = %s", confirmed.Status)
	}

	// Confirming twice is invalid.
	if _, err := svc.Transition(ctx, appt.ID, StatusConfirmed); !apperror.IsInvalidState(err) {
		t.Errorf("double confirm: got %v, want invalid-state", err)
	}

	done, err := svc.Transition(ctx, appt.ID, StatusCompleted)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if done.Status != StatusCompleted {
		t.Errorf("status = %s", done.Status)
	}

	// Terminal state rejects everything.
	for _, to := range []Status{StatusScheduled, StatusConfirmed, StatusCancelled, StatusNoShow} {
		if _, err := svc.Transition(ctx, appt.ID, to); !apperror.IsInvalidState(err) {
			t.Errorf("completed -> %s: got %v, want invalid-state", to, err)
		}
	}
}

func TestReschedule(t *testing.T) {
	svc, patientID := newTestService()
	ctx := context.Background()

	appt, err := svc.Book(ctx, BookRequest{
		PatientID: patientID, Dentist: "Dr. Rao", StartTime: at(10, 0), DurationMinutes: 30,
	})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	blocker, err := svc.Book(ctx, BookRequest{
		PatientID: patientID, Dentist: "Dr. Rao", StartTime: at(14, 0), DurationMinutes: 60,
	})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}

	// Moving onto another appointment fails.
	if _, err := svc.Reschedule(ctx, appt.ID, at(14, 30), 30); !apperror.IsValidation(err) {
		t.Errorf("reschedule onto busy slot: got %v, want validation error", err)
	}

	moved, err := svc.Reschedule(ctx, appt.ID, at(16, 0), 45)
	if err != nil {
		t.Fatalf("Reschedule: %v", err)
	}
	if !moved.StartTime.Equal(at(16, 0)) || moved.DurationMinutes != 45 {
		t.Errorf("moved = %v/%d", moved.StartTime, moved.DurationMinutes)
	}

	// Rescheduling over its own old slot is fine (self is excluded).
	if _, err := svc.Reschedule(ctx, blocker.ID, at(14, 15), 45); err != nil {
		t.Errorf("reschedule within own slot: %v", err)
	}

	// Terminal appointments cannot be rescheduled.
	if _, err := svc.Transition(ctx, appt.ID, StatusCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if _, err := svc.Reschedule(ctx, appt.ID, at(17, 0), 30); !apperror.IsInvalidState(err) {
		t.Errorf("reschedule cancelled: got %v, want invalid-state", err)
	}
}

func TestDay(t *testing.T) {
	svc, patientID := newTestService()
	ctx := context.Background()

	for _, start := range []time.Time{at(9, 0), at(11, 0), at(15, 0)} {
		if _, err := svc.Book(ctx, BookRequest{
			PatientID: patientID, Dentist: "Dr. Rao", StartTime: start, DurationMinutes: 30,
		}); err != nil {
			t.Fatalf("Book: %v", err)
		}
	}
	// Next day.
	if _, err := svc.Book(ctx, BookRequest{
		PatientID: patientID, Dentist: "Dr. Rao",
		StartTime: at(9, 0).AddDate(0, 0, 1), DurationMinutes: 30,
	}); err != nil {
		t.Fatalf("Book: %v", err)
	}

	appts, err := svc.Day(ctx, at(12, 0))
	if err != nil {
		t.Fatalf("Day: %v", err)
	}
	if len(appts) != 3 {
		t.Errorf("got %d appointments, want 3", len(appts))
	}
}
