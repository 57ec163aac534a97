package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dentaldesk/dentaldesk/internal/domain/patient"
	"github.com/dentaldesk/dentaldesk/pkg/apperror"
)

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

type BookRequest struct {
	PatientID       uuid.UUID `json:"patient_id"`
	Dentist         string    `json:"dentist"`
	StartTime       time.Time `json:"start_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Reason          string    `json:"reason"`
	Notes           string    `json:"notes,omitempty"`
}

// Book validates the slot and rejects double-booking the same dentist.
func (s *Service) Book(ctx context.Context, req BookRequest) (*Appointment, error) {
	if req.Dentist == "" {
		return nil, apperror.Validation("dentist is required")
	}
	if req.DurationMinutes <= 0 {
		return nil, apperror.Validation("duration must be positive")
	}
	if req.StartTime.IsZero() {
		return nil, apperror.Validation("start time is required")
	}

	pat, err := s.patients.Get(ctx, req.PatientID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	appt := &Appointment{
		PatientID:       pat.ID,
		PatientName:     pat.Name,
		Dentist:         req.Dentist,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Reason:          req.Reason,
		Status:          StatusScheduled,
		Notes:           req.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	existing, err := s.repo.ListByDentistRange(ctx, req.Dentist, appt.StartTime, appt.EndTime())
	if err != nil {
		return nil, err
	}
	for _, other := range existing {
		if terminal(other.Status) {
			continue
		}
		if appt.Overlaps(other) {
			return nil, apperror.Validation("dentist %s already has an appointment from %s to %s",
				req.Dentist, other.StartTime.Format("15:04"), other.EndTime().Format("15:04"))
		}
	}

	if err := s.repo.Create(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("appointment", id.String())
	}
	return a, nil
}

// Day returns the calendar for one clinic day.
func (s *Service) Day(ctx context.Context, day time.Time) ([]*Appointment, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return s.repo.ListRange(ctx, start, start.AddDate(0, 0, 1))
}

func (s *Service) Range(ctx context.Context, from, to time.Time) ([]*Appointment, error) {
	if !to.After(from) {
		return nil, apperror.Validation("range end must be after start")
	}
	return s.repo.ListRange(ctx, from, to)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}

var transitions = map[Status][]Status{
	StatusScheduled: {StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow},
	StatusConfirmed: {StatusCompleted, StatusCancelled, StatusNoShow},
}

// Transition moves an appointment through its lifecycle. Completed,
// cancelled, and no-show are terminal.
func (s *Service) Transition(ctx context.Context, id uuid.UUID, to Status) (*Appointment, error) {
	appt, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	allowed := false
	for _, next := range transitions[appt.Status] {
		if next == to {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, apperror.InvalidState("cannot move appointment from %s to %s", appt.Status, to)
	}
	appt.Status = to
	appt.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// Reschedule moves a non-terminal appointment to a new slot, re-checking
// dentist availability.
func (s *Service) Reschedule(ctx context.Context, id uuid.UUID, start time.Time, durationMinutes int) (*Appointment, error) {
	appt, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if terminal(appt.Status) {
		return nil, apperror.InvalidState("appointment is %s and cannot be rescheduled", appt.Status)
	}
	if durationMinutes <= 0 {
		return nil, apperror.Validation("duration must be positive")
	}

	moved := *appt
	moved.StartTime = start
	moved.DurationMinutes = durationMinutes

	existing, err := s.repo.ListByDentistRange(ctx, appt.Dentist, moved.StartTime, moved.EndTime())
	if err != nil {
		return nil, err
	}
	for _, other := range existing {
		if other.ID == appt.ID || terminal(other.Status) {
			continue
		}
		if moved.Overlaps(other) {
			return nil, apperror.Validation("dentist %s already has an appointment from %s to %s",
				appt.Dentist, other.StartTime.Format("15:04"), other.EndTime().Format("15:04"))
		}
	}

	moved.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, &moved); err != nil {
		return nil, err
	}
	return &moved, nil
}
