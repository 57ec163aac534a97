package treatment

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/dentaldesk/dentaldesk/pkg/apperror"
)

var fdiPattern = regexp.MustCompile(`^([1-4][1-8]|[5-8][1-5])$`)

type Service struct {
	procedures ProcedureRepository
	plans      PlanRepository
}

func NewService(procedures ProcedureRepository, plans PlanRepository) *Service {
	return &Service{procedures: procedures, plans: plans}
}

// -- Procedures --

func (s *Service) CreateProcedure(ctx context.Context, p *Procedure) error {
	if p.Name == "" {
		return apperror.Validation("procedure name is required")
	}
	if p.Price < 0 {
		return apperror.Validation("procedure price cannot be negative")
	}
	p.Active = true
	p.CreatedAt = time.Now()
	return s.procedures.Create(ctx, p)
}

func (s *Service) GetProcedure(ctx context.Context, id uuid.UUID) (*Procedure, error) {
	p, err := s.procedures.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("procedure", id.String())
	}
	return p, nil
}

func (s *Service) UpdateProcedure(ctx context.Context, p *Procedure) error {
	if _, err := s.GetProcedure(ctx, p.ID); err != nil {
		return err
	}
	if p.Name == "" {
		return apperror.Validation("procedure name is required")
	}
	if p.Price < 0 {
		return apperror.Validation("procedure price cannot be negative")
	}
	return s.procedures.Update(ctx, p)
}

func (s *Service) ListProcedures(ctx context.Context, activeOnly bool, limit, offset int) ([]*Procedure, int, error) {
	return s.procedures.List(ctx, activeOnly, limit, offset)
}

// -- Plans --

// PlanItemRequest selects a procedure for a plan; unit price and name are
// resolved from the catalog at creation time.
type PlanItemRequest struct {
	ProcedureID     uuid.UUID `json:"procedure_id"`
	ToothNumbers    []string  `json:"tooth_numbers,omitempty"`
	Quantity        int       `json:"quantity"`
	DiscountPercent float64   `json:"discount_percent,omitempty"`
	Notes           string    `json:"notes,omitempty"`
}

type CreatePlanRequest struct {
	PatientID uuid.UUID         `json:"patient_id"`
	Title     string            `json:"title"`
	Dentist   string            `json:"-"`
	Items     []PlanItemRequest `json:"items"`
	Notes     string            `json:"notes,omitempty"`
}

func (s *Service) CreatePlan(ctx context.Context, req CreatePlanRequest) (*Plan, error) {
	if req.Title == "" {
		return nil, apperror.Validation("plan title is required")
	}
	if len(req.Items) == 0 {
		return nil, apperror.Validation("plan requires at least one item")
	}

	items := make([]PlanItem, 0, len(req.Items))
	for i, ir := range req.Items {
		if ir.Quantity <= 0 {
			return nil, apperror.Validation("item %d: quantity must be positive", i+1)
		}
		if ir.DiscountPercent < 0 || ir.DiscountPercent > 100 {
			return nil, apperror.Validation("item %d: discount percent must be between 0 and 100", i+1)
		}
		for _, tooth := range ir.ToothNumbers {
			if !fdiPattern.MatchString(tooth) {
				return nil, apperror.Validation("item %d: invalid FDI tooth number: %s", i+1, tooth)
			}
		}
		proc, err := s.GetProcedure(ctx, ir.ProcedureID)
		if err != nil {
			return nil, err
		}
		items = append(items, PlanItem{
			ProcedureID:     proc.ID,
			ProcedureName:   proc.Name,
			ToothNumbers:    ir.ToothNumbers,
			Quantity:        ir.Quantity,
			UnitPrice:       proc.Price,
			DiscountPercent: ir.DiscountPercent,
			Status:          ItemPlanned,
			Notes:           ir.Notes,
		})
	}

	now := time.Now()
	plan := &Plan{
		PatientID: req.PatientID,
		Title:     req.Title,
		Dentist:   req.Dentist,
		Items:     items,
		Status:    PlanProposed,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.plans.Create(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *Service) GetPlan(ctx context.Context, id uuid.UUID) (*Plan, error) {
	p, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("treatment plan", id.String())
	}
	return p, nil
}

func (s *Service) ListPlansByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Plan, int, error) {
	return s.plans.ListByPatient(ctx, patientID, limit, offset)
}

var planTransitions = map[PlanStatus][]PlanStatus{
	PlanProposed: {PlanAccepted, PlanCancelled},
	PlanAccepted: {PlanCompleted, PlanCancelled},
}

func (s *Service) TransitionPlan(ctx context.Context, id uuid.UUID, to PlanStatus) (*Plan, error) {
	plan, err := s.GetPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	allowed := false
	for _, next := range planTransitions[plan.Status] {
		if next == to {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, apperror.InvalidState("cannot move plan from %s to %s", plan.Status, to)
	}
	plan.Status = to
	plan.UpdatedAt = time.Now()
	if err := s.plans.Update(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// CompleteItem marks one plan item done. A plan whose items are all done or
// cancelled completes automatically.
func (s *Service) CompleteItem(ctx context.Context, planID uuid.UUID, index int) (*Plan, error) {
	plan, err := s.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan.Status != PlanAccepted {
		return nil, apperror.InvalidState("plan is %s, items can only be completed on an accepted plan", plan.Status)
	}
	if index < 0 || index >= len(plan.Items) {
		return nil, apperror.Validation("item index %d out of range", index)
	}
	if plan.Items[index].Status != ItemPlanned {
		return nil, apperror.InvalidState("item %d is already %s", index, plan.Items[index].Status)
	}

	now := time.Now()
	plan.Items[index].Status = ItemDone
	plan.Items[index].CompletedAt = &now

	open := false
	for _, item := range plan.Items {
		if item.Status == ItemPlanned {
			open = true
			break
		}
	}
	if !open {
		plan.Status = PlanCompleted
	}

	plan.UpdatedAt = now
	if err := s.plans.Update(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}
