// Package notification renders patient reminder messages. Delivery happens
// outside the clinic (the front desk forwards the text over WhatsApp or SMS),
// so the package only builds the message body and records what was handed off.
package notification

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dentaldesk/dentaldesk/pkg/apperror"
)

// ReminderType selects which reminder template to render.
type ReminderType string

const (
	ReminderPayment     ReminderType = "payment"
	ReminderAppointment ReminderType = "appointment"
	ReminderTreatment   ReminderType = "treatment"
)

// Template is a reusable message template with {{key}} placeholders.
type Template struct {
	ID   string
	Body string
}

// TemplateEngine holds the registered templates and renders them with data.
type TemplateEngine struct {
	mu        sync.RWMutex
	templates map[string]Template
}

// NewTemplateEngine creates an engine with the built-in clinic templates.
func NewTemplateEngine() *TemplateEngine {
	e := &TemplateEngine{templates: make(map[string]Template)}
	for _, t := range []Template{
		{
			ID:   "payment-reminder",
			Body: "Dear {{patient_name}}, this is a gentle reminder that an amount of {{amount_due}} is pending on your account at {{clinic_name}}{{due_clause}}. Please contact the front desk to settle the balance. Thank you!",
		},
		{
			ID:   "appointment-reminder",
			Body: "Dear {{patient_name}}, this is a reminder of your appointment for {{reason}} on {{when}} at {{clinic_name}}. Please arrive 10 minutes early. Reply to reschedule.",
		},
		{
			ID:   "treatment-reminder",
			Body: "Dear {{patient_name}}, your {{reason}} treatment at {{clinic_name}} is due for its next sitting on {{when}}. Please call us to confirm the slot.",
		},
	} {
		e.templates[t.ID] = t
	}
	return e
}

// Register adds or replaces a template.
func (e *TemplateEngine) Register(t Template) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.templates[t.ID] = t
}

// Render looks up a template and substitutes {{key}} placeholders from data.
// Placeholders with no matching key are left as-is.
func (e *TemplateEngine) Render(id string, data map[string]string) (string, error) {
	e.mu.RLock()
	t, ok := e.templates[id]
	e.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("template %q not found", id)
	}
	body := t.Body
	for k, v := range data {
		body = strings.ReplaceAll(body, "{{"+k+"}}", v)
	}
	return body, nil
}

// Sender hands a rendered message to whatever carries it to the patient.
type Sender interface {
	Send(ctx context.Context, recipient, body string) error
}

// Message is one handed-off reminder.
type Message struct {
	Recipient string    `json:"recipient"`
	Body      string    `json:"body"`
	SentAt    time.Time `json:"sent_at"`
}

// MemorySender records messages instead of delivering them. It is both the
// default production sender (delivery is manual) and the test double.
type MemorySender struct {
	mu       sync.Mutex
	messages []Message
}

func (s *MemorySender) Send(_ context.Context, recipient, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, Message{Recipient: recipient, Body: body, SentAt: time.Now().UTC()})
	return nil
}

// Messages returns a copy of everything sent so far.
func (s *MemorySender) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Builder renders reminder messages and optionally hands them to a sender.
type Builder struct {
	clinicName string
	templates  *TemplateEngine
	sender     Sender
}

// NewBuilder constructs a Builder. A nil sender falls back to a MemorySender.
func NewBuilder(clinicName string, sender Sender) *Builder {
	if sender == nil {
		sender = &MemorySender{}
	}
	return &Builder{
		clinicName: clinicName,
		templates:  NewTemplateEngine(),
		sender:     sender,
	}
}

// BuildPaymentReminder renders the payment reminder text. amountDue is in
// whole currency units; dueDate may be nil when the invoice has no due date.
func (b *Builder) BuildPaymentReminder(patientName string, amountDue int, dueDate *time.Time) string {
	dueClause := ""
	if dueDate != nil {
		dueClause = ", due by " + dueDate.Format("02 Jan 2006")
	}
	body, _ := b.templates.Render("payment-reminder", map[string]string{
		"patient_name": patientName,
		"amount_due":   fmt.Sprintf("₹%d", amountDue),
		"clinic_name":  b.clinicName,
		"due_clause":   dueClause,
	})
	return body
}

// BuildAppointmentReminder renders the appointment reminder text.
func (b *Builder) BuildAppointmentReminder(patientName, reason string, when time.Time) string {
	body, _ := b.templates.Render("appointment-reminder", map[string]string{
		"patient_name": patientName,
		"reason":       reason,
		"when":         when.Format("02 Jan 2006, 3:04 PM"),
		"clinic_name":  b.clinicName,
	})
	return body
}

// BuildTreatmentReminder renders the recall text for an ongoing treatment.
func (b *Builder) BuildTreatmentReminder(patientName, reason string, when time.Time) string {
	body, _ := b.templates.Render("treatment-reminder", map[string]string{
		"patient_name": patientName,
		"reason":       reason,
		"when":         when.Format("02 Jan 2006"),
		"clinic_name":  b.clinicName,
	})
	return body
}

// Dispatch renders a reminder and records it with the sender.
func (b *Builder) Dispatch(ctx context.Context, req ReminderRequest) (string, error) {
	if req.PatientName == "" {
		return "", apperror.Validation("patient_name is required")
	}
	var body string
	switch req.Type {
	case ReminderPayment:
		if req.AmountDue <= 0 {
			return "", apperror.Validation("amount_due must be positive")
		}
		body = b.BuildPaymentReminder(req.PatientName, req.AmountDue, req.DueDate)
	case ReminderAppointment:
		if req.Reason == "" || req.When == nil {
			return "", apperror.Validation("reason and when are required for appointment reminders")
		}
		body = b.BuildAppointmentReminder(req.PatientName, req.Reason, *req.When)
	case ReminderTreatment:
		if req.Reason == "" || req.When == nil {
			return "", apperror.Validation("reason and when are required for treatment reminders")
		}
		body = b.BuildTreatmentReminder(req.PatientName, req.Reason, *req.When)
	default:
		return "", apperror.Validation("unknown reminder type %q", req.Type)
	}
	if err := b.sender.Send(ctx, req.Recipient, body); err != nil {
		return "", fmt.Errorf("send reminder: %w", err)
	}
	return body, nil
}

// ReminderRequest is the JSON body for POST /notifications/reminders.
type ReminderRequest struct {
	Type        ReminderType `json:"type"`
	PatientName string       `json:"patient_name"`
	Recipient   string       `json:"recipient"`
	AmountDue   int          `json:"amount_due,omitempty"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	Reason      string       `json:"reason,omitempty"`
	When        *time.Time   `json:"when,omitempty"`
}

// Handler exposes the reminder builder over HTTP.
type Handler struct {
	builder *Builder
}

func NewHandler(b *Builder) *Handler {
	return &Handler{builder: b}
}

// RegisterRoutes registers the notification routes on the given group. Route
// protection is applied by the caller alongside the other domain routes.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/notifications/reminders", h.sendReminder)
}

func (h *Handler) sendReminder(c echo.Context) error {
	var req ReminderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	body, err := h.builder.Dispatch(c.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(apperror.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusCreated, map[string]string{"body": body})
}
