package notification

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dentaldesk/dentaldesk/pkg/apperror"
)

func testBuilder() (*Builder, *MemorySender) {
	sender := &MemorySender{}
	return NewBuilder("Smile Dental Care", sender), sender
}

func TestBuildPaymentReminder(t *testing.T) {
	b, _ := testBuilder()
	due := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

	body := b.BuildPaymentReminder("Asha Verma", 4500, &due)

	for _, want := range []string{"Asha Verma", "\u20b94500", "Smile Dental Care", "due by 15 Oct 2026"} {
		if !strings.Contains(body, want) {
			t.Errorf("payment reminder missing %q:\n%s", want, body)
		}
	}
}

func TestBuildPaymentReminderNoDueDate(t *testing.T) {
	b, _ := testBuilder()

	body := b.BuildPaymentReminder("Asha Verma", 4500, nil)

	if strings.Contains(body, "due by") {
		t.Errorf("reminder without due date should not mention one:\n%s", body)
	}
	if strings.Contains(body, "{{") {
		t.Errorf("unrendered placeholder left in body:\n%s", body)
	}
}

func TestBuildAppointmentReminder(t *testing.T) {
	b, _ := testBuilder()
	when := time.Date(2026, 9, 20, 14, 30, 0, 0, time.UTC)

	body := b.BuildAppointmentReminder("Ravi Nair", "root canal review", when)

	for _, want := range []string{"Ravi Nair", "root canal review", "20 Sep 2026, 2:30 PM"} {
		if !strings.Contains(body, want) {
			t.Errorf("appointment reminder missing %q:\n%s", want, body)
		}
	}
}

func TestDispatchRecordsMessage(t *testing.T) {
	b, sender := testBuilder()
	when := time.Date(2026, 9, 20, 14, 30, 0, 0, time.UTC)

	body, err := b.Dispatch(context.Background(), ReminderRequest{
		Type:        ReminderAppointment,
		PatientName: "Ravi Nair",
		Recipient:   "+91-9876543210",
		Reason:      "scaling",
		When:        &when,
	})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	msgs := sender.Messages()
	if len(msgs) != 1 {
		t.Fatalf("got %d recorded messages, want 1", len(msgs))
	}
	if msgs[0].Recipient != "+91-9876543210" {
		t.Errorf("recipient = %q", msgs[0].Recipient)
	}
	if msgs[0].Body != body {
		t.Errorf("recorded body differs from returned body")
	}
}

func TestDispatchValidation(t *testing.T) {
	b, sender := testBuilder()
	when := time.Now()

	tests := []struct {
		name string
		req  ReminderRequest
	}{
		{"missing patient", ReminderRequest{Type: ReminderPayment, AmountDue: 100}},
		{"zero amount", ReminderRequest{Type: ReminderPayment, PatientName: "A"}},
		{"negative amount", ReminderRequest{Type: ReminderPayment, PatientName: "A", AmountDue: -5}},
		{"appointment without reason", ReminderRequest{Type: ReminderAppointment, PatientName: "A", When: &when}},
		{"appointment without time", ReminderRequest{Type: ReminderAppointment, PatientName: "A", Reason: "x"}},
		{"treatment without time", ReminderRequest{Type: ReminderTreatment, PatientName: "A", Reason: "x"}},
		{"unknown type", ReminderRequest{Type: "carrier-pigeon", PatientName: "A"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := b.Dispatch(context.Background(), tt.req); !apperror.IsValidation(err) {
				t.Errorf("got %v, want validation error", err)
			}
		})
	}

	if n := len(sender.Messages()); n != 0 {
		t.Errorf("rejected reminders should not be recorded, got %d", n)
	}
}

func TestCustomTemplateOverride(t *testing.T) {
	b, _ := testBuilder()
	b.templates.Register(Template{
		ID:   "payment-reminder",
		Body: "Hi {{patient_name}}, {{amount_due}} pending.",
	})

	body := b.BuildPaymentReminder("Asha", 200, nil)
	if body != "Hi Asha, \u20b9200 pending." {
		t.Errorf("custom template not used: %q", body)
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	e := NewTemplateEngine()
	if _, err := e.Render("no-such-template", nil); err == nil {
		t.Error("expected error for unknown template")
	}
}
