// Package prescription screens treatment protocols against a patient's
// medical history and assembles the resulting prescription documents.
//
// The safety checker is deliberately a pure function: contraindications are
// data (alerts), not errors, because screening must always yield a usable,
// possibly filtered protocol rather than abort prescription creation.
package prescription

import (
	"strings"

	"github.com/dentaldesk/dentaldesk/internal/domain/catalog"
	"github.com/dentaldesk/dentaldesk/internal/domain/patient"
)

type AlertType string

const (
	AlertError   AlertType = "error"
	AlertWarning AlertType = "warning"
	AlertInfo    AlertType = "info"
)

type AlertAction string

const (
	ActionRemove  AlertAction = "remove"
	ActionReplace AlertAction = "replace"
	ActionAdjust  AlertAction = "adjust"
	ActionMonitor AlertAction = "monitor"
)

// Alert is one triggered screening rule. Error alerts remove the medication
// from the safe protocol; warnings and infos are surfaced but never remove.
type Alert struct {
	Type        AlertType   `json:"type"`
	Message     string      `json:"message"`
	Medications []string    `json:"medications,omitempty"`
	Action      AlertAction `json:"action,omitempty"`
}

// SafetyResult is the screening outcome: the filtered protocol plus every
// triggered alert, including those for medications that were removed.
type SafetyResult struct {
	SafeProtocol catalog.TreatmentProtocol `json:"safe_protocol"`
	Alerts       []Alert                   `json:"alerts"`
}

// HasBlockingAlerts reports whether any medication was removed.
func (r SafetyResult) HasBlockingAlerts() bool {
	for _, a := range r.Alerts {
		if a.Type == AlertError {
			return true
		}
	}
	return false
}

func norm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// matchesTerm reports whether a free-text history entry (allergy or current
// medication) refers to this medication: exact match against the normalized
// tag set, or either-direction containment against the display names.
func matchesTerm(m catalog.Medication, term string) bool {
	t := norm(term)
	if t == "" {
		return false
	}
	if m.HasTag(t) {
		return true
	}
	for _, name := range []string{norm(m.GenericName), norm(m.BrandName)} {
		if name == "" {
			continue
		}
		if strings.Contains(name, t) || strings.Contains(t, name) {
			return true
		}
	}
	return false
}

// mentionsAny reports whether any entry in list contains one of the terms.
func mentionsAny(list []string, terms ...string) bool {
	for _, entry := range list {
		e := norm(entry)
		for _, t := range terms {
			if strings.Contains(e, t) {
				return true
			}
		}
	}
	return false
}

func hasAnyTag(m catalog.Medication, tags ...string) bool {
	for _, t := range tags {
		if m.HasTag(t) {
			return true
		}
	}
	return false
}

// CheckProtocol screens a protocol against a patient's medical history.
// Every rule is evaluated independently per medication, so one medication may
// collect several alerts. The function is deterministic, never fails, and
// does not mutate its inputs.
func CheckProtocol(reg *catalog.Registry, protocol catalog.TreatmentProtocol, history patient.MedicalHistory) SafetyResult {
	var alerts []Alert
	var safeMeds []catalog.DosageInstruction

	for _, dose := range protocol.Medications {
		med, ok := reg.Medication(dose.MedicationID)
		if !ok {
			alerts = append(alerts, Alert{
				Type:        AlertError,
				Message:     "Medication " + dose.MedicationID + " is not in the formulary and was removed",
				Medications: []string{dose.MedicationID},
				Action:      ActionRemove,
			})
			continue
		}

		medAlerts := checkMedication(med, history)
		alerts = append(alerts, medAlerts...)

		removed := false
		for _, a := range medAlerts {
			if a.Type == AlertError {
				removed = true
				break
			}
		}
		if !removed {
			safeMeds = append(safeMeds, dose)
		}
	}

	alerts = append(alerts, protocolAlerts(reg, protocol, history)...)

	safe := protocol
	safe.Medications = safeMeds
	safe.Instructions = append([]string(nil), protocol.Instructions...)
	safe.Warnings = append([]string(nil), protocol.Warnings...)
	safe.DietaryRestrictions = append([]string(nil), protocol.DietaryRestrictions...)

	return SafetyResult{SafeProtocol: safe, Alerts: alerts}
}

// checkMedication runs the per-medication rule table.
func checkMedication(med catalog.Medication, h patient.MedicalHistory) []Alert {
	name := med.GenericName
	var alerts []Alert

	add := func(t AlertType, action AlertAction, msg string) {
		alerts = append(alerts, Alert{Type: t, Message: msg, Medications: []string{name}, Action: action})
	}

	// Pregnancy
	if h.IsPregnant {
		switch med.Pregnancy {
		case catalog.SafetyAvoid:
			add(AlertError, ActionRemove, name+" is contraindicated in pregnancy and was removed")
		case catalog.SafetyCaution:
			add(AlertWarning, ActionMonitor, name+" should be used with caution in pregnancy")
		}
	}

	// Breastfeeding
	if h.IsBreastfeeding {
		switch med.Breastfeeding {
		case catalog.SafetyAvoid:
			add(AlertError, ActionRemove, name+" is contraindicated while breastfeeding and was removed")
		case catalog.SafetyCaution:
			add(AlertWarning, ActionMonitor, name+" should be used with caution while breastfeeding")
		}
	}

	// Direct allergy
	for _, allergy := range h.Allergies {
		if matchesTerm(med, allergy) {
			add(AlertError, ActionRemove, "Patient is allergic to "+allergy+": "+name+" was removed")
			break
		}
	}

	// Penicillin cross-allergy covers amoxicillin and ampicillin derivatives.
	if mentionsAny(h.Allergies, "penicillin") && med.HasTag("penicillin") {
		add(AlertError, ActionRemove, name+" belongs to the penicillin class (cross-allergy) and was removed")
	}

	// Anticoagulant therapy
	if h.BloodThinners {
		if mentionsAny(med.Interactions, "warfarin", "anticoagulant") {
			add(AlertWarning, ActionAdjust, name+" interacts with anticoagulant therapy; adjust dose and monitor INR")
		}
		if hasAnyTag(med, "ibuprofen", "diclofenac", "aspirin") {
			add(AlertWarning, ActionReplace, name+" is an NSAID and increases bleeding risk on blood thinners; prefer paracetamol")
		}
	}

	// Diabetes
	if h.Diabetic && hasAnyTag(med, "prednisolone", "dexamethasone", "corticosteroid") {
		add(AlertWarning, ActionMonitor, name+" is a corticosteroid and may raise blood glucose; monitor sugar levels")
	}

	// Hypertension
	if h.Hypertensive {
		if hasAnyTag(med, "ibuprofen", "diclofenac") {
			add(AlertWarning, ActionMonitor, name+" may raise blood pressure; monitor during the course")
		}
		if med.HasTag("adrenaline") {
			add(AlertWarning, ActionMonitor, name+" contains adrenaline; use the minimum effective dose and monitor blood pressure")
		}
	}

	// Asthma
	if h.Asthmatic && hasAnyTag(med, "aspirin", "ibuprofen") {
		add(AlertWarning, ActionMonitor, name+" can provoke bronchospasm in asthmatic patients")
	}

	// Liver disease
	if h.LiverDisease {
		if mentionsAny(med.Contraindications, "liver") {
			add(AlertError, ActionRemove, name+" is contraindicated in liver disease and was removed")
		}
		if med.HasTag("paracetamol") {
			add(AlertWarning, ActionAdjust, "Cap "+name+" at 2g/day in liver disease")
		}
	}

	// Kidney disease
	if h.KidneyDisease {
		if mentionsAny(med.Contraindications, "kidney", "renal") {
			add(AlertError, ActionRemove, name+" is contraindicated in kidney disease and was removed")
		}
		if hasAnyTag(med, "ibuprofen", "diclofenac") {
			add(AlertWarning, ActionAdjust, name+" is an NSAID; reduce dose and duration in kidney disease")
		}
	}

	// Interactions with the patient's current medications.
	for _, current := range h.CurrentMedications {
		cur := norm(current)
		if cur == "" {
			continue
		}
		for _, interaction := range med.Interactions {
			in := norm(interaction)
			if strings.Contains(cur, in) || strings.Contains(in, cur) {
				add(AlertWarning, ActionMonitor, name+" may interact with "+current)
				break
			}
		}
	}

	return alerts
}

// protocolAlerts runs the protocol-level checks that are not tied to a single
// medication.
func protocolAlerts(reg *catalog.Registry, protocol catalog.TreatmentProtocol, h patient.MedicalHistory) []Alert {
	var alerts []Alert

	if h.Diabetic && len(protocol.DietaryRestrictions) > 0 {
		alerts = append(alerts, Alert{
			Type:    AlertInfo,
			Message: "Patient is diabetic: review dietary restrictions against their meal plan",
		})
	}

	if len(h.CurrentMedications) > 3 {
		alerts = append(alerts, Alert{
			Type:    AlertInfo,
			Message: "Patient is on more than three medications; review for cumulative interactions",
		})
	}

	if h.IsPregnant {
		for _, dose := range protocol.Medications {
			if med, ok := reg.Medication(dose.MedicationID); ok && med.HasTag("metronidazole") {
				alerts = append(alerts, Alert{
					Type:        AlertWarning,
					Message:     "Metronidazole in pregnancy: avoid high-dose regimens, especially in the first trimester",
					Medications: []string{med.GenericName},
					Action:      ActionMonitor,
				})
				break
			}
		}
	}

	if h.BloodThinners {
		alerts = append(alerts, Alert{
			Type:    AlertWarning,
			Message: "Patient is on blood thinners: confirm hemostasis readiness before any invasive procedure",
			Action:  ActionMonitor,
		})
	}

	return alerts
}
