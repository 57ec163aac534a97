package prescription

import (
	"time"

	"github.com/google/uuid"

	"github.com/dentaldesk/dentaldesk/internal/domain/catalog"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusIssued    Status = "issued"
	StatusDispensed Status = "dispensed"
)

// PatientSnapshot freezes the patient identity at issue time so the printed
// document stays stable even if the patient record is later edited.
type PatientSnapshot struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Age    int       `json:"age"`
	Gender string    `json:"gender"`
	Phone  string    `json:"phone"`
}

// Item is one prescribed line with the display fields resolved from the
// formulary.
type Item struct {
	MedicationID        string            `json:"medication_id"`
	Name                string            `json:"name"`
	Dose                string            `json:"dose"`
	Frequency           catalog.Frequency `json:"frequency"`
	Timing              string            `json:"timing"`
	Duration            string            `json:"duration"`
	SpecialInstructions string            `json:"special_instructions,omitempty"`
}

// Prescription maps to the prescriptions table. Created once at generation
// time; immutable afterwards except for status transitions.
type Prescription struct {
	ID                  uuid.UUID       `db:"id" json:"id"`
	Patient             PatientSnapshot `db:"patient" json:"patient"`
	ConditionID         string          `db:"condition_id" json:"condition_id"`
	ConditionName       string          `db:"condition_name" json:"condition_name"`
	Diagnosis           string          `db:"diagnosis" json:"diagnosis"`
	ToothNumbers        []string        `db:"tooth_numbers" json:"tooth_numbers,omitempty"`
	Tier                catalog.Tier    `db:"tier" json:"tier"`
	Items               []Item          `db:"items" json:"items"`
	Instructions        []string        `db:"instructions" json:"instructions"`
	Warnings            []string        `db:"warnings" json:"warnings"`
	DietaryRestrictions []string        `db:"dietary_restrictions" json:"dietary_restrictions"`
	Alerts              []Alert         `db:"alerts" json:"alerts"`
	FollowUpDate        time.Time       `db:"follow_up_date" json:"follow_up_date"`
	Clinician           string          `db:"clinician" json:"clinician"`
	IssuedAt            time.Time       `db:"issued_at" json:"issued_at"`
	Status              Status          `db:"status" json:"status"`
}
