// Package labcase tracks work sent to external dental labs, from impression
// dispatch to fitting.
package labcase

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSent      Status = "sent"
	StatusReceived  Status = "received"
	StatusFitted    Status = "fitted"
	StatusCancelled Status = "cancelled"
)

type CaseType string

const (
	CaseCrown   CaseType = "crown"
	CaseBridge  CaseType = "bridge"
	CaseDenture CaseType = "denture"
	CaseAligner CaseType = "aligner"
	CaseOther   CaseType = "other"
)

func ValidCaseType(t CaseType) bool {
	switch t {
	case CaseCrown, CaseBridge, CaseDenture, CaseAligner, CaseOther:
		return true
	}
	return false
}

// LabCase maps to the lab_cases table.
type LabCase struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	PatientID    uuid.UUID  `db:"patient_id" json:"patient_id"`
	PatientName  string     `db:"patient_name" json:"patient_name"`
	LabName      string     `db:"lab_name" json:"lab_name"`
	CaseType     CaseType   `db:"case_type" json:"case_type"`
	ToothNumbers []string   `db:"tooth_numbers" json:"tooth_numbers,omitempty"`
	Shade        string     `db:"shade" json:"shade,omitempty"`
	SentAt       *time.Time `db:"sent_at" json:"sent_at,omitempty"`
	DueDate      *time.Time `db:"due_date" json:"due_date,omitempty"`
	ReceivedAt   *time.Time `db:"received_at" json:"received_at,omitempty"`
	Status       Status     `db:"status" json:"status"`
	Fee          int        `db:"fee" json:"fee"`
	Notes        string     `db:"notes" json:"notes,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}
